// Package document converts document-store records (bson documents) and cursors into plain mappings.
//
// Keys "_id" and "password" are always excluded unless remapped, dates render in UTC
// with microsecond precision and object identifiers render as hex text.
package document
