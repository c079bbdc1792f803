// Package schema introspects structured records: plain Go structs and bun ORM models.
//
// A Type lists the declared field names of a record (bun models: persisted columns followed by
// relations, structs: exported fields named by json/format tags) and resolves field values through
// precomputed xunsafe accessors, including promoted fields of embedded structs.
// Structs carrying a presence marker report unset fields as missing.
package schema
