// Package visitor offers callback visitors for the container shapes a serializer walks.
// It provides reflection-backed iteration over maps, sets, slices, arrays, lazy sequences
// and document-store records, with simple callback-based traversal.
package visitor
