// Package tables implements the resource table registry of a drawing.
//
// A drawing organizes its shared resources (layers, linetypes, text styles,
// and so on) into tables. Every table is a named registry of entries of one
// kind: it owns an ordered list of member handles, a header record, and the
// operations to create, look up, remove, iterate and serialize members.
//
// # Collaborators
//
// A [Table] does not store entry data itself. It delegates to three
// collaborators, consumed as interfaces and bundled in an [Env]:
//
//   - [HandleAllocator] issues unique identifiers for new entries
//     ([Allocator] is the concrete monotonic implementation)
//   - [EntityDB] maps a handle to the entry's tag representation
//     ([MemoryDB] is the concrete in-memory implementation)
//   - [EntityFactory] builds and wraps typed entry views
//     ([Registry] is the concrete kind-keyed lookup table)
//
// # Ordering
//
// The member sequence strictly preserves insertion order, which is also
// serialization order. Clients that need stable output can rely on the
// table never reordering entries between read and write.
//
// # Uniqueness
//
// A standard table rejects duplicate entry names in Create. The
// [ViewportTable] variant relaxes this, since viewport configurations
// legitimately repeat names; its Remove drops the first match only.
//
// All operations are synchronous, in-memory and single-threaded; the
// entity database is owned by exactly one drawing at a time.
package tables
