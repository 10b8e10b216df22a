// Package core provides low-level parsing primitives for tagged drawing files.
//
// Tagged drawing files (DXF and compatible formats) are a flat sequence of
// tags, where every tag is a (group code, value) pair stored as two text
// lines: the numeric group code followed by its value. The group code
// determines the value type.
//
// # Tag Model
//
// The fundamental types are:
//
//   - [Tag] - a single (group code, value) pair
//   - [Value] - the typed payload of a tag ([String], [Integer] or [Real])
//   - [Tags] - an ordered tag sequence with code-based search and update
//
// Tag order is semantically meaningful: it defines serialization order, and
// the toolkit preserves it through read, mutation and write.
//
// # Lexing and Writing
//
// The [Lexer] type converts a text stream into tags, classifying each value
// by its group code. The [Writer] type performs the inverse, formatting tags
// back into the two-line representation with conventional right-aligned
// group codes.
//
// # Grouping
//
// A flat tag sequence is structured by marker tags (group code 0): every
// marker starts a new logical record. [Partition] splits a sequence at the
// markers, and [GroupTags] additionally validates the opening and closing
// sentinel names of a structural block (e.g. "TABLE" ... "ENDTAB").
//
// # Extended Tags
//
// Modern format revisions scope entity fields with subclass markers (group
// code 100). [ExtendedTags] splits a record into its common portion and the
// named subclass sections, supporting both legacy flat lookups and
// subclass-scoped access and mutation.
package core
