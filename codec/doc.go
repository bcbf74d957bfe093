// Package codec reads and writes the line-oriented text tree format.
//
// Format
//
//   - One value per line, in core.Node.Walk order with the root included.
//   - Absent children are never written; nothing records the tree's shape.
//   - Blank lines are skipped on read and never written.
//   - Depth is not stored; it is recomputed from placement on read.
//
// Reading places values with a core.Populator, so a file is always
// reconstructed as a complete binary tree filled level by level (right
// slot before left slot). Only trees that were complete when written
// survive a round trip. For a sparse tree the reader silently assigns later
// values to child positions that did not exist in the source tree; no error
// is reported. This is a property of the format, not of the reader.
//
// Pretty output
//
//	WithPretty prefixes each line with min(depth, 32) tabs, one fewer for
//	LEFT nodes, followed by "<depth>: ". WithSkipDeep(d) stops the whole
//	walk at the first node deeper than d and writes "..." in its place.
//	Pretty output is for display and is not meant to be read back.
//
// Errors
//
//   - ErrOptionViolation for a skip-deep ceiling below NoDepthLimit.
//   - ErrWrite wrapping a failing io.Writer.
//   - ErrRead wrapping a failing io.Reader.
//   - ErrParse wrapping a Parser error, with the 1-based line number.
//
// Usage
//
//	var buf bytes.Buffer
//	if err := codec.Serialize(&buf, tree); err != nil { ... }
//
//	back, err := codec.Deserialize(&buf, codec.ParseInt)
package codec
