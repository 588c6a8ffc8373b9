// Package ir provides the document model for jdoc: an immutable tree
// of JSON-like values.
//
// # Node Structure
//
// A Node represents a single value. Its Type() reports which of
// exactly six cases it holds:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value members in insertion order
//
// The set is closed: consumers switch exhaustively over Types() and
// panic on anything else, so adding a case is a deliberate decision at
// every consumption site.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	obj := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
//
// Nodes are immutable after construction. Accessors on composites
// (Values, Entries) return fresh slices so callers can never alias the
// internal storage; building a changed document means building new
// nodes, which Map, Filter and FilterFields do.
//
// # Invariants
//
// Construction performs no validation. Objects with duplicate keys and
// arrays mixing value types are representable; Validate checks the two
// structural invariants (per-object key uniqueness, per-array
// homogeneity) on demand. Serialization and the transforms operate on
// invalid trees without complaint — validation is an independent pass.
package ir
