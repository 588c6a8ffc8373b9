// Package gomap lifts native Go values into ir documents.
//
// Conversion is driven by runtime structural introspection
// (goccy/go-reflect): no type needs to opt in with hand-written
// serialization code. Struct fields appear in declared order, never
// alphabetical, which is what keeps converted records byte-stable
// under serialization. Map members are sorted by key since Go maps
// carry no order of their own.
//
// The one recoverable, caller-visible failure is a map keyed by
// anything other than strings, reported as ErrMapKeys with its exact
// contract text. Shapes outside the recognized set fail fast with a
// *MarshalError; see ToIR.
package gomap
