// Package encode serializes ir documents to text.
//
// The serializer is a recursive descent over the document that drives
// a small Sink pipeline instead of concatenating strings by hand.
// Quoting, bracketing and comma separation are independent wrapper
// sinks composed around a buffering sink, so a dialect can replace any
// one of them without touching the descent.
//
// Output is always compact: no indentation, no whitespace around ':'
// or ','. In string values only the double quote is escaped (as \");
// backslashes and control characters are emitted verbatim, a
// deliberate compatibility limitation that can yield technically
// invalid JSON for such inputs.
//
// Serialization never fails and does not check the document's
// structural invariants; run ir.Validate separately when that verdict
// matters.
package encode
