package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/signadot/jdoc/ir"
)

// JSON serializes a document to compact JSON text. It never fails and
// does not care whether the document validates: validation and
// serialization are orthogonal passes. Only the double quote is
// escaped in strings (see the package comment).
func JSON(node *ir.Node) string {
	buf := NewBuffer()
	EncodeTo(node, buf)
	return buf.Snapshot()
}

// EncodeTo serializes node into the given sink. Every variant performs
// exactly one Write on the sink it is handed, which is what lets a
// Commas wrapper sit between a composite and its elements.
func EncodeTo(node *ir.Node, sink Sink) {
	es := &encState{}
	encode(node, sink, es)
}

// Encode writes the compact JSON form of node to w, with optional
// display decoration (colors). The canonical byte-exact form is the
// one produced without options.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	buf := NewBuffer()
	encode(node, buf, es)
	_, err := io.WriteString(w, buf.Snapshot())
	return err
}

type encState struct {
	Color func(ir.Type, ColorAttr, string) string
}

func (es *encState) color(t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func encode(node *ir.Node, sink Sink, es *encState) {
	switch node.Type() {
	case ir.NullType:
		sink.Write(es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		sink.Write(es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.AsBool())))
	case ir.NumberType:
		sink.Write(es.color(ir.NumberType, ValueColor, node.NumberText()))
	case ir.StringType:
		q := Quoted(sink)
		q.Write(es.color(ir.StringType, ValueColor, escapeQuotes(node.AsString())))
	case ir.ArrayType:
		encodeArray(node, sink, es)
	case ir.ObjectType:
		encodeObject(node, sink, es)
	default:
		panic("type")
	}
}

// encodeArray serializes each element through a shared Commas wrapper
// over a fresh inner buffer, then writes the accumulated text through
// a Square wrapper to the outer sink. Elements generate their own
// brackets and quotes before the comma logic sees the fragment.
func encodeArray(node *ir.Node, sink Sink, es *encState) {
	inner := NewBuffer()
	cs := Commas(inner)
	for _, el := range node.Values() {
		encode(el, cs, es)
	}
	Square(sink).Write(inner.Snapshot())
}

// encodeObject renders each member as one "key":value fragment in a
// per-member buffer, feeds the fragments to a Commas wrapper shared
// across all members, then writes the result through a Curly wrapper.
func encodeObject(node *ir.Node, sink Sink, es *encState) {
	inner := NewBuffer()
	cs := Commas(inner)
	for _, kv := range node.Entries() {
		entry := NewBuffer()
		Quoted(entry).Write(es.color(ir.ObjectType, FieldColor, escapeQuotes(kv.Key)))
		entry.Write(es.color(ir.ObjectType, SepColor, ":"))
		encode(kv.Val, entry, es)
		cs.Write(entry.Snapshot())
	}
	Curly(sink).Write(inner.Snapshot())
}

// escapeQuotes escapes only the double quote. Backslashes, control
// characters and newlines pass through untouched.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
