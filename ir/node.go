package ir

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Node is a single value in a document tree. Nodes are immutable once
// constructed; all mutation is expressed as construction of new nodes.
// The payload field that applies is selected by the node's Type.
type Node struct {
	typ Type

	str string
	b   bool
	i64 *int64
	f64 *float64

	fields []KeyVal // ObjectType members, insertion order
	values []*Node  // ArrayType elements
}

// KeyVal is one object member. Keys are always strings; duplicates are
// representable (validation is deferred, see Validate).
type KeyVal struct {
	Key string
	Val *Node
}

func Null() *Node {
	return &Node{typ: NullType}
}

func FromBool(v bool) *Node {
	return &Node{typ: BoolType, b: v}
}

func FromInt(v int64) *Node {
	return &Node{typ: NumberType, i64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{typ: NumberType, f64: &f}
}

func FromString(v string) *Node {
	return &Node{typ: StringType, str: v}
}

// FromSlice builds an array node. The input slice is copied so later
// mutation of it cannot be observed through the node.
func FromSlice(vs []*Node) *Node {
	res := &Node{typ: ArrayType}
	res.values = make([]*Node, len(vs))
	copy(res.values, vs)
	return res
}

// FromKeyVals builds an object node preserving the given member order.
// Duplicate keys are accepted here and rejected only by Validate.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{typ: ObjectType}
	res.fields = make([]KeyVal, len(kvs))
	copy(res.fields, kvs)
	return res
}

// FromMap builds an object node from a map, ordering members by key so
// the result is deterministic.
func FromMap(m map[string]*Node) *Node {
	res := &Node{typ: ObjectType}
	res.fields = make([]KeyVal, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.fields = append(res.fields, KeyVal{Key: key, Val: m[key]})
	}
	return res
}

func (n *Node) Type() Type {
	return n.typ
}

func (n *Node) IsNull() bool {
	return n.typ == NullType
}

// AsString returns the string payload. Zero for non-string nodes.
func (n *Node) AsString() string {
	return n.str
}

// AsBool returns the bool payload. Zero for non-bool nodes.
func (n *Node) AsBool() bool {
	return n.b
}

// Int64 reports the integral payload of a number node.
func (n *Node) Int64() (int64, bool) {
	if n.i64 == nil {
		return 0, false
	}
	return *n.i64, true
}

// Float64 reports the fractional payload of a number node.
func (n *Node) Float64() (float64, bool) {
	if n.f64 == nil {
		return 0, false
	}
	return *n.f64, true
}

// NumberText renders a number node the way its source value would be
// written: integral values without a decimal point, fractional values
// with one.
func (n *Node) NumberText() string {
	if n.i64 != nil {
		return strconv.FormatInt(*n.i64, 10)
	}
	if n.f64 != nil {
		v := strconv.FormatFloat(*n.f64, 'f', -1, 64)
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
		return v
	}
	return ""
}

// Len returns the number of elements or members of a composite node,
// zero for leaves.
func (n *Node) Len() int {
	switch n.typ {
	case ArrayType:
		return len(n.values)
	case ObjectType:
		return len(n.fields)
	default:
		return 0
	}
}

// At returns the i-th array element, nil when out of range or not an
// array.
func (n *Node) At(i int) *Node {
	if n.typ != ArrayType || i < 0 || i >= len(n.values) {
		return nil
	}
	return n.values[i]
}

// Get returns the value of the first member with the given key, nil if
// absent or not an object.
func (n *Node) Get(key string) *Node {
	for i := range n.fields {
		if n.fields[i].Key == key {
			return n.fields[i].Val
		}
	}
	return nil
}

// Values returns the array elements. The slice is a fresh copy; the
// elements themselves are immutable and shared.
func (n *Node) Values() []*Node {
	res := make([]*Node, len(n.values))
	copy(res, n.values)
	return res
}

// Entries returns the object members in insertion order as a fresh
// copy.
func (n *Node) Entries() []KeyVal {
	res := make([]KeyVal, len(n.fields))
	copy(res, n.fields)
	return res
}

// ToMap returns the object members as a map. Member order is lost; with
// duplicate keys the last member wins.
func ToMap(n *Node) map[string]*Node {
	if n.typ != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(n.fields))
	for i := range n.fields {
		res[n.fields[i].Key] = n.fields[i].Val
	}
	return res
}
