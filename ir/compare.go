package ir

import (
	"cmp"
	"strings"
)

// Equal reports structural equality. Array element order is
// significant; object member order is not: two objects are equal when
// they hold the same keys with recursively equal values.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case NullType:
		return true
	case BoolType:
		return a.b == b.b
	case NumberType:
		if a.i64 != nil && b.i64 != nil {
			return *a.i64 == *b.i64
		}
		if a.f64 != nil && b.f64 != nil {
			return *a.f64 == *b.f64
		}
		return false
	case StringType:
		return a.str == b.str
	case ArrayType:
		if len(a.values) != len(b.values) {
			return false
		}
		for i := range a.values {
			if !Equal(a.values[i], b.values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.fields) != len(b.fields) {
			return false
		}
		for i := range a.fields {
			if !Equal(a.fields[i].Val, b.Get(a.fields[i].Key)) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Order over members is positional, so Compare is stricter than Equal
// for objects.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case NullType:
		return 0
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.str, b.str)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Sub-rank: Int64 < Float64
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.i64 != nil {
		return cmp.Compare(*a.i64, *b.i64)
	}
	if a.f64 != nil {
		return cmp.Compare(*a.f64, *b.f64)
	}
	return 0
}

func numberSubRank(n *Node) int {
	if n.i64 != nil {
		return 0
	}
	return 1
}

func compareArrays(a, b *Node) int {
	lenA := len(a.values)
	lenB := len(b.values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	lenA := len(a.fields)
	lenB := len(b.fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.fields[i].Key, b.fields[i].Key); c != 0 {
			return c
		}
		if c := Compare(a.fields[i].Val, b.fields[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
