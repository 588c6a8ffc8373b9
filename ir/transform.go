package ir

// Map applies f to every element of an array node in order and returns
// a new array of the results. The receiver is left untouched. Panics on
// non-array nodes.
func (n *Node) Map(f func(*Node) *Node) *Node {
	if n.typ != ArrayType {
		panic("ir: Map on " + n.typ.String())
	}
	res := make([]*Node, len(n.values))
	for i, v := range n.values {
		res[i] = f(v)
	}
	return FromSlice(res)
}

// Filter returns a new array node keeping, in order, the elements for
// which pred holds. Panics on non-array nodes.
func (n *Node) Filter(pred func(*Node) bool) *Node {
	if n.typ != ArrayType {
		panic("ir: Filter on " + n.typ.String())
	}
	res := make([]*Node, 0, len(n.values))
	for _, v := range n.values {
		if pred(v) {
			res = append(res, v)
		}
	}
	return FromSlice(res)
}

// FilterFields returns a new object node keeping, in insertion order,
// the members for which pred holds. Panics on non-object nodes.
func (n *Node) FilterFields(pred func(key string, val *Node) bool) *Node {
	if n.typ != ObjectType {
		panic("ir: FilterFields on " + n.typ.String())
	}
	res := make([]KeyVal, 0, len(n.fields))
	for i := range n.fields {
		if pred(n.fields[i].Key, n.fields[i].Val) {
			res = append(res, n.fields[i])
		}
	}
	return FromKeyVals(res)
}
