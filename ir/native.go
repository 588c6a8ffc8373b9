package ir

// ToNative lowers a node to plain Go data: nil, bool, int64, float64,
// string, []interface{} or map[string]interface{}. Object member order
// is lost; with duplicate keys the last member wins. The result shares
// nothing with the node's internal storage.
func (n *Node) ToNative() interface{} {
	switch n.typ {
	case NullType:
		return nil
	case BoolType:
		return n.b
	case NumberType:
		if n.i64 != nil {
			return *n.i64
		}
		if n.f64 != nil {
			return *n.f64
		}
		return nil
	case StringType:
		return n.str
	case ArrayType:
		res := make([]interface{}, len(n.values))
		for i, v := range n.values {
			res[i] = v.ToNative()
		}
		return res
	case ObjectType:
		res := make(map[string]interface{}, len(n.fields))
		for i := range n.fields {
			res[n.fields[i].Key] = n.fields[i].Val.ToNative()
		}
		return res
	default:
		panic("type")
	}
}
