package ir

// Validate reports whether every node in the tree satisfies the two
// structural invariants:
//
//   - every object's member keys are unique within that object
//   - every non-empty array is homogeneous: all elements share one Type
//     (Null counts as its own type)
//
// The checks are per node; sibling objects may reuse each other's keys.
// Construction never enforces these invariants, so a tree built with
// FromKeyVals or transforms may be transiently invalid until checked
// here. Validate never fails and visits the full tree.
func Validate(n *Node) bool {
	valid := true
	n.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		switch y.typ {
		case ObjectType:
			seen := make(map[string]bool, len(y.fields))
			for i := range y.fields {
				if seen[y.fields[i].Key] {
					valid = false
				}
				seen[y.fields[i].Key] = true
			}
		case ArrayType:
			if len(y.values) > 1 {
				t := y.values[0].typ
				for _, v := range y.values[1:] {
					if v.typ != t {
						valid = false
					}
				}
			}
		}
		return true, nil
	})
	return valid
}
