package ir

// Visit walks the tree rooted at y in pre-order. f is called with
// isPost=false before any child is visited; returning false skips the
// node's children. f is called again with isPost=true after the
// children. Children are visited in element/member order. Each call
// starts a fresh traversal; no cursor state survives between calls.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		switch y.typ {
		case ArrayType:
			for _, yy := range y.values {
				if err := yy.Visit(f); err != nil {
					return err
				}
			}
		case ObjectType:
			for i := range y.fields {
				if err := y.fields[i].Val.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
