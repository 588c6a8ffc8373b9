// Package query runs expression-driven transforms over documents.
// Predicates and mappings are expr-lang expressions evaluated against
// the native lowering of each element or member; results of Map are
// lifted back into documents through the generic converter.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"
)

// Filter keeps the array elements or object members for which the
// expression yields true. Array environments carry {value, index},
// object environments {key, value}.
func Filter(n *ir.Node, src string) (*ir.Node, error) {
	prg, err := compile(src)
	if err != nil {
		return nil, err
	}
	switch n.Type() {
	case ir.ArrayType:
		kept := make([]*ir.Node, 0, n.Len())
		for i, el := range n.Values() {
			ok, err := runBool(prg, map[string]any{"value": el.ToNative(), "index": i})
			if err != nil {
				return nil, err
			}
			if ok {
				kept = append(kept, el)
			}
		}
		return ir.FromSlice(kept), nil
	case ir.ObjectType:
		kept := make([]ir.KeyVal, 0, n.Len())
		for _, kv := range n.Entries() {
			ok, err := runBool(prg, map[string]any{"key": kv.Key, "value": kv.Val.ToNative()})
			if err != nil {
				return nil, err
			}
			if ok {
				kept = append(kept, kv)
			}
		}
		return ir.FromKeyVals(kept), nil
	default:
		return nil, fmt.Errorf("filter applies to arrays and objects, got %s", n.Type())
	}
}

// Map applies the expression to every element of an array and returns
// a new array of the results.
func Map(n *ir.Node, src string) (*ir.Node, error) {
	if n.Type() != ir.ArrayType {
		return nil, fmt.Errorf("map applies to arrays, got %s", n.Type())
	}
	prg, err := compile(src)
	if err != nil {
		return nil, err
	}
	res := make([]*ir.Node, 0, n.Len())
	for i, el := range n.Values() {
		out, err := expr.Run(prg, map[string]any{"value": el.ToNative(), "index": i})
		if err != nil {
			return nil, fmt.Errorf("run map expression: %w", err)
		}
		node, err := gomap.ToIR(out)
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
	return ir.FromSlice(res), nil
}

func compile(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compile expression: %w", err)
	}
	if debug.Query() {
		debug.Logf("query: compiled %q\n", src)
	}
	return prg, nil
}

func runBool(prg *vm.Program, env map[string]any) (bool, error) {
	out, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("run filter expression: %w", err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression returned %T, want bool", out)
	}
	return b, nil
}
