package patch

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"
)

func mustToIR(t *testing.T, v interface{}) *ir.Node {
	t.Helper()
	n, err := gomap.ToIR(v)
	require.NoError(t, err)
	return n
}

func TestMerge(t *testing.T) {
	doc := mustToIR(t, map[string]interface{}{
		"name":    "PA",
		"credits": 6,
	})
	p := mustToIR(t, map[string]interface{}{
		"credits": 9,
		"term":    "spring",
	})
	out, err := Merge(doc, p)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"PA","credits":9,"term":"spring"}`, string(out))
}

func TestMergeRemovesNullMembers(t *testing.T) {
	doc := mustToIR(t, map[string]interface{}{"a": 1, "b": 2})
	p := ir.FromKeyVals([]ir.KeyVal{{Key: "b", Val: ir.Null()}})
	out, err := Merge(doc, p)
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1}`, string(out))
}

func TestDiff(t *testing.T) {
	a := mustToIR(t, map[string]interface{}{"name": "PA", "credits": 6})
	b := mustToIR(t, map[string]interface{}{"name": "PA", "credits": 9})
	out, err := Diff(a, b)
	require.NoError(t, err)
	require.JSONEq(t, `{"credits":9}`, string(out))
}

func TestDiffThenMergeRoundTrips(t *testing.T) {
	a := mustToIR(t, map[string]interface{}{"x": []interface{}{1, 2}, "y": "old"})
	b := mustToIR(t, map[string]interface{}{"x": []interface{}{1, 2, 3}})
	p, err := Diff(a, b)
	require.NoError(t, err)

	pn := mustToIR(t, decodeJSON(t, p))
	out, err := Merge(a, pn)
	require.NoError(t, err)
	require.JSONEq(t, `{"x":[1,2,3]}`, string(out))
}

func decodeJSON(t *testing.T, data []byte) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}
