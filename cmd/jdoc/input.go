package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/signadot/jdoc/gomap"
	"github.com/signadot/jdoc/ir"
)

// readDoc reads one document from arg, which is a file path or "-" for
// stdin, decoded per the configured input format.
func readDoc(cfg *MainConfig, arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	node, err := decodeDoc(cfg, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

func decodeDoc(cfg *MainConfig, d []byte) (*ir.Node, error) {
	var v interface{}
	switch cfg.InFormat {
	case yamlIn:
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(d))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
	}
	return fromNative(v)
}

// fromNative lifts decoder output into a document. Maps and slices are
// walked here so that json.Number values anywhere in the tree keep
// their integer or float identity; everything else goes through the
// generic converter.
func fromNative(v interface{}) (*ir.Node, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", x, err)
		}
		return ir.FromFloat(f), nil
	case []interface{}:
		els := make([]*ir.Node, 0, len(x))
		for _, el := range x {
			node, err := fromNative(el)
			if err != nil {
				return nil, err
			}
			els = append(els, node)
		}
		return ir.FromSlice(els), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kvs := make([]ir.KeyVal, 0, len(keys))
		for _, k := range keys {
			node, err := fromNative(x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: node})
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return gomap.ToIR(v)
	}
}
