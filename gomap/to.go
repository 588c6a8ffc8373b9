package gomap

import (
	"encoding"
	"fmt"
	"sort"

	"github.com/goccy/go-reflect"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

// ToIR lifts a native Go value into a document by structural
// introspection. Recognized shapes:
//
//   - nil, nil pointers, nil interfaces -> Null
//   - bool -> Bool; integers and floats -> Number; string -> String
//   - encoding.TextMarshaler values, and named integer types with a
//     String() method (the Go enum idiom) -> String of the declared name
//   - slices and arrays -> Array of recursively converted elements
//   - maps keyed by string -> Object with members sorted by key; any
//     other key type fails with ErrMapKeys
//   - structs -> Object with exported fields in declared order,
//     embedded structs flattened in place; a struct with no exported
//     fields yields an empty Object
//
// Anything else (channels, funcs, complex numbers) is a programming
// error and fails fast with a *MarshalError naming the offending field
// path. Cyclic pointer structures are detected and rejected the same
// way.
func ToIR(v interface{}) (*ir.Node, error) {
	if debug.Convert() {
		debug.Logf("gomap: convert %T\n", v)
	}
	if v == nil {
		return ir.Null(), nil
	}
	visited := make(map[uintptr]string) // pointer addresses on the current path
	node, err := toIRValue(reflect.ValueOf(v), "", visited)
	if err != nil && debug.Convert() {
		debug.Logf("gomap: convert %T failed: %v\n", v, err)
	}
	return node, err
}

func toIRValue(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	typ := val.Type()
	kind := typ.Kind()

	if kind == reflect.Ptr {
		if val.IsNil() {
			return ir.Null(), nil
		}
		if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
			return textNode(tm, fieldPath)
		}
		ptrAddr := val.Pointer()
		if prevPath, seen := visited[ptrAddr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[ptrAddr] = fieldPath
		node, err := toIRValue(val.Elem(), fieldPath, visited)
		delete(visited, ptrAddr)
		return node, err
	}

	if tm, ok := val.Interface().(encoding.TextMarshaler); ok {
		return textNode(tm, fieldPath)
	}
	if name, ok := enumName(val); ok {
		return ir.FromString(name), nil
	}

	switch kind {
	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromInt(int64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, visited)

	case reflect.Map:
		return toIRMap(val, fieldPath, visited)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, visited)

	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIRValue(val.Elem(), fieldPath, visited)

	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type: %s", typ),
		}
	}
}

func textNode(tm encoding.TextMarshaler, fieldPath string) (*ir.Node, error) {
	text, err := tm.MarshalText()
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalText failed", Err: err}
	}
	return ir.FromString(string(text)), nil
}

// enumName recognizes the Go enum idiom: a named integer type with a
// String() method. Such members convert to their declared name, not
// their ordinal.
func enumName(val reflect.Value) (string, bool) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return "", false
	}
	if val.Type().PkgPath() == "" {
		return "", false
	}
	s, ok := val.Interface().(fmt.Stringer)
	if !ok {
		return "", false
	}
	return s.String(), true
}

func toIRSlice(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Kind() == reflect.Slice && !val.IsNil() {
		slicePtr := val.Pointer()
		if prevPath, seen := visited[slicePtr]; seen {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
			}
		}
		visited[slicePtr] = fieldPath
		defer delete(visited, slicePtr)
	}

	length := val.Len()
	elements := make([]*ir.Node, 0, length)
	for i := 0; i < length; i++ {
		elemNode, err := toIRValue(val.Index(i), elemPath(fieldPath, i), visited)
		if err != nil {
			return nil, err
		}
		elements = append(elements, elemNode)
	}
	return ir.FromSlice(elements), nil
}

func toIRMap(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, ErrMapKeys
	}
	if val.IsNil() {
		return ir.Null(), nil
	}

	mapPtr := val.Pointer()
	if prevPath, seen := visited[mapPtr]; seen {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("circular reference detected: %s -> %s", prevPath, fieldPath),
		}
	}
	visited[mapPtr] = fieldPath
	defer delete(visited, mapPtr)

	keys := make([]string, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)

	kvs := make([]ir.KeyVal, 0, len(keys))
	for _, key := range keys {
		valueNode, err := toIRValue(val.MapIndex(reflect.ValueOf(key).Convert(val.Type().Key())),
			keyPath(fieldPath, key), visited)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: valueNode})
	}
	return ir.FromKeyVals(kvs), nil
}

// toIRStruct converts a struct to an object node, preserving declared
// field order. Embedded structs are flattened in place so the promoted
// fields keep their position in the declaration.
func toIRStruct(val reflect.Value, fieldPath string, visited map[uintptr]string) (*ir.Node, error) {
	typ := val.Type()
	kvs := make([]ir.KeyVal, 0, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		if field.Anonymous {
			// An embedded struct is flattened even when its type name
			// is unexported; only its exported fields promote. The
			// recursion walks the fields directly because Interface()
			// cannot be called on the embedded value itself.
			if fieldVal.Kind() == reflect.Struct {
				embedded, err := toIRStruct(fieldVal, fieldPath, visited)
				if err != nil {
					return nil, err
				}
				for _, kv := range embedded.Entries() {
					if hasKey(kvs, kv.Key) {
						return nil, &MarshalError{
							FieldPath: fieldPath,
							Message:   fmt.Sprintf("field name conflict: embedded struct field %q conflicts with existing field", kv.Key),
						}
					}
					kvs = append(kvs, kv)
				}
				continue
			}
			if field.PkgPath != "" {
				continue
			}
			// an exported embedded non-struct is a regular member
			// named after its type
		} else if field.PkgPath != "" {
			continue
		}

		name, skip := fieldName(field)
		if skip {
			continue
		}
		fieldNode, err := toIRValue(fieldVal, keyPath(fieldPath, name), visited)
		if err != nil {
			return nil, err
		}
		if hasKey(kvs, name) {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("field name conflict: duplicate field %q", name),
			}
		}
		kvs = append(kvs, ir.KeyVal{Key: name, Val: fieldNode})
	}
	return ir.FromKeyVals(kvs), nil
}

func hasKey(kvs []ir.KeyVal, key string) bool {
	for i := range kvs {
		if kvs[i].Key == key {
			return true
		}
	}
	return false
}

func elemPath(fieldPath string, i int) string {
	if fieldPath == "" {
		return fmt.Sprintf("[%d]", i)
	}
	return fmt.Sprintf("%s[%d]", fieldPath, i)
}

func keyPath(fieldPath, key string) string {
	if fieldPath == "" {
		return key
	}
	return fieldPath + "." + key
}
