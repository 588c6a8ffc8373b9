package gomap

import (
	"github.com/signadot/jdoc/encode"
)

// MarshalJSON converts a Go value to compact JSON bytes: ToIR followed
// by the document serializer.
func MarshalJSON(v interface{}) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	return []byte(encode.JSON(node)), nil
}
