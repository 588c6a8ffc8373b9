package gomap

import (
	"strings"

	"github.com/goccy/go-reflect"
)

// fieldName resolves the object member name for a struct field from
// its `jdoc` tag. `jdoc:"-"` skips the field; `jdoc:"name"` renames
// it; otherwise the Go field name is used as declared.
func fieldName(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get("jdoc")
	if tag == "-" {
		return "", true
	}
	if tag != "" {
		if i := strings.Index(tag, ","); i >= 0 {
			tag = tag[:i]
		}
		if tag != "" {
			return tag, false
		}
	}
	return field.Name, false
}
