package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/jdoc/ir"
)

// YAML renders a document in YAML, the one alternate dialect shipped
// with the package. It goes through the node's native lowering, so
// object member order follows YAML's map marshaling rather than
// document insertion order.
func YAML(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(node.ToNative())
}
