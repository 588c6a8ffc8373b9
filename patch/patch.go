// Package patch applies and computes RFC 7386 merge patches over
// documents. Documents are serialized to their compact JSON form and
// handed to json-patch, so the results are plain JSON bytes rather
// than documents.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
)

// Merge applies the merge patch p to doc and returns the patched JSON.
func Merge(doc, p *ir.Node) ([]byte, error) {
	out, err := jsonpatch.MergePatch([]byte(encode.JSON(doc)), []byte(encode.JSON(p)))
	if err != nil {
		return nil, fmt.Errorf("apply merge patch: %w", err)
	}
	return out, nil
}

// Diff computes the merge patch that transforms a into b.
func Diff(a, b *ir.Node) ([]byte, error) {
	out, err := jsonpatch.CreateMergePatch([]byte(encode.JSON(a)), []byte(encode.JSON(b)))
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	return out, nil
}
