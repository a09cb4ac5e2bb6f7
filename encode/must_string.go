package encode

import (
	"strings"

	"github.com/redline-format/redline/ir"
)

// MustString encodes node to a string, panicking on error. Writes to
// a strings.Builder cannot fail, so the panic path is unreachable in
// practice; this exists for tests and debug output.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	var b strings.Builder
	if err := Encode(node, &b, opts...); err != nil {
		panic(err)
	}
	return b.String()
}
