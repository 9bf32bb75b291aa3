package xmlbind

import (
	"fmt"

	"github.com/jacoelho/xmlbind/pkg/xmltree"
)

// Bind populates rec from root with the given options. It is equivalent to
// rec.Bind(root) when no options are given.
func Bind(root *xmltree.Node, rec Field, opts ...Option) error {
	if rec == nil {
		return fmt.Errorf("bind: nil record")
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return err
	}
	return rec.bind(newState(cfg), root)
}
