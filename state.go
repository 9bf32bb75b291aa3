package xmlbind

import (
	"cmp"
	"log/slog"
	"strings"

	binderrors "github.com/jacoelho/xmlbind/errors"
	"github.com/jacoelho/xmlbind/pkg/xmltree"
)

// state is the per-bind walk context. It is created by every top-level bind
// and never shared between binds.
type state struct {
	logger   *slog.Logger
	stats    *Stats
	maxDepth int
	stack    []string
}

func newState(cfg bindOptions) *state {
	return &state{
		logger:   cfg.logger,
		stats:    cfg.stats,
		maxDepth: cmp.Or(cfg.maxDepth, defaultMaxDepth),
	}
}

func defaultState() *state {
	return newState(bindOptions{})
}

// enter pushes n onto the path; it fails once the nesting limit is exceeded.
func (st *state) enter(n *xmltree.Node) error {
	if len(st.stack) >= st.maxDepth {
		return binderrors.Newf(binderrors.CodeDepthLimit, "nesting exceeds %d levels", st.maxDepth).
			At(st.path(n)).Err()
	}
	st.stack = append(st.stack, n.Name)
	return nil
}

func (st *state) leave() {
	st.stack = st.stack[:len(st.stack)-1]
}

// path returns the instance path of n below the current stack.
func (st *state) path(n *xmltree.Node) string {
	var b strings.Builder
	for _, name := range st.stack {
		b.WriteByte('/')
		b.WriteString(name)
	}
	if n == nil {
		return b.String()
	}
	b.WriteByte('/')
	if n.Kind == xmltree.AttributeNode {
		b.WriteByte('@')
	}
	b.WriteString(n.Name)
	return b.String()
}

// current returns the path of the innermost entered node.
func (st *state) current() string {
	return st.path(nil)
}

func (st *state) visited() {
	if st.stats != nil {
		st.stats.Elements++
	}
}

func (st *state) bound() {
	if st.stats != nil {
		st.stats.Bound++
	}
}

func (st *state) unmapped(n *xmltree.Node) {
	if st.stats != nil {
		st.stats.Unmapped++
	}
	if st.logger != nil {
		st.logger.Debug("unmapped node", "path", st.path(n), "kind", n.Kind.String())
	}
}

func (st *state) malformed(c binderrors.Chain, text string) {
	if st.stats != nil {
		st.stats.Failed++
	}
	if st.logger != nil {
		st.logger.Warn("malformed value", "path", c.Path, "text", text, "error", c.Text)
	}
}
