package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bintree/core"
)

// Serialize writes tree to w, one line per node in walk order, root
// included. A nil tree writes nothing.
// Returns ErrOptionViolation for bad options or ErrWrite if w fails.
// Complexity: O(N) time, O(N) queue memory.
func Serialize[T any](w io.Writer, tree *core.Node[T], opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if tree == nil {
		return nil
	}

	var (
		line strings.Builder
		werr error
	)
	tree.WalkAll(func(n *core.Node[T]) bool {
		line.Reset()

		if o.SkipDeep != NoDepthLimit && int(n.Depth()) > o.SkipDeep {
			line.WriteString(Ellipsis)
			line.WriteByte('\n')
			werr = writeLine(w, line.String())
			return true
		}

		if o.Pretty {
			writePrefix(&line, n.Depth(), n.Direction())
		}
		line.WriteString(o.Format(n.Value()))
		line.WriteByte('\n')

		werr = writeLine(w, line.String())
		return werr != nil
	})

	return werr
}

// writePrefix renders the pretty indentation and depth label.
func writePrefix(b *strings.Builder, depth uint16, dir core.Direction) {
	tabs := int(depth)
	if tabs > MaxIndent {
		tabs = MaxIndent
	}
	// left children sit one tab closer to the margin
	if dir == core.Left && tabs > 0 {
		tabs--
	}
	b.WriteString(strings.Repeat("\t", tabs))
	b.WriteString(strconv.FormatUint(uint64(depth), 10))
	b.WriteString(": ")
}

func writeLine(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
