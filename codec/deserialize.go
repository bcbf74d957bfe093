package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/bintree/core"
)

// maxLineSize bounds a single value line.
const maxLineSize = 1 << 20

// Deserialize reads one value per non-empty line from r and places them,
// in order, into a complete binary tree through a core.Populator.
//
// The shape of the tree that was serialized is not recovered: every placed
// node reserves both of its child positions, so a sparse source tree comes
// back with its values shifted into different positions. No error is
// reported for that case.
//
// Empty input returns (nil, nil). A parse failure returns ErrParse with the
// 1-based line number; a read failure returns ErrRead. In both cases the
// partially built tree is discarded.
// Complexity: O(L) for L lines.
func Deserialize[T any](r io.Reader, parse Parser[T]) (*core.Node[T], error) {
	pop := core.NewPopulator[T]()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64), maxLineSize)

	lineNo := 0
	for pop.Pending() > 0 && sc.Scan() {
		lineNo++
		text := sc.Text()
		if len(text) == 0 {
			continue
		}

		value, err := parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %w", ErrParse, lineNo, text, err)
		}
		pop.Place(value)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: after line %d: %v", ErrRead, lineNo, err)
	}

	return pop.Root(), nil
}
