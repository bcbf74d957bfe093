package weight

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/bintree/core"
)

// Number is the set of payload types the ratios are defined for.
type Number interface {
	constraints.Integer | constraints.Float
}

// Extremes carries the running minimum and maximum ratio and the nodes
// that produced them.
type Extremes[T Number] struct {
	MinVal  float64
	MinNode *core.Node[T]
	MaxVal  float64
	MaxNode *core.Node[T]
}

// NewExtremes returns bounds primed with +Inf (min) and -Inf (max), so that
// any finite ratio replaces them.
func NewExtremes[T Number]() *Extremes[T] {
	return &Extremes[T]{
		MinVal: math.Inf(1),
		MaxVal: math.Inf(-1),
	}
}

// Found reports whether both a minimum and a maximum node were recorded.
func (e *Extremes[T]) Found() bool {
	return e.MinNode != nil && e.MaxNode != nil
}
