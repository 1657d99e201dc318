package chain

import (
	"errors"
	"math/big"

	"github.com/npillmayer/arcs"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chain'
func tracer() tracing.Trace {
	return tracing.Select("chain")
}

var (
	// ErrNilPath indicates a nil path pointer.
	ErrNilPath = errors.New("path must not be nil")
	// ErrTooFewKnots indicates path knot count is insufficient for building curves.
	ErrTooFewKnots = errors.New("path has too few knots")
	// ErrDegenerateSegment indicates two consecutive knots collapse to one point.
	ErrDegenerateSegment = errors.New("path has degenerate segment")
	// ErrCycleHasDuplicateTerminalKnot indicates cyclic path redundantly repeats first knot as last knot.
	ErrCycleHasDuplicateTerminalKnot = errors.New("cycle path must not repeat first knot as terminal knot")
	// ErrNotSimilarity indicates a transform which would map circular joins onto ellipses.
	ErrNotSimilarity = errors.New("transform is not a similarity")
)

// Path is the concrete type for building chains of straight and circular
// joins. To construct a path, start with Nullpath(), which creates an empty
// path, and then extend it.
type Path struct {
	points []arcs.Pair // knot i
	joins  []Join      // join from knot i to knot i+1
	cycle  bool        // is this path cyclic ?
}

// Join connects two consecutive knots. A nil bulge is a straight line.
type Join struct {
	Bulge *big.Rat
}

// IsLine is true for straight joins.
func (j Join) IsLine() bool {
	return j.Bulge == nil
}

// lineJoin is the default join between knots.
var lineJoin = Join{}
