package circular

import (
	"errors"
	"math/big"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/arcs"
	"github.com/npillmayer/arcs/algebraic"
)

var (
	// ErrNoIntersection indicates that a delimiting curve does not meet the
	// supporting curve of an arc under construction.
	ErrNoIntersection = errors.New("curves do not intersect")
	// ErrNotOnCurve indicates an endpoint which is not on the supporting curve.
	ErrNotOnCurve = errors.New("point is not on the supporting curve")
	// ErrOutOfRange indicates a cut point outside of the open interior of an arc.
	ErrOutOfRange = errors.New("point is not in the interior of the arc")
)

// Kernel is the curved kernel. It hands out operation objects for
// comparison, containment, construction and decomposition of curves.
// A kernel is stateless after creation and may be shared between goroutines.
type Kernel struct {
	ak        algebraic.Kernel
	boxFilter bool
	cmp       comparison
	cont      containment
	cons      construction
	dec       decomposition
}

// Option configures a kernel.
type Option func(*Kernel)

// WithAlgebraicKernel sets the algebraic kernel used for solving and for
// signs of equations at roots. Default is algebraic.RationalKernel.
func WithAlgebraicKernel(ak algebraic.Kernel) Option {
	return func(k *Kernel) {
		k.ak = ak
	}
}

// WithBoxFilter switches the bounding box prefilter of intersection
// computations on or off. Default is on.
func WithBoxFilter(on bool) Option {
	return func(k *Kernel) {
		k.boxFilter = on
	}
}

// New creates a curved kernel.
func New(opts ...Option) *Kernel {
	k := &Kernel{
		ak:        algebraic.NewRationalKernel(),
		boxFilter: true,
	}
	for _, opt := range opts {
		opt(k)
	}
	k.cmp = comparison{k}
	k.cont = containment{k}
	k.cons = construction{k}
	k.dec = decomposition{k}
	return k
}

// AlgebraicKernel returns the algebraic kernel in use.
func (k *Kernel) AlgebraicKernel() algebraic.Kernel {
	return k.ak
}

// Comparator orders points and curves.
type Comparator interface {
	CompareX(p, q Point) arcs.Comparison
	CompareY(p, q Point) arcs.Comparison
	CompareXY(p, q Point) arcs.Comparison
	// CompareYAtX compares p with the point of x-monotone c vertically
	// above or below p.
	CompareYAtX(p Point, c Curve) arcs.Comparison
	// CompareYToRight compares c1 and c2 immediately to the right of their
	// common point p.
	CompareYToRight(c1, c2 Curve, p Point) arcs.Comparison
	Equal(p, q Point) bool
	EqualCurves(c1, c2 Curve) bool
	IsVertical(c Curve) bool
}

// Container answers containment questions.
type Container interface {
	HasOn(c Curve, p Point) bool
	InRange(c Curve, p Point) bool
	DoOverlap(c1, c2 Curve) bool
}

// Constructor creates curves and points and accesses their parts.
type Constructor interface {
	FullCircle(c arcs.Circle) (CircularArc, error)
	ArcFromLines(support arcs.Circle, l1 arcs.Line, b1 bool, l2 arcs.Line, b2 bool) (CircularArc, error)
	ArcFromCircles(support, c1 arcs.Circle, b1 bool, c2 arcs.Circle, b2 bool) (CircularArc, error)
	CutArc(a CircularArc, keepSource bool, ccut arcs.Circle, bcut bool) (CircularArc, error)
	ArcThroughPoints(begin, middle, end arcs.Pair) (CircularArc, error)
	ArcFromBulge(begin, end arcs.Pair, bulge *big.Rat) (CircularArc, error)
	ArcFromPoints(support arcs.Circle, source, target Point, o arcs.Orientation) (CircularArc, error)
	LineArcFromPoints(p, q arcs.Pair) (LineArc, error)
	LineArcFromSegment(s arcs.Segment) (LineArc, error)
	LineArcOnLine(support arcs.Line, p, q Point) (LineArc, error)
	LineArcFromLines(support, l1, l2 arcs.Line) (LineArc, error)
	LineArcFromCircles(support arcs.Line, c1 arcs.Circle, b1 bool, c2 arcs.Circle, b2 bool) (LineArc, error)
	Ray(support arcs.Line, source Point) (LineArc, error)
	FullLine(l arcs.Line) (LineArc, error)
	Point(r algebraic.Root) Point
	PointFromPair(p arcs.Pair) Point
	MinVertex(c Curve) Point
	MaxVertex(c Curve) Point
	SourceVertex(c Curve) Point
	TargetVertex(c Curve) Point
	SupportingCircle(c Curve) (arcs.Circle, bool)
	SupportingLine(c Curve) (arcs.Line, bool)
	BoundingBox(c Curve) polyclip.Rectangle
}

// Decomposer splits curves into monotone pieces and intersects them.
type Decomposer interface {
	MakeXMonotone(c Curve) []Curve
	MakeXYMonotone(c Curve) []XYMonotonePiece
	AdvancedMakeXMonotone(c Curve) []XMonotonePiece
	Split(c Curve, p Point) (Curve, Curve)
	Intersect(c1, c2 Curve) ([]Intersection, error)
}

// Comparison returns the comparison operations of the kernel.
func (k *Kernel) Comparison() Comparator {
	return k.cmp
}

// Containment returns the containment operations of the kernel.
func (k *Kernel) Containment() Container {
	return k.cont
}

// Construction returns the construction operations of the kernel.
func (k *Kernel) Construction() Constructor {
	return k.cons
}

// Decomposition returns the decomposition and intersection operations of the
// kernel.
func (k *Kernel) Decomposition() Decomposer {
	return k.dec
}

type comparison struct{ k *Kernel }
type containment struct{ k *Kernel }
type construction struct{ k *Kernel }
type decomposition struct{ k *Kernel }
