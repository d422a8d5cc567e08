package stroke

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrControlPoints is returned by [NewStroke] when the number of control
	// points cannot describe a chain of quadratic chunks.
	ErrControlPoints = errors.New("stroke: need an odd number of at least 3 control points")
	// ErrNonFinite is returned by [NewStroke] for NaN or infinite control
	// points.
	ErrNonFinite = errors.New("stroke: control point is not finite")
)

// Stroke is an immutable chain of quadratic Béziers.
//
// The parameter range [0, 1] is divided evenly between the chunks: with n
// chunks, chunk i covers [i/n, (i+1)/n]. Chunk lengths are measured once, in
// [NewStroke], so that [Stroke.Length] is free and [Stroke.LengthAt] only
// measures a single partial chunk.
//
// A Stroke is safe for concurrent use.
type Stroke struct {
	chunks []QuadBez
	// cum[i] is the arclength at the start of chunk i; cum[len(chunks)] is
	// the total length.
	cum []float64
}

// NewStroke builds a stroke from its control polygon. Chunk i is the
// quadratic Bézier (pts[2i], pts[2i+1], pts[2i+2]).
func NewStroke(pts ...Point) (*Stroke, error) {
	if len(pts) < 3 || len(pts)%2 == 0 {
		return nil, fmt.Errorf("%w, got %d", ErrControlPoints, len(pts))
	}
	for i, pt := range pts {
		if pt.IsNaN() || pt.IsInf() {
			return nil, fmt.Errorf("%w: point %d is %v", ErrNonFinite, i, pt)
		}
	}
	chunks := make([]QuadBez, 0, len(pts)/2)
	for i := 0; i+2 < len(pts); i += 2 {
		chunks = append(chunks, QuadBez{pts[i], pts[i+1], pts[i+2]})
	}
	return newStroke(chunks), nil
}

// StrokeFromLine returns a single-chunk stroke that traces l.
func StrokeFromLine(l Line) *Stroke {
	return newStroke([]QuadBez{l.Quad()})
}

func newStroke(chunks []QuadBez) *Stroke {
	cum := make([]float64, len(chunks)+1)
	for i, q := range chunks {
		cum[i+1] = cum[i] + q.Length()
	}
	return &Stroke{chunks: chunks, cum: cum}
}

// Chunks returns a copy of the stroke's quadratic chunks.
func (s *Stroke) Chunks() []QuadBez {
	out := make([]QuadBez, len(s.chunks))
	copy(out, s.chunks)
	return out
}

// Length returns the total arclength of the stroke.
func (s *Stroke) Length() float64 {
	return s.cum[len(s.chunks)]
}

// locate maps a global parameter to a chunk index and a local parameter.
func (s *Stroke) locate(t float64) (int, float64) {
	n := len(s.chunks)
	x := t * float64(n)
	i := int(x)
	if i >= n {
		return n - 1, 1
	}
	return i, x - float64(i)
}

// LengthAt returns the arclength from the start of the stroke up to
// parameter t. It panics if t is outside [0, 1].
func (s *Stroke) LengthAt(t float64) float64 {
	checkParam(t)
	i, u := s.locate(t)
	switch u {
	case 0:
		return s.cum[i]
	case 1:
		return s.cum[i+1]
	}
	// Rounding in the partial chunk must not step past the next boundary.
	return min(s.cum[i]+s.chunks[i].LengthAt(u), s.cum[i+1])
}

// Eval returns the point of the stroke at parameter t. It panics if t is
// outside [0, 1].
func (s *Stroke) Eval(t float64) Point {
	checkParam(t)
	i, u := s.locate(t)
	return s.chunks[i].Eval(u)
}

func (s *Stroke) Start() Point { return s.chunks[0].P0 }
func (s *Stroke) End() Point   { return s.chunks[len(s.chunks)-1].P2 }

// ParamAtLength returns the parameter whose arclength from the start of the
// stroke is length. Lengths outside [0, Length()] are clamped.
func (s *Stroke) ParamAtLength(length float64) float64 {
	if length <= 0 {
		return 0
	}
	n := len(s.chunks)
	if length >= s.Length() {
		return 1
	}
	// First chunk whose end lies at or past length.
	i := sort.SearchFloat64s(s.cum[1:], length)
	if i >= n {
		i = n - 1
	}
	u := s.chunks[i].ParamAtLength(length - s.cum[i])
	return (float64(i) + u) / float64(n)
}
