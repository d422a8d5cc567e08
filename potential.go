package falloff

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrClickParam reports a click parameter outside [0, 1].
	ErrClickParam = errors.New("falloff: click parameter outside [0, 1]")
	// ErrActionLength reports a negative, infinite or NaN action length.
	ErrActionLength = errors.New("falloff: action length must be finite and non-negative")
	// ErrParamRange reports an evaluation parameter outside [0, 1].
	ErrParamRange = errors.New("falloff: parameter outside [0, 1]")
	// ErrUnknownKind is returned by [ParseKind].
	ErrUnknownKind = errors.New("falloff: unknown potential kind")
)

// ReferenceCurve is the curve a potential is laid along.
//
// LengthAt must be monotonically non-decreasing in t, with LengthAt(0) = 0
// and LengthAt(1) = Length().
type ReferenceCurve interface {
	// Length returns the total arclength.
	Length() float64
	// LengthAt returns the arclength from t = 0 up to t.
	LengthAt(t float64) float64
}

// Potential is a falloff along a reference curve.
type Potential interface {
	// Configure lays the potential along ref, centered on clickParam with an
	// influence of actionLength. The curve is borrowed, not copied, and must
	// stay unchanged while the potential is in use.
	//
	// Configure panics if ref is nil or the parameters fail
	// [CheckParameters].
	Configure(ref ReferenceCurve, clickParam, actionLength float64)

	// Evaluate returns the weight at parameter t ∈ [0, 1]. The result is in
	// [0, 1] up to floating-point tolerance at region boundaries.
	//
	// Evaluate panics if t is outside [0, 1] or the potential has not been
	// configured.
	Evaluate(t float64) float64

	// Clone returns a new, unconfigured potential of the same kind. The
	// clone does not inherit the receiver's configuration; call Configure
	// on it before use.
	Clone() Potential
}

// Kind identifies a potential variant.
type Kind int

const (
	KindBezier Kind = iota + 1
	KindExp
)

func (k Kind) String() string {
	switch k {
	case KindBezier:
		return "bezier"
	case KindExp:
		return "exp"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses the name of a potential kind. It accepts "bezier",
// "exp" and "exponential", ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bezier":
		return KindBezier, nil
	case "exp", "exponential":
		return KindExp, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
	}
}

// New returns an unconfigured potential of the given kind.
func New(k Kind) Potential {
	switch k {
	case KindBezier:
		return &BezierPotential{}
	case KindExp:
		return &ExpPotential{}
	default:
		panic(fmt.Sprintf("falloff: unhandled kind %v", k))
	}
}

// CheckParameters reports whether clickParam and actionLength are valid
// arguments to [Potential.Configure]. The click parameter must lie in
// [0, 1]; the action length must be finite and non-negative, so NaN and
// +Inf are rejected along with negative values.
func CheckParameters(clickParam, actionLength float64) error {
	if !(clickParam >= 0 && clickParam <= 1) {
		return fmt.Errorf("%w: %v", ErrClickParam, clickParam)
	}
	if !(actionLength >= 0) || math.IsInf(actionLength, 1) {
		return fmt.Errorf("%w: %v", ErrActionLength, actionLength)
	}
	return nil
}

const (
	// Below this level a side's end shape is considered unreachable.
	minLevel = 0.01
	// Distance to the end of the curve under which the click counts as
	// sitting on it.
	endTolerance = 0.001
	epsilon      = 1e-8
)

// shape is what distinguishes the potential variants.
type shape interface {
	// tolerance is the distance from an end of the curve under which the
	// click point counts as being at that end.
	tolerance() float64
	// rangeScale maps the half action length onto the falloff's domain.
	rangeScale() float64
	// falloff is the shape of an unobstructed potential, with x the signed
	// normalized distance from the click point.
	falloff(x float64) float64
	// blend is the shape of a side cut short by the end of the curve. x is
	// in [-1, 1] and weight is the fraction of the half action length that
	// fits on that side.
	blend(x, weight float64) float64
}

// field holds a configured potential's derived lengths. It is shared by the
// variants.
type field struct {
	ref           ReferenceCurve
	clickParam    float64
	actionLength  float64
	strokeLength  float64
	lengthAtClick float64
	// leftReach and rightReach are the arclengths of the action window
	// available before and after the click point.
	leftReach  float64
	rightReach float64
}

func (f *field) configure(k Kind, ref ReferenceCurve, clickParam, actionLength float64) {
	if ref == nil {
		panic("falloff: nil reference curve")
	}
	if err := CheckParameters(clickParam, actionLength); err != nil {
		panic(err)
	}
	half := actionLength * 0.5
	*f = field{
		ref:           ref,
		clickParam:    clickParam,
		actionLength:  actionLength,
		strokeLength:  ref.Length(),
		lengthAtClick: ref.LengthAt(clickParam),
	}
	f.leftReach = min(f.lengthAtClick, half)
	if math.Abs(f.strokeLength-f.lengthAtClick) < endTolerance {
		f.rightReach = 0
	} else {
		f.rightReach = min(f.strokeLength-f.lengthAtClick, half)
	}

	Logger().Debug("configured potential",
		"kind", k,
		"click", clickParam,
		"action_length", actionLength,
		"stroke_length", f.strokeLength,
		"length_at_click", f.lengthAtClick,
		"left_reach", f.leftReach,
		"right_reach", f.rightReach)
}

// span is the half action length, or 1 when that is too small to divide by.
func (f *field) span() float64 {
	half := f.actionLength * 0.5
	if math.Abs(half) < epsilon {
		return 1
	}
	return half
}

// normalized maps an arclength to the signed distance from the click point
// in units of the half action length, scaled by the shape's range.
func (f *field) normalized(s shape, length float64) float64 {
	return (length - f.lengthAtClick) * s.rangeScale() / f.span()
}

func (f *field) evaluate(s shape, t float64) float64 {
	if f.ref == nil {
		panic("falloff: potential is not configured")
	}
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("falloff: parameter %v outside [0, 1]", t))
	}

	length := f.ref.LengthAt(t)
	tol := s.tolerance()
	if max(f.lengthAtClick, 0) < tol || max(f.strokeLength-f.lengthAtClick, 0) < tol {
		return f.atExtreme(length, tol)
	}

	if length >= f.lengthAtClick {
		// Can the far end of the window still be felt?
		if s.falloff(f.normalized(s, f.strokeLength)) > minLevel {
			var x float64
			if f.rightReach != 0 {
				x = (length - f.lengthAtClick) / f.rightReach
			}
			x = snapUnit(x)
			weight := clampUnit((f.strokeLength - f.lengthAtClick) / f.span())
			return s.blend(x, weight)
		}
	} else {
		if s.falloff(f.normalized(s, 0)) > minLevel {
			var x float64
			if f.leftReach != 0 {
				x = length / f.leftReach
			}
			x = snapUnit(x)
			weight := clampUnit(f.lengthAtClick / f.span())
			return s.blend(x-1, weight)
		}
	}

	return s.falloff(f.normalized(s, length))
}

// atExtreme is the potential of a click at either end of the curve: x² of
// the normalized distance into the action window, measured from the far
// edge of the window.
func (f *field) atExtreme(length, tol float64) float64 {
	span := f.span()
	var x float64
	if f.leftReach <= tol {
		x = 1 - length/span
	} else {
		x = (length - (f.strokeLength - span)) / span
	}
	if x < 0 {
		return 0
	}
	x = min(x, 1)
	return x * x
}

// snapUnit clamps x to [0, 1], snapping values within epsilon of either
// bound onto it.
func snapUnit(x float64) float64 {
	if math.Abs(x) < epsilon {
		return 0
	}
	if math.Abs(x-1) < epsilon {
		return 1
	}
	return clampUnit(x)
}

func clampUnit(x float64) float64 {
	return min(max(x, 0), 1)
}
