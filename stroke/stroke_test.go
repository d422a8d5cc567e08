package stroke

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func straightStroke(t *testing.T) *Stroke {
	t.Helper()
	s, err := NewStroke(
		Pt(0, 0), Pt(5, 0), Pt(10, 0),
		Pt(15, 0), Pt(20, 0),
		Pt(25, 0), Pt(30, 0),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func curvedStroke(t *testing.T) *Stroke {
	t.Helper()
	s, err := NewStroke(
		Pt(0, 0), Pt(20, 40), Pt(40, 0),
		Pt(60, -40), Pt(80, 0),
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewStrokeErrors(t *testing.T) {
	for _, pts := range [][]Point{
		nil,
		{Pt(0, 0)},
		{Pt(0, 0), Pt(1, 1)},
		{Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3)},
	} {
		if _, err := NewStroke(pts...); !errors.Is(err, ErrControlPoints) {
			t.Errorf("%d points: got %v, want ErrControlPoints", len(pts), err)
		}
	}
	if _, err := NewStroke(Pt(0, 0), Pt(math.NaN(), 1), Pt(2, 2)); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v, want ErrNonFinite", err)
	}
}

func TestStrokeChunks(t *testing.T) {
	s := straightStroke(t)
	want := []QuadBez{
		{Pt(0, 0), Pt(5, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(15, 0), Pt(20, 0)},
		{Pt(20, 0), Pt(25, 0), Pt(30, 0)},
	}
	diff(t, want, s.Chunks())
	diff(t, Pt(0, 0), s.Start())
	diff(t, Pt(30, 0), s.End())
}

func TestStrokeLengthStraight(t *testing.T) {
	s := straightStroke(t)
	opt := cmpopts.EquateApprox(0, 1e-9)
	diff(t, 30.0, s.Length(), opt)
	diff(t, 0.0, s.LengthAt(0), opt)
	diff(t, 15.0, s.LengthAt(0.5), opt)
	diff(t, 30.0, s.LengthAt(1), opt)
	diff(t, 0.5, s.ParamAtLength(15), cmpopts.EquateApprox(0, 1e-7))
	assertNear(t, s.Eval(0.5), Pt(15, 0), 1e-9)
}

func TestStrokeLengthAtMonotonic(t *testing.T) {
	s := curvedStroke(t)
	if got := s.LengthAt(1); got != s.Length() {
		t.Errorf("LengthAt(1) = %v, want %v", got, s.Length())
	}
	last := 0.0
	const n = 300
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		l := s.LengthAt(ts)
		if l < last {
			t.Fatalf("LengthAt(%v) = %v decreased from %v", ts, l, last)
		}
		last = l
	}
}

func TestStrokeParamAtLength(t *testing.T) {
	s := curvedStroke(t)
	const n = 20
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		got := s.ParamAtLength(s.LengthAt(ts))
		if d := math.Abs(got - ts); d > 1e-6 {
			t.Errorf("ParamAtLength(LengthAt(%v)) = %v", ts, got)
		}
	}
	if got := s.ParamAtLength(-5); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := s.ParamAtLength(s.Length() + 1); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestStrokeFromLine(t *testing.T) {
	s := StrokeFromLine(Line{Pt(0, 0), Pt(0, 100)})
	diff(t, 100.0, s.Length(), cmpopts.EquateApprox(0, 1e-9))
	diff(t, 55.0, s.LengthAt(0.55), cmpopts.EquateApprox(0, 1e-9))
}

func TestStrokeOutOfRange(t *testing.T) {
	s := straightStroke(t)
	for _, tt := range []float64{-0.1, 1.1, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Eval(%v): expected panic", tt)
				}
			}()
			s.Eval(tt)
		}()
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("LengthAt(%v): expected panic", tt)
				}
			}()
			s.LengthAt(tt)
		}()
	}
}
