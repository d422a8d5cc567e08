package falloff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/falloff/stroke"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var (
	approx = cmpopts.EquateApprox(0, 1e-9)
	loose  = cmpopts.EquateApprox(0, 1e-3)
)

// straight returns a horizontal line of the given length, so that
// LengthAt(t) = t·length.
func straight(length float64) stroke.Line {
	return stroke.Line{P0: stroke.Pt(0, 0), P1: stroke.Pt(length, 0)}
}

func configured(k Kind, ref ReferenceCurve, click, action float64) Potential {
	p := New(k)
	p.Configure(ref, click, action)
	return p
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

var kinds = []Kind{KindBezier, KindExp}
