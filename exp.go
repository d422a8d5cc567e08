package falloff

var _ Potential = (*ExpPotential)(nil)

// ExpRange is the Gaussian argument that the edge of an [ExpPotential]'s
// action window maps to.
const ExpRange = 2.8

// ExpPotential is a potential with a Gaussian falloff. Where the action
// window is cut short by the end of the curve, it blends from 1 - x² at the
// cut towards the Gaussian as more of the window fits.
//
// The zero value is an unconfigured potential.
type ExpPotential struct {
	f field
}

func (p *ExpPotential) Configure(ref ReferenceCurve, clickParam, actionLength float64) {
	p.f.configure(KindExp, ref, clickParam, actionLength)
}

func (p *ExpPotential) Evaluate(t float64) float64 {
	return p.f.evaluate(expShape{}, t)
}

// Clone returns a new, unconfigured ExpPotential.
func (p *ExpPotential) Clone() Potential {
	return &ExpPotential{}
}

type expShape struct{}

// Clicks within 2 units of either end use the extreme region.
func (expShape) tolerance() float64  { return 2 }
func (expShape) rangeScale() float64 { return ExpRange }

func (expShape) falloff(x float64) float64 {
	return GaussianFalloff(x)
}

func (expShape) blend(x, weight float64) float64 {
	return LinearBlend(QuadraticFalloff(x), GaussianFalloff(x*ExpRange), weight)
}
