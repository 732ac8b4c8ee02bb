package joint

import (
	"fmt"
	"math"
)

const (
	// gammaMb is the partial safety factor for bolts.
	gammaMb = 1.25
	// threadAreaRatio is the net tensile area at threads relative to the shank area.
	threadAreaRatio = 0.78
	// pitchOffset is subtracted from p/(3 d0) in the bearing coefficient.
	pitchOffset = 0.25
)

// ShankArea returns the nominal plain shank area of a bolt, rounded to whole mm².
func ShankArea(d int) float64 {
	fd := float64(d)
	return math.Round(math.Pi * fd * fd / 4)
}

// ShearStrength returns V_dsb, the design shear strength of one bolt in kN,
// rounded to two decimals. beta scales the result and is 1 unless a packing
// factor applies.
func ShearStrength(p Parameters, beta float64) float64 {
	asb := ShankArea(p.Diameter)
	anb := threadAreaRatio * asb
	planes := float64(p.ThreadedPlanes)*anb + float64(p.ShankPlanes)*asb
	v := p.BoltUltimate / (math.Sqrt(3) * gammaMb) * planes * beta / 1000
	return round2(v)
}

// BearingCoefficient returns kb = min(e/3d0, p/3d0 - 0.25, fub/fu, 1).
// It fails when the governing term is not positive.
func BearingCoefficient(p Parameters) (float64, error) {
	d0 := float64(p.HoleDiameter)
	kb := math.Min(
		math.Min(p.EdgeDistance/(3*d0), p.Pitch/(3*d0)-pitchOffset),
		math.Min(p.BoltUltimate/p.PlateUltimate, 1),
	)
	if kb <= 0 {
		return 0, fmt.Errorf("%w: kb=%.4f for e=%.2f p=%.2f d0=%d",
			ErrInvalidBearingGeometry, kb, p.EdgeDistance, p.Pitch, p.HoleDiameter)
	}
	return kb, nil
}

// BearingStrength returns V_dpb, the design bearing strength of one bolt in kN
// for an effective plate thickness t, rounded to two decimals, together with kb.
func BearingStrength(p Parameters, t float64) (float64, float64, error) {
	kb, err := BearingCoefficient(p)
	if err != nil {
		return 0, 0, err
	}
	v := 2.5 * kb * float64(p.Diameter) * t * p.PlateUltimate / (gammaMb * 1000)
	return round2(v), kb, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
