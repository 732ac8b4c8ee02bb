package joint

import (
	"fmt"
	"math"
)

// Type identifies a joint configuration.
type Type string

const (
	// Lap is a lap joint: two plates overlapping, bolts in single shear.
	Lap Type = "lap"
	// SingleCoverButt is a butt joint spliced by one cover plate.
	SingleCoverButt Type = "single_cover"
	// DoubleCoverButt is a butt joint spliced by two cover plates.
	DoubleCoverButt Type = "double_cover"
)

// Valid reports whether t is a known joint type.
func (t Type) Valid() bool {
	switch t {
	case Lap, SingleCoverButt, DoubleCoverButt:
		return true
	}
	return false
}

// Mode names the failure mode that governs the bolt value.
type Mode string

const (
	ModeShear   Mode = "shear"
	ModeBearing Mode = "bearing"
)

// Parameters is the input of a single joint evaluation.
type Parameters struct {
	Diameter       int
	HoleDiameter   int
	T1             float64
	T2             float64
	FactoredLoad   float64
	BoltUltimate   float64
	PlateUltimate  float64
	EdgeDistance   float64
	Pitch          float64
	ThreadedPlanes int
	ShankPlanes    int
}

// Validate checks the numeric domain of every field except the factored load,
// which the evaluators report separately as ErrInvalidLoad.
func (p Parameters) Validate() error {
	if _, err := HoleDiameter(p.Diameter); err != nil {
		return err
	}
	if p.HoleDiameter <= p.Diameter {
		return fmt.Errorf("%w: hole diameter %d mm must exceed bolt diameter %d mm",
			ErrInvalidGeometry, p.HoleDiameter, p.Diameter)
	}
	checks := []struct {
		name  string
		value float64
	}{
		{"plate thickness t1", p.T1},
		{"plate thickness t2", p.T2},
		{"bolt ultimate strength", p.BoltUltimate},
		{"plate ultimate strength", p.PlateUltimate},
		{"edge distance", p.EdgeDistance},
		{"pitch", p.Pitch},
	}
	for _, c := range checks {
		if !(c.value > 0) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s %v", ErrInvalidParameter, c.name, c.value)
		}
	}
	if p.ThreadedPlanes < 0 || p.ShankPlanes < 0 {
		return fmt.Errorf("%w: shear planes n_n=%d n_s=%d",
			ErrInvalidParameter, p.ThreadedPlanes, p.ShankPlanes)
	}
	return nil
}

// Result is the outcome of a joint evaluation.
type Result struct {
	ShearStrength      float64
	BearingStrength    float64
	BoltValue          float64
	Bolts              int
	Pitch              float64
	EdgeDistance       float64
	Governing          Mode
	BearingCoefficient float64
	EffectiveThickness float64
	Beta               float64
	PackingApplied     bool
}

// Design bundles a joint type with its parameters and type specific extras.
type Design struct {
	Type           Type
	Parameters     Parameters
	CoverThickness float64
	Packing        *PackingPlate
}

// Evaluate dispatches d to the evaluator of its joint type.
func Evaluate(d Design) (Result, error) {
	switch d.Type {
	case Lap:
		return EvaluateLap(d.Parameters)
	case SingleCoverButt:
		return EvaluateSingleCover(d.Parameters, d.CoverThickness)
	case DoubleCoverButt:
		return EvaluateDoubleCover(d.Parameters, DoubleCover{
			CoverThickness: d.CoverThickness,
			Packing:        d.Packing,
		})
	default:
		return Result{}, fmt.Errorf("%w: joint type %q", ErrInvalidParameter, d.Type)
	}
}

// EvaluateLap designs a lap joint. The effective thickness is the thinner plate.
func EvaluateLap(p Parameters) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	return evaluate(p, math.Min(p.T1, p.T2), 1, false)
}

// EvaluateSingleCover designs a single cover butt joint. The cover plate takes
// part in the effective thickness.
func EvaluateSingleCover(p Parameters, coverThickness float64) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if !(coverThickness > 0) {
		return Result{}, fmt.Errorf("%w: cover thickness %v", ErrInvalidParameter, coverThickness)
	}
	return evaluate(p, math.Min(math.Min(p.T1, p.T2), coverThickness), 1, false)
}

// EvaluateDoubleCover designs a double cover butt joint. Both cover plates bear
// together, and a packing plate may reduce the shear capacity.
func EvaluateDoubleCover(p Parameters, cover DoubleCover) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if !(cover.CoverThickness > 0) {
		return Result{}, fmt.Errorf("%w: cover thickness %v", ErrInvalidParameter, cover.CoverThickness)
	}
	beta, applied, err := PackingFactor(p.T1, p.T2, cover.Packing)
	if err != nil {
		return Result{}, err
	}
	return evaluate(p, math.Min(math.Min(p.T1, p.T2), 2*cover.CoverThickness), beta, applied)
}

func evaluate(p Parameters, t, beta float64, packingApplied bool) (Result, error) {
	if !(p.FactoredLoad > 0) || math.IsInf(p.FactoredLoad, 0) {
		return Result{}, fmt.Errorf("%w: %v kN", ErrInvalidLoad, p.FactoredLoad)
	}

	shear := ShearStrength(p, beta)
	bearing, kb, err := BearingStrength(p, t)
	if err != nil {
		return Result{}, err
	}

	boltValue, mode := shear, ModeShear
	if bearing < shear {
		boltValue, mode = bearing, ModeBearing
	}
	if boltValue <= 0 {
		return Result{}, fmt.Errorf("%w: bolt value %.2f kN", ErrDegenerateCapacity, boltValue)
	}

	raw := p.FactoredLoad / boltValue
	if math.IsNaN(raw) || raw > MaxBolts {
		return Result{}, fmt.Errorf("%w: %v kN needs more than %d bolts of %.2f kN", ErrInvalidLoad, p.FactoredLoad, MaxBolts, boltValue)
	}

	return Result{
		ShearStrength:      shear,
		BearingStrength:    bearing,
		BoltValue:          boltValue,
		Bolts:              BoltCount(raw),
		Pitch:              p.Pitch,
		EdgeDistance:       p.EdgeDistance,
		Governing:          mode,
		BearingCoefficient: kb,
		EffectiveThickness: t,
		Beta:               beta,
		PackingApplied:     packingApplied,
	}, nil
}

// MaxBolts bounds the raw bolt quotient so the rounded count always fits in an int.
const MaxBolts = math.MaxInt32 - 2

// BoltCount rounds a raw bolt quotient up to an even number of bolts:
// an odd floor gains one bolt, an even floor gains two.
func BoltCount(raw float64) int {
	n := int(math.Floor(raw))
	if n%2 != 0 {
		return n + 1
	}
	return n + 2
}
