// Package joint implements the bolt shear and bearing design rules of IS 800:2007
// for lap joints and single or double cover butt joints.
//
// All functions are pure. Dimensions are in millimetres, stresses in MPa and
// forces in kN.
package joint

import "fmt"

const (
	// MinBoltDiameter is the smallest bolt diameter covered by the hole table.
	MinBoltDiameter = 12

	edgeDistanceFactor = 1.5
	pitchFactor        = 2.5
)

// Geometry holds the resolved hole diameter, edge distance and pitch for a bolt.
type Geometry struct {
	Diameter     int
	HoleDiameter int
	EdgeDistance float64
	Pitch        float64
}

// HoleDiameter returns the standard clearance hole for a bolt of diameter d
// (IS 800:2007 Table 19). Diameters 15 and 23 have no entry.
func HoleDiameter(d int) (int, error) {
	switch {
	case d >= 12 && d <= 14:
		return d + 1, nil
	case d >= 16 && d <= 22:
		return d + 2, nil
	case d == 24:
		return d + 2, nil
	case d > 24:
		return d + 3, nil
	default:
		return 0, fmt.Errorf("%w: no hole diameter for d=%d mm", ErrInvalidGeometry, d)
	}
}

// DefaultEdgeDistance returns 1.5 d0.
func DefaultEdgeDistance(holeDiameter int) float64 {
	return edgeDistanceFactor * float64(holeDiameter)
}

// DefaultPitch returns 2.5 d.
func DefaultPitch(d int) float64 {
	return pitchFactor * float64(d)
}

// ResolveGeometry derives the hole diameter for d and fills in edge distance and
// pitch. A zero edgeDistance or pitch means the caller did not supply one and the
// default is used.
func ResolveGeometry(d int, edgeDistance, pitch float64) (Geometry, error) {
	d0, err := HoleDiameter(d)
	if err != nil {
		return Geometry{}, err
	}
	if edgeDistance < 0 {
		return Geometry{}, fmt.Errorf("%w: edge distance %.2f mm", ErrInvalidParameter, edgeDistance)
	}
	if pitch < 0 {
		return Geometry{}, fmt.Errorf("%w: pitch %.2f mm", ErrInvalidParameter, pitch)
	}

	g := Geometry{
		Diameter:     d,
		HoleDiameter: d0,
		EdgeDistance: edgeDistance,
		Pitch:        pitch,
	}
	if g.EdgeDistance == 0 {
		g.EdgeDistance = DefaultEdgeDistance(d0)
	}
	if g.Pitch == 0 {
		g.Pitch = DefaultPitch(d)
	}
	return g, nil
}
