package joint

import (
	"fmt"
	"math"
)

const (
	// PackingThreshold is the plate thickness mismatch in mm above which a packing
	// plate reduces the bolt shear capacity.
	PackingThreshold = 6.0

	packingCoefficient = 0.0125
)

// PackingPlate is a filler plate used in a double cover butt joint.
type PackingPlate struct {
	Thickness float64
}

// DoubleCover holds the extra inputs of a double cover butt joint.
// Packing is nil when no packing plate is used.
type DoubleCover struct {
	CoverThickness float64
	Packing        *PackingPlate
}

// PackingFactor returns β_pk for plates of thickness t1 and t2 joined with the
// given packing plate. The factor only applies when |t1 - t2| exceeds
// PackingThreshold; otherwise beta is 1 and applied is false even when a packing
// plate is present.
func PackingFactor(t1, t2 float64, plate *PackingPlate) (beta float64, applied bool, err error) {
	if plate == nil {
		return 1, false, nil
	}
	if plate.Thickness <= 0 {
		return 0, false, fmt.Errorf("%w: packing thickness %.2f mm", ErrInvalidParameter, plate.Thickness)
	}
	if math.Abs(t1-t2) <= PackingThreshold {
		return 1, false, nil
	}

	beta = 1 - packingCoefficient*plate.Thickness
	if beta <= 0 || beta > 1 {
		return 0, false, fmt.Errorf("%w: packing factor %.4f for t_pk=%.2f mm",
			ErrInvalidParameter, beta, plate.Thickness)
	}
	return beta, true, nil
}
