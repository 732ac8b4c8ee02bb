package joint

import (
	"fmt"
	"math"
)

// BoltUltimateStrength converts a bolt property class such as 4.6 or 8.8 into
// its ultimate tensile strength fub: 100 times the integer part of the class.
func BoltUltimateStrength(grade float64) (float64, error) {
	if math.IsNaN(grade) || math.IsInf(grade, 0) || grade < 1 {
		return 0, fmt.Errorf("%w: bolt grade %v", ErrInvalidParameter, grade)
	}
	return math.Trunc(grade) * 100, nil
}
