package joint

import "errors"

var (
	// ErrInvalidGeometry is returned when the bolt diameter has no entry in the hole table.
	ErrInvalidGeometry = errors.New("invalid bolt geometry")
	// ErrInvalidBearingGeometry is returned when pitch or edge distance leave no positive kb.
	ErrInvalidBearingGeometry = errors.New("invalid bearing geometry")
	// ErrInvalidLoad is returned when the factored load is zero or negative.
	ErrInvalidLoad = errors.New("invalid factored load")
	// ErrDegenerateCapacity is returned when the governing bolt value is zero or negative.
	ErrDegenerateCapacity = errors.New("degenerate bolt capacity")
	// ErrInvalidParameter is returned when a numeric input is outside its domain.
	ErrInvalidParameter = errors.New("invalid joint parameter")
)

// Kind returns a stable identifier for the error kind wrapped by err,
// or an empty string when err is not a joint error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidGeometry):
		return "invalid_geometry"
	case errors.Is(err, ErrInvalidBearingGeometry):
		return "invalid_bearing_geometry"
	case errors.Is(err, ErrInvalidLoad):
		return "invalid_load"
	case errors.Is(err, ErrDegenerateCapacity):
		return "degenerate_capacity"
	case errors.Is(err, ErrInvalidParameter):
		return "invalid_parameter"
	default:
		return ""
	}
}
