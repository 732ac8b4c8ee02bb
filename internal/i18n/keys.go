package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
)

// Joint design failure keys, one per error kind.
const (
	ErrKeyInvalidGeometry        = "error.design.invalid_geometry"
	ErrKeyInvalidBearingGeometry = "error.design.invalid_bearing_geometry"
	ErrKeyInvalidLoad            = "error.design.invalid_load"
	ErrKeyDegenerateCapacity     = "error.design.degenerate_capacity"
	ErrKeyInvalidParameter       = "error.design.invalid_parameter"
)

// Request validation and batch keys.
const (
	ErrKeyNoShearPlanes         = "error.validation.shear_planes"
	ErrKeyInvalidCoverThickness = "error.validation.cover_thickness"
	ErrKeyInvalidJointType      = "error.validation.joint_type"
	ErrKeyInvalidBoltDiameter   = "error.validation.bolt_diameter"
	ErrKeyEmptyBatch            = "error.batch.empty"
	ErrKeyBatchTooLarge         = "error.batch.too_large"
)

// KindKey returns the message key for a joint error kind, or ErrKeyInternalError
// for an unknown kind.
func KindKey(kind string) string {
	switch kind {
	case "invalid_geometry":
		return ErrKeyInvalidGeometry
	case "invalid_bearing_geometry":
		return ErrKeyInvalidBearingGeometry
	case "invalid_load":
		return ErrKeyInvalidLoad
	case "degenerate_capacity":
		return ErrKeyDegenerateCapacity
	case "invalid_parameter":
		return ErrKeyInvalidParameter
	default:
		return ErrKeyInternalError
	}
}
