// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the joint design core,
// providing validation and conversion for API communication.
package dto

import (
	"fmt"

	"github.com/guttosm/boltjoint-service/internal/joint"
)

// JointFields holds the inputs shared by every joint type.
//
// Edge distance and pitch are optional. When omitted they default to 1.5 d0 and
// 2.5 d respectively. PlateWidth is echoed back and not used by any formula.
type JointFields struct {
	// BoltDiameter is the nominal bolt diameter d in mm. 15 and 23 have no standard hole.
	BoltDiameter int `json:"bolt_diameter" binding:"required,gte=12" example:"16" minimum:"12"`
	// PlateThickness1 is the thickness of the first main plate in mm.
	PlateThickness1 float64 `json:"plate_thickness_1" binding:"required,gt=0" example:"10"`
	// PlateThickness2 is the thickness of the second main plate in mm.
	PlateThickness2 float64 `json:"plate_thickness_2" binding:"required,gt=0" example:"18"`
	// FactoredLoad is the design load FL in kN.
	FactoredLoad float64 `json:"factored_load" binding:"required" example:"150"`
	// BoltGrade is the bolt property class, e.g. 4.6 or 8.8.
	BoltGrade float64 `json:"bolt_grade" binding:"required" example:"4.6"`
	// PlateGrade is the ultimate tensile strength fu of the plate in MPa.
	PlateGrade float64 `json:"plate_grade" binding:"required,gt=0" example:"410"`
	// EdgeDistance is e in mm.
	EdgeDistance float64 `json:"edge_distance,omitempty" binding:"gte=0" example:"30"`
	// Pitch is p in mm.
	Pitch float64 `json:"pitch,omitempty" binding:"gte=0" example:"40"`
	// ThreadedPlanes is nn, the shear planes through the threads.
	ThreadedPlanes int `json:"threaded_planes" binding:"gte=0" example:"1"`
	// ShankPlanes is ns, the shear planes through the shank.
	ShankPlanes int `json:"shank_planes" binding:"gte=0" example:"0"`
	// PlateWidth is b in mm.
	PlateWidth float64 `json:"plate_width,omitempty" binding:"gte=0" example:"200"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoShearPlanes is returned when neither threaded nor shank planes are given.
	ErrNoShearPlanes = &ValidationError{
		Field:   "threaded_planes",
		Message: "at least one shear plane is required",
	}
	// ErrInvalidCoverThickness is returned when a butt joint has no cover plate thickness.
	ErrInvalidCoverThickness = &ValidationError{
		Field:   "cover_thickness",
		Message: "must be greater than 0",
	}
	// ErrInvalidJointType is returned for batch items with an unknown type.
	ErrInvalidJointType = &ValidationError{
		Field:   "type",
		Message: "must be one of lap, single_cover, double_cover",
	}
)

// Validate performs checks binding tags cannot express.
func (f *JointFields) Validate() error {
	if f.ThreadedPlanes+f.ShankPlanes == 0 {
		return ErrNoShearPlanes
	}
	return nil
}

// checkRequired repeats the required binding tags for batch items, whose
// elements gin does not validate.
func (f *JointFields) checkRequired() error {
	required := []struct {
		field string
		zero  bool
	}{
		{"bolt_diameter", f.BoltDiameter == 0},
		{"plate_thickness_1", f.PlateThickness1 == 0},
		{"plate_thickness_2", f.PlateThickness2 == 0},
		{"factored_load", f.FactoredLoad == 0},
		{"bolt_grade", f.BoltGrade == 0},
		{"plate_grade", f.PlateGrade == 0},
	}
	for _, r := range required {
		if r.zero {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}
	return nil
}

func (f *JointFields) parameters() (joint.Parameters, error) {
	fub, err := joint.BoltUltimateStrength(f.BoltGrade)
	if err != nil {
		return joint.Parameters{}, err
	}
	g, err := joint.ResolveGeometry(f.BoltDiameter, f.EdgeDistance, f.Pitch)
	if err != nil {
		return joint.Parameters{}, err
	}
	return joint.Parameters{
		Diameter:       g.Diameter,
		HoleDiameter:   g.HoleDiameter,
		T1:             f.PlateThickness1,
		T2:             f.PlateThickness2,
		FactoredLoad:   f.FactoredLoad,
		BoltUltimate:   fub,
		PlateUltimate:  f.PlateGrade,
		EdgeDistance:   g.EdgeDistance,
		Pitch:          g.Pitch,
		ThreadedPlanes: f.ThreadedPlanes,
		ShankPlanes:    f.ShankPlanes,
	}, nil
}

// LapJointRequest is the body of POST /api/joints/lap.
//
// @Description Lap joint of two plates
// @Example {"bolt_diameter": 16, "plate_thickness_1": 10, "plate_thickness_2": 18, "factored_load": 150, "bolt_grade": 4.6, "plate_grade": 410, "edge_distance": 30, "pitch": 40, "threaded_planes": 1, "shank_planes": 0}
type LapJointRequest struct {
	JointFields
} // @name LapJointRequest

// ToDesign converts the request into a joint design.
func (r *LapJointRequest) ToDesign() (joint.Design, error) {
	p, err := r.parameters()
	if err != nil {
		return joint.Design{}, err
	}
	return joint.Design{Type: joint.Lap, Parameters: p}, nil
}

// SingleCoverJointRequest is the body of POST /api/joints/single-cover.
//
// @Description Butt joint with one cover plate
type SingleCoverJointRequest struct {
	JointFields
	// CoverThickness is tc in mm.
	CoverThickness float64 `json:"cover_thickness" binding:"required,gt=0" example:"8"`
} // @name SingleCoverJointRequest

// Validate checks the shared fields and the cover plate.
func (r *SingleCoverJointRequest) Validate() error {
	if r.CoverThickness <= 0 {
		return ErrInvalidCoverThickness
	}
	return r.JointFields.Validate()
}

// ToDesign converts the request into a joint design.
func (r *SingleCoverJointRequest) ToDesign() (joint.Design, error) {
	p, err := r.parameters()
	if err != nil {
		return joint.Design{}, err
	}
	return joint.Design{Type: joint.SingleCoverButt, Parameters: p, CoverThickness: r.CoverThickness}, nil
}

// DoubleCoverJointRequest is the body of POST /api/joints/double-cover.
//
// A packing plate only reduces shear capacity when the main plates differ in
// thickness by more than 6 mm.
//
// @Description Butt joint with two cover plates and an optional packing plate
type DoubleCoverJointRequest struct {
	JointFields
	// CoverThickness is the thickness of each cover plate in mm.
	CoverThickness float64 `json:"cover_thickness" binding:"required,gt=0" example:"8"`
	// PackingThickness is t_pk in mm. Omit when there is no packing plate.
	PackingThickness *float64 `json:"packing_thickness,omitempty" example:"10"`
} // @name DoubleCoverJointRequest

// Validate checks the shared fields and the cover plate.
func (r *DoubleCoverJointRequest) Validate() error {
	if r.CoverThickness <= 0 {
		return ErrInvalidCoverThickness
	}
	return r.JointFields.Validate()
}

// ToDesign converts the request into a joint design.
func (r *DoubleCoverJointRequest) ToDesign() (joint.Design, error) {
	p, err := r.parameters()
	if err != nil {
		return joint.Design{}, err
	}
	d := joint.Design{Type: joint.DoubleCoverButt, Parameters: p, CoverThickness: r.CoverThickness}
	if r.PackingThickness != nil {
		d.Packing = &joint.PackingPlate{Thickness: *r.PackingThickness}
	}
	return d, nil
}

// BatchDesignRequest is one design in a batch. Type selects which of the
// cover fields apply.
type BatchDesignRequest struct {
	Type string `json:"type" binding:"required" example:"lap" enums:"lap,single_cover,double_cover"`
	JointFields
	CoverThickness   float64  `json:"cover_thickness,omitempty" example:"8"`
	PackingThickness *float64 `json:"packing_thickness,omitempty"`
} // @name BatchDesignRequest

// Validate checks a single batch item. Missing required fields fail the item
// with invalid_parameter, where the single-design endpoints answer 400.
// Range checks are left to the core, so a negative load reports invalid_load.
func (r *BatchDesignRequest) Validate() error {
	if err := r.checkRequired(); err != nil {
		return err
	}
	t := joint.Type(r.Type)
	if !t.Valid() {
		return ErrInvalidJointType
	}
	if t != joint.Lap && r.CoverThickness <= 0 {
		return ErrInvalidCoverThickness
	}
	return r.JointFields.Validate()
}

// ToDesign validates the item and converts it into a joint design.
func (r *BatchDesignRequest) ToDesign() (joint.Design, error) {
	if err := r.Validate(); err != nil {
		return joint.Design{}, fmt.Errorf("%w: %s", joint.ErrInvalidParameter, err.Error())
	}
	switch joint.Type(r.Type) {
	case joint.SingleCoverButt:
		req := SingleCoverJointRequest{JointFields: r.JointFields, CoverThickness: r.CoverThickness}
		return req.ToDesign()
	case joint.DoubleCoverButt:
		req := DoubleCoverJointRequest{JointFields: r.JointFields, CoverThickness: r.CoverThickness, PackingThickness: r.PackingThickness}
		return req.ToDesign()
	default:
		req := LapJointRequest{JointFields: r.JointFields}
		return req.ToDesign()
	}
}

// BatchRequest is the body of POST /api/joints/batch.
//
// @Description Several joint designs evaluated in one call
type BatchRequest struct {
	Designs []BatchDesignRequest `json:"designs" binding:"required,min=1"`
} // @name BatchRequest

// GeometryQuery is the query of GET /api/geometry. Zero e or p selects the default.
type GeometryQuery struct {
	BoltDiameter int     `form:"d" binding:"required,gte=12" example:"16"`
	EdgeDistance float64 `form:"e" binding:"gte=0" example:"30"`
	Pitch        float64 `form:"p" binding:"gte=0" example:"40"`
}
