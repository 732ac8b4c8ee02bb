// Package model defines the core domain entities for the joint design service.
package model

import (
	"fmt"
	"strings"

	"github.com/guttosm/boltjoint-service/internal/joint"
)

// DesignResult is the outcome of designing one bolted joint.
// It implements JSON serialization for direct use in HTTP responses.
//
// @Description Bolt design values for a lap, single cover or double cover butt joint
// @Example {"joint_type": "lap", "bolt_diameter": 16, "hole_diameter": 18, "shear_strength_kn": 28.97, "bearing_strength_kn": 64.39, "bolt_value_kn": 28.97, "governing_mode": "shear", "number_of_bolts": 6, "pitch_mm": 40, "edge_distance_mm": 30}
type DesignResult struct {
	// JointType is lap, single_cover or double_cover
	JointType string `json:"joint_type" example:"lap"`
	// BoltDiameter is the nominal bolt diameter d in mm
	BoltDiameter int `json:"bolt_diameter" example:"16"`
	// HoleDiameter is the bolt hole diameter d0 in mm
	HoleDiameter int `json:"hole_diameter" example:"18"`
	// ShearStrength is V_dsb, the design shear strength of one bolt in kN
	ShearStrength float64 `json:"shear_strength_kn" example:"28.97"`
	// BearingStrength is V_dpb, the design bearing strength of one bolt in kN
	BearingStrength float64 `json:"bearing_strength_kn" example:"64.39"`
	// BoltValue is the governing capacity of one bolt in kN
	BoltValue float64 `json:"bolt_value_kn" example:"28.97"`
	// GoverningMode is shear or bearing
	GoverningMode string `json:"governing_mode" example:"shear"`
	// NumberOfBolts is the number of bolts required
	NumberOfBolts int `json:"number_of_bolts" example:"6"`
	// Pitch is the pitch used in mm
	Pitch float64 `json:"pitch_mm" example:"40"`
	// EdgeDistance is the edge distance used in mm
	EdgeDistance float64 `json:"edge_distance_mm" example:"30"`
	// EffectiveThickness is the plate thickness t used for bearing in mm
	EffectiveThickness float64 `json:"effective_thickness_mm" example:"10"`
	// BearingCoefficient is kb
	BearingCoefficient float64 `json:"kb" example:"0.4907"`
	// PackingFactor is β_pk, present only when a packing plate reduces shear capacity
	PackingFactor *float64 `json:"packing_factor,omitempty" example:"0.875"`
	// PlateWidth echoes the plate width supplied by the client in mm
	PlateWidth float64 `json:"plate_width_mm,omitempty" example:"200"`
}

// NewDesignResult builds a DesignResult from an evaluated design.
func NewDesignResult(d joint.Design, r joint.Result) DesignResult {
	res := DesignResult{
		JointType:          string(d.Type),
		BoltDiameter:       d.Parameters.Diameter,
		HoleDiameter:       d.Parameters.HoleDiameter,
		ShearStrength:      r.ShearStrength,
		BearingStrength:    r.BearingStrength,
		BoltValue:          r.BoltValue,
		GoverningMode:      string(r.Governing),
		NumberOfBolts:      r.Bolts,
		Pitch:              r.Pitch,
		EdgeDistance:       r.EdgeDistance,
		EffectiveThickness: r.EffectiveThickness,
		BearingCoefficient: r.BearingCoefficient,
	}
	if r.PackingApplied {
		beta := r.Beta
		res.PackingFactor = &beta
	}
	return res
}

// Summary renders the design values the way a design sheet lists them.
func (r DesignResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "V_dsb        = %.2f kN\n", r.ShearStrength)
	fmt.Fprintf(&b, "V_dpb        = %.2f kN\n", r.BearingStrength)
	fmt.Fprintf(&b, "No. of bolts = %d no's\n", r.NumberOfBolts)
	fmt.Fprintf(&b, "pitch, p     = %g mm\n", r.Pitch)
	fmt.Fprintf(&b, "edge, e      = %g mm", r.EdgeDistance)
	return b.String()
}

// GeometryResult is the resolved bolt hole and spacing for a bolt diameter.
//
// @Description Hole diameter with edge distance and pitch, defaulted when not supplied
type GeometryResult struct {
	BoltDiameter int     `json:"bolt_diameter" example:"16"`
	HoleDiameter int     `json:"hole_diameter" example:"18"`
	EdgeDistance float64 `json:"edge_distance_mm" example:"27"`
	Pitch        float64 `json:"pitch_mm" example:"40"`
}

// NewGeometryResult converts a resolved joint.Geometry.
func NewGeometryResult(g joint.Geometry) GeometryResult {
	return GeometryResult{
		BoltDiameter: g.Diameter,
		HoleDiameter: g.HoleDiameter,
		EdgeDistance: g.EdgeDistance,
		Pitch:        g.Pitch,
	}
}

// BatchItem is the outcome of one design in a batch.
type BatchItem struct {
	Index     int           `json:"index"`
	Result    *DesignResult `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`
	ErrorKind string        `json:"error_kind,omitempty"`
}

// BatchResult aggregates the outcome of a batch evaluation.
//
// @Description Results of a batch of joint designs, one item per submitted design in order
type BatchResult struct {
	Total     int         `json:"total"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Items     []BatchItem `json:"items"`
}
