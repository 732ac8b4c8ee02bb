package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/boltjoint-service/internal/domain/dto"
	"github.com/guttosm/boltjoint-service/internal/domain/model"
	"github.com/guttosm/boltjoint-service/internal/i18n"
	"github.com/guttosm/boltjoint-service/internal/joint"
	"github.com/guttosm/boltjoint-service/internal/logger"
	"github.com/guttosm/boltjoint-service/internal/middleware"
	"github.com/guttosm/boltjoint-service/internal/service"
)

// Audit action types.
const (
	ActionDesignLap         = "design_lap"
	ActionDesignSingleCover = "design_single_cover"
	ActionDesignDoubleCover = "design_double_cover"
	ActionDesignBatch       = "design_batch"
)

// designRequest is a bound joint request body.
type designRequest interface {
	Validator
	ToDesign() (joint.Design, error)
}

// Handler serves the joint design endpoints.
type Handler struct {
	calculator service.JointCalculator
	audit      middleware.LogSink
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAuditSink records every design request to sink.
func WithAuditSink(sink middleware.LogSink) HandlerOption {
	return func(h *Handler) {
		h.audit = sink
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.JointCalculator, opts ...HandlerOption) *Handler {
	h := &Handler{calculator: calculator}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// DesignLap handles POST /api/joints/lap.
//
// @Summary      Design a lap joint
// @Description  Computes bolt shear and bearing strength for a lap joint of two plates and the number of bolts needed for the factored load. Edge distance and pitch default to 1.5 d0 and 2.5 d when omitted.
// @Tags         Joints
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.LapJointRequest true "Lap joint inputs"
// @Success      200 {object} dto.SuccessResponse{data=model.DesignResult}
// @Failure      400 {object} dto.ErrorResponse "Malformed or out-of-range input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Inputs cannot produce a design"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/joints/lap [post]
func (h *Handler) DesignLap(c *gin.Context) {
	req, ok := bindDesign[dto.LapJointRequest](c)
	if !ok {
		return
	}
	h.design(c, ActionDesignLap, req, req.PlateWidth)
}

// DesignSingleCover handles POST /api/joints/single-cover.
//
// @Summary      Design a single cover butt joint
// @Description  Bearing uses the thinnest of the two main plates and the cover plate.
// @Tags         Joints
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.SingleCoverJointRequest true "Single cover butt joint inputs"
// @Success      200 {object} dto.SuccessResponse{data=model.DesignResult}
// @Failure      400 {object} dto.ErrorResponse "Malformed or out-of-range input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Inputs cannot produce a design"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/joints/single-cover [post]
func (h *Handler) DesignSingleCover(c *gin.Context) {
	req, ok := bindDesign[dto.SingleCoverJointRequest](c)
	if !ok {
		return
	}
	h.design(c, ActionDesignSingleCover, req, req.PlateWidth)
}

// DesignDoubleCover handles POST /api/joints/double-cover.
//
// @Summary      Design a double cover butt joint
// @Description  Bearing uses the thinner of the main plates and twice the cover thickness. A packing plate reduces shear capacity by β_pk when the main plates differ by more than 6 mm.
// @Tags         Joints
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.DoubleCoverJointRequest true "Double cover butt joint inputs"
// @Success      200 {object} dto.SuccessResponse{data=model.DesignResult}
// @Failure      400 {object} dto.ErrorResponse "Malformed or out-of-range input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Inputs cannot produce a design"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/joints/double-cover [post]
func (h *Handler) DesignDoubleCover(c *gin.Context) {
	req, ok := bindDesign[dto.DoubleCoverJointRequest](c)
	if !ok {
		return
	}
	h.design(c, ActionDesignDoubleCover, req, req.PlateWidth)
}

// DesignBatch handles POST /api/joints/batch.
//
// @Summary      Design several joints
// @Description  Evaluates every design concurrently. Failures are reported per item and do not fail the batch. Items are returned in request order. Item fields are not checked by binding: a missing required field fails that item with kind invalid_parameter instead of a 400.
// @Tags         Joints
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.BatchRequest true "Designs to evaluate"
// @Success      200 {object} dto.SuccessResponse{data=model.BatchResult}
// @Failure      400 {object} dto.ErrorResponse "Malformed body or empty batch"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      413 {object} dto.ErrorResponse "Too many designs"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/joints/batch [post]
func (h *Handler) DesignBatch(c *gin.Context) {
	b := NewResponseBuilder(c)

	req, err := BuildRequest[dto.BatchRequest](c)
	if err != nil {
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	sources := make([]service.DesignSource, len(req.Designs))
	for i := range req.Designs {
		sources[i] = &req.Designs[i]
	}

	result, err := h.calculator.CalculateBatch(c.Request.Context(), sources)
	if err != nil {
		middleware.AuditLogError(h.audit, c, ActionDesignBatch, "joint batch failed", err,
			map[string]interface{}{"designs": len(req.Designs)})
		writeDesignError(b, err)
		return
	}

	for i := range result.Items {
		if r := result.Items[i].Result; r != nil {
			r.PlateWidth = req.Designs[result.Items[i].Index].PlateWidth
		}
	}

	middleware.AuditLog(h.audit, c, ActionDesignBatch, "joint batch designed", map[string]interface{}{
		"total":     result.Total,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	})
	b.SuccessOK(result)
}

// ResolveGeometry handles GET /api/geometry.
//
// @Summary      Resolve bolt geometry
// @Description  Returns the standard hole diameter for a bolt and the edge distance and pitch, defaulted when not supplied.
// @Tags         Joints
// @Produce      json
// @Param        d query int true "Bolt diameter in mm" minimum(12)
// @Param        e query number false "Edge distance in mm"
// @Param        p query number false "Pitch in mm"
// @Success      200 {object} dto.SuccessResponse{data=model.GeometryResult}
// @Failure      400 {object} dto.ErrorResponse "Malformed query"
// @Failure      422 {object} dto.ErrorResponse "No standard hole for this diameter"
// @Security     BearerAuth
// @Security     ApiKeyAuth
// @Router       /api/geometry [get]
func (h *Handler) ResolveGeometry(c *gin.Context) {
	b := NewResponseBuilder(c)

	var q dto.GeometryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidBoltDiameter, err)
		return
	}

	g, err := h.calculator.ResolveGeometry(q.BoltDiameter, q.EdgeDistance, q.Pitch)
	if err != nil {
		writeDesignError(b, err)
		return
	}
	b.SuccessOK(g)
}

// bindDesign binds and validates a joint request, writing a 400 on failure.
func bindDesign[T any, PT interface {
	*T
	designRequest
}](c *gin.Context) (PT, bool) {
	req, err := BuildRequest[T](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}
	p := PT(req)
	if err := p.Validate(); err != nil {
		writeDesignError(NewResponseBuilder(c), err)
		return nil, false
	}
	return p, true
}

func (h *Handler) design(c *gin.Context, action string, req designRequest, plateWidth float64) {
	b := NewResponseBuilder(c)

	d, err := req.ToDesign()
	var result model.DesignResult
	if err == nil {
		result, err = h.calculator.Calculate(d)
	}
	if err != nil {
		middleware.AuditLogError(h.audit, c, action, "joint design failed", err,
			map[string]interface{}{"error_kind": joint.Kind(err)})
		writeDesignError(b, err)
		return
	}

	result.PlateWidth = plateWidth

	log := logger.Logger()
	log.Debug().
		Str("request_id", middleware.GetRequestID(c)).
		Str("joint_type", result.JointType).
		Msg(result.Summary())
	middleware.AuditLog(h.audit, c, action, "joint designed", map[string]interface{}{
		"joint_type":      result.JointType,
		"bolt_diameter":   result.BoltDiameter,
		"number_of_bolts": result.NumberOfBolts,
		"governing_mode":  result.GoverningMode,
		"bolt_value_kn":   result.BoltValue,
	})
	b.SuccessOK(result)
}

// writeDesignError maps request, core and batch errors to HTTP responses.
func writeDesignError(b *ResponseBuilder, err error) {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		b.ErrorWithDetails(http.StatusBadRequest, validationKey(verr), err, map[string]string{"field": verr.Field})
	case errors.Is(err, service.ErrEmptyBatch):
		b.Error(http.StatusBadRequest, i18n.ErrKeyEmptyBatch, err)
	case errors.Is(err, service.ErrBatchTooLarge):
		b.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyBatchTooLarge, err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	case errors.Is(err, joint.ErrInvalidParameter):
		b.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidParameter, err,
			map[string]string{"kind": joint.Kind(err), "reason": err.Error()})
	default:
		kind := joint.Kind(err)
		if kind == "" {
			b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		b.ErrorWithDetails(http.StatusUnprocessableEntity, i18n.KindKey(kind), err,
			map[string]string{"kind": kind, "reason": err.Error()})
	}
}

func validationKey(err *dto.ValidationError) string {
	switch err.Field {
	case dto.ErrNoShearPlanes.Field:
		return i18n.ErrKeyNoShearPlanes
	case dto.ErrInvalidCoverThickness.Field:
		return i18n.ErrKeyInvalidCoverThickness
	case dto.ErrInvalidJointType.Field:
		return i18n.ErrKeyInvalidJointType
	default:
		return i18n.ErrKeyInvalidRequest
	}
}
