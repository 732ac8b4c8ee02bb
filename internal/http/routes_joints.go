package http

import (
	"github.com/gin-gonic/gin"
)

// JointRoutes groups the joint design endpoints.
type JointRoutes struct {
	handler *Handler
}

// NewJointRoutes creates joint routes served by handler.
func NewJointRoutes(handler *Handler) *JointRoutes {
	return &JointRoutes{handler: handler}
}

// RegisterRoutes registers the design and geometry endpoints.
func (r *JointRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	joints := rg.Group("/joints")
	joints.POST("/lap", r.handler.DesignLap)
	joints.POST("/single-cover", r.handler.DesignSingleCover)
	joints.POST("/double-cover", r.handler.DesignDoubleCover)
	joints.POST("/batch", r.handler.DesignBatch)

	rg.GET("/geometry", r.handler.ResolveGeometry)
}

var _ RouteGroup = (*JointRoutes)(nil)
