package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/boxpack-service/internal/service"
)

// PackRoutes handles packing-related route registration.
type PackRoutes struct {
	handler        *Handler
	boxSetsHandler *BoxSetsHandler
}

// NewPackRoutes creates a new PackRoutes instance.
func NewPackRoutes(packing service.PackingService, boxSets service.BoxSetsService) *PackRoutes {
	handler := NewHandler(packing, boxSets)

	var boxSetsHandler *BoxSetsHandler
	if boxSets != nil {
		boxSetsHandler = NewBoxSetsHandler(boxSets, handler)
	}

	return &PackRoutes{
		handler:        handler,
		boxSetsHandler: boxSetsHandler,
	}
}

// RegisterPublicRoutes registers packing routes when auth is disabled.
func (r *PackRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/pack", r.handler.PackOrder)

	if r.boxSetsHandler != nil {
		rg.GET("/boxes", r.boxSetsHandler.GetActiveBoxSet)
		rg.PUT("/boxes", r.boxSetsHandler.UpdateBoxSet)
		rg.GET("/boxes/history", r.boxSetsHandler.ListBoxSets)
	}
}

// RegisterProtectedRoutes registers packing routes behind JWT auth.
func (r *PackRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, _ *RouterConfig) {
	protected.POST("/pack", r.handler.PackOrder)

	if r.boxSetsHandler != nil {
		protected.GET("/boxes", r.boxSetsHandler.GetActiveBoxSet)
		protected.PUT("/boxes", r.boxSetsHandler.UpdateBoxSet)
		protected.GET("/boxes/history", r.boxSetsHandler.ListBoxSets)
	}
}

// Handler returns the underlying pack handler.
func (r *PackRoutes) Handler() *Handler {
	return r.handler
}
