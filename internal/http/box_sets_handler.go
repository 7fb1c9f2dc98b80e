package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/boxpack-service/internal/domain/dto"
	"github.com/guttosm/boxpack-service/internal/i18n"
	"github.com/guttosm/boxpack-service/internal/repository"
	"github.com/guttosm/boxpack-service/internal/service"
)

// BoxSetsHandler provides HTTP handlers for box catalog management.
type BoxSetsHandler struct {
	boxSets     service.BoxSetsService
	packHandler *Handler
}

// NewBoxSetsHandler creates a new box catalog handler. packHandler's caches
// are invalidated when the catalog changes.
func NewBoxSetsHandler(boxSets service.BoxSetsService, packHandler *Handler) *BoxSetsHandler {
	return &BoxSetsHandler{
		boxSets:     boxSets,
		packHandler: packHandler,
	}
}

// GetActiveBoxSet handles GET /api/boxes requests.
//
// @Summary      Get active box catalog
// @Description  Returns the currently active box catalog used when pack requests carry no boxes.
// @Tags         Boxes
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active catalog"
// @Failure      404 {object} dto.ErrorResponse "No active catalog configured"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [get]
func (h *BoxSetsHandler) GetActiveBoxSet(c *gin.Context) {
	builder := NewResponseBuilder(c)

	config, err := h.boxSets.GetActive(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if config == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(config)
}

// UpdateBoxSet handles PUT /api/boxes requests.
//
// @Summary      Replace the box catalog
// @Description  Stores a new catalog version and makes it active; the previous version is kept for history.
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateBoxSetRequest true "New catalog"
// @Success      201 {object} dto.SuccessResponse "Stored catalog"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [put]
func (h *BoxSetsHandler) UpdateBoxSet(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateBoxSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		if validationErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationBoxes, err)
		}
		return
	}

	entries := make([]repository.BoxEntry, 0, len(req.Boxes))
	for _, spec := range req.Boxes {
		entries = append(entries, repository.BoxEntry{
			Reference:   spec.Reference,
			InnerWidth:  spec.InnerWidth,
			InnerLength: spec.InnerLength,
			InnerDepth:  spec.InnerDepth,
			EmptyWeight: spec.EmptyWeight,
			MaxWeight:   spec.MaxWeight,
			Quantity:    spec.Quantity,
		})
	}

	config, err := h.boxSets.Create(c.Request.Context(), entries, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if h.packHandler != nil {
		h.packHandler.InvalidateCatalogCache()
	}

	builder.SuccessCreated(config)
}

// ListBoxSets handles GET /api/boxes/history requests.
//
// @Summary      List box catalog versions
// @Description  Returns stored catalog versions, newest first.
// @Tags         Boxes
// @Produce      json
// @Param        limit query int false "Maximum versions to return" default(20)
// @Success      200 {object} dto.SuccessResponse "Catalog versions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes/history [get]
func (h *BoxSetsHandler) ListBoxSets(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	configs, err := h.boxSets.List(c.Request.Context(), limit)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
