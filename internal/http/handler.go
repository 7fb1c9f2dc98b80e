package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/boxpack-service/internal/domain/dto"
	"github.com/guttosm/boxpack-service/internal/domain/model"
	"github.com/guttosm/boxpack-service/internal/i18n"
	"github.com/guttosm/boxpack-service/internal/metrics"
	"github.com/guttosm/boxpack-service/internal/repository"
	"github.com/guttosm/boxpack-service/internal/service"
)

// boxCatalogCache holds the active box catalog document for a short TTL so
// the hot pack path does not hit Mongo on every request. The stored config
// is immutable; callers materialise fresh Box values per request because
// boxes carry per-run supply counters.
type boxCatalogCache struct {
	mu        sync.Mutex
	config    *repository.BoxSetConfig
	expiresAt time.Time
	ttl       time.Duration
}

func newBoxCatalogCache(ttl time.Duration) *boxCatalogCache {
	return &boxCatalogCache{ttl: ttl}
}

// get returns the cached catalog config, or nil when expired or empty.
func (c *boxCatalogCache) get() *repository.BoxSetConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Now().Before(c.expiresAt) {
		return c.config
	}
	return nil
}

// set stores a catalog config for the cache TTL.
func (c *boxCatalogCache) set(config *repository.BoxSetConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config = config
	c.expiresAt = time.Now().Add(c.ttl)
}

// invalidate clears the cache.
func (c *boxCatalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt = time.Time{}
	c.config = nil
}

// Handler provides HTTP handlers for packing routes.
type Handler struct {
	packing       service.PackingService
	boxSets       service.BoxSetsService
	catalogCache  *boxCatalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets the TTL of the box catalog cache.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newBoxCatalogCache(ttl)
	}
}

// NewHandler creates a new Handler instance. boxSets may be nil when the
// service runs without a database.
func NewHandler(packing service.PackingService, boxSets service.BoxSetsService, opts ...HandlerOption) *Handler {
	h := &Handler{
		packing:      packing,
		boxSets:      boxSets,
		catalogCache: newBoxCatalogCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// activeCatalog fetches the active box catalog from cache or database and
// materialises fresh Box values for this request. A nil return falls back to
// the packing service's built-in defaults.
func (h *Handler) activeCatalog(ctx context.Context) []*model.Box {
	if config := h.catalogCache.get(); config != nil {
		return service.BoxesFromConfig(config)
	}

	if h.boxSets == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	config, err := h.boxSets.GetActive(ctx)
	if err != nil || config == nil || len(config.Boxes) == 0 {
		return nil
	}

	h.catalogCache.set(config)
	return service.BoxesFromConfig(config)
}

// InvalidateCatalogCache drops the cached catalog; called when the box set
// is replaced.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
	h.packing.InvalidateCache()
}

// PackOrder handles POST /api/pack requests.
//
// @Summary      Pack items into boxes
// @Description  Distributes the given items across shipping boxes and returns the explicit 3D position and orientation of every placed item. Boxes may be supplied inline; otherwise the active box catalog (or the built-in defaults) is used. Items no box can take are returned in the unpacked list, never as an error.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        request body dto.PackRequest true "Items and optional boxes"
// @Success      200 {object} dto.SuccessResponse "Packing result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pack [post]
func (h *Handler) PackOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordPacking(0, "validation_error", 0, 0, 0)
		if validationErr, ok := err.(*dto.ValidationError); ok {
			builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	items := req.ToItems()
	boxes := req.ToBoxes()
	if len(boxes) == 0 {
		boxes = h.activeCatalog(c.Request.Context())
	}

	start := time.Now()
	result := h.packing.Pack(items, boxes)
	duration := time.Since(start)

	metrics.RecordPacking(duration, "success", result.PackedItemCount(), len(result.Unpacked), result.BoxCount())
	builder.SuccessOK(dto.NewPackResponse(result))
}
