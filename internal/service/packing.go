// Package service contains the packing engine and the business services
// built on top of it.
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/boxpack-service/internal/domain/model"
	"github.com/guttosm/boxpack-service/internal/service/cache"
)

// DefaultBoxes is the built-in box catalog used when neither the request nor
// the database provides one. Dimensions in millimetres, weights in grams.
var DefaultBoxes = []*model.Box{
	model.NewBox("small-parcel", 229, 162, 64, 110, 2000),
	model.NewBox("medium-parcel", 350, 250, 160, 340, 10000),
	model.NewBox("large-parcel", 460, 360, 250, 640, 20000),
	model.NewBox("xl-parcel", 610, 460, 460, 980, 30000),
}

// PackingService defines the packing operations exposed to the HTTP layer.
type PackingService interface {
	// Pack distributes items across the given boxes; when boxes is empty the
	// service's default catalog is used. Box supply counters are consumed on
	// the passed boxes.
	Pack(items []*model.Item, boxes []*model.Box) *model.PackingResult
	// InvalidateCache clears the result cache (useful when the active box
	// catalog changes).
	InvalidateCache()
}

// Option configures a PackingServiceImpl.
type Option func(*PackingServiceImpl)

// PackingServiceImpl implements PackingService around the layer-building
// volume packer and the multi-box loop.
type PackingServiceImpl struct {
	defaultBoxes   []*model.Box
	sortKey        model.SortKey
	lookAheadItems int
	cache          cache.Cache
	logger         zerolog.Logger
}

// NewPackingService creates a packing service with the given options.
func NewPackingService(opts ...Option) *PackingServiceImpl {
	s := &PackingServiceImpl{
		defaultBoxes: DefaultBoxes,
		sortKey:      model.SortKeyMaxExtent,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefaultBoxes replaces the built-in box catalog.
func WithDefaultBoxes(boxes []*model.Box) Option {
	return func(s *PackingServiceImpl) {
		if len(boxes) > 0 {
			s.defaultBoxes = boxes
		}
	}
}

// WithSortKey selects the item ordering strategy.
func WithSortKey(key model.SortKey) Option {
	return func(s *PackingServiceImpl) {
		if key != nil {
			s.sortKey = key
		}
	}
}

// WithLookAhead bounds the per-placement look-ahead fan-out.
func WithLookAhead(n int) Option {
	return func(s *PackingServiceImpl) {
		s.lookAheadItems = n
	}
}

// WithCache enables result caching with the given capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PackingServiceImpl) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface injects a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PackingServiceImpl) {
		s.cache = c
	}
}

// WithLogger directs the packing trace to the given logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *PackingServiceImpl) {
		s.logger = logger
	}
}

// Pack distributes items across boxes and returns the placement result.
func (s *PackingServiceImpl) Pack(items []*model.Item, boxes []*model.Box) *model.PackingResult {
	if len(items) == 0 {
		return &model.PackingResult{}
	}

	usingDefaults := len(boxes) == 0
	if usingDefaults {
		boxes = s.defaultBoxes
	}

	// Only default-catalog requests are cacheable: caller-supplied boxes
	// carry supply counters that Pack consumes.
	var key string
	if s.cache != nil && usingDefaults {
		key = requestDigest(items, boxes)
		if result, ok := s.cache.Get(key); ok {
			return result
		}
	}

	packer := NewBoxPacker(s.sortKey,
		WithBoxPackerLogger(s.logger),
		WithBoxPackerLookAhead(s.lookAheadItems))
	for _, box := range boxes {
		packer.AddBox(box)
	}
	for _, item := range items {
		packer.AddItem(item, 1)
	}

	result := packer.Pack()

	if s.cache != nil && usingDefaults {
		s.cache.Set(key, result)
	}
	return result
}

// InvalidateCache clears the result cache.
func (s *PackingServiceImpl) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// requestDigest produces a stable key for a packing request. Identical item
// and box multisets in identical order hash identically; the packer itself
// is deterministic, so equal digests yield equal results.
func requestDigest(items []*model.Item, boxes []*model.Box) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "i:%s:%d:%d:%d:%d:%t;", item.Description, item.Width, item.Length, item.Depth, item.Weight, item.KeepFlat)
	}
	for _, box := range boxes {
		fmt.Fprintf(&b, "b:%s:%d:%d:%d:%d:%d;", box.Reference, box.InnerWidth, box.InnerLength, box.InnerDepth, box.EmptyWeight, box.MaxWeight)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
