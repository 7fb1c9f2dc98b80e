package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

func TestNewPackingService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *PackingServiceImpl)
	}{
		{
			name:    "uses default box catalog when no options",
			options: nil,
			validate: func(t *testing.T, svc *PackingServiceImpl) {
				assert.Equal(t, DefaultBoxes, svc.defaultBoxes)
				assert.Nil(t, svc.cache)
			},
		},
		{
			name:    "custom box catalog",
			options: []Option{WithDefaultBoxes([]*model.Box{model.NewBox("only", 10, 10, 10, 0, 100)})},
			validate: func(t *testing.T, svc *PackingServiceImpl) {
				require.Len(t, svc.defaultBoxes, 1)
				assert.Equal(t, "only", svc.defaultBoxes[0].Reference)
			},
		},
		{
			name:    "empty catalog option keeps defaults",
			options: []Option{WithDefaultBoxes(nil)},
			validate: func(t *testing.T, svc *PackingServiceImpl) {
				assert.Equal(t, DefaultBoxes, svc.defaultBoxes)
			},
		},
		{
			name:    "cache enabled with option",
			options: []Option{WithCache(100, time.Minute)},
			validate: func(t *testing.T, svc *PackingServiceImpl) {
				assert.NotNil(t, svc.cache)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewPackingService(tt.options...)
			if tt.validate != nil {
				tt.validate(t, svc)
			}
		})
	}
}

func TestPackingService_PackWithRequestBoxes(t *testing.T) {
	svc := NewPackingService()

	items := []*model.Item{
		model.NewItem("cube", 5, 5, 5, 10, false),
		model.NewItem("cube", 5, 5, 5, 10, false),
	}
	boxes := []*model.Box{model.NewBox("crate", 10, 10, 10, 100, 5000)}

	result := svc.Pack(items, boxes)

	require.Len(t, result.PackedBoxes, 1)
	assert.Equal(t, "crate", result.PackedBoxes[0].Box.Reference)
	assert.Equal(t, 2, result.PackedItemCount())
	assert.Empty(t, result.Unpacked)
}

func TestPackingService_PackFallsBackToDefaultCatalog(t *testing.T) {
	svc := NewPackingService()

	result := svc.Pack([]*model.Item{model.NewItem("mug", 90, 90, 100, 350, false)}, nil)

	require.Len(t, result.PackedBoxes, 1)
	assert.Empty(t, result.Unpacked)
}

func TestPackingService_EmptyItems(t *testing.T) {
	svc := NewPackingService()
	result := svc.Pack(nil, nil)
	assert.Empty(t, result.PackedBoxes)
	assert.Empty(t, result.Unpacked)
}

func TestPackingService_CachesDefaultCatalogResults(t *testing.T) {
	svc := NewPackingService(WithCache(10, time.Minute))

	items := []*model.Item{model.NewItem("mug", 90, 90, 100, 350, false)}

	first := svc.Pack(items, nil)
	second := svc.Pack(items, nil)
	assert.Same(t, first, second, "second call served from cache")

	svc.InvalidateCache()
	third := svc.Pack(items, nil)
	assert.NotSame(t, first, third, "invalidation forces recomputation")
	assert.Equal(t, first.PackedItemCount(), third.PackedItemCount())
}

func TestPackingService_DoesNotCacheCallerBoxes(t *testing.T) {
	svc := NewPackingService(WithCache(10, time.Minute))

	items := []*model.Item{model.NewItem("cube", 5, 5, 5, 10, false)}
	makeBoxes := func() []*model.Box {
		return []*model.Box{model.NewBoxWithSupply("crate", 10, 10, 10, 100, 5000, 1)}
	}

	first := svc.Pack(items, makeBoxes())
	second := svc.Pack(items, makeBoxes())
	assert.NotSame(t, first, second, "caller-supplied boxes bypass the cache")
}

func TestTTLCache(t *testing.T) {
	c := newTTLCache(2, 50*time.Millisecond)
	defer c.Stop()

	result := &model.PackingResult{}

	c.Set("a", result)
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Same(t, result, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	// LRU eviction at capacity.
	c.Set("b", result)
	c.Set("c", result)
	_, ok = c.Get("a")
	assert.False(t, ok, "oldest entry evicted")

	// TTL expiry.
	time.Sleep(60 * time.Millisecond)
	_, ok = c.Get("c")
	assert.False(t, ok, "entry expired")

	m := c.Metrics()
	assert.Positive(t, m.Hits)
	assert.Positive(t, m.Misses)
	assert.Positive(t, m.Evictions)

	c.Set("d", result)
	c.Invalidate("d")
	_, ok = c.Get("d")
	assert.False(t, ok)

	c.Set("e", result)
	c.Clear()
	_, ok = c.Get("e")
	assert.False(t, ok)
}
