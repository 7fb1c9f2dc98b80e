package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

func layerWith(items ...model.PackedItem) *model.PackedLayer {
	layer := model.NewPackedLayer()
	for _, item := range items {
		layer.Insert(item)
	}
	return layer
}

func placed(item *model.Item, x, y, z, w, l, d int) model.PackedItem {
	return model.NewPackedItem(model.OrientatedItem{Item: item, Width: w, Length: l, Depth: d}, x, y, z)
}

func TestLayerStabiliser_LargestFootprintSinksToBottom(t *testing.T) {
	big := model.NewItem("big", 8, 8, 3, 1, false)
	small := model.NewItem("small", 4, 4, 2, 1, false)

	// As laid down: small footprint first at z=0, big footprint above it.
	layers := []*model.PackedLayer{
		layerWith(placed(small, 0, 0, 0, 4, 4, 2)),
		layerWith(placed(big, 0, 0, 2, 8, 8, 3)),
	}

	stabilised := newLayerStabiliser().Stabilise(layers)

	require.Len(t, stabilised, 2)
	assert.Equal(t, 64, stabilised[0].Footprint(), "bigger footprint first")
	assert.Equal(t, 0, stabilised[0].StartDepth())
	assert.Equal(t, 16, stabilised[1].Footprint())
	assert.Equal(t, 3, stabilised[1].StartDepth(), "smaller layer re-based above the big one")

	// XY positions survive, only Z moves.
	assert.Equal(t, 0, stabilised[1].Items()[0].X)
	assert.Equal(t, 0, stabilised[1].Items()[0].Y)
	assert.Equal(t, 3, stabilised[1].Items()[0].Z)

	// Input layers untouched.
	assert.Equal(t, 0, layers[0].StartDepth())
	assert.Equal(t, 2, layers[1].StartDepth())
}

func TestLayerStabiliser_TiesKeepOriginalOrder(t *testing.T) {
	first := model.NewItem("first", 4, 4, 2, 1, false)
	second := model.NewItem("second", 4, 4, 3, 1, false)

	layers := []*model.PackedLayer{
		layerWith(placed(first, 0, 0, 0, 4, 4, 2)),
		layerWith(placed(second, 0, 0, 2, 4, 4, 3)),
	}

	stabilised := newLayerStabiliser().Stabilise(layers)

	require.Len(t, stabilised, 2)
	assert.Equal(t, "first", stabilised[0].Items()[0].Item.Description)
	assert.Equal(t, 0, stabilised[0].StartDepth())
	assert.Equal(t, "second", stabilised[1].Items()[0].Item.Description)
	assert.Equal(t, 2, stabilised[1].StartDepth())
}

func TestLayerStabiliser_Empty(t *testing.T) {
	assert.Empty(t, newLayerStabiliser().Stabilise(nil))
}
