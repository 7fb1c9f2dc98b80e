package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func packedAt(t *testing.T, item *Item, x, y, z, w, l, d int) PackedItem {
	t.Helper()
	return NewPackedItem(OrientatedItem{Item: item, Width: w, Length: l, Depth: d}, x, y, z)
}

func TestPackedLayer_DepthAndStartDepth(t *testing.T) {
	item := NewItem("cube", 4, 4, 4, 1, false)

	layer := NewPackedLayer()
	layer.Insert(packedAt(t, item, 0, 0, 5, 4, 4, 4))
	layer.Insert(packedAt(t, item, 4, 0, 5, 4, 4, 10))

	assert.Equal(t, 5, layer.StartDepth())
	assert.Equal(t, 10, layer.Depth())
}

func TestPackedLayer_Footprint(t *testing.T) {
	item := NewItem("cube", 4, 4, 4, 1, false)

	layer := NewPackedLayer()
	layer.Insert(packedAt(t, item, 0, 0, 0, 4, 4, 4))
	layer.Insert(packedAt(t, item, 4, 0, 0, 4, 4, 4))
	layer.Insert(packedAt(t, item, 0, 4, 0, 4, 4, 4))

	// Bounding rectangle is 8x8 even though only three cells are covered.
	assert.Equal(t, 64, layer.Footprint())
}

func TestPackedLayer_Empty(t *testing.T) {
	layer := NewPackedLayer()
	assert.Equal(t, 0, layer.Depth())
	assert.Equal(t, 0, layer.Footprint())
	assert.Equal(t, 0, layer.ItemCount())
}

func TestPackedLayer_ShiftedTo(t *testing.T) {
	item := NewItem("cube", 4, 4, 4, 1, false)

	layer := NewPackedLayer()
	layer.Insert(packedAt(t, item, 0, 0, 6, 4, 4, 4))
	layer.Insert(packedAt(t, item, 0, 0, 10, 4, 4, 2))

	shifted := layer.ShiftedTo(0)

	assert.Equal(t, 0, shifted.StartDepth())
	assert.Equal(t, 6, shifted.Depth())
	assert.Equal(t, 0, shifted.Items()[0].Z)
	assert.Equal(t, 4, shifted.Items()[1].Z, "relative stacking preserved")
	assert.Equal(t, 6, layer.StartDepth(), "source layer untouched")
}

func TestPackedLayer_Rotated(t *testing.T) {
	item := NewItem("slab", 10, 5, 2, 1, false)

	layer := NewPackedLayer()
	layer.Insert(packedAt(t, item, 3, 1, 0, 10, 5, 2))

	rotated := layer.Rotated().Items()[0]

	assert.Equal(t, 1, rotated.X)
	assert.Equal(t, 3, rotated.Y)
	assert.Equal(t, 5, rotated.Width)
	assert.Equal(t, 10, rotated.Length)
	assert.Equal(t, 2, rotated.Depth)
}

func TestPackedBox_Accessors(t *testing.T) {
	box := NewBox("12x12", 12, 12, 12, 100, 5000)
	item := NewItem("cube", 6, 6, 6, 250, false)

	items := NewPackedItemList()
	items.Insert(packedAt(t, item, 0, 0, 0, 6, 6, 6))
	items.Insert(packedAt(t, item, 6, 0, 0, 6, 6, 6))

	packed := NewPackedBox(box, items)

	assert.Equal(t, 2, packed.ItemCount())
	assert.Equal(t, 500, packed.ContentWeight())
	assert.Equal(t, 600, packed.GrossWeight())
	assert.Equal(t, 432, packed.UsedVolume())
	assert.InDelta(t, 25.0, packed.VolumeUtilisation(), 0.01)
}

func TestBox_Supply(t *testing.T) {
	unlimited := NewBox("any", 10, 10, 10, 0, 100)
	_, limited := unlimited.RemainingAmount()
	assert.False(t, limited)
	assert.True(t, unlimited.InStock())
	unlimited.DecreaseAmount()
	assert.True(t, unlimited.InStock())

	stocked := NewBoxWithSupply("two-left", 10, 10, 10, 0, 100, 2)
	stocked.DecreaseAmount()
	stocked.DecreaseAmount()
	remaining, limited := stocked.RemainingAmount()
	assert.True(t, limited)
	assert.Equal(t, 0, remaining)
	assert.False(t, stocked.InStock())
}
