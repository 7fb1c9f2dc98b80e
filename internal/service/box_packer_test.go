package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

func TestBoxPacker_SingleBoxFitsAll(t *testing.T) {
	packer := NewBoxPacker(nil)
	packer.AddBox(model.NewBox("big", 20, 20, 20, 50, 10000))
	packer.AddItem(model.NewItem("cube", 5, 5, 5, 10, false), 8)

	result := packer.Pack()

	require.Len(t, result.PackedBoxes, 1)
	assert.Equal(t, 8, result.PackedBoxes[0].ItemCount())
	assert.Empty(t, result.Unpacked)
	assertPackedBoxInvariants(t, result.PackedBoxes[0])
}

func TestBoxPacker_OverflowsIntoSecondBox(t *testing.T) {
	packer := NewBoxPacker(nil)
	packer.AddBox(model.NewBox("single-slot", 5, 5, 5, 10, 10000))
	packer.AddItem(model.NewItem("cube", 5, 5, 5, 10, false), 3)

	result := packer.Pack()

	assert.Len(t, result.PackedBoxes, 3, "one cube per box")
	assert.Empty(t, result.Unpacked)
	for _, pb := range result.PackedBoxes {
		assert.Equal(t, 1, pb.ItemCount())
		assertPackedBoxInvariants(t, pb)
	}
}

func TestBoxPacker_PrefersFullerBox(t *testing.T) {
	packer := NewBoxPacker(nil)
	packer.AddBox(model.NewBox("small", 10, 10, 10, 10, 10000))
	packer.AddBox(model.NewBox("large", 40, 40, 40, 100, 10000))
	packer.AddItem(model.NewItem("cube", 5, 5, 5, 10, false), 8)

	result := packer.Pack()

	require.Len(t, result.PackedBoxes, 1)
	assert.Equal(t, "small", result.PackedBoxes[0].Box.Reference,
		"equal item counts resolve to the better-utilised box")
}

func TestBoxPacker_RespectsSupply(t *testing.T) {
	packer := NewBoxPacker(nil)
	packer.AddBox(model.NewBoxWithSupply("scarce", 5, 5, 5, 10, 10000, 2))
	packer.AddItem(model.NewItem("cube", 5, 5, 5, 10, false), 3)

	result := packer.Pack()

	assert.Len(t, result.PackedBoxes, 2, "stock limits box usage")
	require.Len(t, result.Unpacked, 1)
	assert.Equal(t, "cube", result.Unpacked[0].Description)
}

func TestBoxPacker_OversizedItemReturnsUnpacked(t *testing.T) {
	packer := NewBoxPacker(nil)
	packer.AddBox(model.NewBox("small", 10, 10, 10, 10, 10000))
	packer.AddItem(model.NewItem("sofa", 200, 80, 90, 35000, false), 1)
	packer.AddItem(model.NewItem("cube", 5, 5, 5, 10, false), 1)

	result := packer.Pack()

	require.Len(t, result.PackedBoxes, 1)
	assert.Equal(t, 1, result.PackedBoxes[0].ItemCount())
	require.Len(t, result.Unpacked, 1)
	assert.Equal(t, "sofa", result.Unpacked[0].Description)
}

func TestBoxPacker_NoBoxes(t *testing.T) {
	packer := NewBoxPacker(nil)
	packer.AddItem(model.NewItem("cube", 5, 5, 5, 10, false), 2)

	result := packer.Pack()

	assert.Empty(t, result.PackedBoxes)
	assert.Len(t, result.Unpacked, 2)
}

func TestBoxPacker_NoItems(t *testing.T) {
	packer := NewBoxPacker(nil)
	packer.AddBox(model.NewBox("box", 10, 10, 10, 10, 10000))

	result := packer.Pack()

	assert.Empty(t, result.PackedBoxes)
	assert.Empty(t, result.Unpacked)
	assert.Equal(t, 0, result.BoxCount())
	assert.Equal(t, 0, result.PackedItemCount())
}
