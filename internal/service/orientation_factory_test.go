package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

func testFactory(box *model.Box) *orientatedItemFactory {
	return newOrientatedItemFactory(box, box.InnerWidth, box.InnerLength, zerolog.Nop(), false, 0)
}

func TestPossibleOrientations(t *testing.T) {
	box := model.NewBox("box", 100, 100, 100, 0, 1000)
	factory := testFactory(box)

	tests := []struct {
		name     string
		item     *model.Item
		maxW     int
		maxL     int
		maxD     int
		expected int
	}{
		{
			name:     "distinct dimensions yield six orientations",
			item:     model.NewItem("brick", 2, 3, 4, 1, false),
			maxW:     100, maxL: 100, maxD: 100,
			expected: 6,
		},
		{
			name:     "cube collapses to one orientation",
			item:     model.NewItem("cube", 3, 3, 3, 1, false),
			maxW:     100, maxL: 100, maxD: 100,
			expected: 1,
		},
		{
			name:     "two equal sides collapse to three orientations",
			item:     model.NewItem("square-slab", 3, 3, 5, 1, false),
			maxW:     100, maxL: 100, maxD: 100,
			expected: 3,
		},
		{
			name:     "keep flat restricts to upright orientations",
			item:     model.NewItem("glassware", 2, 3, 4, 1, true),
			maxW:     100, maxL: 100, maxD: 100,
			expected: 2,
		},
		{
			name:     "tight cuboid filters non-fitting orientations",
			item:     model.NewItem("brick", 2, 3, 4, 1, false),
			maxW:     2, maxL: 3, maxD: 100,
			expected: 1,
		},
		{
			name:     "nothing fits",
			item:     model.NewItem("brick", 2, 3, 4, 1, false),
			maxW:     1, maxL: 1, maxD: 1,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := factory.possibleOrientations(tt.item, tt.maxW, tt.maxL, tt.maxD)
			assert.Len(t, got, tt.expected)
		})
	}
}

func TestBestOrientation_StableFitTierWins(t *testing.T) {
	box := model.NewBox("box", 100, 100, 100, 0, 1000)
	factory := testFactory(box)
	item := model.NewItem("brick", 2, 3, 4, 1, false)

	// With a row of length 3 in progress, orientations flush with the row
	// (length <= 3) beat orientations that would widen it.
	o, ok := factory.BestOrientation(item, nil, nil, true, 50, 50, 50, 3, 0, 0, 0, model.NewPackedItemList())

	require.True(t, ok)
	assert.LessOrEqual(t, o.Length, 3)
}

func TestBestOrientation_RepeatsPreviousItemOrientation(t *testing.T) {
	box := model.NewBox("box", 100, 100, 100, 0, 1000)
	factory := testFactory(box)
	item := model.NewItem("brick", 2, 3, 4, 1, false)

	prev := model.NewPackedItem(model.OrientatedItem{Item: item, Width: 4, Length: 2, Depth: 3}, 0, 0, 0)
	o, ok := factory.BestOrientation(item, &prev, nil, true, 50, 50, 50, 0, 4, 0, 0, model.NewPackedItemList())

	require.True(t, ok)
	assert.Equal(t, 4, o.Width)
	assert.Equal(t, 2, o.Length)
	assert.Equal(t, 3, o.Depth)
}

func TestBestOrientation_ConstraintVetoes(t *testing.T) {
	box := model.NewBox("box", 100, 100, 100, 0, 1000)
	factory := testFactory(box)

	item := &model.Item{
		Description: "never",
		Width:       2, Length: 3, Depth: 4, Weight: 1,
		Constraint: func(*model.PackedItemList, *model.Box) bool {
			return false
		},
	}

	_, ok := factory.BestOrientation(item, nil, nil, true, 50, 50, 50, 0, 0, 0, 0, model.NewPackedItemList())
	assert.False(t, ok)
}

func TestFitsInEmptyBox(t *testing.T) {
	box := model.NewBox("box", 10, 20, 5, 0, 1000)
	factory := testFactory(box)

	assert.True(t, factory.FitsInEmptyBox(model.NewItem("ok", 20, 10, 5, 1, false)))
	assert.True(t, factory.FitsInEmptyBox(model.NewItem("rotatable", 5, 5, 15, 1, false)),
		"fits when tipped onto its side")
	assert.False(t, factory.FitsInEmptyBox(model.NewItem("tall-flat", 5, 5, 15, 1, true)),
		"keep-flat forbids the only fitting orientation")
	assert.False(t, factory.FitsInEmptyBox(model.NewItem("huge", 30, 30, 30, 1, false)))
}

func TestLookAhead_PrefersOrientationLeavingUsableSpace(t *testing.T) {
	// A 6x3x3 plank in a 6x6x3 slot can only lie flat, as 6x3 or 3x6. Only
	// the 3-wide orientation leaves a 3x6 column beside it for the two queued
	// 3x3x3 cubes, so the look-ahead picks that one.
	box := model.NewBox("box", 6, 6, 3, 0, 1000)
	factory := newOrientatedItemFactory(box, 6, 6, zerolog.Nop(), true, 0)

	plank := model.NewItem("plank", 6, 3, 3, 1, false)
	cube := model.NewItem("cube", 3, 3, 3, 1, false)
	next := listOf(cube, cube)

	o, ok := factory.BestOrientation(plank, nil, next, false, 6, 6, 3, 0, 0, 0, 0, model.NewPackedItemList())

	require.True(t, ok)
	assert.Equal(t, 3, o.Width, "width-3 orientation leaves a 3-wide column for the cubes")
}
