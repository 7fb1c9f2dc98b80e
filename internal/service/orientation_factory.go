package service

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

// lookAheadWeightBudget is the content weight given to the synthetic trial
// box used during look-ahead; weight feasibility is judged by the outer
// packer, not the trial.
const lookAheadWeightBudget = 1 << 40

// orientatedItemFactory chooses the best axis-aligned orientation of an item
// for a free cuboid inside one box. A factory instance is bound to the box it
// serves and reused for every placement decision in a packing run.
type orientatedItemFactory struct {
	// box is the original box; placement constraints are evaluated against it.
	box *model.Box
	// frameWidth and frameLength are the packing-frame dimensions, which may
	// be the box's inner width/length swapped.
	frameWidth  int
	frameLength int
	logger      zerolog.Logger

	// lookAhead enables trial packing of upcoming items to score candidate
	// orientations. Disabled inside look-ahead packers so recursion stops at
	// one level.
	lookAhead      bool
	lookAheadItems int
}

func newOrientatedItemFactory(box *model.Box, frameWidth, frameLength int, logger zerolog.Logger, lookAhead bool, lookAheadItems int) *orientatedItemFactory {
	if lookAheadItems <= 0 {
		lookAheadItems = defaultLookAheadItems
	}
	return &orientatedItemFactory{
		box:            box,
		frameWidth:     frameWidth,
		frameLength:    frameLength,
		logger:         logger,
		lookAhead:      lookAhead,
		lookAheadItems: lookAheadItems,
	}
}

// BestOrientation returns the preferred orientation of item for the free
// cuboid (maxWidth, maxLength, maxDepth) anchored at (x, y, z), or ok=false
// when no orientation fits. rowLength is the length of the row under
// construction; nextItems are the candidates queued behind this item.
func (f *orientatedItemFactory) BestOrientation(
	item *model.Item,
	prev *model.PackedItem,
	nextItems *model.ItemList,
	isLastItem bool,
	maxWidth, maxLength, maxDepth int,
	rowLength int,
	x, y, z int,
	packedSoFar *model.PackedItemList,
) (model.OrientatedItem, bool) {
	if !item.AllowedInBox(packedSoFar, f.box) {
		return model.OrientatedItem{}, false
	}

	// An item identical to its predecessor keeps the predecessor's
	// orientation when it still fits; rows of like items stay aligned.
	if prev != nil && sameDimensions(item, prev.Item) {
		repeat := model.OrientatedItem{Item: item, Width: prev.Width, Length: prev.Length, Depth: prev.Depth}
		if repeat.FitsIn(maxWidth, maxLength, maxDepth) {
			return repeat, true
		}
	}

	possible := f.possibleOrientations(item, maxWidth, maxLength, maxDepth)
	if len(possible) == 0 {
		return model.OrientatedItem{}, false
	}

	usable := f.usableOrientations(possible, rowLength)

	if len(usable) > 1 {
		f.sortOrientations(usable, nextItems, isLastItem, maxWidth, maxLength, maxDepth)
	}

	best := usable[0]
	f.logger.Debug().
		Str("item", item.Description).
		Int("width", best.Width).
		Int("length", best.Length).
		Int("depth", best.Depth).
		Int("x", x).Int("y", y).Int("z", z).
		Msg("orientation selected")
	return best, true
}

// FitsInEmptyBox reports whether any permitted orientation of the item fits
// the empty box dimensionally. Used to reject globally oversized items before
// any placement attempt.
func (f *orientatedItemFactory) FitsInEmptyBox(item *model.Item) bool {
	return len(f.possibleOrientations(item, f.frameWidth, f.frameLength, f.box.InnerDepth)) > 0
}

// possibleOrientations enumerates the distinct axis-aligned permutations of
// the item's dimensions that fit the free cuboid, honouring KeepFlat.
func (f *orientatedItemFactory) possibleOrientations(item *model.Item, maxWidth, maxLength, maxDepth int) []model.OrientatedItem {
	w, l, d := item.Width, item.Length, item.Depth

	permutations := [][3]int{
		{w, l, d},
		{l, w, d},
		{w, d, l},
		{d, w, l},
		{l, d, w},
		{d, l, w},
	}

	orientations := make([]model.OrientatedItem, 0, 6)
	for _, p := range permutations {
		if item.KeepFlat && p[2] != d {
			continue
		}
		o := model.OrientatedItem{Item: item, Width: p[0], Length: p[1], Depth: p[2]}
		if !o.FitsIn(maxWidth, maxLength, maxDepth) {
			continue
		}
		if containsOrientation(orientations, o) {
			continue
		}
		orientations = append(orientations, o)
	}
	return orientations
}

// usableOrientations partitions candidates into a stable-fit tier, those
// flush with the current row, and a fresh tier, preferring the former.
func (f *orientatedItemFactory) usableOrientations(possible []model.OrientatedItem, rowLength int) []model.OrientatedItem {
	if rowLength <= 0 {
		return possible
	}
	stable := make([]model.OrientatedItem, 0, len(possible))
	for _, o := range possible {
		if o.Length <= rowLength {
			stable = append(stable, o)
		}
	}
	if len(stable) > 0 {
		return stable
	}
	return possible
}

// sortOrientations orders candidates best-first: most follow-up items
// placeable under look-ahead, then least wasted slot volume, then greatest
// remaining row length. The input order is the deterministic permutation
// order, so ties resolve identically across runs.
func (f *orientatedItemFactory) sortOrientations(orientations []model.OrientatedItem, nextItems *model.ItemList, isLastItem bool, maxWidth, maxLength, maxDepth int) {
	lookAheadCounts := make(map[model.OrientatedItem]int, len(orientations))
	if f.lookAhead && !isLastItem && nextItems != nil && nextItems.Count() > 0 {
		for _, o := range orientations {
			lookAheadCounts[o] = f.additionalItemsPackedCount(o, nextItems, maxWidth, maxLength, maxDepth)
		}
	}

	slotVolume := maxWidth * maxLength * maxDepth
	sort.SliceStable(orientations, func(a, b int) bool {
		oa, ob := orientations[a], orientations[b]
		if lookAheadCounts[oa] != lookAheadCounts[ob] {
			return lookAheadCounts[oa] > lookAheadCounts[ob]
		}
		wastedA := slotVolume - oa.Volume()
		wastedB := slotVolume - ob.Volume()
		if wastedA != wastedB {
			return wastedA < wastedB
		}
		return maxLength-oa.Length > maxLength-ob.Length
	})
}

// additionalItemsPackedCount trial-packs the next few candidates into the row
// space that would remain beside the orientation, and counts how many fit.
// The trial packer runs in look-ahead mode and cannot recurse further.
func (f *orientatedItemFactory) additionalItemsPackedCount(o model.OrientatedItem, nextItems *model.ItemList, maxWidth, maxLength, maxDepth int) int {
	remainingWidth := maxWidth - o.Width
	if remainingWidth <= 0 {
		return 0
	}

	trialBox := model.NewBox("look-ahead", remainingWidth, maxLength, maxDepth, 0, lookAheadWeightBudget)
	trial := newLookAheadVolumePacker(trialBox, nextItems.TopN(f.lookAheadItems), f.logger)
	packed := trial.Pack()

	return packed.ItemCount()
}

func sameDimensions(a, b *model.Item) bool {
	return a.Width == b.Width && a.Length == b.Length && a.Depth == b.Depth && a.KeepFlat == b.KeepFlat
}

func containsOrientation(orientations []model.OrientatedItem, o model.OrientatedItem) bool {
	for _, existing := range orientations {
		if existing.Width == o.Width && existing.Length == o.Length && existing.Depth == o.Depth {
			return true
		}
	}
	return false
}
