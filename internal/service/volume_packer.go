package service

import (
	"github.com/rs/zerolog"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

// defaultLookAheadItems bounds how many queued items a look-ahead trial
// considers when scoring an orientation.
const defaultLookAheadItems = 8

// VolumePacker packs one box from a prioritised list of items. It builds
// horizontal layers bottom-up, placing items in rows, stacking shorter items
// above just-placed ones, and deferring items that do not fit the current row
// until the next row or layer boundary.
//
// A VolumePacker owns its item list for the duration of the run and is not
// safe for concurrent use; independent instances are.
type VolumePacker struct {
	box     *model.Box
	items   *model.ItemList
	skipped *model.ItemList

	// frameWidth >= frameLength; when the box is wider along Y than X the
	// packer works in a 90°-rotated frame and swaps coordinates back at the
	// end. The input box is never mutated.
	frameWidth  int
	frameLength int
	boxRotated  bool

	remainingWeight int
	layers          []*model.PackedLayer
	packedItems     *model.PackedItemList
	unpacked        []*model.Item

	// lookAheadMode marks nested trial packers: they skip layer
	// stabilisation and their factories do not recurse further.
	lookAheadMode  bool
	lookAheadItems int

	factory *orientatedItemFactory
	logger  zerolog.Logger
}

// VolumePackerOption configures a VolumePacker.
type VolumePackerOption func(*VolumePacker)

// WithPackerLogger directs the packer's placement trace to the given logger.
// The default sink discards everything.
func WithPackerLogger(logger zerolog.Logger) VolumePackerOption {
	return func(p *VolumePacker) {
		p.logger = logger
	}
}

// WithLookAheadItems bounds the number of queued items considered when
// scoring candidate orientations.
func WithLookAheadItems(n int) VolumePackerOption {
	return func(p *VolumePacker) {
		p.lookAheadItems = n
	}
}

// NewVolumePacker creates a packer for one box and one item list. The packer
// takes ownership of the list; callers wanting to retry items elsewhere
// should pass a Clone.
func NewVolumePacker(box *model.Box, items *model.ItemList, opts ...VolumePackerOption) *VolumePacker {
	p := &VolumePacker{
		box:             box,
		items:           items,
		remainingWeight: box.MaxContentWeight(),
		packedItems:     model.NewPackedItemList(),
		logger:          zerolog.Nop(),
	}
	p.deriveFrame()

	for _, opt := range opts {
		opt(p)
	}

	p.skipped = items.EmptyCopy()
	p.factory = newOrientatedItemFactory(box, p.frameWidth, p.frameLength, p.logger, !p.lookAheadMode, p.lookAheadItems)
	return p
}

// newLookAheadVolumePacker creates a nested trial packer used by the
// orientation factory to score candidates.
func newLookAheadVolumePacker(box *model.Box, items *model.ItemList, logger zerolog.Logger) *VolumePacker {
	p := &VolumePacker{
		box:             box,
		items:           items,
		remainingWeight: box.MaxContentWeight(),
		packedItems:     model.NewPackedItemList(),
		logger:          logger,
		lookAheadMode:   true,
	}
	p.deriveFrame()
	p.skipped = items.EmptyCopy()
	p.factory = newOrientatedItemFactory(box, p.frameWidth, p.frameLength, logger, false, 0)
	return p
}

// deriveFrame orients the packing frame so the wider horizontal extent runs
// along X. The input box is left untouched; placements are remapped at the
// end of Pack when the frame is rotated.
func (p *VolumePacker) deriveFrame() {
	p.frameWidth = p.box.InnerWidth
	p.frameLength = p.box.InnerLength
	if p.box.InnerLength > p.box.InnerWidth {
		p.frameWidth, p.frameLength = p.box.InnerLength, p.box.InnerWidth
		p.boxRotated = true
	}
}

// Pack places as many items as possible and returns the packed box. Items
// that could not be placed are available from UnpackedItems afterwards; Pack
// itself never fails.
func (p *VolumePacker) Pack() *model.PackedBox {
	for {
		p.rebuildItemList(nil)
		if p.items.Count() == 0 {
			break
		}

		startDepth := p.packedDepth()
		if startDepth >= p.box.InnerDepth {
			break
		}

		layer := p.packLayer(startDepth, p.frameWidth, p.frameLength, p.box.InnerDepth-startDepth)
		if layer.ItemCount() > 0 {
			p.layers = append(p.layers, layer)
		}
	}

	// Whatever is still queued has no home in this box.
	for p.items.Count() > 0 {
		p.unpacked = append(p.unpacked, p.items.Pop())
	}
	for p.skipped.Count() > 0 {
		p.unpacked = append(p.unpacked, p.skipped.Pop())
	}

	layers := p.layers
	if p.boxRotated {
		rotated := make([]*model.PackedLayer, len(layers))
		for n, layer := range layers {
			rotated[n] = layer.Rotated()
		}
		layers = rotated
	}

	if !p.lookAheadMode {
		layers = newLayerStabiliser().Stabilise(layers)
	}

	packed := model.NewPackedItemList()
	for _, layer := range layers {
		for _, item := range layer.Items() {
			packed.Insert(item)
		}
	}

	p.logger.Debug().
		Str("box", p.box.Reference).
		Int("packed", packed.Count()).
		Int("unpacked", len(p.unpacked)).
		Bool("rotated", p.boxRotated).
		Msg("box packed")

	return model.NewPackedBox(p.box, packed)
}

// UnpackedItems returns the items this box could not take, in the order they
// were given up on. Only meaningful after Pack.
func (p *VolumePacker) UnpackedItems() []*model.Item {
	return p.unpacked
}

// packLayer fills one horizontal layer starting at startDepth. It returns
// the layer, possibly empty when no queued item fits the remaining depth.
func (p *VolumePacker) packLayer(startDepth, widthLeft, lengthLeft, depthLeft int) *model.PackedLayer {
	layer := model.NewPackedLayer()

	var prevItem *model.PackedItem
	x, y := 0, 0
	rowWidth, rowLength, layerDepth := 0, 0, 0

	for p.items.Count() > 0 {
		item := p.items.Pop()

		// Global rejections: too heavy for the remaining budget or too large
		// for the empty box under any orientation. Such items can never be
		// placed here and are surfaced to the caller as unpacked.
		if item.Weight > p.remainingWeight || !p.factory.FitsInEmptyBox(item) {
			p.logger.Debug().Str("item", item.Description).Msg("item rejected for box")
			p.unpacked = append(p.unpacked, item)
			p.rebuildItemList(nil)
			continue
		}

		orientation, ok := p.factory.BestOrientation(
			item, prevItem, p.items, p.items.Count() == 0,
			widthLeft, lengthLeft, depthLeft,
			rowLength, x, y, startDepth,
			p.packedItems,
		)

		if ok {
			packed := model.NewPackedItem(orientation, x, y, startDepth)
			layer.Insert(packed)
			p.packedItems.Insert(packed)
			p.remainingWeight -= item.Weight

			widthLeft -= orientation.Width
			rowWidth += orientation.Width
			if orientation.Length > rowLength {
				rowLength = orientation.Length
			}
			if orientation.Depth > layerDepth {
				layerDepth = orientation.Depth
			}

			// Fill the leftover height above a shorter item within the same
			// footprint before moving the cursor on.
			p.stackInPlace(layer,
				orientation.Width, orientation.Length, layerDepth-orientation.Depth,
				x, y, startDepth+orientation.Depth)

			x += orientation.Width
			prevItem = &packed
			p.rebuildItemList(nil)
			continue
		}

		if layer.ItemCount() == 0 {
			// Nothing fits an empty layer within this depth budget; the item
			// cannot be placed in this box at all.
			p.unpacked = append(p.unpacked, item)
			p.rebuildItemList(nil)
			continue
		}

		if widthLeft > 0 && p.items.Count() > 0 {
			// Defer the item; a later candidate may close out the row.
			p.skipped.Insert(item)
			continue
		}

		if x > 0 && item.SmallestDimension() <= lengthLeft-rowLength {
			// Start a new row within the layer.
			widthLeft += rowWidth
			lengthLeft -= rowLength
			y += rowLength
			x, rowWidth, rowLength = 0, 0, 0
			prevItem = nil
			p.rebuildItemList(item)
			continue
		}

		// No more rows fit; close the layer.
		p.rebuildItemList(item)
		break
	}

	return layer
}

// stackInPlace places further items into the vertical slot
// (maxWidth, maxLength, maxDepth) anchored at (x, y, z), directly above a
// just-placed item, until the slot is exhausted or the next candidate does
// not fit.
func (p *VolumePacker) stackInPlace(layer *model.PackedLayer, maxWidth, maxLength, maxDepth, x, y, z int) {
	for maxDepth > 0 {
		next := p.items.Peek()
		if next == nil || next.Weight > p.remainingWeight {
			return
		}

		orientation, ok := p.factory.BestOrientation(
			next, nil, nil, true,
			maxWidth, maxLength, maxDepth,
			0, x, y, z,
			p.packedItems,
		)
		if !ok {
			return
		}

		p.items.Pop()
		packed := model.NewPackedItem(orientation, x, y, z)
		layer.Insert(packed)
		p.packedItems.Insert(packed)
		p.remainingWeight -= next.Weight

		maxDepth -= orientation.Depth
		z += orientation.Depth
	}
}

// rebuildItemList promotes the skipped items to pending once pending drains,
// then reinserts the current item when one is handed back.
func (p *VolumePacker) rebuildItemList(current *model.Item) {
	if p.items.Count() == 0 {
		p.items = p.skipped
		p.skipped = p.items.EmptyCopy()
	}
	if current != nil {
		p.items.Insert(current)
	}
}

// packedDepth returns the summed depth of the layers laid down so far.
func (p *VolumePacker) packedDepth() int {
	depth := 0
	for _, layer := range p.layers {
		depth += layer.Depth()
	}
	return depth
}
