package service

import (
	"github.com/rs/zerolog"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

// BoxPacker is the multi-box loop around VolumePacker. It holds a catalog of
// candidate boxes with optional stock counts and a set of items; Pack tries
// every in-stock box against the remaining items, commits the best result,
// and repeats until everything is placed or nothing more fits. Once a box is
// committed its contents are final.
type BoxPacker struct {
	boxes          []*model.Box
	items          *model.ItemList
	lookAheadItems int
	logger         zerolog.Logger
}

// BoxPackerOption configures a BoxPacker.
type BoxPackerOption func(*BoxPacker)

// WithBoxPackerLogger directs the packing trace to the given logger.
func WithBoxPackerLogger(logger zerolog.Logger) BoxPackerOption {
	return func(b *BoxPacker) {
		b.logger = logger
	}
}

// WithBoxPackerLookAhead bounds the per-placement look-ahead fan-out of the
// inner volume packers.
func WithBoxPackerLookAhead(n int) BoxPackerOption {
	return func(b *BoxPacker) {
		b.lookAheadItems = n
	}
}

// NewBoxPacker creates an empty packer ordering items by the given key
// (SortKeyMaxExtent when nil).
func NewBoxPacker(key model.SortKey, opts ...BoxPackerOption) *BoxPacker {
	b := &BoxPacker{
		items:  model.NewItemList(key),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddBox registers a candidate box type.
func (b *BoxPacker) AddBox(box *model.Box) {
	b.boxes = append(b.boxes, box)
}

// AddItem queues an item count times.
func (b *BoxPacker) AddItem(item *model.Item, count int) {
	for n := 0; n < count; n++ {
		b.items.Insert(item)
	}
}

// Pack distributes the queued items across boxes. The result lists the boxes
// in commit order plus the items no candidate box could take; it is never an
// error for items to remain unpacked.
func (b *BoxPacker) Pack() *model.PackingResult {
	result := &model.PackingResult{}

	for b.items.Count() > 0 {
		best := b.packBestBox()
		if best == nil || best.ItemCount() == 0 {
			break
		}

		best.Box.DecreaseAmount()
		for _, packed := range best.Items.Items() {
			b.items.Remove(packed.Item)
		}
		result.PackedBoxes = append(result.PackedBoxes, best)

		b.logger.Debug().
			Str("box", best.Box.Reference).
			Int("items", best.ItemCount()).
			Int("remaining", b.items.Count()).
			Msg("box committed")
	}

	for b.items.Count() > 0 {
		result.Unpacked = append(result.Unpacked, b.items.Pop())
	}
	return result
}

// packBestBox trial-packs the remaining items into every in-stock box and
// returns the strongest result: most items placed, then best volume
// utilisation, then lightest box. Returns nil when the catalog is empty or
// exhausted.
func (b *BoxPacker) packBestBox() *model.PackedBox {
	var best *model.PackedBox
	for _, box := range b.boxes {
		if !box.InStock() {
			continue
		}

		packer := NewVolumePacker(box, b.items.Clone(),
			WithPackerLogger(b.logger),
			WithLookAheadItems(b.lookAheadItems))
		candidate := packer.Pack()

		if better(candidate, best) {
			best = candidate
		}
	}
	return best
}

// better reports whether candidate beats incumbent.
func better(candidate, incumbent *model.PackedBox) bool {
	if incumbent == nil {
		return true
	}
	if candidate.ItemCount() != incumbent.ItemCount() {
		return candidate.ItemCount() > incumbent.ItemCount()
	}
	if candidate.VolumeUtilisation() != incumbent.VolumeUtilisation() {
		return candidate.VolumeUtilisation() > incumbent.VolumeUtilisation()
	}
	return candidate.Box.EmptyWeight < incumbent.Box.EmptyWeight
}
