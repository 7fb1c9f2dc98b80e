package model

// PackedBox is the result of packing one box: the box plus the placed items
// flattened from layers, bottom-up. Immutable once returned by the packer.
type PackedBox struct {
	Box   *Box
	Items *PackedItemList
}

// NewPackedBox assembles a result record.
func NewPackedBox(box *Box, items *PackedItemList) *PackedBox {
	return &PackedBox{Box: box, Items: items}
}

// ItemCount returns the number of items packed.
func (p *PackedBox) ItemCount() int {
	return p.Items.Count()
}

// ContentWeight returns the summed item weight, excluding the box.
func (p *PackedBox) ContentWeight() int {
	return p.Items.TotalWeight()
}

// GrossWeight returns box plus content weight.
func (p *PackedBox) GrossWeight() int {
	return p.Box.EmptyWeight + p.Items.TotalWeight()
}

// UsedVolume returns the summed item volume.
func (p *PackedBox) UsedVolume() int {
	return p.Items.TotalVolume()
}

// VolumeUtilisation returns the filled fraction of the box, in percent.
func (p *PackedBox) VolumeUtilisation() float64 {
	inner := p.Box.InnerVolume()
	if inner == 0 {
		return 0
	}
	return 100 * float64(p.UsedVolume()) / float64(inner)
}

// PackingResult is the outcome of a multi-box packing run: the boxes used,
// in commit order, and the items no candidate box could take.
type PackingResult struct {
	PackedBoxes []*PackedBox
	Unpacked    []*Item
}

// BoxCount returns the number of boxes used.
func (r *PackingResult) BoxCount() int {
	return len(r.PackedBoxes)
}

// PackedItemCount returns the total number of items placed across boxes.
func (r *PackingResult) PackedItemCount() int {
	total := 0
	for _, pb := range r.PackedBoxes {
		total += pb.ItemCount()
	}
	return total
}
