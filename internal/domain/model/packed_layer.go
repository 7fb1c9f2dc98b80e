package model

// PackedLayer is an ordered collection of packed items sharing an overlapping
// vertical range, built bottom-up during packing.
type PackedLayer struct {
	items []PackedItem
}

// NewPackedLayer creates an empty layer.
func NewPackedLayer() *PackedLayer {
	return &PackedLayer{}
}

// Insert appends an item; iteration preserves insertion order.
func (l *PackedLayer) Insert(item PackedItem) {
	l.items = append(l.items, item)
}

// Items returns the layer's items in insertion order.
func (l *PackedLayer) Items() []PackedItem {
	return l.items
}

// ItemCount returns the number of items in the layer.
func (l *PackedLayer) ItemCount() int {
	return len(l.items)
}

// StartDepth returns the lowest Z coordinate in the layer, 0 when empty.
func (l *PackedLayer) StartDepth() int {
	if len(l.items) == 0 {
		return 0
	}
	minZ := l.items[0].Z
	for _, item := range l.items[1:] {
		if item.Z < minZ {
			minZ = item.Z
		}
	}
	return minZ
}

// Depth returns the vertical extent of the layer: the span between its
// lowest bottom face and highest top face.
func (l *PackedLayer) Depth() int {
	if len(l.items) == 0 {
		return 0
	}
	maxZ := l.items[0].MaxZ()
	for _, item := range l.items[1:] {
		if item.MaxZ() > maxZ {
			maxZ = item.MaxZ()
		}
	}
	return maxZ - l.StartDepth()
}

// Footprint returns the XY area spanned by the layer's items: the bounding
// rectangle of their horizontal extents.
func (l *PackedLayer) Footprint() int {
	if len(l.items) == 0 {
		return 0
	}
	minX, minY := l.items[0].X, l.items[0].Y
	maxX, maxY := l.items[0].MaxX(), l.items[0].MaxY()
	for _, item := range l.items[1:] {
		if item.X < minX {
			minX = item.X
		}
		if item.Y < minY {
			minY = item.Y
		}
		if item.MaxX() > maxX {
			maxX = item.MaxX()
		}
		if item.MaxY() > maxY {
			maxY = item.MaxY()
		}
	}
	return (maxX - minX) * (maxY - minY)
}

// ShiftedTo rebuilds the layer with every item's Z translated so the layer
// bottom sits at startDepth. Items keep their X/Y and relative stacking.
func (l *PackedLayer) ShiftedTo(startDepth int) *PackedLayer {
	offset := startDepth - l.StartDepth()
	shifted := NewPackedLayer()
	for _, item := range l.items {
		item.Z += offset
		shifted.Insert(item)
	}
	return shifted
}

// Rotated rebuilds the layer with every item transposed back into the box's
// original frame.
func (l *PackedLayer) Rotated() *PackedLayer {
	out := NewPackedLayer()
	for _, item := range l.items {
		out.Insert(item.rotated())
	}
	return out
}
