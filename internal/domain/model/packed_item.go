package model

// PackedItem is an orientated item fixed at integer coordinates measured from
// the box's lower-front-left corner. Instances are value records; the packer
// rebuilds rather than mutates them.
type PackedItem struct {
	Item   *Item `json:"item"`
	X      int   `json:"x"`
	Y      int   `json:"y"`
	Z      int   `json:"z"`
	Width  int   `json:"width"`
	Length int   `json:"length"`
	Depth  int   `json:"depth"`
}

// NewPackedItem places an orientated item at the given coordinates.
func NewPackedItem(o OrientatedItem, x, y, z int) PackedItem {
	return PackedItem{
		Item:   o.Item,
		X:      x,
		Y:      y,
		Z:      z,
		Width:  o.Width,
		Length: o.Length,
		Depth:  o.Depth,
	}
}

// MaxX returns the far extent along X.
func (p PackedItem) MaxX() int { return p.X + p.Width }

// MaxY returns the far extent along Y.
func (p PackedItem) MaxY() int { return p.Y + p.Length }

// MaxZ returns the far extent along Z.
func (p PackedItem) MaxZ() int { return p.Z + p.Depth }

// Volume returns the occupied volume.
func (p PackedItem) Volume() int { return p.Width * p.Length * p.Depth }

// rotated returns the item transposed into the box's original frame after
// the packer worked in a 90°-rotated frame: X and Y swap, as do width and
// length.
func (p PackedItem) rotated() PackedItem {
	return PackedItem{
		Item:   p.Item,
		X:      p.Y,
		Y:      p.X,
		Z:      p.Z,
		Width:  p.Length,
		Length: p.Width,
		Depth:  p.Depth,
	}
}

// PackedItemList accumulates packed items across layers, in placement order.
// It is the set placement constraints are evaluated against.
type PackedItemList struct {
	items []PackedItem
}

// NewPackedItemList creates an empty list.
func NewPackedItemList() *PackedItemList {
	return &PackedItemList{}
}

// Insert appends a packed item.
func (l *PackedItemList) Insert(item PackedItem) {
	l.items = append(l.items, item)
}

// Count returns the number of packed items.
func (l *PackedItemList) Count() int {
	return len(l.items)
}

// Items returns the packed items in placement order.
func (l *PackedItemList) Items() []PackedItem {
	return l.items
}

// TotalWeight sums the item weights, excluding the box.
func (l *PackedItemList) TotalWeight() int {
	total := 0
	for _, item := range l.items {
		total += item.Item.Weight
	}
	return total
}

// TotalVolume sums the occupied volume.
func (l *PackedItemList) TotalVolume() int {
	total := 0
	for _, item := range l.items {
		total += item.Volume()
	}
	return total
}
