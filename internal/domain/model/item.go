package model

// ConstraintFunc is an optional per-item placement predicate. It is evaluated
// against the items already packed into the candidate box before each
// placement attempt; returning false vetoes the placement.
type ConstraintFunc func(packed *PackedItemList, box *Box) bool

// Item describes a rectangular article to pack. Dimensions are in integer
// millimetres, weight in integer grams. Items are immutable; the packer
// tracks them by pointer identity.
type Item struct {
	// Description identifies the item in results and log output.
	Description string `json:"description"`
	// Width, Length and Depth are the raw dimensions before orientation.
	Width  int `json:"width"`
	Length int `json:"length"`
	Depth  int `json:"depth"`
	// Weight is the item weight.
	Weight int `json:"weight"`
	// KeepFlat disallows orientations that change which axis points up.
	KeepFlat bool `json:"keep_flat"`

	// Constraint, when non-nil, restricts where the item may be placed.
	Constraint ConstraintFunc `json:"-"`
}

// NewItem creates an unconstrained item.
func NewItem(description string, width, length, depth, weight int, keepFlat bool) *Item {
	return &Item{
		Description: description,
		Width:       width,
		Length:      length,
		Depth:       depth,
		Weight:      weight,
		KeepFlat:    keepFlat,
	}
}

// Volume returns the item volume, identical under every orientation.
func (i *Item) Volume() int {
	return i.Width * i.Length * i.Depth
}

// SmallestDimension returns the item's shortest side.
func (i *Item) SmallestDimension() int {
	s := i.Width
	if i.Length < s {
		s = i.Length
	}
	if i.Depth < s {
		s = i.Depth
	}
	return s
}

// AllowedInBox evaluates the item's placement constraint against the items
// already packed. Unconstrained items are always allowed.
func (i *Item) AllowedInBox(packed *PackedItemList, box *Box) bool {
	return i.Constraint == nil || i.Constraint(packed, box)
}
