// Package model defines the core domain entities for the box packing service.
package model

// Box describes a rectangular shipping container available for packing.
// Dimensions are inner dimensions in integer millimetres; weights are in
// integer grams. A Box is immutable apart from its optional supply counter.
type Box struct {
	// Reference is the caller-facing identifier (SKU, carton code).
	Reference string `json:"reference"`
	// InnerWidth is the usable extent along the box X axis.
	InnerWidth int `json:"inner_width"`
	// InnerLength is the usable extent along the box Y axis.
	InnerLength int `json:"inner_length"`
	// InnerDepth is the usable extent along the box Z axis.
	InnerDepth int `json:"inner_depth"`
	// EmptyWeight is the weight of the empty box.
	EmptyWeight int `json:"empty_weight"`
	// MaxWeight is the maximum gross weight (box plus contents).
	MaxWeight int `json:"max_weight"`

	// remaining tracks available stock; nil means unlimited supply.
	remaining *int
}

// NewBox creates a box with unlimited supply.
func NewBox(reference string, innerWidth, innerLength, innerDepth, emptyWeight, maxWeight int) *Box {
	return &Box{
		Reference:   reference,
		InnerWidth:  innerWidth,
		InnerLength: innerLength,
		InnerDepth:  innerDepth,
		EmptyWeight: emptyWeight,
		MaxWeight:   maxWeight,
	}
}

// NewBoxWithSupply creates a box with a limited stock count.
func NewBoxWithSupply(reference string, innerWidth, innerLength, innerDepth, emptyWeight, maxWeight, amount int) *Box {
	b := NewBox(reference, innerWidth, innerLength, innerDepth, emptyWeight, maxWeight)
	b.remaining = &amount
	return b
}

// InnerVolume returns the usable volume of the box.
func (b *Box) InnerVolume() int {
	return b.InnerWidth * b.InnerLength * b.InnerDepth
}

// MaxContentWeight returns the weight budget available for items.
func (b *Box) MaxContentWeight() int {
	return b.MaxWeight - b.EmptyWeight
}

// RemainingAmount returns the current stock count. The second return value
// is false when the box has unlimited supply.
func (b *Box) RemainingAmount() (int, bool) {
	if b.remaining == nil {
		return 0, false
	}
	return *b.remaining, true
}

// InStock reports whether at least one box of this type is still available.
func (b *Box) InStock() bool {
	return b.remaining == nil || *b.remaining > 0
}

// DecreaseAmount consumes one unit of stock. No-op for unlimited boxes.
func (b *Box) DecreaseAmount() {
	if b.remaining != nil && *b.remaining > 0 {
		*b.remaining--
	}
}
