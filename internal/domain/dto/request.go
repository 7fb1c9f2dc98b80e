// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "github.com/guttosm/boxpack-service/internal/domain/model"

// maxRequestItems bounds the expanded item count of one request; the packer
// is O(items · boxes · orientations) and unbounded requests are a DoS vector.
const maxRequestItems = 5000

// ItemSpec describes one article to pack.
//
// @Description One article to pack; quantity expands it into identical items
// @Example {"description": "mug", "width": 90, "length": 90, "depth": 100, "weight": 350, "quantity": 2}
type ItemSpec struct {
	// Description identifies the item in the response.
	Description string `json:"description" binding:"required" example:"mug"`
	// Width, Length and Depth are the item dimensions in millimetres.
	Width  int `json:"width" binding:"required,gt=0" example:"90" minimum:"1"`
	Length int `json:"length" binding:"required,gt=0" example:"90" minimum:"1"`
	Depth  int `json:"depth" binding:"required,gt=0" example:"100" minimum:"1"`
	// Weight is the item weight in grams.
	Weight int `json:"weight" binding:"gte=0" example:"350" minimum:"0"`
	// KeepFlat forbids orientations that tip the item over.
	KeepFlat bool `json:"keep_flat" example:"false"`
	// Quantity expands the spec into that many identical items; defaults to 1.
	Quantity int `json:"quantity,omitempty" binding:"gte=0" example:"2" minimum:"0"`
} // @name ItemSpec

// BoxSpec describes one candidate box type.
//
// @Description One candidate box type with inner dimensions and weight limits
// @Example {"reference": "medium-parcel", "inner_width": 350, "inner_length": 250, "inner_depth": 160, "empty_weight": 340, "max_weight": 10000}
type BoxSpec struct {
	// Reference is the caller-facing box identifier.
	Reference string `json:"reference" binding:"required" example:"medium-parcel"`
	// InnerWidth, InnerLength and InnerDepth are usable dimensions in millimetres.
	InnerWidth  int `json:"inner_width" binding:"required,gt=0" example:"350" minimum:"1"`
	InnerLength int `json:"inner_length" binding:"required,gt=0" example:"250" minimum:"1"`
	InnerDepth  int `json:"inner_depth" binding:"required,gt=0" example:"160" minimum:"1"`
	// EmptyWeight is the weight of the empty box in grams.
	EmptyWeight int `json:"empty_weight" binding:"gte=0" example:"340" minimum:"0"`
	// MaxWeight is the maximum gross weight in grams.
	MaxWeight int `json:"max_weight" binding:"required,gt=0" example:"10000" minimum:"1"`
	// Quantity limits how many boxes of this type may be used; nil means unlimited.
	Quantity *int `json:"quantity,omitempty" example:"3"`
} // @name BoxSpec

// PackRequest is the JSON body of the pack endpoint.
//
// @Description Request to pack a set of items into boxes. When boxes is
// omitted the service's active box catalog is used.
type PackRequest struct {
	Items []ItemSpec `json:"items" binding:"required,min=1,dive"`
	Boxes []BoxSpec  `json:"boxes,omitempty" binding:"omitempty,dive"`
} // @name PackRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoItems is returned when a pack request carries no items.
	ErrNoItems = &ValidationError{Field: "items", Message: "at least one item is required"}
	// ErrTooManyItems is returned when the expanded item count exceeds the cap.
	ErrTooManyItems = &ValidationError{Field: "items", Message: "too many items in one request"}
	// ErrInvalidItemDimensions is returned when an item has non-positive dimensions
	// or a negative weight.
	ErrInvalidItemDimensions = &ValidationError{Field: "items", Message: "dimensions must be positive and weight must not be negative"}
	// ErrInvalidBoxDimensions is returned when a box has non-positive dimensions.
	ErrInvalidBoxDimensions = &ValidationError{Field: "boxes", Message: "inner dimensions and max weight must be positive"}
	// ErrInvalidBoxQuantity is returned when a box quantity is negative.
	ErrInvalidBoxQuantity = &ValidationError{Field: "boxes", Message: "quantity must not be negative"}
)

// Validate performs cross-field validation beyond the binding tags.
func (r *PackRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}

	total := 0
	for _, item := range r.Items {
		if item.Width <= 0 || item.Length <= 0 || item.Depth <= 0 || item.Weight < 0 {
			return ErrInvalidItemDimensions
		}
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		total += quantity
		if total > maxRequestItems {
			return ErrTooManyItems
		}
	}

	for _, box := range r.Boxes {
		if box.InnerWidth <= 0 || box.InnerLength <= 0 || box.InnerDepth <= 0 || box.MaxWeight <= 0 || box.EmptyWeight < 0 {
			return ErrInvalidBoxDimensions
		}
		if box.Quantity != nil && *box.Quantity < 0 {
			return ErrInvalidBoxQuantity
		}
	}
	return nil
}

// ToItems expands the request's item specs into domain items; a spec with
// quantity n becomes n entries sharing one Item value.
func (r *PackRequest) ToItems() []*model.Item {
	items := make([]*model.Item, 0, len(r.Items))
	for _, spec := range r.Items {
		item := model.NewItem(spec.Description, spec.Width, spec.Length, spec.Depth, spec.Weight, spec.KeepFlat)
		quantity := spec.Quantity
		if quantity == 0 {
			quantity = 1
		}
		for n := 0; n < quantity; n++ {
			items = append(items, item)
		}
	}
	return items
}

// ToBoxes converts the request's box specs into domain boxes.
func (r *PackRequest) ToBoxes() []*model.Box {
	boxes := make([]*model.Box, 0, len(r.Boxes))
	for _, spec := range r.Boxes {
		if spec.Quantity != nil {
			boxes = append(boxes, model.NewBoxWithSupply(spec.Reference, spec.InnerWidth, spec.InnerLength, spec.InnerDepth, spec.EmptyWeight, spec.MaxWeight, *spec.Quantity))
			continue
		}
		boxes = append(boxes, model.NewBox(spec.Reference, spec.InnerWidth, spec.InnerLength, spec.InnerDepth, spec.EmptyWeight, spec.MaxWeight))
	}
	return boxes
}

// UpdateBoxSetRequest is the JSON body for replacing the active box catalog.
type UpdateBoxSetRequest struct {
	// Boxes is the new catalog.
	Boxes []BoxSpec `json:"boxes" binding:"required,min=1,dive"`
	// CreatedBy identifies who created this configuration.
	CreatedBy string `json:"created_by,omitempty"`
} // @name UpdateBoxSetRequest

// Validate checks the catalog entries.
func (r *UpdateBoxSetRequest) Validate() error {
	if len(r.Boxes) == 0 {
		return ErrInvalidBoxDimensions
	}
	for _, box := range r.Boxes {
		if box.InnerWidth <= 0 || box.InnerLength <= 0 || box.InnerDepth <= 0 || box.MaxWeight <= 0 || box.EmptyWeight < 0 {
			return ErrInvalidBoxDimensions
		}
		if box.Quantity != nil && *box.Quantity < 0 {
			return ErrInvalidBoxQuantity
		}
	}
	return nil
}
