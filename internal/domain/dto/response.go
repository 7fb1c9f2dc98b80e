package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/boxpack-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// PackedItemDTO is one placed item with its position and orientated
// dimensions in the box's original frame.
// @Description One placed item with coordinates from the box's lower-front-left corner
type PackedItemDTO struct {
	Description string `json:"description" example:"mug"`
	X           int    `json:"x" example:"0"`
	Y           int    `json:"y" example:"0"`
	Z           int    `json:"z" example:"0"`
	Width       int    `json:"width" example:"90"`
	Length      int    `json:"length" example:"90"`
	Depth       int    `json:"depth" example:"100"`
	Weight      int    `json:"weight" example:"350"`
} // @name PackedItem

// PackedBoxDTO is one used box with its contents.
// @Description One used box with its placed items and utilisation figures
type PackedBoxDTO struct {
	Reference         string          `json:"reference" example:"medium-parcel"`
	InnerWidth        int             `json:"inner_width" example:"350"`
	InnerLength       int             `json:"inner_length" example:"250"`
	InnerDepth        int             `json:"inner_depth" example:"160"`
	GrossWeight       int             `json:"gross_weight" example:"690"`
	VolumeUtilisation float64         `json:"volume_utilisation" example:"5.79"`
	Items             []PackedItemDTO `json:"items"`
} // @name PackedBox

// UnpackedItemDTO is an item no candidate box could take.
// @Description An item that could not be placed into any box
type UnpackedItemDTO struct {
	Description string `json:"description" example:"sofa"`
	Width       int    `json:"width" example:"2000"`
	Length      int    `json:"length" example:"800"`
	Depth       int    `json:"depth" example:"900"`
	Weight      int    `json:"weight" example:"35000"`
} // @name UnpackedItem

// PackResponse is the payload of a successful pack call.
// @Description Packing result: boxes in commit order plus unplaceable items
type PackResponse struct {
	PackedBoxes []PackedBoxDTO    `json:"packed_boxes"`
	Unpacked    []UnpackedItemDTO `json:"unpacked"`
	BoxesUsed   int               `json:"boxes_used" example:"1"`
	ItemsPacked int               `json:"items_packed" example:"2"`
} // @name PackResponse

// NewPackResponse maps a domain packing result onto the wire shape.
func NewPackResponse(result *model.PackingResult) PackResponse {
	response := PackResponse{
		PackedBoxes: make([]PackedBoxDTO, 0, len(result.PackedBoxes)),
		Unpacked:    make([]UnpackedItemDTO, 0, len(result.Unpacked)),
		BoxesUsed:   result.BoxCount(),
		ItemsPacked: result.PackedItemCount(),
	}

	for _, pb := range result.PackedBoxes {
		boxDTO := PackedBoxDTO{
			Reference:         pb.Box.Reference,
			InnerWidth:        pb.Box.InnerWidth,
			InnerLength:       pb.Box.InnerLength,
			InnerDepth:        pb.Box.InnerDepth,
			GrossWeight:       pb.GrossWeight(),
			VolumeUtilisation: pb.VolumeUtilisation(),
			Items:             make([]PackedItemDTO, 0, pb.ItemCount()),
		}
		for _, item := range pb.Items.Items() {
			boxDTO.Items = append(boxDTO.Items, PackedItemDTO{
				Description: item.Item.Description,
				X:           item.X,
				Y:           item.Y,
				Z:           item.Z,
				Width:       item.Width,
				Length:      item.Length,
				Depth:       item.Depth,
				Weight:      item.Item.Weight,
			})
		}
		response.PackedBoxes = append(response.PackedBoxes, boxDTO)
	}

	for _, item := range result.Unpacked {
		response.Unpacked = append(response.Unpacked, UnpackedItemDTO{
			Description: item.Description,
			Width:       item.Width,
			Length:      item.Length,
			Depth:       item.Depth,
			Weight:      item.Weight,
		})
	}
	return response
}

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (PackResponse for the pack endpoint)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items: at least one item is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
