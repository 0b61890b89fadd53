package dto

import (
	"time"

	"github.com/yigit/registrar/internal/pkg/listing"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Message   string       `json:"message,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in an APIResponse.
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Data:      data,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse wraps a failure in an APIResponse.
func NewErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	}
}

// ListResponse is one page of a list endpoint plus the pagination metadata of the whole
// match set.
type ListResponse[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total" example:"42"`
	Pages       int   `json:"pages" example:"5"`
	CurrentPage int   `json:"current_page" example:"1"`
	PerPage     int   `json:"per_page" example:"10"`
}

// NewListResponse converts a listing result, mapping each item through conv.
func NewListResponse[T, R any](res *listing.Result[T], conv func(T) R) ListResponse[R] {
	items := make([]R, 0, len(res.Items))
	for _, item := range res.Items {
		items = append(items, conv(item))
	}
	return ListResponse[R]{
		Items:       items,
		Total:       res.Total,
		Pages:       res.Pages,
		CurrentPage: res.CurrentPage,
		PerPage:     res.PerPage,
	}
}

// DeleteResponse reports a deleted record and how many dependents were detached from it.
type DeleteResponse struct {
	Deleted  string `json:"deleted" example:"CCS"`
	Detached int64  `json:"detached" example:"2"`
	Message  string `json:"message" example:"College deleted"`
}

// DropdownItem is a code/name pair for selection lists.
type DropdownItem struct {
	Code string `json:"code" example:"CCS"`
	Name string `json:"name" example:"College of Computer Studies"`
}
