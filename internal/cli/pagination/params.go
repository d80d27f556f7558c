package pagination

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/storewalk/storewalk/internal/catalog"
)

// Validation limits and defaults for listing flags.
const (
	DefaultPage      = 1
	MinPage          = 1
	DefaultPageSize  = 10
	MinPageSize      = 1
	MaxPageSize      = 100
	DefaultSortField = ""
	DefaultSortOrder = "asc"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidPageSize   = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidSortOrder  = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'price:desc')")
	ErrEmptySortField    = errors.New("sort field cannot be empty")
)

// Params holds the listing flags of a CLI invocation.
type Params struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of products per page.
	PageSize int

	// SortField is the field to sort by ("price", "title", "rating", "id").
	SortField string

	// SortOrder is "asc" or "desc".
	SortOrder string
}

// NewParams creates Params with default values.
func NewParams() *Params {
	return &Params{
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
		SortField: DefaultSortField,
		SortOrder: DefaultSortOrder,
	}
}

// Validate checks the parameters for consistency.
func (p Params) Validate() error {
	if p.Page < MinPage {
		return ErrInvalidPage
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	if p.SortOrder != SortOrderAsc && p.SortOrder != SortOrderDesc {
		return fmt.Errorf("%w: got %q", ErrInvalidSortOrder, p.SortOrder)
	}
	return nil
}

// Offset returns the index of the first item on the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ApplyToProducts slices the full dataset down to the requested page.
// A page beyond the end of the dataset yields an empty slice.
func (p Params) ApplyToProducts(items []catalog.Product) []catalog.Product {
	start := p.Offset()
	if start >= len(items) {
		return []catalog.Product{}
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// sortPartsMax is the maximum number of parts in a sort expression (field:order).
const sortPartsMax = 2

// ParseSort parses a sort expression in the format "field" or "field:order".
// Examples: "price", "rating:desc", "title:asc".
func ParseSort(sortStr string) (string, string, error) {
	if sortStr == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	var field, order string
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}

	return field, order, nil
}

// Meta describes a rendered page of a listing.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates page metadata from parameters and the total item count.
func NewMeta(params Params, totalItems int) Meta {
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(params.PageSize)))
	}

	return Meta{
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: params.Page > 1,
		HasNext:     params.Page < totalPages,
	}
}
