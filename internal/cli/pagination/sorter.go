package pagination

import (
	"sort"

	"github.com/storewalk/storewalk/internal/catalog"
)

// ProductSorter sorts product slices by a validated field name.
type ProductSorter struct {
	validFields map[string]bool
}

// NewProductSorter creates a sorter with the supported sort fields.
func NewProductSorter() *ProductSorter {
	return &ProductSorter{
		validFields: map[string]bool{
			"id":     true,
			"title":  true,
			"price":  true,
			"rating": true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *ProductSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// ValidFields returns all supported sort fields in a consistent order.
func (s *ProductSorter) ValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a new slice sorted by the given field and order; the original
// is not modified. An invalid field returns the input unchanged.
func (s *ProductSorter) Sort(products []catalog.Product, field, order string) []catalog.Product {
	if !s.IsValidField(field) {
		return products
	}

	sorted := make([]catalog.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j to keep the sort stable.
		if order == SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case "id":
			return sorted[i].ID < sorted[j].ID
		case "title":
			return sorted[i].Title < sorted[j].Title
		case "price":
			return sorted[i].Price < sorted[j].Price
		case "rating":
			return sorted[i].Rating.Rate < sorted[j].Rating.Rate
		default:
			return false
		}
	})

	return sorted
}
