// Package pagination provides the flag parsing, validation, sorting, and
// result metadata shared by CLI commands that print product listings.
//
// It covers:
//   - Params: --page/--page-size flag validation
//   - Meta: page metadata for rendered listings
//   - ProductSorter: field-validated sorting of product slices
package pagination
