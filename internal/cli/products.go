package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/storewalk/storewalk/internal/cli/pagination"
	"github.com/storewalk/storewalk/internal/config"
)

// Output format names for the products listing.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// NewProductsCmd creates the "products" command: a non-interactive paged
// listing of the catalog for scripts and quick inspection.
func NewProductsCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		sortExpr string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Print a page of the product catalog",
		Long:  "Fetch the product feed and print one page, optionally sorted. Pagination is client-side over the full feed payload.",
		Example: `  # First page with defaults
  storewalk products

  # Page 2, 5 items per page
  storewalk products --page 2 --page-size 5

  # Most expensive first, as JSON
  storewalk products --sort price:desc --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Global()

			params := pagination.NewParams()
			params.Page = page
			if pageSize > 0 {
				params.PageSize = pageSize
			} else {
				params.PageSize = cfg.Catalog.PageSize
			}

			if output == "" {
				output = cfg.Output.DefaultFormat
			}
			if output != outputTable && output != outputJSON {
				return fmt.Errorf("unsupported output format: %s", output)
			}

			return runProductListing(cmd, cfg, params, sortExpr, output)
		},
	}

	cmd.Flags().IntVar(&page, "page", pagination.DefaultPage, "1-based page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "items per page (default from config)")
	cmd.Flags().StringVar(&sortExpr, "sort", "", "sort expression: field or field:order (fields: id, title, price, rating)")
	cmd.Flags().StringVar(&output, "output", "", "output format: table or json")

	return cmd
}

// productListing is the JSON document printed by --output json.
type productListing struct {
	Products   []productListingRow `json:"products"`
	Pagination pagination.Meta     `json:"pagination"`
}

// productListingRow flattens a product for listing output.
type productListingRow struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
	Count  int     `json:"rating_count"`
	Image  string  `json:"image"`
}

// runProductListing fetches the feed, sorts and slices it, and renders one
// page. Shared by the products command and the browse command's non-TTY
// fallback.
func runProductListing(
	cmd *cobra.Command,
	cfg *config.Config,
	params *pagination.Params,
	sortExpr, output string,
) error {
	field, order, err := pagination.ParseSort(sortExpr)
	if err != nil {
		return err
	}
	params.SortField = field
	params.SortOrder = order

	if validateErr := params.Validate(); validateErr != nil {
		return validateErr
	}

	sorter := pagination.NewProductSorter()
	if field != "" && !sorter.IsValidField(field) {
		return fmt.Errorf("invalid sort field %q (valid: %s)", field, strings.Join(sorter.ValidFields(), ", "))
	}

	products, err := newFeedClient(cfg).Products(cmd.Context())
	if err != nil {
		return err
	}

	if field != "" {
		products = sorter.Sort(products, field, order)
	}

	pageItems := params.ApplyToProducts(products)
	meta := pagination.NewMeta(*params, len(products))

	if output == outputJSON {
		rows := make([]productListingRow, 0, len(pageItems))
		for _, p := range pageItems {
			rows = append(rows, productListingRow{
				ID:     p.ID,
				Title:  p.Title,
				Price:  p.Price,
				Rating: p.Rating.Rate,
				Count:  p.Rating.Count,
				Image:  p.Image,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(productListing{Products: rows, Pagination: meta})
	}

	if len(pageItems) == 0 {
		cmd.Printf("No products on page %d (%d items total).\n", params.Page, len(products))
		return nil
	}

	const tabPadding = 2
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "ID\tTitle\tPrice\tRating")
	fmt.Fprintln(w, "--\t-----\t-----\t------")
	for _, p := range pageItems {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.1f (%d)\n", p.ID, p.Title, p.Price, p.Rating.Rate, p.Rating.Count)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	cmd.Printf("\nPage %d/%d (%d items)\n", meta.CurrentPage, meta.TotalPages, meta.TotalItems)
	return nil
}
