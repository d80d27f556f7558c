package tui

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/storewalk/storewalk/internal/catalog"
)

// Row layout constants.
const (
	maxTitleDisplayLen = 44
	truncateSuffix     = "..."
	priceColumnWidth   = 12
	ratingScaleMax     = 5
	cursorMarker       = "> "
	noCursorMarker     = "  "
)

// PriceFormatter renders prices in a configured ISO 4217 currency.
type PriceFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewPriceFormatter creates a formatter for the given currency code,
// falling back to USD when the code is not a known ISO 4217 unit.
func NewPriceFormatter(code string) *PriceFormatter {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	return &PriceFormatter{
		printer: message.NewPrinter(language.English),
		unit:    unit,
	}
}

// Format renders a price with the currency's narrow symbol, e.g. "$109.95".
func (f *PriceFormatter) Format(value float64) string {
	return f.printer.Sprintf("%v", currency.NarrowSymbol(f.unit.Amount(value)))
}

// renderStars renders a 0-5 rating as filled and empty stars.
func renderStars(rate float64) string {
	filled := int(math.Round(rate))
	if filled < 0 {
		filled = 0
	}
	if filled > ratingScaleMax {
		filled = ratingScaleMax
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", ratingScaleMax-filled)
}

// truncateTitle shortens a product title to the display column width.
func truncateTitle(title string) string {
	if len(title) <= maxTitleDisplayLen {
		return title
	}
	return title[:maxTitleDisplayLen-len(truncateSuffix)] + truncateSuffix
}

// renderProductRow formats one catalog row: cursor marker, title, price,
// rating stars, and review count.
func renderProductRow(f *PriceFormatter, p catalog.Product, selected bool) string {
	marker := noCursorMarker
	if selected {
		marker = cursorMarker
	}

	row := fmt.Sprintf("%s%-*s  %*s  %s (%d)",
		marker,
		maxTitleDisplayLen, truncateTitle(p.Title),
		priceColumnWidth, f.Format(p.Price),
		renderStars(p.Rating.Rate), p.Rating.Count,
	)

	if selected {
		return SelectedRowStyle.Render(row)
	}
	return ValueStyle.Render(row)
}

// renderSkeletonRow renders a placeholder row shown while the first page is
// loading.
func renderSkeletonRow() string {
	return SubtleStyle.Render(fmt.Sprintf("%s%s  %s  %s",
		noCursorMarker,
		strings.Repeat("░", maxTitleDisplayLen),
		strings.Repeat("░", priceColumnWidth),
		strings.Repeat("░", ratingScaleMax),
	))
}
