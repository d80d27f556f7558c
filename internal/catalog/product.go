package catalog

// Product is a single catalog entry as returned by the product feed.
// Products are immutable once fetched; the feed is the source of truth
// and nothing in this process mutates them after decoding.
type Product struct {
	// ID uniquely identifies the product within the feed.
	ID int `json:"id"`

	// Title is the display name of the product.
	Title string `json:"title"`

	// Price is the unit price in the feed's currency.
	Price float64 `json:"price"`

	// Image is the URI of the product image. The terminal UI shows it
	// as a link only; image rendering is out of scope.
	Image string `json:"image"`

	// Rating is the aggregate customer rating.
	Rating Rating `json:"rating"`
}

// Rating is the aggregate review score for a product.
type Rating struct {
	// Rate is the average score on a 0-5 scale.
	Rate float64 `json:"rate"`

	// Count is the number of reviews behind the average.
	Count int `json:"count"`
}
