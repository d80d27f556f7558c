package feedserver

import (
	"fmt"

	"github.com/storewalk/storewalk/internal/catalog"
)

// fixtureSeed describes one built-in product.
type fixtureSeed struct {
	title string
	price float64
	rate  float64
	count int
}

// fixtureSeeds is the built-in catalog. 25 entries: with the default page
// size of 10 the last page is short, so a client walking the fixture feed
// exercises the end-of-feed transition.
var fixtureSeeds = []fixtureSeed{
	{"Fjallraven Foldsack No. 1 Backpack", 109.95, 3.9, 120},
	{"Slim Fit Casual T-Shirt", 22.30, 4.1, 259},
	{"Mens Cotton Jacket", 55.99, 4.7, 500},
	{"Casual Slim Fit Overshirt", 15.99, 2.1, 430},
	{"Silver Dragon Bracelet", 695.00, 4.6, 400},
	{"Micropave Solid Gold Ring", 168.00, 3.9, 70},
	{"White Gold Plated Princess Ring", 9.99, 3.0, 400},
	{"Rose Gold Plated Stainless Earrings", 10.99, 1.9, 100},
	{"Portable External Hard Drive 2TB", 64.00, 3.3, 203},
	{"SSD Internal Drive 1TB", 109.00, 2.9, 470},
	{"SATA III Internal SSD 256GB", 109.00, 4.8, 319},
	{"Gaming Drive 4TB for Consoles", 114.00, 4.8, 400},
	{"FHD IPS Monitor 21.5in", 599.00, 2.9, 250},
	{"Curved Gaming Monitor 49in", 999.99, 2.2, 140},
	{"Womens Snowboard Jacket", 56.99, 2.6, 235},
	{"Faux Leather Moto Biker Jacket", 29.95, 2.9, 340},
	{"Rain Jacket Windbreaker", 39.99, 3.8, 679},
	{"Boat Neck Short Sleeve Blouse", 9.85, 4.7, 130},
	{"Lightweight Moisture-Wicking Shirt", 7.95, 4.5, 146},
	{"Short Sleeve Solid V-Neck Tee", 12.99, 3.6, 145},
	{"Canvas Weekender Duffel Bag", 48.50, 4.2, 88},
	{"Mechanical Keyboard TKL", 89.90, 4.4, 612},
	{"Wireless Ergonomic Mouse", 34.95, 4.0, 821},
	{"USB-C Docking Station 11-in-1", 129.00, 3.7, 256},
	{"Noise Cancelling Headphones", 199.00, 4.6, 1043},
}

// FixtureProducts returns the built-in product catalog. IDs are sequential
// from 1, matching the remote feed's numbering.
func FixtureProducts() []catalog.Product {
	products := make([]catalog.Product, 0, len(fixtureSeeds))
	for i, seed := range fixtureSeeds {
		id := i + 1
		products = append(products, catalog.Product{
			ID:    id,
			Title: seed.title,
			Price: seed.price,
			Image: fmt.Sprintf("https://fakestoreapi.com/img/%d.jpg", id),
			Rating: catalog.Rating{
				Rate:  seed.rate,
				Count: seed.count,
			},
		})
	}
	return products
}
