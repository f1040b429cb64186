package ringfinder

import (
	"github.com/dustin/go-humanize"
)

// Ring is the product shown on the results view.
type Ring struct {
	Name           string
	Metal          string
	CaratWeight    string
	DiamondDetails string
	Price          int64
	Rating         int
	ReviewCount    int
	Images         []string
}

// Recommend returns the ring to show for sel. Until a pricing service
// exists this is the same placeholder for every selection; sel is passed
// through untouched.
func Recommend(Selection) Ring {
	return Ring{
		Name:           "BRAIDED SOLITAIRE BAND",
		Metal:          "Platinum",
		CaratWeight:    "0.28 CTW",
		DiamondDetails: "3.03 CT, Round Diamond",
		Price:          12345,
		Rating:         5,
		ReviewCount:    106,
		Images: []string{
			"/images/ring-results.png",
			"/images/ring-results.png",
			"/images/ring-results.png",
			"/images/ring-results.png",
		},
	}
}

// FormatPrice renders a whole-dollar price with thousands separators.
func FormatPrice(dollars int64) string {
	return "$" + humanize.Comma(dollars)
}
