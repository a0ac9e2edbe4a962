package ports

import (
	"context"
	"math"
)

// DiscountedProduct is a catalog entry eligible for a promotional campaign.
type DiscountedProduct struct {
	Name          string
	OriginalPrice float64
	DiscountPrice float64
	Description   string
}

// DiscountPercent returns the discount as a whole percentage,
// rounded to the nearest integer.
func (p DiscountedProduct) DiscountPercent() int {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return int(math.Round((1 - p.DiscountPrice/p.OriginalPrice) * 100))
}

// ProductCatalog exposes the products a campaign can advertise.
// An empty slice with a nil error means there is simply nothing on sale.
type ProductCatalog interface {
	ListDiscounted(ctx context.Context) ([]DiscountedProduct, error)
}
