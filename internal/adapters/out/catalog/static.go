// Package catalog provides the product catalog backing promotional campaigns.
package catalog

import (
	"context"

	"storefront/internal/core/ports"
)

// StaticCatalog serves a fixed set of discounted products.
// Stands in for an upstream catalog service until one is integrated.
type StaticCatalog struct {
	products []ports.DiscountedProduct
}

// NewStaticCatalog creates a catalog with the current promotional lineup.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		products: []ports.DiscountedProduct{
			{
				Name:          "Premium Headphones",
				OriginalPrice: 199.99,
				DiscountPrice: 149.99,
				Description:   "Noise-cancelling wireless headphones with superior sound quality.",
			},
			{
				Name:          "Smart Watch",
				OriginalPrice: 299.99,
				DiscountPrice: 239.99,
				Description:   "Track your fitness and stay connected with our latest smart watch.",
			},
		},
	}
}

// ListDiscounted returns a copy of the current lineup.
func (c *StaticCatalog) ListDiscounted(_ context.Context) ([]ports.DiscountedProduct, error) {
	products := make([]ports.DiscountedProduct, len(c.products))
	copy(products, c.products)
	return products, nil
}
