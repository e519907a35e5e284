// Package pricing derives the monetary total for a return from the declared
// item size and the optional express add-on. Pure table lookup, no I/O;
// amounts are integer cents.
package pricing

import "boomerang/internal/domain/entities"

const (
	PriceSmallCents  int64 = 500
	PriceMediumCents int64 = 800
	PriceLargeCents  int64 = 1200

	// ExpressSurchargeCents is added on top of the base price when express
	// pickup is requested.
	ExpressSurchargeCents int64 = 300
)

var basePriceCents = map[entities.ItemSize]int64{
	entities.ItemSizeSmall:  PriceSmallCents,
	entities.ItemSizeMedium: PriceMediumCents,
	entities.ItemSizeLarge:  PriceLargeCents,
}

// ComputeTotal returns the total in cents for the size/express combination,
// or 0 when the size is not one of the known values.
func ComputeTotal(size entities.ItemSize, expressPickup bool) int64 {
	base, ok := basePriceCents[size]
	if !ok {
		return 0
	}
	if expressPickup {
		return base + ExpressSurchargeCents
	}
	return base
}
