package catalog

import "math"

// DiscountPercent computes the displayed discount as a whole percentage,
// rounded up. The caller guarantees price > 0 and discountedPrice < price;
// equal prices yield 0.
func DiscountPercent(price, discountedPrice float64) int {
	return int(math.Ceil((price - discountedPrice) / price * 100))
}
