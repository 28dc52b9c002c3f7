package checkout

// Orders above the threshold ship free; everything at or below it pays the
// flat fee. The boundary is exclusive: a subtotal of exactly 500 still
// pays shipping.
const (
	FreeShippingThreshold int64 = 500
	FlatShippingFee       int64 = 50
)

func ShippingCost(subtotal int64) int64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}
