package model

// Restaurant is a read-only catalog record. The storefront never mutates
// these beyond the initial seeding.
type Restaurant struct {
	ID           int64
	Name         string
	Rating       float64
	Cuisines     []string
	DeliveryTime string
	CostForTwo   int
	PureVeg      bool
}

// Address is a saved delivery address. The first saved address acts as the
// default unless another one is promoted.
type Address struct {
	ID          int64
	Label       string
	FullAddress string
}

// String prefers the label, falling back to the full address.
func (a Address) String() string {
	if a.Label != "" {
		return a.Label
	}
	return a.FullAddress
}
