package catalog

import "github.com/shopspring/decimal"

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func promo(value string) *decimal.Decimal {
	p := decimal.RequireFromString(value)
	return &p
}

// Default returns the storefront's product list. The catalog is
// reference data: it is never mutated at runtime and ships with the
// binary.
func Default() []Entry {
	return []Entry{
		{ID: "milk-1l", Name: "Fresh Milk", ImageRef: "images/products/milk-1l.jpg", RegularPrice: price("55.00"), PromoPrice: promo("49.50"), WeightLabel: "1 L", Category: "dairy"},
		{ID: "bread-400g", Name: "Whole Wheat Bread", ImageRef: "images/products/bread-400g.jpg", RegularPrice: price("40.00"), PromoPrice: promo("35.00"), WeightLabel: "400 g", Category: "bakery"},
		{ID: "eggs-12", Name: "Farm Eggs", ImageRef: "images/products/eggs-12.jpg", RegularPrice: price("95.00"), PromoPrice: promo("89.00"), WeightLabel: "12 pcs", Category: "dairy"},
		{ID: "rice-5kg", Name: "Basmati Rice", ImageRef: "images/products/rice-5kg.jpg", RegularPrice: price("550.00"), PromoPrice: promo("499.00"), WeightLabel: "5 kg", Category: "staples"},
		{ID: "oil-1l", Name: "Sunflower Oil", ImageRef: "images/products/oil-1l.jpg", RegularPrice: price("180.00"), PromoPrice: promo("149.00"), WeightLabel: "1 L", Category: "staples"},
		{ID: "banana-12", Name: "Bananas", ImageRef: "images/products/banana-12.jpg", RegularPrice: price("60.00"), PromoPrice: promo("48.00"), WeightLabel: "1 dozen", Category: "fruits"},
		{ID: "apples-1kg", Name: "Shimla Apples", ImageRef: "images/products/apples-1kg.jpg", RegularPrice: price("160.00"), WeightLabel: "1 kg", Category: "fruits"},
		{ID: "onions-2kg", Name: "Red Onions", ImageRef: "images/products/onions-2kg.jpg", RegularPrice: price("70.00"), WeightLabel: "2 kg", Category: "vegetables"},
		{ID: "tomatoes-1kg", Name: "Tomatoes", ImageRef: "images/products/tomatoes-1kg.jpg", RegularPrice: price("45.00"), WeightLabel: "1 kg", Category: "vegetables"},
		{ID: "butter-500g", Name: "Salted Butter", ImageRef: "images/products/butter-500g.jpg", RegularPrice: price("275.00"), PromoPrice: promo("260.00"), WeightLabel: "500 g", Category: "dairy"},
		{ID: "tea-250g", Name: "Assam Tea", ImageRef: "images/products/tea-250g.jpg", RegularPrice: price("210.00"), PromoPrice: promo("189.00"), WeightLabel: "250 g", Category: "beverages"},
		{ID: "sugar-1kg", Name: "Sugar", ImageRef: "images/products/sugar-1kg.jpg", RegularPrice: price("48.00"), WeightLabel: "1 kg", Category: "staples"},
	}
}

// DefaultLabelOverrides carries the per-product offer labels that
// replace the computed percentage, supplied as data alongside the
// catalog rather than branched in the renderer.
func DefaultLabelOverrides() map[string]string {
	return map[string]string{
		"rice-5kg": "MEGA DEAL",
		"oil-1l":   "HOT PRICE",
	}
}
