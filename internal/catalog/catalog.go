// Package catalog is the built-in food product table used to prefill
// meal entries. Everything is local; there are no network lookups.
package catalog

import "strings"

type Product struct {
	Barcode  string  `json:"barcode"`
	Name     string  `json:"name"`
	PortionG float64 `json:"portion_g"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

var products = []Product{
	{Barcode: "7891000123456", Name: "Plain Nonfat Yogurt", PortionG: 170, Calories: 78, ProteinG: 6.8, CarbsG: 9.1, FatG: 0},
	{Barcode: "7891000987654", Name: "Nut & Chocolate Cereal Bar", PortionG: 25, Calories: 95, ProteinG: 1.2, CarbsG: 15, FatG: 3.5},
	{Barcode: "7896005800019", Name: "Fine Rolled Oats", PortionG: 30, Calories: 104, ProteinG: 4.3, CarbsG: 17, FatG: 2.2},
	{Barcode: "7894321710005", Name: "Zero Sugar Soda", PortionG: 350, Calories: 0, ProteinG: 0, CarbsG: 0, FatG: 0},
	{Barcode: "7896004400010", Name: "Grilled Chicken Breast", PortionG: 100, Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6},
	{Barcode: "7896004400027", Name: "Cooked White Rice", PortionG: 100, Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3},
	{Barcode: "7896004400034", Name: "Cooked Black Beans", PortionG: 100, Calories: 132, ProteinG: 8.9, CarbsG: 23.7, FatG: 0.5},
	{Barcode: "7896004400041", Name: "Banana", PortionG: 118, Calories: 105, ProteinG: 1.3, CarbsG: 27, FatG: 0.4},
	{Barcode: "7896004400058", Name: "Whole Egg", PortionG: 50, Calories: 72, ProteinG: 6.3, CarbsG: 0.4, FatG: 4.8},
	{Barcode: "7896004400065", Name: "Whole Wheat Bread Slice", PortionG: 28, Calories: 69, ProteinG: 3.6, CarbsG: 11.6, FatG: 0.9},
}

// All returns the full product table.
func All() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Search matches products whose name contains the query,
// case-insensitively. An empty query matches nothing.
func Search(query string) []Product {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return nil
	}
	var matches []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// ByBarcode looks a product up by exact barcode.
func ByBarcode(code string) (Product, bool) {
	code = strings.TrimSpace(code)
	for _, p := range products {
		if p.Barcode == code {
			return p, true
		}
	}
	return Product{}, false
}
