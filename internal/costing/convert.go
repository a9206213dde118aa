// Package costing holds the pure computational core of the recipe costing
// application: unit conversion, cost and margin metrics, tag derivation,
// fiche assembly and CSV export. Nothing in this package touches storage.
package costing

import "strings"

// ToGrams converts a quantity expressed in the given unit to grams.
// Liters are treated as kilograms (water-like density assumption).
// Units that do not map to a mass return nil, never an error: "piece",
// "pinch" and friends are simply not convertible.
func ToGrams(quantite float64, unite string) *float64 {
	var grams float64
	switch strings.ToLower(strings.TrimSpace(unite)) {
	case "kg", "kilo", "kilogramme":
		grams = quantite * 1000
	case "g", "gramme", "grammes":
		grams = quantite
	case "l", "litre", "litres":
		grams = quantite * 1000
	case "ml":
		grams = quantite
	default:
		return nil
	}
	return &grams
}
