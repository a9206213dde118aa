package costing

import (
	"fmt"
	"strings"

	"recettes-api/internal/models"
)

var csvHeader = []string{
	"Nom",
	"Type",
	"Portions",
	"Temps préparation (min)",
	"Tags",
	"Prix par portion",
	"Poids par portion (g)",
	"Coût ingrédients",
}

// ExportCSV serializes the given recettes, one row each, preserving input
// order. Monetary cells carry two decimals, the weight cell zero decimals or
// an empty string when no line converts to grams. Every cell is quoted, with
// embedded quotes doubled; encoding/csv is not used because it only quotes
// cells that need it.
func ExportCSV(recettes []models.Recette) string {
	var b strings.Builder
	writeRow(&b, csvHeader)

	for i := range recettes {
		r := &recettes[i]
		metrics := ComputeMetrics(r.Portions, Lignes(r))

		poids := ""
		if metrics.PoidsParPortionGrammes != nil {
			poids = fmt.Sprintf("%.0f", *metrics.PoidsParPortionGrammes)
		}

		writeRow(&b, []string{
			r.Nom,
			r.TypePlat,
			fmt.Sprintf("%d", r.Portions),
			fmt.Sprintf("%d", r.TempsPreparation),
			strings.Join(TagLabels(r), "|"),
			fmt.Sprintf("%.2f", metrics.PrixParPortion),
			poids,
			fmt.Sprintf("%.2f", metrics.CoutIngredients),
		})
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
