package costing

// Ligne is one resolved ingredient line: the stored quantity plus the
// referenced ingredient's unit price and unit of measure.
type Ligne struct {
	Quantite     float64
	PrixUnitaire float64
	Unite        string
}

// CoutLigne returns the cost of this line.
func (l Ligne) CoutLigne() float64 {
	return l.Quantite * l.PrixUnitaire
}

// Metrics holds the per-recette figures computed from its ingredient lines.
// Weight figures are nil when no line converts to grams.
type Metrics struct {
	CoutIngredients        float64
	PoidsTotalGrammes      *float64
	PrixParPortion         float64
	PoidsParPortionGrammes *float64
}

// ComputeMetrics aggregates ingredient lines into cost and weight metrics.
// Lines whose unit is not convertible to grams are excluded from the weight
// sum rather than counted as zero. No rounding is applied here; formatting
// happens at the presentation boundary.
func ComputeMetrics(portions int, lignes []Ligne) Metrics {
	var m Metrics
	var poids float64
	converted := false

	for _, l := range lignes {
		m.CoutIngredients += l.CoutLigne()
		if g := ToGrams(l.Quantite, l.Unite); g != nil {
			poids += *g
			converted = true
		}
	}

	if converted && poids > 0 {
		m.PoidsTotalGrammes = &poids
	}

	// portions >= 1 is guaranteed upstream, guard the division anyway
	if portions > 0 {
		m.PrixParPortion = m.CoutIngredients / float64(portions)
		if m.PoidsTotalGrammes != nil {
			perPortion := *m.PoidsTotalGrammes / float64(portions)
			m.PoidsParPortionGrammes = &perPortion
		}
	}

	return m
}

// ResolveCoutTotal applies the single resolution rule for total cost: the
// stored override wins when present, the computed ingredient cost is the
// fallback. Both the fiche assembler and the exporter go through this
// function so the two sources of truth cannot diverge.
func ResolveCoutTotal(override *float64, coutIngredients float64) float64 {
	if override != nil {
		return *override
	}
	return coutIngredients
}

// Rentabilite derives gross margin and profitability rate from an optional
// sale price and a resolved total cost. Both results are nil exactly when
// prixVente is nil: a sale price equal to the cost yields 0 and 0.
func Rentabilite(prixVente *float64, coutTotal float64) (marge *float64, taux *float64) {
	if prixVente == nil {
		return nil, nil
	}
	m := *prixVente - coutTotal
	t := m / *prixVente * 100
	return &m, &t
}
