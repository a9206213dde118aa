package costing

import (
	"time"

	"recettes-api/internal/models"
)

// FicheIngredient is one line of the fiche's ingredient breakdown
type FicheIngredient struct {
	Nom       string  `json:"nom"`
	Quantite  float64 `json:"quantite"`
	Unite     string  `json:"unite"`
	CoutLigne float64 `json:"coutLigne"`
}

// Fiche is the detailed single-recette view: raw fields plus computed KPIs.
// MargeBrute and TauxRentabilite are null when no sale price is set.
type Fiche struct {
	ID                     uint              `json:"id"`
	Nom                    string            `json:"nom"`
	TypePlat               string            `json:"typePlat"`
	Portions               int               `json:"portions"`
	TempsPreparation       int               `json:"tempsPreparation"`
	Description            string            `json:"description"`
	Instructions           string            `json:"instructions"`
	Tags                   []string          `json:"tags"`
	CoutIngredients        float64           `json:"coutIngredients"`
	CoutTotal              float64           `json:"coutTotal"`
	PrixVente              *float64          `json:"prixVente"`
	MargeBrute             *float64          `json:"margeBrute"`
	TauxRentabilite        *float64          `json:"tauxRentabilite"`
	PrixParPortion         float64           `json:"prixParPortion"`
	PoidsTotalGrammes      *float64          `json:"poidsTotalGrammes"`
	PoidsParPortionGrammes *float64          `json:"poidsParPortionGrammes"`
	CreatedAt              time.Time         `json:"createdAt"`
	Ingredients            []FicheIngredient `json:"ingredients"`
}

// Lignes maps a recette's preloaded ingredient associations to costing lines.
func Lignes(r *models.Recette) []Ligne {
	lignes := make([]Ligne, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		lignes = append(lignes, Ligne{
			Quantite:     ri.Quantite,
			PrixUnitaire: ri.Ingredient.PrixUnitaire,
			Unite:        ri.Ingredient.Unite,
		})
	}
	return lignes
}

// TagLabels flattens a recette's tag associations to plain label strings.
func TagLabels(r *models.Recette) []string {
	labels := make([]string, 0, len(r.Tags))
	for _, t := range r.Tags {
		labels = append(labels, t.Label)
	}
	return labels
}

// AssembleFiche composes the fiche for a fully preloaded recette. The caller
// is responsible for existence checking; a missing recette must be rejected
// before this point.
func AssembleFiche(r *models.Recette) Fiche {
	metrics := ComputeMetrics(r.Portions, Lignes(r))
	coutTotal := ResolveCoutTotal(r.CoutTotal, metrics.CoutIngredients)
	marge, taux := Rentabilite(r.PrixVente, coutTotal)

	ingredients := make([]FicheIngredient, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		ingredients = append(ingredients, FicheIngredient{
			Nom:       ri.Ingredient.Nom,
			Quantite:  ri.Quantite,
			Unite:     ri.Ingredient.Unite,
			CoutLigne: ri.Quantite * ri.Ingredient.PrixUnitaire,
		})
	}

	return Fiche{
		ID:                     r.ID,
		Nom:                    r.Nom,
		TypePlat:               r.TypePlat,
		Portions:               r.Portions,
		TempsPreparation:       r.TempsPreparation,
		Description:            r.Description,
		Instructions:           r.Instructions,
		Tags:                   TagLabels(r),
		CoutIngredients:        metrics.CoutIngredients,
		CoutTotal:              coutTotal,
		PrixVente:              r.PrixVente,
		MargeBrute:             marge,
		TauxRentabilite:        taux,
		PrixParPortion:         metrics.PrixParPortion,
		PoidsTotalGrammes:      metrics.PoidsTotalGrammes,
		PoidsParPortionGrammes: metrics.PoidsParPortionGrammes,
		CreatedAt:              r.CreatedAt,
		Ingredients:            ingredients,
	}
}
