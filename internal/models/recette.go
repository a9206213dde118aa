package models

import "time"

// Recette represents a dish definition with portions, prep time and ingredient lines
type Recette struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	Nom              string              `gorm:"size:255;not null" json:"nom"`
	TypePlat         string              `gorm:"size:100;not null" json:"typePlat"`
	Portions         int                 `gorm:"not null;default:1" json:"portions"`
	TempsPreparation int                 `gorm:"not null;default:0" json:"tempsPreparation"`
	Description      string              `gorm:"type:text" json:"description"`
	Instructions     string              `gorm:"type:text" json:"instructions"`
	PrixVente        *float64            `json:"prixVente"`
	CoutTotal        *float64            `json:"coutTotal"`
	CreatedAt        time.Time           `json:"createdAt"`
	Ingredients      []RecetteIngredient `gorm:"foreignKey:RecetteID" json:"ingredients,omitempty"`
	Tags             []Tag               `gorm:"many2many:recette_tags" json:"tags,omitempty"`
}

// RecetteIngredient links one recette to one ingredient with a quantity.
// The line cost (quantite * prixUnitaire) is derived on read, never stored.
type RecetteIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RecetteID    uint       `gorm:"not null;uniqueIndex:idx_recette_ingredient" json:"recetteId"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_recette_ingredient" json:"ingredientId"`
	Quantite     float64    `gorm:"not null;default:0" json:"quantite"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
}
