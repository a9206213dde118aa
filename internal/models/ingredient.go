package models

// Ingredient represents a priced, unit-tagged raw material referenced by recettes
type Ingredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Nom          string  `gorm:"size:255;uniqueIndex;not null" json:"nom"`
	Unite        string  `gorm:"size:50" json:"unite"`
	PrixUnitaire float64 `gorm:"not null;default:0" json:"prixUnitaire"`
	Tags         []Tag   `gorm:"many2many:ingredient_tags" json:"tags,omitempty"`
}
