package models

// Tag is a normalized label, unique globally and shared across recettes and ingredients
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"size:100;uniqueIndex;not null" json:"label"`
}
