package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"recettes-api/internal/models"
)

// ErrPrixNegatif is returned when an ingredient price update carries a negative price
var ErrPrixNegatif = errors.New("prix unitaire must not be negative")

// IngredientService provides methods to interact with the ingredient database
type IngredientService interface {
	// UpsertIngredient creates or updates an ingredient keyed by its unique name
	UpsertIngredient(nom, unite string, prixUnitaire float64) (models.Ingredient, error)
	// UpdateIngredient updates an existing ingredient by its ID
	UpdateIngredient(id uint, nom, unite string, prixUnitaire float64) (models.Ingredient, error)
	// ListIngredients retrieves all ingredients ordered by name
	ListIngredients() ([]models.Ingredient, error)
}

// ingredientService is the implementation of the IngredientService interface
type ingredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new instance of IngredientService
func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) UpsertIngredient(nom, unite string, prixUnitaire float64) (models.Ingredient, error) {
	if prixUnitaire < 0 {
		return models.Ingredient{}, ErrPrixNegatif
	}

	nom = strings.TrimSpace(nom)
	var ingredient models.Ingredient
	// Assign with a map: struct-based assigns would skip zero values and
	// silently drop a price update down to 0
	err := s.db.Where(models.Ingredient{Nom: nom}).
		Assign(map[string]interface{}{
			"nom":           nom,
			"unite":         strings.TrimSpace(unite),
			"prix_unitaire": prixUnitaire,
		}).
		FirstOrCreate(&ingredient).Error
	if err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (s *ingredientService) UpdateIngredient(id uint, nom, unite string, prixUnitaire float64) (models.Ingredient, error) {
	if prixUnitaire < 0 {
		return models.Ingredient{}, ErrPrixNegatif
	}

	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		return models.Ingredient{}, err
	}

	ingredient.Nom = strings.TrimSpace(nom)
	ingredient.Unite = strings.TrimSpace(unite)
	ingredient.PrixUnitaire = prixUnitaire
	if err := s.db.Save(&ingredient).Error; err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (s *ingredientService) ListIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Order("nom").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
