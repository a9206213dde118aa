package services

import (
	"strings"

	"gorm.io/gorm"

	"recettes-api/internal/costing"
	"recettes-api/internal/models"
)

// LigneInput is one ingredient entry of a recette creation request
type LigneInput struct {
	Nom      string  `json:"nom"`
	Quantite float64 `json:"quantite"`
	Unite    string  `json:"unite"`
}

// CreateRecetteInput carries the fields of the quick-create form. The note is
// stored as both description and instructions.
type CreateRecetteInput struct {
	Nom              string       `json:"nom"`
	TypePlat         string       `json:"typePlat"`
	Note             string       `json:"note"`
	Portions         int          `json:"portions"`
	TempsPreparation int          `json:"tempsPreparation"`
	PrixVente        *float64     `json:"prixVente"`
	CoutTotal        *float64     `json:"coutTotal"`
	Tags             string       `json:"tags"`
	Ingredients      []LigneInput `json:"ingredients"`
}

// RecetteService provides methods to interact with the recette database
type RecetteService interface {
	// CreateRecette creates a recette with its ingredient lines and tags in one transaction
	CreateRecette(input CreateRecetteInput) (models.Recette, error)
	// ListRecettes retrieves recettes sorted by creation time descending, optionally filtered
	ListRecettes(search string) ([]models.Recette, error)
	// GetRecette retrieves a fully preloaded recette by its ID
	GetRecette(id uint) (models.Recette, error)
	// ExportRecettes retrieves all recettes fully preloaded for the CSV export
	ExportRecettes() ([]models.Recette, error)
}

// recetteService is the implementation of the RecetteService interface
type recetteService struct {
	db *gorm.DB
}

// NewRecetteService creates a new instance of RecetteService
func NewRecetteService(db *gorm.DB) RecetteService {
	return &recetteService{db: db}
}

func (s *recetteService) CreateRecette(input CreateRecetteInput) (models.Recette, error) {
	recette := models.Recette{
		Nom:              strings.TrimSpace(input.Nom),
		TypePlat:         strings.TrimSpace(input.TypePlat),
		Portions:         input.Portions,
		TempsPreparation: input.TempsPreparation,
		Description:      input.Note,
		Instructions:     input.Note,
		PrixVente:        input.PrixVente,
		CoutTotal:        input.CoutTotal,
	}

	// Coerce numeric fields to the invariants the costing core assumes
	if recette.Portions < 1 {
		recette.Portions = 1
	}
	if recette.TempsPreparation < 0 {
		recette.TempsPreparation = 0
	}
	if recette.PrixVente != nil && *recette.PrixVente <= 0 {
		recette.PrixVente = nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recette).Error; err != nil {
			return err
		}

		for _, ligne := range input.Ingredients {
			nom := strings.TrimSpace(ligne.Nom)
			if nom == "" {
				continue
			}

			// Upsert the ingredient by name; new ones default to zero price
			var ingredient models.Ingredient
			if err := tx.Where(models.Ingredient{Nom: nom}).
				Attrs(models.Ingredient{Unite: strings.TrimSpace(ligne.Unite)}).
				FirstOrCreate(&ingredient).Error; err != nil {
				return err
			}

			// Upsert the line per (recette, ingredient) pair
			var line models.RecetteIngredient
			if err := tx.Where(models.RecetteIngredient{
				RecetteID:    recette.ID,
				IngredientID: ingredient.ID,
			}).FirstOrCreate(&line).Error; err != nil {
				return err
			}
			if err := tx.Model(&line).Update("quantite", ligne.Quantite).Error; err != nil {
				return err
			}
		}

		for _, label := range costing.DeriveTags(input.Tags, recette.Nom) {
			var tag models.Tag
			if err := tx.Where(models.Tag{Label: label}).
				FirstOrCreate(&tag).Error; err != nil {
				return err
			}
			if err := tx.Model(&recette).Association("Tags").Append(&tag); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.Recette{}, err
	}

	return s.GetRecette(recette.ID)
}

func (s *recetteService) ListRecettes(search string) ([]models.Recette, error) {
	query := s.preloaded().Order("recettes.created_at DESC")

	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.
			Distinct("recettes.*").
			Joins("LEFT JOIN recette_tags ON recette_tags.recette_id = recettes.id").
			Joins("LEFT JOIN tags ON tags.id = recette_tags.tag_id").
			Joins("LEFT JOIN recette_ingredients ON recette_ingredients.recette_id = recettes.id").
			Joins("LEFT JOIN ingredients ON ingredients.id = recette_ingredients.ingredient_id").
			Where("LOWER(recettes.nom) LIKE ? OR LOWER(recettes.type_plat) LIKE ? OR LOWER(recettes.description) LIKE ? OR LOWER(tags.label) LIKE ? OR LOWER(ingredients.nom) LIKE ?",
				like, like, like, like, like)
	}

	var recettes []models.Recette
	if err := query.Find(&recettes).Error; err != nil {
		return nil, err
	}
	return recettes, nil
}

func (s *recetteService) GetRecette(id uint) (models.Recette, error) {
	var recette models.Recette
	if err := s.preloaded().First(&recette, id).Error; err != nil {
		return models.Recette{}, err
	}
	return recette, nil
}

func (s *recetteService) ExportRecettes() ([]models.Recette, error) {
	var recettes []models.Recette
	if err := s.preloaded().Order("recettes.created_at DESC").Find(&recettes).Error; err != nil {
		return nil, err
	}
	return recettes, nil
}

// preloaded returns a query with the associations the costing core needs
func (s *recetteService) preloaded() *gorm.DB {
	return s.db.Model(&models.Recette{}).
		Preload("Ingredients.Ingredient").
		Preload("Tags")
}
