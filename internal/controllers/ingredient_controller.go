package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recettes-api/internal/models"
	"recettes-api/internal/services"
)

// IngredientController handles HTTP requests related to ingredients
type IngredientController interface {
	// GetIngredients retrieves all ingredients
	GetIngredients(c *gin.Context)
	// UpsertIngredient creates or updates an ingredient keyed by its unique name
	UpsertIngredient(c *gin.Context)
	// UpdateIngredient updates an ingredient by its ID
	UpdateIngredient(c *gin.Context)
}

type ingredientController struct {
	service services.IngredientService
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(service services.IngredientService) IngredientController {
	return &ingredientController{service: service}
}

// IngredientInput is the payload for ingredient upserts and updates
type IngredientInput struct {
	Nom          string  `json:"nom"`
	Unite        string  `json:"unite"`
	PrixUnitaire float64 `json:"prixUnitaire"`
}

// GetIngredients godoc
// @Summary List ingredients
// @Description Get all ingredients ordered by name
// @Tags ingredients
// @Accept json
// @Produce json
// @Success 200 {array} models.Ingredient
// @Failure 500 {object} models.APIError
// @Router /api/ingredients [get]
func (c *ingredientController) GetIngredients(ctx *gin.Context) {
	ingredients, err := c.service.ListIngredients()
	if err != nil {
		log.WithError(err).Error("Failed to list ingredients")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve ingredients"))
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// UpsertIngredient godoc
// @Summary Upsert an ingredient
// @Description Create or update an ingredient keyed by its unique name
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body IngredientInput true "Ingredient payload"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/ingredients [post]
func (c *ingredientController) UpsertIngredient(ctx *gin.Context) {
	input, ok := bindIngredient(ctx)
	if !ok {
		return
	}

	ingredient, err := c.service.UpsertIngredient(input.Nom, input.Unite, input.PrixUnitaire)
	if err != nil {
		if errors.Is(err, services.ErrPrixNegatif) {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrIngredientInvalidData, "Le prix unitaire ne peut pas être négatif"))
			return
		}
		log.WithError(err).Error("Failed to upsert ingredient")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to save ingredient"))
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Description Update an ingredient's name, unit and price by its ID
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body IngredientInput true "Ingredient payload"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/ingredients/{id} [put]
func (c *ingredientController) UpdateIngredient(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ingredient ID format"))
		return
	}

	input, ok := bindIngredient(ctx)
	if !ok {
		return
	}

	ingredient, err := c.service.UpdateIngredient(uint(id), input.Nom, input.Unite, input.PrixUnitaire)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, "Ingredient not found"))
		case errors.Is(err, services.ErrPrixNegatif):
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrIngredientInvalidData, "Le prix unitaire ne peut pas être négatif"))
		default:
			log.WithError(err).Error("Failed to update ingredient")
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update ingredient"))
		}
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

func bindIngredient(ctx *gin.Context) (IngredientInput, bool) {
	var input IngredientInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrIngredientInvalidData, "Invalid request body"))
		return input, false
	}
	if strings.TrimSpace(input.Nom) == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Le nom de l'ingrédient est requis"))
		return input, false
	}
	return input, true
}
