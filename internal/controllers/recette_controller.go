package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"recettes-api/internal/costing"
	"recettes-api/internal/models"
	"recettes-api/internal/services"
)

// RecetteController handles HTTP requests related to recettes
type RecetteController interface {
	// GetRecettes retrieves recette summaries, optionally filtered by a search string
	GetRecettes(c *gin.Context)
	// GetFiche retrieves the detailed fiche of one recette
	GetFiche(c *gin.Context)
	// CreateRecette creates a new recette from the quick-create form
	CreateRecette(c *gin.Context)
	// ExportCSV streams all recettes as a CSV attachment
	ExportCSV(c *gin.Context)
}

type recetteController struct {
	service services.RecetteService
}

// NewRecetteController creates a new instance of RecetteController
func NewRecetteController(service services.RecetteService) RecetteController {
	return &recetteController{service: service}
}

// RecetteSummary is one entry of the collection view: raw fields merged with
// the computed cost figures
type RecetteSummary struct {
	ID               uint      `json:"id"`
	Nom              string    `json:"nom"`
	TypePlat         string    `json:"typePlat"`
	Portions         int       `json:"portions"`
	TempsPreparation int       `json:"tempsPreparation"`
	Tags             []string  `json:"tags"`
	CoutIngredients  float64   `json:"coutIngredients"`
	PrixParPortion   float64   `json:"prixParPortion"`
	CreatedAt        time.Time `json:"createdAt"`
}

// GetRecettes godoc
// @Summary List recettes
// @Description Get recette summaries sorted by creation time descending, optionally filtered by a case-insensitive search over name, dish type, description, tags and ingredient names
// @Tags recettes
// @Accept json
// @Produce json
// @Param search query string false "Substring to search for"
// @Success 200 {array} RecetteSummary
// @Failure 500 {object} models.APIError
// @Router /api/recettes [get]
func (c *recetteController) GetRecettes(ctx *gin.Context) {
	recettes, err := c.service.ListRecettes(ctx.Query("search"))
	if err != nil {
		log.WithError(err).Error("Failed to list recettes")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve recettes"))
		return
	}

	summaries := make([]RecetteSummary, 0, len(recettes))
	for i := range recettes {
		r := &recettes[i]
		metrics := costing.ComputeMetrics(r.Portions, costing.Lignes(r))
		summaries = append(summaries, RecetteSummary{
			ID:               r.ID,
			Nom:              r.Nom,
			TypePlat:         r.TypePlat,
			Portions:         r.Portions,
			TempsPreparation: r.TempsPreparation,
			Tags:             costing.TagLabels(r),
			CoutIngredients:  metrics.CoutIngredients,
			PrixParPortion:   metrics.PrixParPortion,
			CreatedAt:        r.CreatedAt,
		})
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetFiche godoc
// @Summary Get a recette fiche
// @Description Get the detailed fiche of one recette: raw fields, tags, per-line costs and computed KPIs
// @Tags recettes
// @Accept json
// @Produce json
// @Param id path int true "Recette ID"
// @Success 200 {object} costing.Fiche
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/recettes/{id}/fiche [get]
func (c *recetteController) GetFiche(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid recette ID format"))
		return
	}

	recette, err := c.service.GetRecette(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrRecetteNotFound, "Recette not found"))
			return
		}
		log.WithError(err).Error("Failed to load recette")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve recette"))
		return
	}

	ctx.JSON(http.StatusOK, costing.AssembleFiche(&recette))
}

// CreateRecette godoc
// @Summary Create a recette
// @Description Create a recette from the quick-create form. The note is stored as both description and instructions; ingredients are upserted by name with a zero default price; tags are derived from the explicit tag string and the recette name.
// @Tags recettes
// @Accept json
// @Produce json
// @Param recette body services.CreateRecetteInput true "Recette payload"
// @Success 201 {object} models.Recette
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/recettes/quick [post]
func (c *recetteController) CreateRecette(ctx *gin.Context) {
	var input services.CreateRecetteInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrRecetteInvalidData, "Invalid request body"))
		return
	}

	if strings.TrimSpace(input.Nom) == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Le nom de la recette est requis"))
		return
	}
	if strings.TrimSpace(input.TypePlat) == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Le type de plat est requis"))
		return
	}

	recette, err := c.service.CreateRecette(input)
	if err != nil {
		log.WithError(err).Error("Failed to create recette")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create recette"))
		return
	}
	ctx.JSON(http.StatusCreated, recette)
}

// ExportCSV godoc
// @Summary Export recettes as CSV
// @Description Export all recettes with their computed metrics as a UTF-8 CSV attachment
// @Tags recettes
// @Produce plain
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} models.APIError
// @Router /api/recettes/export [get]
func (c *recetteController) ExportCSV(ctx *gin.Context) {
	recettes, err := c.service.ExportRecettes()
	if err != nil {
		log.WithError(err).Error("Failed to export recettes")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to export recettes"))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="recettes.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(costing.ExportCSV(recettes)))
}
