package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recettes-api/internal/models"
	"recettes-api/internal/services"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(&models.Ingredient{}, &models.Recette{}, &models.RecetteIngredient{}, &models.Tag{})
	require.NoError(t, err)

	recettes := NewRecetteController(services.NewRecetteService(db))
	ingredients := NewIngredientController(services.NewIngredientService(db))

	router := gin.New()
	api := router.Group("/api")
	api.GET("/recettes", recettes.GetRecettes)
	api.POST("/recettes/quick", recettes.CreateRecette)
	api.GET("/recettes/export", recettes.ExportCSV)
	api.GET("/recettes/:id/fiche", recettes.GetFiche)
	api.GET("/ingredients", ingredients.GetIngredients)
	api.POST("/ingredients", ingredients.UpsertIngredient)
	api.PUT("/ingredients/:id", ingredients.UpdateIngredient)

	return router, db
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRecetteEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := postJSON(t, router, "/api/recettes/quick", map[string]interface{}{
		"nom":              "Tarte aux Pommes",
		"typePlat":         "Dessert",
		"note":             "Cuire 35 min.",
		"portions":         4,
		"tempsPreparation": 45,
		"prixVente":        20,
		"tags":             "dessert",
		"ingredients": []map[string]interface{}{
			{"nom": "Pommes", "quantite": 2, "unite": "kg"},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var recette models.Recette
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recette))
	assert.NotZero(t, recette.ID)
	assert.Equal(t, "Tarte aux Pommes", recette.Nom)
	assert.Equal(t, "Cuire 35 min.", recette.Description)
	assert.Equal(t, "Cuire 35 min.", recette.Instructions)
	require.Len(t, recette.Ingredients, 1)
}

func TestCreateRecetteEndpointValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	testCases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{name: "missing name", payload: map[string]interface{}{"typePlat": "Plat"}},
		{name: "blank name", payload: map[string]interface{}{"nom": "  ", "typePlat": "Plat"}},
		{name: "missing dish type", payload: map[string]interface{}{"nom": "Soupe"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/recettes/quick", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var apiErr models.APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
			assert.Equal(t, models.ErrValidationFailed, apiErr.Code)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestGetFicheEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)

	// price the ingredient first so the line costs something
	require.NoError(t, db.Create(&models.Ingredient{Nom: "Pommes", Unite: "kg", PrixUnitaire: 5}).Error)

	w := postJSON(t, router, "/api/recettes/quick", map[string]interface{}{
		"nom":       "Tarte aux Pommes",
		"typePlat":  "Dessert",
		"portions":  4,
		"prixVente": 20,
		"ingredients": []map[string]interface{}{
			{"nom": "Pommes", "quantite": 2, "unite": "kg"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Recette
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/recettes/%d/fiche", created.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var fiche map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fiche))
	assert.Equal(t, 10.0, fiche["coutIngredients"])
	assert.Equal(t, 10.0, fiche["coutTotal"])
	assert.Equal(t, 10.0, fiche["margeBrute"])
	assert.Equal(t, 50.0, fiche["tauxRentabilite"])
	assert.Equal(t, 2.5, fiche["prixParPortion"])
	assert.Equal(t, 2000.0, fiche["poidsTotalGrammes"])
	assert.Equal(t, 500.0, fiche["poidsParPortionGrammes"])
}

func TestGetFicheEndpointNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/recettes/999/fiche", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, models.ErrRecetteNotFound, apiErr.Code)
}

func TestGetFicheEndpointBadID(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/recettes/abc/fiche", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecettesEndpointWithSearch(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, nom := range []string{"Tarte aux Pommes", "Poulet rôti"} {
		w := postJSON(t, router, "/api/recettes/quick", map[string]interface{}{
			"nom": nom, "typePlat": "Plat", "portions": 2,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest("GET", "/api/recettes?search=tarte", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summaries []RecetteSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Tarte aux Pommes", summaries[0].Nom)
}

func TestExportCSVEndpoint(t *testing.T) {
	router, db := setupTestRouter(t)

	require.NoError(t, db.Create(&models.Ingredient{Nom: "Pommes", Unite: "kg", PrixUnitaire: 5}).Error)
	w := postJSON(t, router, "/api/recettes/quick", map[string]interface{}{
		"nom": "Tarte aux Pommes", "typePlat": "Dessert", "portions": 4,
		"ingredients": []map[string]interface{}{
			{"nom": "Pommes", "quantite": 2, "unite": "kg"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest("GET", "/api/recettes/export", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"Tarte aux Pommes"`)
	assert.Contains(t, lines[1], `"10.00"`)
}

func TestIngredientEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	// upsert creates
	w := postJSON(t, router, "/api/ingredients", map[string]interface{}{
		"nom": "Beurre", "unite": "kg", "prixUnitaire": 8.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var ingredient models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredient))
	assert.Equal(t, 8.5, ingredient.PrixUnitaire)

	// upsert by the same name updates in place
	w = postJSON(t, router, "/api/ingredients", map[string]interface{}{
		"nom": "Beurre", "unite": "kg", "prixUnitaire": 9.2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, ingredient.ID, updated.ID)
	assert.Equal(t, 9.2, updated.PrixUnitaire)

	// negative prices are rejected
	w = postJSON(t, router, "/api/ingredients", map[string]interface{}{
		"nom": "Beurre", "unite": "kg", "prixUnitaire": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// update by ID
	body, err := json.Marshal(map[string]interface{}{
		"nom": "Beurre doux", "unite": "kg", "prixUnitaire": 9.9,
	})
	require.NoError(t, err)
	req := httptest.NewRequest("PUT", "/api/ingredients/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// list reflects the update
	req = httptest.NewRequest("GET", "/api/ingredients", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var ingredients []models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredients))
	require.Len(t, ingredients, 1)
	assert.Equal(t, "Beurre doux", ingredients[0].Nom)
}
