package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"recettes-api/internal/models"
)

func TestUpsertIngredientCreates(t *testing.T) {
	svc := NewIngredientService(setupTestDB(t))

	ingredient, err := svc.UpsertIngredient("Beurre", "kg", 8.5)
	require.NoError(t, err)

	assert.NotZero(t, ingredient.ID)
	assert.Equal(t, "Beurre", ingredient.Nom)
	assert.Equal(t, "kg", ingredient.Unite)
	assert.Equal(t, 8.5, ingredient.PrixUnitaire)
}

func TestUpsertIngredientUpdatesByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	first, err := svc.UpsertIngredient("Beurre", "kg", 8.5)
	require.NoError(t, err)

	// price and unit both change on re-upsert of the same name
	second, err := svc.UpsertIngredient("Beurre", "piece", 9.2)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "piece", second.Unite)
	assert.Equal(t, 9.2, second.PrixUnitaire)

	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpsertIngredientPersistsZeroPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	_, err := svc.UpsertIngredient("Beurre", "kg", 8.5)
	require.NoError(t, err)

	// zero is a valid price and must reach storage, not be skipped as a
	// zero-valued field
	second, err := svc.UpsertIngredient("Beurre", "kg", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, second.PrixUnitaire)

	var stored models.Ingredient
	require.NoError(t, db.First(&stored, second.ID).Error)
	assert.Equal(t, 0.0, stored.PrixUnitaire)
	assert.Equal(t, "kg", stored.Unite)
}

func TestUpsertIngredientRejectsNegativePrice(t *testing.T) {
	svc := NewIngredientService(setupTestDB(t))

	_, err := svc.UpsertIngredient("Beurre", "kg", -1)
	assert.ErrorIs(t, err, ErrPrixNegatif)
}

func TestUpdateIngredient(t *testing.T) {
	svc := NewIngredientService(setupTestDB(t))

	created, err := svc.UpsertIngredient("Farine", "kg", 1.1)
	require.NoError(t, err)

	updated, err := svc.UpdateIngredient(created.ID, "Farine T55", "kg", 1.3)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Farine T55", updated.Nom)
	assert.Equal(t, 1.3, updated.PrixUnitaire)
}

func TestUpdateIngredientNotFound(t *testing.T) {
	svc := NewIngredientService(setupTestDB(t))

	_, err := svc.UpdateIngredient(42, "Farine", "kg", 1.3)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateIngredientRejectsNegativePrice(t *testing.T) {
	svc := NewIngredientService(setupTestDB(t))

	created, err := svc.UpsertIngredient("Farine", "kg", 1.1)
	require.NoError(t, err)

	_, err = svc.UpdateIngredient(created.ID, "Farine", "kg", -0.5)
	assert.ErrorIs(t, err, ErrPrixNegatif)
}

func TestListIngredientsOrderedByName(t *testing.T) {
	svc := NewIngredientService(setupTestDB(t))

	for _, nom := range []string{"Sel", "Beurre", "Farine"} {
		_, err := svc.UpsertIngredient(nom, "kg", 1)
		require.NoError(t, err)
	}

	ingredients, err := svc.ListIngredients()
	require.NoError(t, err)

	require.Len(t, ingredients, 3)
	assert.Equal(t, "Beurre", ingredients[0].Nom)
	assert.Equal(t, "Farine", ingredients[1].Nom)
	assert.Equal(t, "Sel", ingredients[2].Nom)
}
