package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestComputeMetricsEmptyRecette(t *testing.T) {
	m := ComputeMetrics(4, nil)

	assert.Equal(t, 0.0, m.CoutIngredients)
	assert.Nil(t, m.PoidsTotalGrammes)
	assert.Equal(t, 0.0, m.PrixParPortion)
	assert.Nil(t, m.PoidsParPortionGrammes)
}

func TestComputeMetricsSingleLine(t *testing.T) {
	// 2 kg at 5/unit, 4 portions
	m := ComputeMetrics(4, []Ligne{{Quantite: 2, PrixUnitaire: 5, Unite: "kg"}})

	assert.Equal(t, 10.0, m.CoutIngredients)
	require.NotNil(t, m.PoidsTotalGrammes)
	assert.Equal(t, 2000.0, *m.PoidsTotalGrammes)
	assert.Equal(t, 2.5, m.PrixParPortion)
	require.NotNil(t, m.PoidsParPortionGrammes)
	assert.Equal(t, 500.0, *m.PoidsParPortionGrammes)
}

func TestComputeMetricsSkipsUnconvertibleWeights(t *testing.T) {
	m := ComputeMetrics(2, []Ligne{
		{Quantite: 500, PrixUnitaire: 0.01, Unite: "g"},
		{Quantite: 3, PrixUnitaire: 0.4, Unite: "pièce"},
	})

	// both lines cost, only the gram line weighs
	assert.InDelta(t, 6.2, m.CoutIngredients, 1e-9)
	require.NotNil(t, m.PoidsTotalGrammes)
	assert.Equal(t, 500.0, *m.PoidsTotalGrammes)
	require.NotNil(t, m.PoidsParPortionGrammes)
	assert.Equal(t, 250.0, *m.PoidsParPortionGrammes)
}

func TestComputeMetricsNoConvertibleLine(t *testing.T) {
	m := ComputeMetrics(2, []Ligne{{Quantite: 3, PrixUnitaire: 1, Unite: "piece"}})

	assert.Equal(t, 3.0, m.CoutIngredients)
	assert.Nil(t, m.PoidsTotalGrammes)
	assert.Nil(t, m.PoidsParPortionGrammes)
}

func TestComputeMetricsZeroWeightSum(t *testing.T) {
	// a convertible line with zero quantity must not produce a zero weight
	m := ComputeMetrics(1, []Ligne{{Quantite: 0, PrixUnitaire: 2, Unite: "kg"}})

	assert.Equal(t, 0.0, m.CoutIngredients)
	assert.Nil(t, m.PoidsTotalGrammes)
	assert.Nil(t, m.PoidsParPortionGrammes)
}

func TestComputeMetricsZeroPortionsGuard(t *testing.T) {
	m := ComputeMetrics(0, []Ligne{{Quantite: 1, PrixUnitaire: 8, Unite: "kg"}})

	assert.Equal(t, 8.0, m.CoutIngredients)
	assert.Equal(t, 0.0, m.PrixParPortion)
	assert.Nil(t, m.PoidsParPortionGrammes)
}

func TestPrixParPortionTimesPortions(t *testing.T) {
	lignes := []Ligne{
		{Quantite: 1.2, PrixUnitaire: 3.3, Unite: "kg"},
		{Quantite: 7, PrixUnitaire: 0.45, Unite: "piece"},
		{Quantite: 250, PrixUnitaire: 0.002, Unite: "ml"},
	}
	for _, portions := range []int{1, 2, 3, 7} {
		m := ComputeMetrics(portions, lignes)
		assert.InDelta(t, m.CoutIngredients, m.PrixParPortion*float64(portions), 1e-9)
	}
}

func TestResolveCoutTotal(t *testing.T) {
	assert.Equal(t, 12.5, ResolveCoutTotal(floatPtr(12.5), 10))
	assert.Equal(t, 10.0, ResolveCoutTotal(nil, 10))
	// an explicit zero override still wins over the computed value
	assert.Equal(t, 0.0, ResolveCoutTotal(floatPtr(0), 10))
}

func TestRentabilite(t *testing.T) {
	t.Run("no sale price yields nil margin and rate", func(t *testing.T) {
		marge, taux := Rentabilite(nil, 10)
		assert.Nil(t, marge)
		assert.Nil(t, taux)
	})

	t.Run("sale price 20 against cost 10", func(t *testing.T) {
		marge, taux := Rentabilite(floatPtr(20), 10)
		require.NotNil(t, marge)
		require.NotNil(t, taux)
		assert.Equal(t, 10.0, *marge)
		assert.Equal(t, 50.0, *taux)
	})

	t.Run("sale price equal to cost yields zero, not nil", func(t *testing.T) {
		marge, taux := Rentabilite(floatPtr(10), 10)
		require.NotNil(t, marge)
		require.NotNil(t, taux)
		assert.Equal(t, 0.0, *marge)
		assert.Equal(t, 0.0, *taux)
	})

	t.Run("selling below cost yields a negative margin", func(t *testing.T) {
		marge, taux := Rentabilite(floatPtr(8), 10)
		require.NotNil(t, marge)
		require.NotNil(t, taux)
		assert.Equal(t, -2.0, *marge)
		assert.Equal(t, -25.0, *taux)
	})
}
