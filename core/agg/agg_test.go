package agg

import (
	"testing"

	"github.com/Daniromero1410/Mentis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(c schema.Category, n int, r string, text string) schema.RatedItem {
	it := schema.RatedItem{Category: c, ItemNumber: n, ItemText: text}
	if r != "" {
		it.Rating = schema.RatingPtr(schema.Rating(r))
	}
	return it
}

func TestAggregateCategories_ScoreAndPercentages(t *testing.T) {
	items := []schema.RatedItem{
		item(schema.DemandasJornada, 1, "alto", "Trabajo en horario nocturno"),
		item(schema.DemandasJornada, 2, "medio", "Días de trabajo consecutivo sin descanso"),
	}

	scores := AggregateCategories(items, schema.GetDefaultCategoryWeights())
	require.Len(t, scores, 1)

	cs := scores[0]
	assert.Equal(t, schema.DemandasJornada, cs.Category)
	assert.InDelta(t, 2.5, cs.RawMean, 1e-9)
	assert.InDelta(t, 2.75, cs.Score, 1e-9)
	assert.Equal(t, schema.RatingCounts{Alto: 1, Medio: 1}, cs.Counts)
	assert.InDelta(t, 50.0, cs.PercentageHigh(), 1e-9)
	assert.InDelta(t, 50.0, cs.Percentages.Medio, 1e-9)
	assert.Equal(t, []string{"Trabajo en horario nocturno"}, cs.HighItemText)
	assert.Empty(t, cs.Tier, "tiers are assigned by the classifier")
}

func TestAggregateCategories_OnlyPresentCategories(t *testing.T) {
	items := []schema.RatedItem{
		item(schema.DemandasEmocionales, 1, "bajo", ""),
		item(schema.DemandasCuantitativas, 1, "alto", ""),
		item(schema.DemandasEmocionales, 2, "medio", ""),
	}

	scores := AggregateCategories(items, schema.GetDefaultCategoryWeights())
	require.Len(t, scores, 2)
	assert.Equal(t, schema.DemandasEmocionales, scores[0].Category, "first appearance order")
	assert.Equal(t, schema.DemandasCuantitativas, scores[1].Category)
}

func TestAggregateCategories_NullRatings(t *testing.T) {
	items := []schema.RatedItem{
		item(schema.ConsistenciaRol, 1, "", ""),
		item(schema.ConsistenciaRol, 2, "", ""),
		item(schema.DemandasAmbientales, 1, "alto", "Ruido"),
		item(schema.DemandasAmbientales, 2, "", "Iluminación"),
	}

	scores := AggregateCategories(items, schema.GetDefaultCategoryWeights())
	require.Len(t, scores, 1, "a category with no rated items is omitted")

	cs := scores[0]
	assert.Equal(t, schema.DemandasAmbientales, cs.Category)
	assert.Equal(t, 2, cs.ItemCount)
	assert.Equal(t, 1, cs.Counts.Total())
	assert.InDelta(t, 3.0, cs.Score, 1e-9, "null ratings are excluded from the mean")
	assert.InDelta(t, 100.0, cs.PercentageHigh(), 1e-9)
}

func TestAggregateCategories_DuplicatesAndMissingWeight(t *testing.T) {
	items := []schema.RatedItem{
		item(schema.DemandasCargaMental, 1, "alto", "a"),
		item(schema.DemandasCargaMental, 1, "bajo", "b"),
	}

	scores := AggregateCategories(items, map[schema.Category]float64{})
	require.Len(t, scores, 1)
	assert.InDelta(t, 2.0, scores[0].Score, 1e-9, "missing weight falls back to 1.0")
	assert.Equal(t, 2, scores[0].ItemCount)
}

func TestAggregateCategories_Empty(t *testing.T) {
	assert.Empty(t, AggregateCategories(nil, schema.GetDefaultCategoryWeights()))
}

func TestAggregateCategories_PercentageBounds(t *testing.T) {
	ratings := []string{"alto", "medio", "bajo", "alto", "", "bajo", "bajo"}
	var items []schema.RatedItem
	for i, r := range ratings {
		items = append(items, item(schema.DemandasAmbientales, i+1, r, ""))
	}

	cs := AggregateCategories(items, schema.GetDefaultCategoryWeights())[0]
	sum := cs.Percentages.Alto + cs.Percentages.Medio + cs.Percentages.Bajo
	assert.InDelta(t, 100.0, sum, 1e-9)
	for _, p := range []float64{cs.Percentages.Alto, cs.Percentages.Medio, cs.Percentages.Bajo} {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 100.0)
	}
}

func BenchmarkAggregateCategories(b *testing.B) {
	var items []schema.RatedItem
	for _, c := range schema.AllCategories {
		for n := 1; n <= schema.CatalogSize(c); n++ {
			items = append(items, item(c, n, "medio", ""))
		}
	}
	weights := schema.GetDefaultCategoryWeights()
	for b.Loop() {
		AggregateCategories(items, weights)
	}
}
