package narrative

import (
	"strings"
	"testing"

	"github.com/Daniromero1410/Mentis/core/agg"
	"github.com/Daniromero1410/Mentis/core/algo"
	"github.com/Daniromero1410/Mentis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformItems spreads n items with the same rating over all categories.
func uniformItems(n int, rating schema.Rating) []schema.RatedItem {
	items := make([]schema.RatedItem, 0, n)
	for i := range n {
		cat := schema.AllCategories[i%len(schema.AllCategories)]
		items = append(items, schema.RatedItem{
			Category:   cat,
			ItemNumber: i/len(schema.AllCategories) + 1,
			ItemText:   "Item " + string(cat),
			Rating:     schema.RatingPtr(rating),
		})
	}
	return items
}

func profileOf(items []schema.RatedItem) schema.ProfileSummary {
	scoring := schema.DefaultScoring()
	return algo.Classify(agg.AggregateCategories(items, scoring.CategoryWeights), scoring.Thresholds)
}

func containsAny(t *testing.T, text string, options []string, r *strings.Replacer) {
	t.Helper()
	for _, o := range options {
		if strings.Contains(text, r.Replace(o)) {
			return
		}
	}
	t.Fatalf("none of %d options found in text", len(options))
}

func TestCompose_ScenarioA(t *testing.T) {
	c := NewComposer(nil)
	p := profileOf(uniformItems(20, schema.RatingAlto))
	require.Contains(t, []schema.GlobalSeverity{schema.CriticoSeverity, schema.MuyAltoSeverity}, p.GlobalSeverity)
	assert.GreaterOrEqual(t, len(p.CriticalCategories)+len(p.HighCategories), 5)

	got := c.Compose(p, "María González", true, schema.ValoracionVariant)
	agr := NewAgreement("María González")

	containsAny(t, got.Analysis, c.Banks().Introductions[p.GlobalSeverity], agr.Replacer())
	assert.Contains(t, got.Recommendations, c.Banks().WorkerTreatmentUrgent)
	assert.Contains(t, got.Recommendations, "RECOMENDACIONES PARA TRABAJADORA:")
	assert.Contains(t, got.Recommendations, "la afiliada")
	assert.Contains(t, got.Recommendations, c.Banks().ClosingUrgent)
	assert.Equal(t, got.Analysis+"\n\n"+got.Recommendations, got.Full)
}

func TestCompose_ScenarioB(t *testing.T) {
	c := NewComposer(nil)
	high := c.Compose(profileOf(uniformItems(20, schema.RatingAlto)), "María González", true, schema.ValoracionVariant)

	p := profileOf(uniformItems(20, schema.RatingBajo))
	assert.Equal(t, schema.BajoSeverity, p.GlobalSeverity)
	assert.Empty(t, p.CriticalCategories)

	got := c.Compose(p, "María González", true, schema.ValoracionVariant)
	containsAny(t, got.Analysis, c.Banks().Introductions[schema.BajoSeverity], NewAgreement("María González").Replacer())
	assert.Contains(t, got.Recommendations, c.Banks().WorkerTreatment)
	assert.Contains(t, got.Recommendations, c.Banks().Closing)
	assert.NotContains(t, got.Full, "URGENTE")
	assert.Less(t, len(got.Full), len(high.Full))
}

func TestCompose_Deterministic(t *testing.T) {
	c := NewComposer(nil)
	p := profileOf(uniformItems(14, schema.RatingMedio))
	for _, v := range []schema.ConceptVariant{schema.ValoracionVariant, schema.PruebaTrabajoVariant} {
		first := c.Compose(p, "Juan Pérez", false, v)
		second := NewComposer(Default()).Compose(p, "Juan Pérez", false, v)
		assert.Equal(t, first, second)
	}
}

func TestCompose_CategoryParagraph(t *testing.T) {
	items := []schema.RatedItem{
		{Category: schema.DemandasJornada, ItemNumber: 1, ItemText: "Trabajo nocturno", Rating: schema.RatingPtr(schema.RatingAlto)},
		{Category: schema.DemandasJornada, ItemNumber: 2, ItemText: "Pausas", Rating: schema.RatingPtr(schema.RatingMedio)},
	}
	p := profileOf(items)
	require.Equal(t, []schema.Category{schema.DemandasJornada}, p.HighCategories)

	got := NewComposer(nil).Compose(p, "Juan Pérez", false, schema.ValoracionVariant)
	assert.Contains(t, got.Analysis, "Específicamente, en relación a Demandas de la Jornada de Trabajo, el trabajador enfrenta demandas de jornada significativas")
	assert.Contains(t, got.Analysis, ` Particularmente se identifica en nivel alto: "Trabajo nocturno".`)
	assert.Contains(t, got.Analysis, " Se evidencia este nivel en 50% de los ítems evaluados en esta dimensión.")
}

func TestCompose_EvidencePair(t *testing.T) {
	items := []schema.RatedItem{
		{Category: schema.DemandasEmocionales, ItemNumber: 1, ItemText: "Uno", Rating: schema.RatingPtr(schema.RatingAlto)},
		{Category: schema.DemandasEmocionales, ItemNumber: 2, ItemText: "Dos", Rating: schema.RatingPtr(schema.RatingAlto)},
		{Category: schema.DemandasEmocionales, ItemNumber: 3, ItemText: "Tres", Rating: schema.RatingPtr(schema.RatingAlto)},
	}
	got := NewComposer(nil).Compose(profileOf(items), "Pedro", false, schema.ValoracionVariant)
	assert.Contains(t, got.Analysis, `aspectos como: "Uno" y "Dos".`)
	assert.NotContains(t, got.Analysis, `"Tres"`)
	assert.Contains(t, got.Analysis, "en 100% de los ítems")
}

func TestCompose_MediumSummary(t *testing.T) {
	var items []schema.RatedItem
	for _, cat := range []schema.Category{schema.DemandasCuantitativas, schema.ConsistenciaRol, schema.DemandasJornada} {
		items = append(items, schema.RatedItem{Category: cat, ItemNumber: 1, Rating: schema.RatingPtr(schema.RatingMedio)})
	}
	p := profileOf(items)
	require.Len(t, p.MediumCategories, 3)

	got := NewComposer(nil).Compose(p, "Pedro", false, schema.ValoracionVariant)
	assert.Contains(t, got.Analysis, "niveles moderados en Demandas Cuantitativas, Consistencia de Rol y Demandas de Jornada, lo cual")
}

func TestCompose_PruebaTrabajo(t *testing.T) {
	items := uniformItems(14, schema.RatingAlto)
	p := profileOf(items)
	name := "Laura Gómez"
	seed := algo.Seed(name)
	b := Default()

	got := NewComposer(b).Compose(p, name, false, schema.PruebaTrabajoVariant)
	assert.True(t, strings.HasPrefix(got.Recommendations, "Con base en la evaluación integral presentada de la afiliada"))

	paragraphs := strings.Split(got.Analysis, "\n\n")
	require.Greater(t, len(paragraphs), 3)
	assert.True(t, strings.HasPrefix(paragraphs[1], b.FirstConnector+" "))
	assert.True(t, strings.HasPrefix(paragraphs[2], algo.Pick(b.TransitionConnectors, seed, 1)+" "))
	assert.Contains(t, paragraphs[2], algo.Pick(b.EvidencePhrases, seed, 1)+` "Item `)
}

func TestCompose_LayoutOfRecommendations(t *testing.T) {
	p := profileOf(uniformItems(7, schema.RatingBajo))
	got := NewComposer(nil).Compose(p, "Juan", false, schema.ValoracionVariant)

	assert.True(t, strings.HasPrefix(got.Recommendations, "Una vez evaluado el afiliado del asunto"))
	assert.Contains(t, got.Recommendations, "RECOMENDACIONES PARA TRABAJADOR:\n\n1. Mantener comunicación transparente")
	assert.Contains(t, got.Recommendations, "\n\nRECOMENDACIONES PARA LA EMPRESA:\n\n1. Participar activamente")
	assert.True(t, strings.HasSuffix(got.Recommendations, "\n\n"+Default().Closing))
}

func TestRecommendations(t *testing.T) {
	c := NewComposer(nil)
	b := c.Banks()

	t.Run("no diagnosis starts with compliance", func(t *testing.T) {
		worker, company := c.Recommendations(profileOf(uniformItems(7, schema.RatingBajo)), false)
		assert.Equal(t, b.WorkerCompliance[0], worker[0])
		assert.Equal(t, b.WorkerWellness, worker[1:])
		assert.Equal(t, b.CompanyUniversal, company)
	})

	t.Run("diagnosis prepends treatment", func(t *testing.T) {
		worker, company := c.Recommendations(profileOf(uniformItems(7, schema.RatingBajo)), true)
		assert.Equal(t, b.WorkerTreatment, worker[0])
		assert.Equal(t, b.CompanyDiagnosis, company[:2])
	})

	t.Run("medium categories use medium sentences", func(t *testing.T) {
		items := []schema.RatedItem{{Category: schema.DemandasJornada, ItemNumber: 1, Rating: schema.RatingPtr(schema.RatingMedio)}}
		worker, company := c.Recommendations(profileOf(items), false)
		assert.Subset(t, worker, b.WorkerRecommendations[schema.DemandasJornada].Medium)
		assert.Subset(t, company, b.CompanyRecommendations[schema.DemandasJornada].Medium)
		assert.NotContains(t, worker, b.WorkerRecommendations[schema.DemandasJornada].High[0])
	})
}

func TestRecommendations_Dedupe(t *testing.T) {
	b := Default()
	shared := RecommendationSet{High: []string{"Misma frase."}}
	for _, cat := range schema.AllCategories {
		b.WorkerRecommendations[cat] = shared
		b.CompanyRecommendations[cat] = shared
	}
	worker, company := NewComposer(b).Recommendations(profileOf(uniformItems(14, schema.RatingAlto)), true)

	for _, list := range [][]string{worker, company} {
		seen := map[string]int{}
		for _, s := range list {
			seen[s]++
		}
		for s, n := range seen {
			assert.Equal(t, 1, n, s)
		}
		assert.Contains(t, list, "Misma frase.")
	}
}

func TestInsufficient(t *testing.T) {
	got := NewComposer(nil).Insufficient()
	assert.Equal(t, "No se pueden generar análisis sin evaluaciones de riesgo completadas.", got.Analysis)
	assert.Equal(t, "No se pueden generar recomendaciones sin evaluaciones de riesgo completadas.", got.Recommendations)
	assert.Equal(t, got.Recommendations, got.Full)
}

func TestDefaultBanks_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())

	b := Default()
	delete(b.Descriptions, schema.DemandasJornada)
	assert.Error(t, b.Validate())
}

func TestLoadBanks(t *testing.T) {
	doc := `
closing: "Cierre de prueba."
introductions:
  bajo:
    - "Hola {nombre}."
`
	b, err := LoadBanks(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Cierre de prueba.", b.Closing)
	assert.Equal(t, []string{"Hola {nombre}."}, b.Introductions[schema.BajoSeverity])
	assert.Len(t, b.Introductions[schema.CriticoSeverity], 3)

	got := NewComposer(b).Compose(profileOf(uniformItems(7, schema.RatingBajo)), "Ana", false, schema.ValoracionVariant)
	assert.True(t, strings.HasPrefix(got.Analysis, "Hola Ana."))
	assert.True(t, strings.HasSuffix(got.Recommendations, "Cierre de prueba."))
}

func TestLoadBanks_NestedMerge(t *testing.T) {
	defaults := Default()

	tests := []struct {
		name  string
		doc   string
		check func(t *testing.T, b *Banks)
	}{
		{
			name: "one description tier",
			doc:  "descriptions:\n  demandas_jornada:\n    alto: \"texto propio\"\n",
			check: func(t *testing.T, b *Banks) {
				got := b.Descriptions[schema.DemandasJornada]
				assert.Equal(t, "texto propio", got[schema.AltoTier])
				for _, tier := range []schema.CategoryTier{schema.AltoCriticoTier, schema.MedioTier, schema.BajoTier} {
					assert.Equal(t, defaults.Descriptions[schema.DemandasJornada][tier], got[tier], tier)
				}
				assert.Equal(t, defaults.Descriptions[schema.DemandasEmocionales], b.Descriptions[schema.DemandasEmocionales])
			},
		},
		{
			name: "high worker sentences only",
			doc:  "worker_recommendations:\n  demandas_jornada:\n    high: [\"Frase alta propia.\"]\n",
			check: func(t *testing.T, b *Banks) {
				got := b.WorkerRecommendations[schema.DemandasJornada]
				assert.Equal(t, []string{"Frase alta propia."}, got.High)
				assert.Equal(t, defaults.WorkerRecommendations[schema.DemandasJornada].Medium, got.Medium)
				assert.NotEmpty(t, got.Medium)
				assert.Equal(t, defaults.CompanyRecommendations, b.CompanyRecommendations)
			},
		},
		{
			name: "medium company sentences only",
			doc:  "company_recommendations:\n  consistencia_rol:\n    medium: [\"Frase media propia.\"]\n",
			check: func(t *testing.T, b *Banks) {
				got := b.CompanyRecommendations[schema.ConsistenciaRol]
				assert.Equal(t, []string{"Frase media propia."}, got.Medium)
				assert.Equal(t, defaults.CompanyRecommendations[schema.ConsistenciaRol].High, got.High)
			},
		},
		{
			name: "one introduction severity",
			doc:  "introductions:\n  medio:\n    - \"Intro media {nombre}.\"\n",
			check: func(t *testing.T, b *Banks) {
				assert.Equal(t, []string{"Intro media {nombre}."}, b.Introductions[schema.MedioSeverity])
				assert.Equal(t, defaults.Introductions[schema.CriticoSeverity], b.Introductions[schema.CriticoSeverity])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := LoadBanks(strings.NewReader(tt.doc))
			require.NoError(t, err)
			tt.check(t, b)
		})
	}
}

func TestLoadBanks_Errors(t *testing.T) {
	_, err := LoadBanks(strings.NewReader("unknown_key: 1\n"))
	assert.Error(t, err)

	_, err = LoadBanks(strings.NewReader("transition_connectors: []\n"))
	assert.Error(t, err)

	b, err := LoadBanks(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), b)
}
