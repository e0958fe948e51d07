package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSpanish(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{nil, ""},
		{[]string{"Carga Mental"}, "Carga Mental"},
		{[]string{"Carga Mental", "Demandas Emocionales"}, "Carga Mental y Demandas Emocionales"},
		{[]string{"A", "B", "C"}, "A, B y C"},
		{[]string{"A", "B", "C", "D"}, "A, B, C y D"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinSpanish(tt.names))
		})
	}
}

func TestDisplayNames(t *testing.T) {
	for _, c := range AllCategories {
		assert.NotEqual(t, string(c), DisplayName(c), "category %s should have a long name", c)
		assert.NotEqual(t, string(c), ShortName(c), "category %s should have a short name", c)
	}
	assert.Equal(t, "Demandas de la Jornada de Trabajo", DisplayName(DemandasJornada))
	assert.Equal(t, "Carga Mental", ShortName(DemandasCargaMental))
	assert.Equal(t, "Otra Dimension", DisplayName(Category("otra_dimension")))
	assert.Equal(t, "otra_dimension", ShortName(Category("otra_dimension")))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.75, Round2(2.7499999999))
	assert.Equal(t, 1.19, Round2(8.3/7))
	assert.Equal(t, 0.0, Round2(0))
}

func TestProfileSummary_Summary(t *testing.T) {
	p := ProfileSummary{
		CategoryScores: []CategoryScore{
			{
				Category:    DemandasJornada,
				Score:       2.75,
				Tier:        AltoTier,
				Percentages: Percentages{Alto: 50, Medio: 50},
			},
		},
		GlobalScore:    2.7512,
		GlobalSeverity: CriticoSeverity,
		HighCategories: []Category{DemandasJornada},
	}

	s := p.Summary()
	assert.Equal(t, CriticoSeverity, s.GlobalLevel)
	assert.Equal(t, 2.75, s.GlobalScore)
	assert.Equal(t, []Category{}, s.CriticalCategories)
	assert.Equal(t, []Category{DemandasJornada}, s.HighCategories)
	assert.Equal(t, []Category{}, s.MediumCategories)
	assert.Equal(t, CategorySummary{Score: 2.75, Level: AltoTier, Percentages: Percentages{Alto: 50, Medio: 50}}, s.ScoresByCategory[DemandasJornada])
}

func TestGlobalSeverityRank(t *testing.T) {
	for i, s := range AllSeverities {
		assert.Equal(t, i, s.Rank())
	}
	assert.Equal(t, -1, GlobalSeverity("otro").Rank())
	assert.True(t, CriticoSeverity.IsUrgent())
	assert.True(t, MuyAltoSeverity.IsUrgent())
	assert.False(t, AltoSeverity.IsUrgent())
	assert.True(t, AltoCriticoTier.IsHigh())
	assert.False(t, MedioTier.IsHigh())
}
