package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"demandas_jornada", DemandasJornada, false},
		{"  Demandas_Emocionales ", DemandasEmocionales, false},
		{"consistencia rol", ConsistenciaRol, false},
		{"demandas-carga-mental", DemandasCargaMental, false},
		{"", "", true},
		{"demandas_sociales", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		in      string
		want    *Rating
		wantErr bool
	}{
		{"alto", RatingPtr(RatingAlto), false},
		{"MEDIO", RatingPtr(RatingMedio), false},
		{" bajo ", RatingPtr(RatingBajo), false},
		{"", nil, false},
		{"NA", nil, false},
		{"n/a", nil, false},
		{"No aplica", nil, false},
		{"muy alto", nil, true},
		{"critico", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRating(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRating)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeItems(t *testing.T) {
	raw := []RawRatedItem{
		{Category: "demandas_jornada", ItemNumber: 1, Rating: "alto"},
		{Category: "demandas_jornada", ItemNumber: 2, ItemText: "  Texto propio ", Rating: "", Observations: " nota "},
		{Category: "demandas_jornada", ItemNumber: 9, Rating: "bajo"},
	}

	items, err := NormalizeItems(raw)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Trabajo en horario nocturno", items[0].ItemText, "empty text is filled from the catalog")
	assert.Equal(t, RatingAlto, *items[0].Rating)
	assert.Equal(t, "Texto propio", items[1].ItemText)
	assert.Nil(t, items[1].Rating)
	assert.Equal(t, "nota", items[1].Observations)
	assert.Equal(t, "", items[2].ItemText, "unknown item numbers keep an empty text")
}

func TestNormalizeItems_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  RawRatedItem
		want error
	}{
		{"bad category", RawRatedItem{Category: "otra", ItemNumber: 1, Rating: "alto"}, ErrInvalidCategory},
		{"bad rating", RawRatedItem{Category: "demandas_jornada", ItemNumber: 1, Rating: "extremo"}, ErrInvalidRating},
		{"bad number", RawRatedItem{Category: "demandas_jornada", ItemNumber: 0, Rating: "alto"}, ErrInvalidItemNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeItems([]RawRatedItem{{Category: "demandas_jornada", ItemNumber: 1}, tt.raw})
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "item 2")
		})
	}
}

func TestCatalog(t *testing.T) {
	sizes := map[Category]int{
		DemandasCuantitativas:     4,
		DemandasCargaMental:       8,
		DemandasEmocionales:       6,
		ExigenciasResponsabilidad: 6,
		ConsistenciaRol:           7,
		DemandasAmbientales:       10,
		DemandasJornada:           2,
	}
	total := 0
	for c, n := range sizes {
		assert.Equal(t, n, CatalogSize(c), c)
		total += n
	}
	assert.Len(t, Catalog(), total)

	entries := Catalog(DemandasJornada)
	require.Len(t, entries, 2)
	assert.Equal(t, CatalogEntry{Category: DemandasJornada, ItemNumber: 2, ItemText: "Días de trabajo consecutivo sin descanso"}, entries[1])

	_, ok := CatalogItemText(DemandasJornada, 3)
	assert.False(t, ok)
}

func TestSubjectDiagnosisFlag(t *testing.T) {
	yes, no := true, false
	assert.True(t, Subject{Diagnosis: "F41.1 ansiedad generalizada"}.DiagnosisFlag())
	assert.False(t, Subject{Diagnosis: "   "}.DiagnosisFlag())
	assert.False(t, Subject{Diagnosis: "F32", HasDiagnosis: &no}.DiagnosisFlag())
	assert.True(t, Subject{HasDiagnosis: &yes}.DiagnosisFlag())
}

func TestRatingWeight(t *testing.T) {
	assert.Equal(t, 3.0, RatingWeight(RatingAlto))
	assert.Equal(t, 2.0, RatingWeight(RatingMedio))
	assert.Equal(t, 1.0, RatingWeight(RatingBajo))
	assert.Equal(t, 0.0, RatingWeight(Rating("na")))

	s := DefaultScoring()
	assert.Equal(t, 1.4, s.WeightFor(DemandasEmocionales))
	assert.Equal(t, 1.0, s.WeightFor(Category("otra")))
	s.CategoryWeights[DemandasEmocionales] = 9
	assert.Equal(t, 1.4, DefaultScoring().WeightFor(DemandasEmocionales), "defaults are fresh copies")
}
