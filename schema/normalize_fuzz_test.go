package schema

import (
	"errors"
	"testing"
)

// FuzzNormalizeItem fuzzes the boundary normalization with random raw values.
func FuzzNormalizeItem(f *testing.F) {
	seeds := []struct {
		category string
		number   int
		rating   string
	}{
		{"demandas_jornada", 1, "alto"},
		{"Demandas Emocionales", 3, "MEDIO"},
		{"", 0, ""},
		{"consistencia_rol", -4, "na"},
		{"demandas_ambientales", 11, "muy alto"},
	}
	for _, seed := range seeds {
		f.Add(seed.category, seed.number, seed.rating)
	}

	f.Fuzz(func(t *testing.T, category string, number int, rating string) {
		item, err := NormalizeItem(RawRatedItem{Category: category, ItemNumber: number, Rating: rating})
		if err != nil {
			if !errors.Is(err, ErrInvalidCategory) && !errors.Is(err, ErrInvalidRating) && !errors.Is(err, ErrInvalidItemNumber) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}
		if _, ok := ValidCategories[item.Category]; !ok {
			t.Fatalf("normalized category %q is not canonical", item.Category)
		}
		if item.Rating != nil {
			if _, ok := ValidRatings[*item.Rating]; !ok {
				t.Fatalf("normalized rating %q is not canonical", *item.Rating)
			}
		}
	})
}
