package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Boundary errors. Callers match them with errors.Is.
var (
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidRating     = errors.New("invalid rating")
	ErrInvalidItemNumber = errors.New("invalid item number")
)

// notRatedValues are the rating spellings that mean "not applicable".
var notRatedValues = map[string]struct{}{
	"":          {},
	"na":        {},
	"n/a":       {},
	"no aplica": {},
}

// ParseCategory canonicalizes a category identifier.
// Case and surrounding whitespace are ignored; spaces and hyphens are read as underscores.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	c := Category(key)
	if _, ok := ValidCategories[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
	return c, nil
}

// ParseRating canonicalizes a rating. It returns nil for the not-rated spellings.
func ParseRating(s string) (*Rating, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if _, ok := notRatedValues[key]; ok {
		return nil, nil
	}
	r := Rating(key)
	if _, ok := ValidRatings[r]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return &r, nil
}

// NormalizeItem converts a raw item into a RatedItem.
// An empty item text is filled from the catalog when the item number is known.
func NormalizeItem(raw RawRatedItem) (RatedItem, error) {
	cat, err := ParseCategory(raw.Category)
	if err != nil {
		return RatedItem{}, err
	}
	if raw.ItemNumber <= 0 {
		return RatedItem{}, fmt.Errorf("%w: %d", ErrInvalidItemNumber, raw.ItemNumber)
	}
	rating, err := ParseRating(raw.Rating)
	if err != nil {
		return RatedItem{}, err
	}
	text := strings.TrimSpace(raw.ItemText)
	if text == "" {
		text, _ = CatalogItemText(cat, raw.ItemNumber)
	}
	return RatedItem{
		Category:     cat,
		ItemNumber:   raw.ItemNumber,
		ItemText:     text,
		Rating:       rating,
		Observations: strings.TrimSpace(raw.Observations),
	}, nil
}

// NormalizeItems converts every raw item, stopping at the first invalid one.
func NormalizeItems(raw []RawRatedItem) ([]RatedItem, error) {
	items := make([]RatedItem, 0, len(raw))
	for i, r := range raw {
		item, err := NormalizeItem(r)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// RatingPtr returns a pointer to r, handy for building items in code.
func RatingPtr(r Rating) *Rating {
	return &r
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
