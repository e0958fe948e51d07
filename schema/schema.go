// Package schema has the vocabulary, models and static catalogs for all parts of mentis.
package schema

// RatedItem is one evaluated question. A nil Rating means the item was not rated.
type RatedItem struct {
	Category     Category `json:"category"`
	ItemNumber   int      `json:"item_number"`
	ItemText     string   `json:"item_text"`
	Rating       *Rating  `json:"rating"`
	Observations string   `json:"observations,omitempty"`
}

// RatingCounts counts the non-null ratings of a category.
type RatingCounts struct {
	Alto  int `json:"alto"`
	Medio int `json:"medio"`
	Bajo  int `json:"bajo"`
}

// Total returns the number of rated items.
func (rc RatingCounts) Total() int {
	return rc.Alto + rc.Medio + rc.Bajo
}

// Percentages holds the share of each rating over the rated items, in [0,100].
type Percentages struct {
	Alto  float64 `json:"alto"`
	Medio float64 `json:"medio"`
	Bajo  float64 `json:"bajo"`
}

// CategoryScore is the aggregated result for one category.
type CategoryScore struct {
	Category     Category     `json:"category"`
	Score        float64      `json:"score"`     // RawMean * category weight
	RawMean      float64      `json:"raw_mean"`  // mean of rated item weights
	Tier         CategoryTier `json:"tier"`      // assigned by the classifier
	Counts       RatingCounts `json:"counts"`    // non-null ratings only
	Percentages  Percentages  `json:"percentages"`
	ItemCount    int          `json:"item_count"` // rated and unrated items
	HighItemText []string     `json:"high_item_text,omitempty"`
}

// PercentageHigh returns the share of alto ratings.
func (cs CategoryScore) PercentageHigh() float64 {
	return cs.Percentages.Alto
}

// ProfileSummary is the engine output envelope.
// Category lists keep the order in which categories first appear in the input.
type ProfileSummary struct {
	CategoryScores     []CategoryScore `json:"category_scores"`
	GlobalScore        float64         `json:"global_score"`
	GlobalSeverity     GlobalSeverity  `json:"global_severity"`
	CriticalCategories []Category      `json:"critical_categories"`
	HighCategories     []Category      `json:"high_categories"`
	MediumCategories   []Category      `json:"medium_categories"`
	LowCategories      []Category      `json:"low_categories"`
}

// Score returns the CategoryScore for a category, if present.
func (p ProfileSummary) Score(c Category) (CategoryScore, bool) {
	for _, cs := range p.CategoryScores {
		if cs.Category == c {
			return cs, true
		}
	}
	return CategoryScore{}, false
}

// IsEmpty reports whether no category was scored.
func (p ProfileSummary) IsEmpty() bool {
	return len(p.CategoryScores) == 0
}

// GeneratedConcept holds the rendered narrative.
type GeneratedConcept struct {
	Analysis        string `json:"analysis"`
	Recommendations string `json:"recommendations"`
	Full            string `json:"full"`
}

// CategorySummary is the rounded per-category entry of a RiskSummary.
type CategorySummary struct {
	Score       float64      `json:"score"`
	Level       CategoryTier `json:"nivel"`
	Percentages Percentages  `json:"porcentajes"`
}

// RiskSummary is the compact view of a profile handed to callers that store or display it.
type RiskSummary struct {
	GlobalLevel        GlobalSeverity               `json:"nivel_global"`
	GlobalScore        float64                      `json:"score_global"`
	CriticalCategories []Category                   `json:"categorias_criticas"`
	HighCategories     []Category                   `json:"categorias_altas"`
	MediumCategories   []Category                   `json:"categorias_medias"`
	ScoresByCategory   map[Category]CategorySummary `json:"scores_por_categoria"`
}

// Subject identifies the worker an assessment belongs to.
type Subject struct {
	Name         string `json:"name" yaml:"name"`
	Diagnosis    string `json:"diagnosis,omitempty" yaml:"diagnosis"`
	HasDiagnosis *bool  `json:"has_diagnosis,omitempty" yaml:"has_diagnosis"`
}

// RawRatedItem is an item as it arrives from a document or a tool call, before normalization.
type RawRatedItem struct {
	Category     string `json:"category" yaml:"category" validate:"required"`
	ItemNumber   int    `json:"item_number" yaml:"item_number" validate:"gt=0"`
	ItemText     string `json:"item_text" yaml:"item_text"`
	Rating       string `json:"rating" yaml:"rating"`
	Observations string `json:"observations" yaml:"observations"`
}

// Assessment is a complete input document.
type Assessment struct {
	EvaluationID string         `json:"evaluation_id" yaml:"evaluation_id"`
	Subject      Subject        `json:"subject" yaml:"subject"`
	Items        []RawRatedItem `json:"items" yaml:"items" validate:"dive"`
}

// DiagnosisFlag resolves the diagnosis flag: an explicit value wins,
// otherwise a non-blank diagnosis sets it.
func (s Subject) DiagnosisFlag() bool {
	if s.HasDiagnosis != nil {
		return *s.HasDiagnosis
	}
	return !isBlank(s.Diagnosis)
}
