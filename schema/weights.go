package schema

// Numeric weight of each rating. Unrated items weigh 0 and are left out of the mean.
const (
	AltoWeight    = 3.0
	MedioWeight   = 2.0
	BajoWeight    = 1.0
	NotRatedValue = 0.0
)

// Thresholds holds every cut-off used by the classifier.
// Percentages are in [0,100]; scores are on the weighted scale.
type Thresholds struct {
	CategoryCriticalPct float64 `json:"category_critical_pct" mapstructure:"category_critical_pct"` // pct alto for alto_critico
	CategoryHighPct     float64 `json:"category_high_pct" mapstructure:"category_high_pct"`         // pct alto for alto
	CategoryMediumPct   float64 `json:"category_medium_pct" mapstructure:"category_medium_pct"`     // pct alto for medio
	CategoryCombinedPct float64 `json:"category_combined_pct" mapstructure:"category_combined_pct"` // pct alto+medio for medio

	GlobalCriticoScore float64 `json:"global_critico_score" mapstructure:"global_critico_score"`
	GlobalMuyAltoScore float64 `json:"global_muy_alto_score" mapstructure:"global_muy_alto_score"`
	GlobalAltoScore    float64 `json:"global_alto_score" mapstructure:"global_alto_score"`
	GlobalMedioScore   float64 `json:"global_medio_score" mapstructure:"global_medio_score"`
}

// Scoring bundles the weights and thresholds an engine runs with.
type Scoring struct {
	CategoryWeights map[Category]float64 `json:"category_weights"`
	Thresholds      Thresholds           `json:"thresholds"`
}

// RatingWeight returns the numeric weight for a rating.
func RatingWeight(r Rating) float64 {
	switch r {
	case RatingAlto:
		return AltoWeight
	case RatingMedio:
		return MedioWeight
	case RatingBajo:
		return BajoWeight
	default:
		return NotRatedValue
	}
}

// GetDefaultCategoryWeights returns a fresh copy of the clinical importance multipliers.
func GetDefaultCategoryWeights() map[Category]float64 {
	return map[Category]float64{
		DemandasCuantitativas:     1.2,
		DemandasCargaMental:       1.3,
		DemandasEmocionales:       1.4,
		ExigenciasResponsabilidad: 1.1,
		ConsistenciaRol:           1.2,
		DemandasAmbientales:       1.0,
		DemandasJornada:           1.1,
	}
}

// GetDefaultThresholds returns the classifier cut-offs.
func GetDefaultThresholds() Thresholds {
	return Thresholds{
		CategoryCriticalPct: 70,
		CategoryHighPct:     50,
		CategoryMediumPct:   30,
		CategoryCombinedPct: 60,

		GlobalCriticoScore: 2.7,
		GlobalMuyAltoScore: 2.4,
		GlobalAltoScore:    2.0,
		GlobalMedioScore:   1.5,
	}
}

// DefaultScoring returns the default weights and thresholds.
func DefaultScoring() Scoring {
	return Scoring{
		CategoryWeights: GetDefaultCategoryWeights(),
		Thresholds:      GetDefaultThresholds(),
	}
}

// WeightFor returns the category weight, falling back to 1.0 for a missing entry.
func (s Scoring) WeightFor(c Category) float64 {
	if w, ok := s.CategoryWeights[c]; ok {
		return w
	}
	return 1.0
}
