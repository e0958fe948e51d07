// Package algo has the classification and selection algorithms of the engine.
package algo

import (
	"github.com/Daniromero1410/Mentis/schema"
)

// Category counts that escalate the global severity on their own.
const (
	criticoMinCritical = 2 // alto_critico categories for critico
	muyAltoMinCritical = 1 // alto_critico categories for muy_alto
	muyAltoMinHigh     = 3 // alto categories for muy_alto
	altoMinHigh        = 2 // alto categories for alto
	altoMixedHigh      = 1 // alto categories combined with altoMixedMedium
	altoMixedMedium    = 2
	medioMinMedium     = 3 // medio categories for medio
)

// ClassifyCategory assigns a tier from the rating distribution of a category.
// Thresholds are checked from the most severe down and the first match wins.
func ClassifyCategory(p schema.Percentages, t schema.Thresholds) schema.CategoryTier {
	switch {
	case p.Alto >= t.CategoryCriticalPct:
		return schema.AltoCriticoTier
	case p.Alto >= t.CategoryHighPct:
		return schema.AltoTier
	case p.Alto >= t.CategoryMediumPct || p.Alto+p.Medio >= t.CategoryCombinedPct:
		return schema.MedioTier
	default:
		return schema.BajoTier
	}
}

// GlobalScore returns the mean of the category scores above zero, or 0 when there are none.
func GlobalScore(scores []schema.CategoryScore) float64 {
	var sum float64
	var n int
	for _, cs := range scores {
		if cs.Score > 0 {
			sum += cs.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// ClassifyGlobal assigns the profile severity from the bucket sizes and the global score.
func ClassifyGlobal(critical, high, medium int, score float64, t schema.Thresholds) schema.GlobalSeverity {
	switch {
	case critical >= criticoMinCritical || score >= t.GlobalCriticoScore:
		return schema.CriticoSeverity
	case critical >= muyAltoMinCritical || high >= muyAltoMinHigh || score >= t.GlobalMuyAltoScore:
		return schema.MuyAltoSeverity
	case high >= altoMinHigh || (high >= altoMixedHigh && medium >= altoMixedMedium) || score >= t.GlobalAltoScore:
		return schema.AltoSeverity
	case medium >= medioMinMedium || score >= t.GlobalMedioScore:
		return schema.MedioSeverity
	default:
		return schema.BajoSeverity
	}
}

// Classify tiers every category score and builds the profile summary.
// The input slice is not modified.
func Classify(scores []schema.CategoryScore, t schema.Thresholds) schema.ProfileSummary {
	summary := schema.ProfileSummary{
		CategoryScores:     make([]schema.CategoryScore, 0, len(scores)),
		CriticalCategories: []schema.Category{},
		HighCategories:     []schema.Category{},
		MediumCategories:   []schema.Category{},
		LowCategories:      []schema.Category{},
	}

	for _, cs := range scores {
		cs.Tier = ClassifyCategory(cs.Percentages, t)
		switch cs.Tier {
		case schema.AltoCriticoTier:
			summary.CriticalCategories = append(summary.CriticalCategories, cs.Category)
		case schema.AltoTier:
			summary.HighCategories = append(summary.HighCategories, cs.Category)
		case schema.MedioTier:
			summary.MediumCategories = append(summary.MediumCategories, cs.Category)
		default:
			summary.LowCategories = append(summary.LowCategories, cs.Category)
		}
		summary.CategoryScores = append(summary.CategoryScores, cs)
	}

	summary.GlobalScore = GlobalScore(summary.CategoryScores)
	summary.GlobalSeverity = ClassifyGlobal(
		len(summary.CriticalCategories),
		len(summary.HighCategories),
		len(summary.MediumCategories),
		summary.GlobalScore,
		t,
	)
	return summary
}
