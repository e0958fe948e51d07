// Package agg has aggregation logic for rated assessment items.
package agg

import (
	"github.com/Daniromero1410/Mentis/schema"
)

// bucket collects the items of one category while the input is scanned.
type bucket struct {
	sum       float64
	counts    schema.RatingCounts
	itemCount int
	highTexts []string
}

// AggregateCategories groups items by category and computes one CategoryScore per
// category that has at least one rated item. Categories keep the order in which they
// first appear in the input. Tiers are left empty for the classifier.
func AggregateCategories(items []schema.RatedItem, weights map[schema.Category]float64) []schema.CategoryScore {
	order := make([]schema.Category, 0, len(schema.AllCategories))
	buckets := make(map[schema.Category]*bucket, len(schema.AllCategories))

	for _, item := range items {
		b, ok := buckets[item.Category]
		if !ok {
			b = &bucket{}
			buckets[item.Category] = b
			order = append(order, item.Category)
		}
		b.itemCount++
		if item.Rating == nil {
			continue
		}
		switch *item.Rating {
		case schema.RatingAlto:
			b.counts.Alto++
			b.highTexts = append(b.highTexts, item.ItemText)
		case schema.RatingMedio:
			b.counts.Medio++
		case schema.RatingBajo:
			b.counts.Bajo++
		default:
			continue
		}
		b.sum += schema.RatingWeight(*item.Rating)
	}

	scores := make([]schema.CategoryScore, 0, len(order))
	for _, cat := range order {
		b := buckets[cat]
		rated := b.counts.Total()
		if rated == 0 {
			continue // nothing rated, nothing to score
		}
		weight, ok := weights[cat]
		if !ok {
			weight = 1.0
		}
		rawMean := b.sum / float64(rated)
		scores = append(scores, schema.CategoryScore{
			Category:     cat,
			Score:        rawMean * weight,
			RawMean:      rawMean,
			Counts:       b.counts,
			Percentages:  percentages(b.counts),
			ItemCount:    b.itemCount,
			HighItemText: b.highTexts,
		})
	}
	return scores
}

// percentages converts counts into shares of the rated total.
func percentages(c schema.RatingCounts) schema.Percentages {
	total := float64(c.Total())
	if total == 0 {
		return schema.Percentages{}
	}
	return schema.Percentages{
		Alto:  float64(c.Alto) / total * 100,
		Medio: float64(c.Medio) / total * 100,
		Bajo:  float64(c.Bajo) / total * 100,
	}
}
