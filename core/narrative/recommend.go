package narrative

import (
	"slices"

	"github.com/Daniromero1410/Mentis/schema"
)

// Recommendations builds the worker and company lists for a profile.
//
// Worker: treatment adherence when there is a diagnosis, the compliance
// sentence, the sentences of every critical, high and medium category, then
// the wellness pair. Company: diagnosis accommodations, category sentences,
// then the universal pair. Both lists keep first occurrence only.
func (c *Composer) Recommendations(p schema.ProfileSummary, hasDiagnosis bool) (worker, company []string) {
	b := c.banks
	urgent := p.GlobalSeverity.IsUrgent()

	if hasDiagnosis {
		if urgent {
			worker = append(worker, b.WorkerTreatmentUrgent)
		} else {
			worker = append(worker, b.WorkerTreatment)
		}
		company = append(company, b.CompanyDiagnosis...)
	}
	worker = append(worker, b.WorkerCompliance...)

	for _, cat := range slices.Concat(p.CriticalCategories, p.HighCategories, p.MediumCategories) {
		cs, ok := p.Score(cat)
		if !ok {
			continue
		}
		worker = append(worker, sentencesFor(b.WorkerRecommendations[cat], cs.Tier)...)
		company = append(company, sentencesFor(b.CompanyRecommendations[cat], cs.Tier)...)
	}

	if urgent {
		worker = append(worker, b.WorkerWellnessUrgent...)
	} else {
		worker = append(worker, b.WorkerWellness...)
	}
	company = append(company, b.CompanyUniversal...)

	return dedupe(worker), dedupe(company)
}

func sentencesFor(set RecommendationSet, tier schema.CategoryTier) []string {
	switch {
	case tier.IsHigh():
		return set.High
	case tier == schema.MedioTier:
		return set.Medium
	default:
		return nil
	}
}

// dedupe drops repeated and empty sentences, keeping the first occurrence.
func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
