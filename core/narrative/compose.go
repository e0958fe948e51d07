package narrative

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Daniromero1410/Mentis/core/algo"
	"github.com/Daniromero1410/Mentis/schema"
)

const (
	// percentageMentionMin is the share of alto items from which a paragraph cites the figure.
	percentageMentionMin = 50.0

	// maxEvidenceItems caps the item texts quoted per category.
	maxEvidenceItems = 2

	paragraphSep = "\n\n"
)

// Composer fills the banks for a classified profile. It holds no mutable state
// and is safe for concurrent use.
type Composer struct {
	banks *Banks
}

// NewComposer returns a composer over the given banks, or the defaults when nil.
func NewComposer(b *Banks) *Composer {
	if b == nil {
		b = Default()
	}
	return &Composer{banks: b}
}

// Banks returns the banks the composer reads from.
func (c *Composer) Banks() *Banks {
	return c.banks
}

// Insufficient returns the placeholder concept used when there is nothing to evaluate.
func (c *Composer) Insufficient() schema.GeneratedConcept {
	return schema.GeneratedConcept{
		Analysis:        c.banks.InsufficientAnalysis,
		Recommendations: c.banks.InsufficientRecommendations,
		Full:            c.banks.InsufficientRecommendations,
	}
}

// Compose writes the full concept for a profile.
// The same profile, subject and variant always produce the same text.
func (c *Composer) Compose(p schema.ProfileSummary, subject string, hasDiagnosis bool, variant schema.ConceptVariant) schema.GeneratedConcept {
	agr := NewAgreement(subject)
	seed := algo.Seed(subject)

	analysis := c.Analysis(p, agr, seed, variant)
	recommendations := c.RecommendationsText(p, agr, hasDiagnosis, variant)
	return schema.GeneratedConcept{
		Analysis:        analysis,
		Recommendations: recommendations,
		Full:            analysis + paragraphSep + recommendations,
	}
}

// Analysis writes the introduction, the paragraphs for critical and high
// categories, the mention of medium categories and the impact statement.
func (c *Composer) Analysis(p schema.ProfileSummary, agr Agreement, seed uint32, variant schema.ConceptVariant) string {
	b := c.banks
	r := agr.Replacer()
	severity := p.GlobalSeverity

	intros := b.Introductions[severity]
	if len(intros) == 0 {
		intros = b.Introductions[schema.MedioSeverity]
	}
	paragraphs := []string{r.Replace(algo.Pick(intros, seed, 0))}

	focus := slices.Concat(p.CriticalCategories, p.HighCategories)
	for i, cat := range focus {
		cs, ok := p.Score(cat)
		if !ok {
			continue
		}
		desc, ok := b.Descriptions[cat][cs.Tier]
		if !ok {
			continue
		}
		paragraphs = append(paragraphs, c.categoryParagraph(i, cs, r.Replace(desc), agr, seed, variant))
	}

	if len(p.MediumCategories) > 0 {
		names := make([]string, 0, len(p.MediumCategories))
		for _, cat := range p.MediumCategories {
			names = append(names, schema.ShortName(cat))
		}
		paragraphs = append(paragraphs, strings.ReplaceAll(b.MediumSummary, "{items}", schema.JoinSpanish(names)))
	}

	connectors := b.ImpactConnectors[severity]
	if len(connectors) == 0 {
		connectors = b.ImpactConnectors[schema.MedioSeverity]
	}
	paragraphs = append(paragraphs, fmt.Sprintf("%s %s.", algo.Pick(connectors, seed, 1), b.Consequences[severity]))

	return strings.Join(paragraphs, paragraphSep)
}

func (c *Composer) categoryParagraph(i int, cs schema.CategoryScore, desc string, agr Agreement, seed uint32, variant schema.ConceptVariant) string {
	b := c.banks
	rotating := variant == schema.PruebaTrabajoVariant

	connector := b.FirstConnector
	if i > 0 {
		connector = b.NextConnector
		if rotating {
			connector = algo.Pick(b.TransitionConnectors, seed, i)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s, %s %s %s.", connector, schema.DisplayName(cs.Category), agr.Article, agr.Worker, desc)

	examples := cs.HighItemText[:min(len(cs.HighItemText), maxEvidenceItems)]
	if len(examples) > 0 {
		sb.WriteByte(' ')
		if rotating {
			sb.WriteString(algo.Pick(b.EvidencePhrases, seed, i))
			sb.WriteString(quoteItems(examples))
			sb.WriteByte('.')
		} else {
			tmpl := b.EvidenceSingle
			second := ""
			if len(examples) > 1 {
				tmpl = b.EvidencePair
				second = examples[1]
			}
			sb.WriteString(strings.NewReplacer("{item}", examples[0], "{item2}", second).Replace(tmpl))
		}
	}

	if pct := cs.PercentageHigh(); pct >= percentageMentionMin {
		tmpl := b.PercentageSentence
		if rotating {
			tmpl = algo.Pick(b.PercentagePhrases, seed, i)
		}
		sb.WriteByte(' ')
		sb.WriteString(strings.ReplaceAll(tmpl, "{pct}", fmt.Sprintf("%.0f", pct)))
	}

	return sb.String()
}

// quoteItems renders ` "a"` or ` "a" y "b"`.
func quoteItems(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = `"` + it + `"`
	}
	return " " + strings.Join(quoted, " y ")
}

// RecommendationsText writes the legal preamble, both numbered lists and the closing.
func (c *Composer) RecommendationsText(p schema.ProfileSummary, agr Agreement, hasDiagnosis bool, variant schema.ConceptVariant) string {
	b := c.banks
	r := agr.Replacer()

	preamble, ok := b.LegalPreambles[variant]
	if !ok {
		preamble = b.LegalPreambles[schema.ValoracionVariant]
	}
	worker, company := c.Recommendations(p, hasDiagnosis)

	var sb strings.Builder
	sb.WriteString(r.Replace(preamble))
	sb.WriteString(paragraphSep)
	sb.WriteString(r.Replace(b.WorkerHeader))
	sb.WriteByte('\n')
	writeNumbered(&sb, worker, r)
	sb.WriteByte('\n')
	sb.WriteString(r.Replace(b.CompanyHeader))
	sb.WriteByte('\n')
	writeNumbered(&sb, company, r)
	sb.WriteByte('\n')
	if p.GlobalSeverity.IsUrgent() {
		sb.WriteString(b.ClosingUrgent)
	} else {
		sb.WriteString(b.Closing)
	}
	return sb.String()
}

func writeNumbered(sb *strings.Builder, items []string, r *strings.Replacer) {
	for i, item := range items {
		fmt.Fprintf(sb, "\n%d. %s\n", i+1, r.Replace(item))
	}
}
