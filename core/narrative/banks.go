// Package narrative renders the analysis and recommendation text of a risk profile.
package narrative

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"

	"github.com/Daniromero1410/Mentis/schema"
	"gopkg.in/yaml.v3"
)

// RecommendationSet holds the sentences a category contributes at each tier.
// High applies to alto and alto_critico, Medium to medio.
type RecommendationSet struct {
	High   []string `yaml:"high" json:"high"`
	Medium []string `yaml:"medium" json:"medium"`
}

// Banks is the text data the composer fills. Templates use {placeholder} markers:
// {nombre}, {articulo}, {Articulo_cap}, {trabajador}, {sustantivo}, {evaluado},
// plus {items}, {item}, {item2}, {pct} and {TRABAJADOR} where noted.
//
// A Banks value is never mutated by the composer. Default returns a fresh copy.
type Banks struct {
	Introductions    map[schema.GlobalSeverity][]string                  `yaml:"introductions"`
	Descriptions     map[schema.Category]map[schema.CategoryTier]string `yaml:"descriptions"`
	ImpactConnectors map[schema.GlobalSeverity][]string                  `yaml:"impact_connectors"`
	Consequences     map[schema.GlobalSeverity]string                    `yaml:"consequences"`

	FirstConnector       string   `yaml:"first_connector"`
	NextConnector        string   `yaml:"next_connector"`
	TransitionConnectors []string `yaml:"transition_connectors"`
	EvidenceSingle       string   `yaml:"evidence_single"` // {item}
	EvidencePair         string   `yaml:"evidence_pair"`   // {item}, {item2}
	EvidencePhrases      []string `yaml:"evidence_phrases"`
	PercentageSentence   string   `yaml:"percentage_sentence"` // {pct}
	PercentagePhrases    []string `yaml:"percentage_phrases"`  // {pct}
	MediumSummary        string   `yaml:"medium_summary"`      // {items}

	LegalPreambles map[schema.ConceptVariant]string `yaml:"legal_preambles"`
	WorkerHeader   string                           `yaml:"worker_header"` // {TRABAJADOR}
	CompanyHeader  string                           `yaml:"company_header"`

	WorkerTreatmentUrgent  string                                 `yaml:"worker_treatment_urgent"`
	WorkerTreatment        string                                 `yaml:"worker_treatment"`
	CompanyDiagnosis       []string                               `yaml:"company_diagnosis"`
	WorkerCompliance       []string                               `yaml:"worker_compliance"`
	WorkerRecommendations  map[schema.Category]RecommendationSet `yaml:"worker_recommendations"`
	CompanyRecommendations map[schema.Category]RecommendationSet `yaml:"company_recommendations"`
	WorkerWellnessUrgent   []string                               `yaml:"worker_wellness_urgent"`
	WorkerWellness         []string                               `yaml:"worker_wellness"`
	CompanyUniversal       []string                               `yaml:"company_universal"`

	ClosingUrgent string `yaml:"closing_urgent"`
	Closing       string `yaml:"closing"`

	InsufficientAnalysis        string `yaml:"insufficient_analysis"`
	InsufficientRecommendations string `yaml:"insufficient_recommendations"`
}

// LoadBanks decodes a YAML document over the default banks.
// Scalars and lists present in the document replace the defaults. Maps are merged
// per key: descriptions per category and tier, recommendations per category and
// per high/medium list.
func LoadBanks(r io.Reader) (*Banks, error) {
	var overlay Banks
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&overlay); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode banks: %w", err)
	}
	b := Default()
	b.merge(&overlay)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// merge copies every value set in o over b.
func (b *Banks) merge(o *Banks) {
	mergeMap(&b.Introductions, o.Introductions)
	for c, tiers := range o.Descriptions {
		if b.Descriptions == nil {
			b.Descriptions = make(map[schema.Category]map[schema.CategoryTier]string)
		}
		dst := b.Descriptions[c]
		mergeMap(&dst, tiers)
		b.Descriptions[c] = dst
	}
	mergeMap(&b.ImpactConnectors, o.ImpactConnectors)
	mergeMap(&b.Consequences, o.Consequences)

	mergeString(&b.FirstConnector, o.FirstConnector)
	mergeString(&b.NextConnector, o.NextConnector)
	mergeList(&b.TransitionConnectors, o.TransitionConnectors)
	mergeString(&b.EvidenceSingle, o.EvidenceSingle)
	mergeString(&b.EvidencePair, o.EvidencePair)
	mergeList(&b.EvidencePhrases, o.EvidencePhrases)
	mergeString(&b.PercentageSentence, o.PercentageSentence)
	mergeList(&b.PercentagePhrases, o.PercentagePhrases)
	mergeString(&b.MediumSummary, o.MediumSummary)

	mergeMap(&b.LegalPreambles, o.LegalPreambles)
	mergeString(&b.WorkerHeader, o.WorkerHeader)
	mergeString(&b.CompanyHeader, o.CompanyHeader)

	mergeString(&b.WorkerTreatmentUrgent, o.WorkerTreatmentUrgent)
	mergeString(&b.WorkerTreatment, o.WorkerTreatment)
	mergeList(&b.CompanyDiagnosis, o.CompanyDiagnosis)
	mergeList(&b.WorkerCompliance, o.WorkerCompliance)
	mergeRecommendations(&b.WorkerRecommendations, o.WorkerRecommendations)
	mergeRecommendations(&b.CompanyRecommendations, o.CompanyRecommendations)
	mergeList(&b.WorkerWellnessUrgent, o.WorkerWellnessUrgent)
	mergeList(&b.WorkerWellness, o.WorkerWellness)
	mergeList(&b.CompanyUniversal, o.CompanyUniversal)

	mergeString(&b.ClosingUrgent, o.ClosingUrgent)
	mergeString(&b.Closing, o.Closing)

	mergeString(&b.InsufficientAnalysis, o.InsufficientAnalysis)
	mergeString(&b.InsufficientRecommendations, o.InsufficientRecommendations)
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// mergeList replaces dst when the document set the list, even to [].
func mergeList(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}

func mergeMap[K comparable, V any](dst *map[K]V, src map[K]V) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[K]V, len(src))
	}
	maps.Copy(*dst, src)
}

// mergeRecommendations keeps the list of a tier the document leaves out.
func mergeRecommendations(dst *map[schema.Category]RecommendationSet, src map[schema.Category]RecommendationSet) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[schema.Category]RecommendationSet, len(src))
	}
	for c, set := range src {
		cur := (*dst)[c]
		mergeList(&cur.High, set.High)
		mergeList(&cur.Medium, set.Medium)
		(*dst)[c] = cur
	}
}

// LoadBanksFile is LoadBanks over a file path.
func LoadBanksFile(path string) (*Banks, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open banks file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadBanks(f)
}

// Validate checks that every severity, category and variant has the text the composer needs.
func (b *Banks) Validate() error {
	for _, s := range schema.AllSeverities {
		if len(b.Introductions[s]) == 0 {
			return fmt.Errorf("banks: no introductions for severity %s", s)
		}
		if b.Consequences[s] == "" {
			return fmt.Errorf("banks: no consequence for severity %s", s)
		}
	}
	if len(b.ImpactConnectors[schema.MedioSeverity]) == 0 {
		return errors.New("banks: impact connectors need at least the medio entry")
	}
	for _, c := range schema.AllCategories {
		for _, tier := range []schema.CategoryTier{schema.AltoCriticoTier, schema.AltoTier, schema.MedioTier, schema.BajoTier} {
			if b.Descriptions[c][tier] == "" {
				return fmt.Errorf("banks: no description for %s at %s", c, tier)
			}
		}
	}
	for v := range schema.ValidVariants {
		if b.LegalPreambles[v] == "" {
			return fmt.Errorf("banks: no legal preamble for variant %s", v)
		}
	}
	if len(b.TransitionConnectors) == 0 || len(b.EvidencePhrases) == 0 || len(b.PercentagePhrases) == 0 {
		return errors.New("banks: rotating phrase lists must not be empty")
	}
	if len(b.WorkerWellness) == 0 || len(b.WorkerWellnessUrgent) == 0 || len(b.CompanyUniversal) == 0 {
		return errors.New("banks: universal recommendations must not be empty")
	}
	return nil
}
