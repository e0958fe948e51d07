// Package core has the risk engine and the orchestration behind each mentis command.
package core

import (
	"maps"

	"github.com/Daniromero1410/Mentis/core/agg"
	"github.com/Daniromero1410/Mentis/core/algo"
	"github.com/Daniromero1410/Mentis/core/narrative"
	"github.com/Daniromero1410/Mentis/schema"
)

// Engine turns rated items into a profile and a written concept.
// It has no I/O and no mutable state after construction, so one Engine can
// serve concurrent callers.
type Engine struct {
	scoring  schema.Scoring
	composer *narrative.Composer
	variant  schema.ConceptVariant
}

// Option customizes an Engine.
type Option func(*Engine)

// WithScoring replaces the category weights and thresholds.
// Categories missing from the weights map fall back to the defaults.
func WithScoring(s schema.Scoring) Option {
	return func(e *Engine) {
		weights := schema.GetDefaultCategoryWeights()
		maps.Copy(weights, s.CategoryWeights)
		e.scoring = schema.Scoring{CategoryWeights: weights, Thresholds: s.Thresholds}
	}
}

// WithBanks replaces the text banks.
func WithBanks(b *narrative.Banks) Option {
	return func(e *Engine) {
		if b != nil {
			e.composer = narrative.NewComposer(b)
		}
	}
}

// WithVariant selects the document flavor of generated concepts.
func WithVariant(v schema.ConceptVariant) Option {
	return func(e *Engine) {
		if _, ok := schema.ValidVariants[v]; ok {
			e.variant = v
		}
	}
}

// NewEngine returns an engine with the default scoring, banks and variant
// unless overridden by options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		scoring:  schema.DefaultScoring(),
		composer: narrative.NewComposer(nil),
		variant:  schema.ValoracionVariant,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scoring returns the weights and thresholds in use.
func (e *Engine) Scoring() schema.Scoring {
	return schema.Scoring{
		CategoryWeights: maps.Clone(e.scoring.CategoryWeights),
		Thresholds:      e.scoring.Thresholds,
	}
}

// Variant returns the document flavor in use.
func (e *Engine) Variant() schema.ConceptVariant {
	return e.variant
}

// ComputeProfile aggregates and classifies the items.
// Empty input yields a bajo profile with empty buckets.
func (e *Engine) ComputeProfile(items []schema.RatedItem) schema.ProfileSummary {
	scores := agg.AggregateCategories(items, e.scoring.CategoryWeights)
	return algo.Classify(scores, e.scoring.Thresholds)
}

// GenerateConcept computes the profile and writes the concept for it.
// Empty input returns the fixed placeholder texts.
func (e *Engine) GenerateConcept(items []schema.RatedItem, subjectName string, hasDiagnosis bool) schema.GeneratedConcept {
	_, concept := e.Evaluate(items, subjectName, hasDiagnosis)
	return concept
}

// Evaluate returns both the profile and the concept from a single aggregation pass.
func (e *Engine) Evaluate(items []schema.RatedItem, subjectName string, hasDiagnosis bool) (schema.ProfileSummary, schema.GeneratedConcept) {
	profile := e.ComputeProfile(items)
	if len(items) == 0 {
		return profile, e.composer.Insufficient()
	}
	return profile, e.composer.Compose(profile, subjectName, hasDiagnosis, e.variant)
}

var defaultEngine = NewEngine()

// ComputeProfile runs the default engine.
func ComputeProfile(items []schema.RatedItem) schema.ProfileSummary {
	return defaultEngine.ComputeProfile(items)
}

// GenerateConcept runs the default engine.
func GenerateConcept(items []schema.RatedItem, subjectName string, hasDiagnosis bool) schema.GeneratedConcept {
	return defaultEngine.GenerateConcept(items, subjectName, hasDiagnosis)
}
