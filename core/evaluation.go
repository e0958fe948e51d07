package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Daniromero1410/Mentis/core/narrative"
	"github.com/Daniromero1410/Mentis/internal/contract"
	"github.com/Daniromero1410/Mentis/schema"
)

// evaluation is one assessment taken through the engine.
type evaluation struct {
	assessment *PreparedAssessment
	variant    schema.ConceptVariant
	profile    schema.ProfileSummary
	concept    schema.GeneratedConcept
}

// conceptReport returns the presentation view of the generated concept.
func (ev *evaluation) conceptReport() schema.ConceptReport {
	return schema.ConceptReport{
		EvaluationID:     ev.assessment.EvaluationID,
		SubjectName:      ev.assessment.SubjectName,
		Variant:          ev.variant,
		GlobalSeverity:   ev.profile.GlobalSeverity,
		GeneratedConcept: ev.concept,
	}
}

// runEvaluation loads the assessment named in cfg, runs the engine and records the run.
// The concept is only composed when withConcept is set.
func runEvaluation(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, withConcept bool) (*evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.InputPath == "" {
		return nil, errors.New("an assessment file is required")
	}
	a, err := LoadAssessmentFile(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	return evaluateAssessment(ctx, cfg, mgr, a, withConcept)
}

// evaluateAssessment applies the subject overrides of cfg to a, runs the engine and records the run.
func evaluateAssessment(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, a *schema.Assessment, withConcept bool) (*evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	applySubjectOverrides(a, cfg)
	prepared, err := Prepare(a)
	if err != nil {
		return nil, err
	}
	engine, err := newEngineFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	ctx = withStoreManager(ctx, mgr)
	ctx = beginProfileRun(ctx, prepared, engine.Variant())

	ev := &evaluation{assessment: prepared, variant: engine.Variant()}
	if withConcept {
		ev.profile, ev.concept = engine.Evaluate(prepared.Items, prepared.SubjectName, prepared.HasDiagnosis)
	} else {
		ev.profile = engine.ComputeProfile(prepared.Items)
	}

	recordCategoryScores(ctx, ev.profile)
	endProfileRun(ctx, ev.profile)
	return ev, nil
}

// applySubjectOverrides replaces document subject fields with the ones set in cfg.
func applySubjectOverrides(a *schema.Assessment, cfg *contract.Config) {
	if cfg.SubjectName != "" {
		a.Subject.Name = cfg.SubjectName
	}
	if cfg.Diagnosis != "" {
		a.Subject.Diagnosis = cfg.Diagnosis
	}
	if cfg.HasDiagnosis != nil {
		v := *cfg.HasDiagnosis
		a.Subject.HasDiagnosis = &v
	}
}

// newEngineFromConfig builds an engine with the scoring, variant and banks of cfg.
func newEngineFromConfig(cfg *contract.Config) (*Engine, error) {
	var opts []Option
	if cfg.Scoring.CategoryWeights != nil {
		opts = append(opts, WithScoring(cfg.Scoring))
	}
	if cfg.Variant != "" {
		opts = append(opts, WithVariant(cfg.Variant))
	}
	if cfg.BanksFile != "" {
		banks, err := narrative.LoadBanksFile(cfg.BanksFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithBanks(banks))
	}
	return NewEngine(opts...), nil
}

// beginProfileRun opens a run in the profile store, if one is configured.
func beginProfileRun(ctx context.Context, prepared *PreparedAssessment, variant schema.ConceptVariant) context.Context {
	store := profileStoreFromContext(ctx)
	if store == nil {
		return ctx
	}
	runID, err := store.BeginRun(time.Now(), schema.ProfileRunRecord{
		EvaluationID: prepared.EvaluationID,
		SubjectName:  prepared.SubjectName,
		Variant:      string(variant),
		HasDiagnosis: prepared.HasDiagnosis,
		ItemCount:    int32(len(prepared.Items)),
	})
	if err != nil {
		contract.LogWarn("Profile run tracking initialization failed", err)
		return ctx
	}
	return withRunID(ctx, runID)
}

// recordCategoryScores stores every category of the profile under the current run.
func recordCategoryScores(ctx context.Context, profile schema.ProfileSummary) {
	store := profileStoreFromContext(ctx)
	runID, ok := getRunID(ctx)
	if store == nil || !ok {
		return
	}
	for _, cs := range profile.CategoryScores {
		if err := store.RecordCategoryScore(runID, cs); err != nil {
			logTrackingError("RecordCategoryScore", string(cs.Category), err)
		}
	}
}

// endProfileRun closes the current run with the classification outcome.
func endProfileRun(ctx context.Context, profile schema.ProfileSummary) {
	store := profileStoreFromContext(ctx)
	runID, ok := getRunID(ctx)
	if store == nil || !ok {
		return
	}
	if err := store.EndRun(runID, time.Now(), profile); err != nil {
		contract.LogWarn("Failed to finalize profile run tracking", err)
	}
}

// recordConcept upserts a generated concept in the concept store, if one is configured.
func recordConcept(mgr contract.StoreManager, report schema.ConceptReport) {
	if mgr == nil {
		return
	}
	store := mgr.GetConceptStore()
	if store == nil {
		return
	}
	if err := store.UpsertConcept(report.Record()); err != nil {
		logTrackingError("UpsertConcept", report.EvaluationID, err)
	}
}

func profileStoreFromContext(ctx context.Context) contract.ProfileStore {
	mgr := storeManagerFromContext(ctx)
	if mgr == nil {
		return nil
	}
	return mgr.GetProfileStore()
}

// logTrackingError logs store failures to stderr without failing the command.
func logTrackingError(operation, key string, err error) {
	contract.LogWarn(fmt.Sprintf("Store tracking failed for %s on %s", operation, key), err)
}
