package schema

// ProfileReport adds the assessment identity to a RiskSummary for presentation.
type ProfileReport struct {
	EvaluationID string `json:"evaluation_id"`
	SubjectName  string `json:"subject_name"`
	RiskSummary
}

// ConceptReport adds the assessment identity to a GeneratedConcept for presentation.
type ConceptReport struct {
	EvaluationID   string         `json:"evaluation_id"`
	SubjectName    string         `json:"subject_name"`
	Variant        ConceptVariant `json:"variant"`
	GlobalSeverity GlobalSeverity `json:"nivel_global"`
	GeneratedConcept
}

// NewProfileReport builds the presentation view of a profile.
func NewProfileReport(evaluationID, subjectName string, p ProfileSummary) ProfileReport {
	return ProfileReport{
		EvaluationID: evaluationID,
		SubjectName:  subjectName,
		RiskSummary:  p.Summary(),
	}
}

// Record converts the report into the row kept by the concept store.
func (r ConceptReport) Record() ConceptRecord {
	return ConceptRecord{
		EvaluationID:    r.EvaluationID,
		SubjectName:     r.SubjectName,
		Variant:         string(r.Variant),
		GlobalSeverity:  string(r.GlobalSeverity),
		Analysis:        r.Analysis,
		Recommendations: r.Recommendations,
		FullText:        r.Full,
	}
}
