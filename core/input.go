package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Daniromero1410/Mentis/schema"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultSubjectName is used when an assessment carries no subject name.
const DefaultSubjectName = "el trabajador"

// ErrEmptyDocument is returned when an assessment document has no content.
var ErrEmptyDocument = errors.New("assessment document is empty")

var assessmentValidate = validator.New()

// PreparedAssessment is an assessment ready for the engine.
type PreparedAssessment struct {
	EvaluationID string
	SubjectName  string
	HasDiagnosis bool
	Items        []schema.RatedItem
}

// LoadAssessment decodes a YAML or JSON assessment document.
func LoadAssessment(r io.Reader) (*schema.Assessment, error) {
	var a schema.Assessment
	if err := yaml.NewDecoder(r).Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to decode assessment: %w", err)
	}
	return &a, nil
}

// LoadAssessmentFile reads an assessment from a path, or from stdin when path is "-".
func LoadAssessmentFile(path string) (*schema.Assessment, error) {
	if path == "-" {
		return LoadAssessment(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open assessment: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadAssessment(f)
}

// Prepare validates and normalizes an assessment. Unknown categories or
// ratings are rejected here so the engine only ever sees the fixed vocabulary.
// A missing evaluation id is replaced by a random UUID.
func Prepare(a *schema.Assessment) (*PreparedAssessment, error) {
	if err := assessmentValidate.Struct(a); err != nil {
		return nil, fmt.Errorf("invalid assessment: %w", err)
	}
	items, err := schema.NormalizeItems(a.Items)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(a.EvaluationID)
	if id == "" {
		id = uuid.NewString()
	}
	name := strings.TrimSpace(a.Subject.Name)
	if name == "" {
		name = DefaultSubjectName
	}
	return &PreparedAssessment{
		EvaluationID: id,
		SubjectName:  name,
		HasDiagnosis: a.Subject.DiagnosisFlag(),
		Items:        items,
	}, nil
}
