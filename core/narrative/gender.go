package narrative

import (
	"slices"
	"strings"
)

// Gender is the grammatical gender used for agreement in the generated text.
type Gender int

const (
	Masculine Gender = iota
	Feminine
)

// First names whose ending would mislead the suffix rule.
var (
	masculineNames   = []string{"joshua", "josua", "nikita", "garcia", "peña", "ezra", "andrea"}
	feminineNames    = []string{"carmen", "pilar", "mercedes", "dolores", "flor", "luz", "mar", "sol"}
	feminineSuffixes = []string{"a", "is", "iz", "th", "ny", "ly", "ey", "elle"}
)

// DetectGender guesses the grammatical gender from the first token of a name.
// Explicit lists win over the suffix rule; anything unmatched is Masculine.
func DetectGender(name string) Gender {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return Masculine
	}
	first := fields[0]

	if slices.Contains(masculineNames, first) {
		return Masculine
	}
	if slices.Contains(feminineNames, first) {
		return Feminine
	}
	for _, suffix := range feminineSuffixes {
		if strings.HasSuffix(first, suffix) {
			return Feminine
		}
	}
	return Masculine
}

// Agreement holds the gendered words substituted into templates.
type Agreement struct {
	Name       string
	Article    string // la / el
	ArticleCap string // La / El
	Worker     string // trabajadora / trabajador
	Noun       string // la afiliada / el afiliado
	Evaluated  string // evaluada / evaluado
}

// NewAgreement builds the agreement words for a subject name.
func NewAgreement(name string) Agreement {
	if DetectGender(name) == Feminine {
		return Agreement{
			Name:       name,
			Article:    "la",
			ArticleCap: "La",
			Worker:     "trabajadora",
			Noun:       "la afiliada",
			Evaluated:  "evaluada",
		}
	}
	return Agreement{
		Name:       name,
		Article:    "el",
		ArticleCap: "El",
		Worker:     "trabajador",
		Noun:       "el afiliado",
		Evaluated:  "evaluado",
	}
}

// Replacer returns a replacer for the agreement placeholders plus any extra
// old/new pairs.
func (a Agreement) Replacer(extra ...string) *strings.Replacer {
	pairs := []string{
		"{nombre}", a.Name,
		"{articulo}", a.Article,
		"{Articulo_cap}", a.ArticleCap,
		"{trabajador}", a.Worker,
		"{TRABAJADOR}", strings.ToUpper(a.Worker),
		"{sustantivo}", a.Noun,
		"{evaluado}", a.Evaluated,
	}
	return strings.NewReplacer(append(pairs, extra...)...)
}
