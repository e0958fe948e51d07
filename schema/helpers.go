package schema

import (
	"math"
	"strings"
)

// displayNames are the long category names used in analysis paragraphs.
var displayNames = map[Category]string{
	DemandasCuantitativas:     "Demandas Cuantitativas del Trabajo",
	DemandasCargaMental:       "Demandas de Carga Mental",
	DemandasEmocionales:       "Demandas Emocionales",
	ExigenciasResponsabilidad: "Exigencias de Responsabilidad del Cargo",
	ConsistenciaRol:           "Consistencia del Rol",
	DemandasAmbientales:       "Demandas Ambientales y de Esfuerzo Físico",
	DemandasJornada:           "Demandas de la Jornada de Trabajo",
}

// shortNames are used where several categories are listed in one sentence.
var shortNames = map[Category]string{
	DemandasCuantitativas:     "Demandas Cuantitativas",
	DemandasCargaMental:       "Carga Mental",
	DemandasEmocionales:       "Demandas Emocionales",
	ExigenciasResponsabilidad: "Exigencias de Responsabilidad",
	ConsistenciaRol:           "Consistencia de Rol",
	DemandasAmbientales:       "Demandas Ambientales",
	DemandasJornada:           "Demandas de Jornada",
}

// DisplayName returns the long human name of a category.
func DisplayName(c Category) string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return titleCase(string(c))
}

// ShortName returns the short human name of a category.
func ShortName(c Category) string {
	if name, ok := shortNames[c]; ok {
		return name
	}
	return string(c)
}

// JoinSpanish joins names as "a", "a y b" or "a, b y c".
func JoinSpanish(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " y " + names[len(names)-1]
	}
}

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Summary builds the compact RiskSummary of a profile.
func (p ProfileSummary) Summary() RiskSummary {
	scores := make(map[Category]CategorySummary, len(p.CategoryScores))
	for _, cs := range p.CategoryScores {
		scores[cs.Category] = CategorySummary{
			Score:       Round2(cs.Score),
			Level:       cs.Tier,
			Percentages: cs.Percentages,
		}
	}
	return RiskSummary{
		GlobalLevel:        p.GlobalSeverity,
		GlobalScore:        Round2(p.GlobalScore),
		CriticalCategories: nonNil(p.CriticalCategories),
		HighCategories:     nonNil(p.HighCategories),
		MediumCategories:   nonNil(p.MediumCategories),
		ScoresByCategory:   scores,
	}
}

// nonNil keeps JSON output as [] instead of null.
func nonNil(cats []Category) []Category {
	if cats == nil {
		return []Category{}
	}
	return cats
}

// titleCase turns "some_key" into "Some Key".
func titleCase(key string) string {
	parts := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, p := range parts {
		r := []rune(p)
		parts[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(parts, " ")
}
