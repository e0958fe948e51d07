package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Daniromero1410/Mentis/schema"
	"github.com/fatih/color"
)

// Severity label constants.
const (
	CriticoValue = "Crítico"
	MuyAltoValue = "Muy alto"
	AltoValue    = "Alto"
	MedioValue   = "Medio"
	BajoValue    = "Bajo"
)

// Color variables for console output.
var (
	CriticoColor   = color.New(color.FgRed, color.Bold)     // critico and alto_critico
	AltoColor      = color.New(color.FgMagenta, color.Bold) // muy_alto and alto
	MedioColor     = color.New(color.FgYellow)              // caution, not bold
	BajoColor      = color.New(color.FgCyan)                // informational
	SinRiesgoColor = color.New(color.FgGreen)
)

// GetPlainLabel returns the human label of a global severity.
// It is used for CSV, JSON and table printing.
func GetPlainLabel(s schema.GlobalSeverity) string {
	switch s {
	case schema.CriticoSeverity:
		return CriticoValue
	case schema.MuyAltoSeverity:
		return MuyAltoValue
	case schema.AltoSeverity:
		return AltoValue
	case schema.MedioSeverity:
		return MedioValue
	default:
		return BajoValue
	}
}

// GetColorLabel returns the colored label of a global severity for the table.
func GetColorLabel(s schema.GlobalSeverity) string {
	text := GetPlainLabel(s)

	switch s {
	case schema.CriticoSeverity:
		return CriticoColor.Sprint(text)
	case schema.MuyAltoSeverity, schema.AltoSeverity:
		return AltoColor.Sprint(text)
	case schema.MedioSeverity:
		return MedioColor.Sprint(text)
	default:
		return BajoColor.Sprint(text)
	}
}

// GetTierLabel returns the human label of a category tier.
func GetTierLabel(t schema.CategoryTier) string {
	switch t {
	case schema.AltoCriticoTier:
		return "Alto crítico"
	case schema.AltoTier:
		return AltoValue
	case schema.MedioTier:
		return MedioValue
	case schema.SinRiesgoTier:
		return "Sin riesgo"
	default:
		return BajoValue
	}
}

// GetTierColorLabel returns the colored label of a category tier.
func GetTierColorLabel(t schema.CategoryTier) string {
	text := GetTierLabel(t)

	switch t {
	case schema.AltoCriticoTier:
		return CriticoColor.Sprint(text)
	case schema.AltoTier:
		return AltoColor.Sprint(text)
	case schema.MedioTier:
		return MedioColor.Sprint(text)
	case schema.SinRiesgoTier:
		return SinRiesgoColor.Sprint(text)
	default:
		return BajoColor.Sprint(text)
	}
}

// SelectOutputFile returns the file handle for output, or os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for the profile store.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".mentis.db"
	}
	return filepath.Join(homeDir, ".mentis.db")
}

// TruncateText shortens text to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so the ellipsis leaves room for content.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0", "si", "sí" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "si", "sí":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
