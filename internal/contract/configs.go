package contract

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/Daniromero1410/Mentis/schema"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	MaxPrecision     = 4
)

// ProfilingConfig holds pprof settings.
type ProfilingConfig struct {
	Enabled bool
	Prefix  string
}

// ThresholdsRawInput holds classifier cut-offs from the YAML config file.
// Nil fields keep their defaults.
type ThresholdsRawInput struct {
	CategoryCriticalPct *float64 `mapstructure:"category_critical_pct"`
	CategoryHighPct     *float64 `mapstructure:"category_high_pct"`
	CategoryMediumPct   *float64 `mapstructure:"category_medium_pct"`
	CategoryCombinedPct *float64 `mapstructure:"category_combined_pct"`
	GlobalCriticoScore  *float64 `mapstructure:"global_critico_score"`
	GlobalMuyAltoScore  *float64 `mapstructure:"global_muy_alto_score"`
	GlobalAltoScore     *float64 `mapstructure:"global_alto_score"`
	GlobalMedioScore    *float64 `mapstructure:"global_medio_score"`
}

// ScoringRawInput holds the scoring section of the YAML config file.
type ScoringRawInput struct {
	CategoryWeights map[string]float64 `mapstructure:"category_weights"`
	Thresholds      ThresholdsRawInput `mapstructure:"thresholds"`
}

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	InputPath  string
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Variant      schema.ConceptVariant
	SubjectName  string // overrides the document subject when set
	Diagnosis    string // overrides the document diagnosis when set
	HasDiagnosis *bool  // explicit flag, nil = derive from the diagnosis
	BanksFile    string

	Category schema.Category // catalog filter, empty = all

	Scoring schema.Scoring

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext
	TargetVersion  int
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPath string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from profile and concept flags ---
	Variant      string `mapstructure:"variant"`
	Subject      string `mapstructure:"subject"`
	Diagnosis    string `mapstructure:"diagnosis"`
	HasDiagnosis string `mapstructure:"has-diagnosis"`
	BanksFile    string `mapstructure:"banks-file"`

	// --- Fields from catalogCmd.Flags() ---
	Category string `mapstructure:"category"`

	// --- Fields from storeMigrateCmd.Flags() ---
	TargetVersion int `mapstructure:"target-version"`

	// --- Scoring overrides from config file ---
	Scoring ScoringRawInput `mapstructure:"scoring"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Scoring.CategoryWeights != nil {
		clone.Scoring.CategoryWeights = maps.Clone(c.Scoring.CategoryWeights)
	}
	if c.HasDiagnosis != nil {
		v := *c.HasDiagnosis
		clone.HasDiagnosis = &v
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateStoreConfig(cfg, input); err != nil {
		return err
	}
	if err := processSubjectOverrides(cfg, input); err != nil {
		return err
	}
	if err := processScoring(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return errors.New("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return errors.New("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return errors.New("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return errors.New("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates the output and rendering fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.InputPath = strings.TrimSpace(input.InputPath)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.BanksFile = strings.TrimSpace(input.BanksFile)
	cfg.TargetVersion = input.TargetVersion

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	variant := strings.ToLower(strings.TrimSpace(input.Variant))
	if variant == "" {
		variant = string(schema.ValoracionVariant)
	}
	cfg.Variant = schema.ConceptVariant(variant)
	if _, ok := schema.ValidVariants[cfg.Variant]; !ok {
		return fmt.Errorf("invalid variant '%s'. must be valoracion, prueba_trabajo", input.Variant)
	}

	cfg.Category = ""
	if strings.TrimSpace(input.Category) != "" {
		cat, err := schema.ParseCategory(input.Category)
		if err != nil {
			return fmt.Errorf("invalid --category: %w", err)
		}
		cfg.Category = cat
	}
	return nil
}

// validateStoreConfig validates the store backend configuration.
func validateStoreConfig(cfg *Config, input *ConfigRawInput) error {
	backend := strings.ToLower(strings.TrimSpace(input.StoreBackend))
	if backend == "" {
		backend = string(schema.NoneBackend)
	}
	cfg.StoreBackend = schema.DatabaseBackend(backend)
	if _, ok := schema.ValidStoreBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// processSubjectOverrides handles the subject flags that override the document.
func processSubjectOverrides(cfg *Config, input *ConfigRawInput) error {
	cfg.SubjectName = strings.TrimSpace(input.Subject)
	cfg.Diagnosis = strings.TrimSpace(input.Diagnosis)
	cfg.HasDiagnosis = nil
	if strings.TrimSpace(input.HasDiagnosis) != "" {
		v, err := ParseBoolString(input.HasDiagnosis)
		if err != nil {
			return fmt.Errorf("invalid --has-diagnosis value: %w", err)
		}
		cfg.HasDiagnosis = &v
	}
	return nil
}

// processScoring merges the config file overrides into the default scoring and validates them.
func processScoring(cfg *Config, input *ConfigRawInput) error {
	scoring := schema.DefaultScoring()

	for key, w := range input.Scoring.CategoryWeights {
		cat, err := schema.ParseCategory(key)
		if err != nil {
			return fmt.Errorf("invalid scoring weight: %w", err)
		}
		if w <= 0 {
			return fmt.Errorf("weight for %s must be greater than 0 (received %.2f)", cat, w)
		}
		scoring.CategoryWeights[cat] = w
	}

	raw := input.Scoring.Thresholds
	th := &scoring.Thresholds
	for _, o := range []struct {
		src *float64
		dst *float64
	}{
		{raw.CategoryCriticalPct, &th.CategoryCriticalPct},
		{raw.CategoryHighPct, &th.CategoryHighPct},
		{raw.CategoryMediumPct, &th.CategoryMediumPct},
		{raw.CategoryCombinedPct, &th.CategoryCombinedPct},
		{raw.GlobalCriticoScore, &th.GlobalCriticoScore},
		{raw.GlobalMuyAltoScore, &th.GlobalMuyAltoScore},
		{raw.GlobalAltoScore, &th.GlobalAltoScore},
		{raw.GlobalMedioScore, &th.GlobalMedioScore},
	} {
		if o.src != nil {
			*o.dst = *o.src
		}
	}
	if err := ValidateThresholds(*th); err != nil {
		return err
	}

	cfg.Scoring = scoring
	return nil
}

// ValidateThresholds checks that percentages are within [0,100] and that
// every ladder is ordered from the most severe cut-off down.
func ValidateThresholds(th schema.Thresholds) error {
	for name, pct := range map[string]float64{
		"category_critical_pct": th.CategoryCriticalPct,
		"category_high_pct":     th.CategoryHighPct,
		"category_medium_pct":   th.CategoryMediumPct,
		"category_combined_pct": th.CategoryCombinedPct,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("threshold %s must be between 0 and 100 (received %.2f)", name, pct)
		}
	}
	if th.CategoryCriticalPct < th.CategoryHighPct || th.CategoryHighPct < th.CategoryMediumPct {
		return errors.New("category thresholds must satisfy critical >= high >= medium")
	}
	if th.GlobalMedioScore <= 0 {
		return fmt.Errorf("threshold global_medio_score must be greater than 0 (received %.2f)", th.GlobalMedioScore)
	}
	if th.GlobalCriticoScore < th.GlobalMuyAltoScore || th.GlobalMuyAltoScore < th.GlobalAltoScore || th.GlobalAltoScore < th.GlobalMedioScore {
		return errors.New("global thresholds must satisfy critico >= muy_alto >= alto >= medio")
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profiling *ProfilingConfig, prefix string) {
	if prefix != "" {
		profiling.Enabled = true
		profiling.Prefix = prefix
	}
}
