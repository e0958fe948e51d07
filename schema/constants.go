package schema

// Custom string types for type safety.
type (
	// Category is one of the seven psychosocial risk dimensions.
	Category string

	// Rating is the mark an evaluator gives to a single item.
	Rating string

	// CategoryTier is the severity vocabulary used for a single category.
	CategoryTier string

	// GlobalSeverity is the severity vocabulary used for a whole profile.
	GlobalSeverity string

	// ConceptVariant selects the document flavor the narrative is written for.
	ConceptVariant string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All categories supported, in catalog order.
const (
	DemandasCuantitativas     Category = "demandas_cuantitativas"
	DemandasCargaMental       Category = "demandas_carga_mental"
	DemandasEmocionales       Category = "demandas_emocionales"
	ExigenciasResponsabilidad Category = "exigencias_responsabilidad"
	ConsistenciaRol           Category = "consistencia_rol"
	DemandasAmbientales       Category = "demandas_ambientales"
	DemandasJornada           Category = "demandas_jornada"
)

// All ratings supported. A nil *Rating means "not rated".
const (
	RatingAlto  Rating = "alto"
	RatingMedio Rating = "medio"
	RatingBajo  Rating = "bajo"
)

// Category-level tiers. SinRiesgoTier is part of the vocabulary but the
// classifier never assigns it.
const (
	SinRiesgoTier   CategoryTier = "sin_riesgo"
	BajoTier        CategoryTier = "bajo"
	MedioTier       CategoryTier = "medio"
	AltoTier        CategoryTier = "alto"
	AltoCriticoTier CategoryTier = "alto_critico"
)

// Profile-level severities, lowest first.
const (
	BajoSeverity    GlobalSeverity = "bajo"
	MedioSeverity   GlobalSeverity = "medio"
	AltoSeverity    GlobalSeverity = "alto"
	MuyAltoSeverity GlobalSeverity = "muy_alto"
	CriticoSeverity GlobalSeverity = "critico"
)

// All concept variants supported.
const (
	ValoracionVariant    ConceptVariant = "valoracion" // default
	PruebaTrabajoVariant ConceptVariant = "prueba_trabajo"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// AllCategories returns the categories in catalog order.
var AllCategories = []Category{
	DemandasCuantitativas,
	DemandasCargaMental,
	DemandasEmocionales,
	ExigenciasResponsabilidad,
	ConsistenciaRol,
	DemandasAmbientales,
	DemandasJornada,
}

// AllSeverities returns the global severities from lowest to highest.
var AllSeverities = []GlobalSeverity{BajoSeverity, MedioSeverity, AltoSeverity, MuyAltoSeverity, CriticoSeverity}

// ValidCategories lists all valid categories.
var ValidCategories = map[Category]struct{}{
	DemandasCuantitativas:     {},
	DemandasCargaMental:       {},
	DemandasEmocionales:       {},
	ExigenciasResponsabilidad: {},
	ConsistenciaRol:           {},
	DemandasAmbientales:       {},
	DemandasJornada:           {},
}

// ValidRatings lists all valid ratings.
var ValidRatings = map[Rating]struct{}{
	RatingAlto:  {},
	RatingMedio: {},
	RatingBajo:  {},
}

// ValidVariants lists all valid concept variants.
var ValidVariants = map[ConceptVariant]struct{}{
	ValoracionVariant:    {},
	PruebaTrabajoVariant: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidStoreBackends lists all valid store backends.
var ValidStoreBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Rank returns the ordinal position of the severity, bajo being 0.
// Unknown values rank below bajo.
func (s GlobalSeverity) Rank() int {
	for i, v := range AllSeverities {
		if v == s {
			return i
		}
	}
	return -1
}

// IsUrgent reports whether the severity calls for urgent follow-up wording.
func (s GlobalSeverity) IsUrgent() bool {
	return s == CriticoSeverity || s == MuyAltoSeverity
}

// IsHigh reports whether the tier is one of the two high tiers.
func (t CategoryTier) IsHigh() bool {
	return t == AltoTier || t == AltoCriticoTier
}
