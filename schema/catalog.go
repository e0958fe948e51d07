package schema

// itemCatalog holds the canonical question texts per category. Item numbers are 1-based.
var itemCatalog = map[Category][]string{
	DemandasCuantitativas: {
		"Ritmo de trabajo acelerado o bajo presión de tiempo",
		"Imposibilidad de hacer pausas dentro de la jornada",
		"Tiempo adicional para cumplir con el trabajo asignado",
		"Volumen de carga laboral",
	},
	DemandasCargaMental: {
		"Exigencia de memoria, atención y concentración",
		"Exigencia de altos niveles de detalle o precisión",
		"Elevada cantidad de información que se usa bajo presión de tiempo",
		"Elevada cantidad de información que se usa de forma simultánea",
		"La información necesaria para realizar el trabajo es compleja",
		"Ejecución de tareas de alta carga cognitiva",
		"Cantidad de tareas que exigen realización bajo presión de tiempo",
		"Percepción de agotamiento al final de la jornada",
	},
	DemandasEmocionales: {
		"Exposición a sentimientos, emociones y trato negativo de usuarios o clientes",
		"Exposición a situaciones emocionalmente devastadoras",
		"Impacto emocional de la tarea en el ámbito extralaboral",
		"Posibilidad de cometer errores que afecten el resultado de los procesos",
		"Grado de tensión sobre la realización de la tarea",
		"Percepción de monotonía o actividad repetitiva de la tarea",
	},
	ExigenciasResponsabilidad: {
		"Responsabilidad directa por la vida, salud o seguridad de otras personas",
		"Responsabilidad directa por supervisión de personal",
		"Responsabilidad directa por resultados del área de trabajo",
		"Responsabilidad directa por bienes de elevada cuantía",
		"Responsabilidad directa por dinero de la organización",
		"Responsabilidad directa por información confidencial",
	},
	ConsistenciaRol: {
		"Falta de recursos, personas o herramientas necesarias para desarrollar el trabajo",
		"Órdenes contradictorias provenientes de una o varias personas",
		"Solicitudes o requerimientos innecesarios en el trabajo",
		"Solicitudes que van en contra de principios éticos, técnicos, de seguridad o calidad",
		"Variación eventual o continua de la tarea asignada",
		"Realización de tareas simultáneas",
		"Las tareas exigen actualización de conocimientos de manera constante",
	},
	DemandasAmbientales: {
		"Ruido que afecta negativamente la calidad de la tarea",
		"Iluminación que afecta negativamente la calidad de la tarea",
		"Temperatura que afecta negativamente",
		"Condiciones de ventilación que afectan negativamente la calidad de la tarea",
		"Distribución y características del puesto/equipos que afectan negativamente",
		"Condiciones de orden y aseo que afectan negativamente la calidad de la tarea",
		"Preocupación por exposición a agentes biológicos",
		"Preocupación por exposición a agentes químicos",
		"Exigencias de esfuerzo físico que afectan negativamente la calidad de la tarea",
		"Preocupación ante la posibilidad de sufrir un accidente de trabajo",
	},
	DemandasJornada: {
		"Trabajo en horario nocturno",
		"Días de trabajo consecutivo sin descanso",
	},
}

// CatalogEntry is one question of the catalog.
type CatalogEntry struct {
	Category   Category `json:"category"`
	ItemNumber int      `json:"item_number"`
	ItemText   string   `json:"item_text"`
}

// CatalogItemText returns the canonical text of an item.
func CatalogItemText(c Category, itemNumber int) (string, bool) {
	texts, ok := itemCatalog[c]
	if !ok || itemNumber < 1 || itemNumber > len(texts) {
		return "", false
	}
	return texts[itemNumber-1], true
}

// CatalogSize returns how many items a category has in the catalog.
func CatalogSize(c Category) int {
	return len(itemCatalog[c])
}

// Catalog lists the questions of the given categories, or of all categories when none is given.
func Catalog(categories ...Category) []CatalogEntry {
	if len(categories) == 0 {
		categories = AllCategories
	}
	var entries []CatalogEntry
	for _, c := range categories {
		for i, text := range itemCatalog[c] {
			entries = append(entries, CatalogEntry{Category: c, ItemNumber: i + 1, ItemText: text})
		}
	}
	return entries
}
