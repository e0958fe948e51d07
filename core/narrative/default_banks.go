package narrative

import "github.com/Daniromero1410/Mentis/schema"

// Default returns the built-in Spanish banks. Each call builds new maps and slices.
func Default() *Banks {
	return &Banks{
		Introductions:    defaultIntroductions(),
		Descriptions:     defaultDescriptions(),
		ImpactConnectors: defaultImpactConnectors(),
		Consequences: map[schema.GlobalSeverity]string{
			schema.CriticoSeverity: "deterioro severo de la salud mental incluyendo trastornos de ansiedad, depresión mayor, burnout, trastornos del sueño, somatización, deterioro cognitivo significativo, y riesgo de incapacidad laboral prolongada o permanente",
			schema.MuyAltoSeverity: "afectación importante de la salud mental con síntomas de ansiedad, depresión, agotamiento emocional, trastornos del sueño, irritabilidad, y disminución significativa del rendimiento laboral",
			schema.AltoSeverity:    "síntomas de estrés crónico, agotamiento, dificultades de concentración, alteraciones del ánimo, y deterioro gradual del bienestar psicológico",
			schema.MedioSeverity:   "manifestaciones de estrés moderado, cansancio, y necesidad de fortalecer estrategias de afrontamiento",
			schema.BajoSeverity:    "condiciones que, aunque actualmente favorables, requieren monitoreo para mantener el bienestar",
		},

		FirstConnector: "Específicamente, en relación a",
		NextConnector:  "Adicionalmente, respecto a",
		TransitionConnectors: []string{
			"Adicionalmente, respecto a",
			"Asimismo, en lo concerniente a",
			"De igual forma, en cuanto a",
			"Por otro lado, frente a",
		},
		EvidenceSingle: `Particularmente se identifica en nivel alto: "{item}".`,
		EvidencePair:   `Particularmente se identifican en nivel alto aspectos como: "{item}" y "{item2}".`,
		EvidencePhrases: []string{
			"Como evidencia de lo anterior, se registra en nivel alto:",
			"En la valoración de esta dimensión sobresale en nivel alto:",
			"Lo anterior se sustenta en la calificación alta otorgada a:",
		},
		PercentageSentence: "Se evidencia este nivel en {pct}% de los ítems evaluados en esta dimensión.",
		PercentagePhrases: []string{
			"Se evidencia este nivel en {pct}% de los ítems evaluados en esta dimensión.",
			"El {pct}% de los ítems de esta dimensión fue calificado en nivel alto.",
			"Esta condición se refleja en el {pct}% de los aspectos valorados en la dimensión.",
		},
		MediumSummary: "Por otra parte, se observan niveles moderados en {items}, lo cual amerita monitoreo continuo y acciones preventivas para evitar su escalamiento.",

		LegalPreambles: map[schema.ConceptVariant]string{
			schema.ValoracionVariant: "Una vez evaluado {sustantivo} del asunto, quien presenta un diagnóstico de la esfera mental, " +
				"nos permitimos manifestar las recomendaciones que a continuación se mencionan, las cuales se emiten " +
				"con el objetivo de prevenir agravamiento de su estado de salud y favorecer su rehabilitación, " +
				"lo anterior de conformidad con los artículos 2°, 4° y 8° de la Ley 776 de 2002.",
			schema.PruebaTrabajoVariant: "Con base en la evaluación integral presentada de {sustantivo}, quien cursa con un diagnóstico de la esfera mental, " +
				"se emiten las siguientes recomendaciones orientadas a la prevención de agravamiento sintomático y al fomento " +
				"de su rehabilitación integral, en concordancia con los artículos 2°, 4° y 8° de la Ley 776 de 2002.",
		},
		WorkerHeader:  "RECOMENDACIONES PARA {TRABAJADOR}:",
		CompanyHeader: "RECOMENDACIONES PARA LA EMPRESA:",

		WorkerTreatmentUrgent: "Continuar de manera rigurosa y prioritaria con el tratamiento médico especializado en psiquiatría " +
			"y psicología, asistiendo a TODAS las citas programadas sin excepción y siguiendo estrictamente " +
			"las indicaciones terapéuticas y farmacológicas prescritas. Reportar inmediatamente cualquier " +
			"cambio significativo en síntomas o efectos adversos de medicación.",
		WorkerTreatment: "Continuar con el tratamiento médico por psiquiatría y psicología de manera constante, " +
			"siguiendo las indicaciones profesionales y asistiendo regularmente a las citas programadas.",
		CompanyDiagnosis: []string{
			"Facilitar los permisos necesarios para que el trabajador asista a sus citas médicas y terapéuticas, " +
				"considerando estos espacios como inversión en su recuperación y productividad a largo plazo.",
			"Mantener estricta confidencialidad sobre la condición de salud del trabajador, compartiendo " +
				"información solo con personal autorizado y necesario para implementar ajustes.",
		},
		WorkerCompliance: []string{
			"Mantener comunicación transparente, veraz y oportuna con la empresa sobre su estado de salud " +
				"y capacidad laboral actual, en cumplimiento del artículo 27 de la Ley 1562 de 2012, " +
				"lo cual facilita la implementación de ajustes razonables necesarios.",
		},
		WorkerRecommendations:  defaultWorkerRecommendations(),
		CompanyRecommendations: defaultCompanyRecommendations(),
		WorkerWellnessUrgent: []string{
			"Fortalecer activamente su red de apoyo social y emocional, manteniendo comunicación regular y profunda " +
				"con familiares cercanos, amigos de confianza y, si lo considera apropiado, grupos de apoyo o comunidad " +
				"religiosa/espiritual. El aislamiento social agrava significativamente los problemas de salud mental.",
			"Incorporar de manera NO NEGOCIABLE en su rutina semanal mínimo 150 minutos de actividad física moderada " +
				"(caminata rápida, natación, ciclismo) O 75 minutos de actividad vigorosa (trote, deportes). El ejercicio " +
				"es tan efectivo como medicación antidepresiva para síntomas leves a moderados.",
		},
		WorkerWellness: []string{
			"Fortalecer su red de apoyo social, manteniendo comunicación regular con familiares, amigos y compañeros de trabajo.",
			"Incorporar en su rutina semanal actividades físicas, recreativas o artísticas que promuevan bienestar integral " +
				"y liberación de tensiones.",
		},
		CompanyUniversal: []string{
			"Participar activamente en el proceso de rehabilitación integral del trabajador, implementando ajustes razonables " +
				"según capacidades actuales certificadas médicamente y proporcionando seguimiento continuo mensual a su evolución.",
			"Fomentar ambiente laboral de respeto absoluto, no discriminación y apoyo genuino hacia el trabajador. " +
				"Proporcionar retroalimentación constructiva sobre desempeño de manera regular (mínimo mensual), asertiva, " +
				"específica y orientada al desarrollo, no solo a la corrección.",
		},

		ClosingUrgent: "Estas recomendaciones tienen carácter URGENTE y deben implementarse de manera inmediata. " +
			"Se requiere seguimiento mensual durante los próximos seis (6) meses para evaluar efectividad " +
			"de las intervenciones y realizar ajustes según evolución del caso. La vigencia de estas " +
			"recomendaciones es de doce (12) meses contados a partir de la fecha de emisión.",
		Closing: "Estas recomendaciones tienen una vigencia de doce (12) meses contados a partir de la fecha " +
			"de emisión, periodo durante el cual se recomienda seguimiento trimestral para verificar " +
			"implementación y efectividad de las medidas sugeridas.",

		InsufficientAnalysis:        "No se pueden generar análisis sin evaluaciones de riesgo completadas.",
		InsufficientRecommendations: "No se pueden generar recomendaciones sin evaluaciones de riesgo completadas.",
	}
}

func defaultIntroductions() map[schema.GlobalSeverity][]string {
	return map[schema.GlobalSeverity][]string{
		schema.CriticoSeverity: {
			"Del análisis exhaustivo y detallado de la valoración psicológica realizada a {nombre}, se identifica un perfil de riesgo psicosocial de nivel crítico que demanda intervención inmediata y seguimiento riguroso. {Articulo_cap} {trabajador} enfrenta múltiples factores de riesgo en niveles altos de manera simultánea, lo cual configura una situación de vulnerabilidad significativa para su salud mental y bienestar integral.",
			"Una vez {evaluado} integralmente {sustantivo} del asunto a través de la presente valoración psicológica, se evidencia un escenario clínico complejo caracterizado por la confluencia de diversos factores de riesgo psicosocial en niveles críticos. Esta situación representa una amenaza seria e inminente para la estabilidad emocional, salud mental y capacidad funcional de {nombre}, requiriendo acciones correctivas urgentes.",
			"Del estudio psicológico ocupacional realizado a {nombre}, emerge un perfil psicosocial que amerita atención prioritaria y urgente. {Articulo_cap} {trabajador} presenta exposición simultánea a múltiples estresores laborales de alta intensidad, configurando un cuadro de riesgo psicosocial severo que, de no intervenirse oportunamente, podría derivar en deterioro significativo de su salud mental.",
		},
		schema.MuyAltoSeverity: {
			"Del análisis de la valoración psicológica efectuada a {nombre}, se identifica que {articulo} {trabajador} presenta diversos factores de riesgo psicosocial en niveles elevados, configurando un perfil que requiere intervención prioritaria. La concurrencia de estos factores genera una situación de riesgo importante para su bienestar psicológico y desempeño laboral sostenible.",
			"Una vez {evaluado} {sustantivo} del asunto, quien presenta un diagnóstico de la esfera mental, se evidencia mediante la presente valoración un perfil psicosocial caracterizado por la presencia de múltiples factores de riesgo en niveles altos. Esta situación amerita la implementación inmediata de medidas correctivas y preventivas para salvaguardar la salud mental de {nombre}.",
			"Del análisis psicológico ocupacional realizado a {nombre}, se desprende que {articulo} {trabajador} enfrenta condiciones laborales que involucran varios factores de riesgo psicosocial significativos. El perfil identificado sugiere exposición a demandas laborales que exceden los recursos de afrontamiento disponibles, requiriendo ajustes sustanciales.",
		},
		schema.AltoSeverity: {
			"Del análisis de la valoración psicológica realizada a {nombre}, se observa que {articulo} {trabajador} presenta factores de riesgo psicosocial que ameritan atención e intervención oportuna. Si bien no se configura una situación crítica, la presencia de estos factores en niveles elevados requiere implementación de medidas preventivas y correctivas.",
			"Una vez {evaluado} {sustantivo} del asunto mediante valoración psicológica ocupacional, se identifica un perfil psicosocial que incluye factores de riesgo que requieren manejo proactivo. {Articulo_cap} {trabajador} enfrenta demandas laborales significativas que, sin la debida intervención, podrían impactar su salud mental y bienestar.",
			"Del estudio psicológico efectuado a {nombre}, se evidencia la presencia de factores de riesgo psicosocial que, aunque manejables con intervención adecuada, requieren atención para prevenir su agravamiento. {Articulo_cap} {trabajador} presenta exposición a condiciones que demandan implementación de ajustes razonables.",
		},
		schema.MedioSeverity: {
			"Del análisis de la valoración psicológica realizada a {nombre}, se identifica que {articulo} {trabajador} presenta un perfil psicosocial con factores de riesgo en niveles moderados que ameritan monitoreo y medidas preventivas. Las condiciones actuales, si bien no representan riesgo inmediato, requieren seguimiento para evitar su progresión.",
			"Una vez {evaluado} {sustantivo} del asunto mediante valoración psicológica ocupacional, se observa que {articulo} {trabajador} enfrenta demandas laborales en rangos moderados. El perfil identificado sugiere que con implementación de medidas preventivas y fortalecimiento de recursos de afrontamiento, se puede mantener un equilibrio saludable.",
			"Del análisis psicológico ocupacional de {nombre}, se desprende un perfil psicosocial que incluye factores en niveles moderados. {Articulo_cap} {trabajador} presenta condiciones laborales que, con el debido acompañamiento y ajustes menores, pueden gestionarse adecuadamente sin comprometer su salud mental.",
		},
		schema.BajoSeverity: {
			"Del análisis de la valoración psicológica realizada a {nombre}, se evidencia un perfil psicosocial favorable caracterizado por factores de riesgo en niveles bajos y manejables. {Articulo_cap} {trabajador} presenta condiciones laborales que favorecen su bienestar psicológico, aunque se recomienda mantener estas condiciones y realizar seguimiento preventivo.",
			"Una vez {evaluado} {sustantivo} del asunto mediante valoración psicológica ocupacional, se identifica que {articulo} {trabajador} enfrenta demandas laborales en rangos bajos y controlados. El perfil actual es compatible con el mantenimiento del bienestar psicológico y desempeño sostenible, recomendándose preservar las condiciones actuales.",
			"Del estudio psicológico efectuado a {nombre}, se desprende un perfil psicosocial positivo con factores de riesgo mínimos. {Articulo_cap} {trabajador} presenta condiciones laborales adecuadas que permiten un desempeño saludable, sugiriéndose mantener monitoreo preventivo para detectar cambios oportunamente.",
		},
	}
}

func defaultDescriptions() map[schema.Category]map[schema.CategoryTier]string {
	return map[schema.Category]map[schema.CategoryTier]string{
		schema.DemandasCuantitativas: {
			schema.AltoCriticoTier: "se encuentra sometido a una carga cuantitativa de trabajo excesiva y sostenida, con ritmo laboral acelerado constante, presión temporal extrema para cumplir plazos, imposibilidad de realizar pausas adecuadas durante la jornada, y volumen de tareas que supera ampliamente su capacidad de procesamiento. Esta sobrecarga sistemática genera agotamiento físico y mental progresivo",
			schema.AltoTier:        "presenta carga laboral cuantitativa significativa, con ritmo de trabajo acelerado en múltiples momentos de la jornada, presión de tiempo frecuente, y volumen de tareas que demanda esfuerzo sostenido. Esta situación genera tensión y riesgo de agotamiento",
			schema.MedioTier:       "enfrenta períodos de alta carga laboral alternados con momentos de demanda moderada, requiriendo gestión eficiente del tiempo y priorización de tareas para mantener el cumplimiento sin sobrecarga excesiva",
			schema.BajoTier:        "maneja un volumen de trabajo equilibrado y acorde a su jornada laboral, con ritmo de trabajo razonable que permite pausas adecuadas y cumplimiento de tareas sin presión excesiva",
		},
		schema.DemandasCargaMental: {
			schema.AltoCriticoTier: "enfrenta demandas cognitivas extremadamente altas de manera constante, requiriendo niveles máximos de concentración, memoria, procesamiento simultáneo de información compleja, precisión absoluta, y toma de decisiones bajo presión de tiempo. La exigencia mental sostenida excede los períodos de recuperación disponibles, generando fatiga cognitiva severa y riesgo de errores por saturación",
			schema.AltoTier:        "presenta demandas de carga mental significativas que requieren altos niveles de concentración, procesamiento de información compleja, atención a detalles críticos, y manejo de múltiples variables simultáneas. La exigencia cognitiva sostenida puede generar fatiga mental y dificultades de concentración",
			schema.MedioTier:       "debe procesar información y mantener niveles moderados de atención y concentración, con tareas que demandan procesamiento mental pero con períodos de recuperación que permiten evitar saturación cognitiva",
			schema.BajoTier:        "realiza tareas con demandas cognitivas manejables, que permiten mantener claridad mental, concentración adecuada y recuperación suficiente para un desempeño cognitivo óptimo",
		},
		schema.DemandasEmocionales: {
			schema.AltoCriticoTier: "está expuesto de manera constante e intensa a situaciones emocionalmente devastadoras, trato con personas en crisis, manejo de emociones negativas de usuarios o clientes, situaciones de alto impacto emocional que trascienden al ámbito personal, y presión emocional sostenida sin espacios adecuados de descompresión. Esta exposición genera desgaste emocional severo, riesgo de burnout y afectación de su estabilidad psicológica",
			schema.AltoTier:        "enfrenta situaciones emocionalmente desafiantes de manera frecuente, incluyendo exposición a emociones negativas, tensión en interacciones con usuarios, y situaciones que generan impacto emocional. Esta exposición sostenida puede generar desgaste emocional y afectación del bienestar psicológico",
			schema.MedioTier:       "experimenta situaciones que requieren manejo y regulación emocional, con exposición moderada a tensiones emocionales que demandan desarrollo de estrategias de afrontamiento",
			schema.BajoTier:        "trabaja en condiciones emocionalmente estables, con exposición mínima a situaciones de tensión emocional, lo cual favorece su bienestar emocional y equilibrio psicológico",
		},
		schema.ExigenciasResponsabilidad: {
			schema.AltoCriticoTier: "tiene bajo su responsabilidad directa aspectos críticos como la vida, salud o seguridad de múltiples personas, resultados de alto impacto organizacional, supervisión de personal numeroso, manejo de recursos económicos significativos, o información altamente confidencial. El peso de estas responsabilidades genera presión psicológica constante y preocupación permanente por las consecuencias de sus decisiones o acciones",
			schema.AltoTier:        "maneja responsabilidades significativas que incluyen supervisión de personal, resultados críticos del área, recursos importantes o información sensible. El nivel de responsabilidad genera presión y requiere soporte organizacional adecuado",
			schema.MedioTier:       "tiene responsabilidades importantes que requieren atención cuidadosa y cumplimiento riguroso, aunque con soporte y recursos disponibles para su gestión adecuada",
			schema.BajoTier:        "maneja responsabilidades acordes a su nivel en la organización, con recursos y soporte adecuados que permiten desempeñarse con tranquilidad y confianza",
		},
		schema.ConsistenciaRol: {
			schema.AltoCriticoTier: "enfrenta contradicciones severas y sistemáticas en su rol laboral, incluyendo órdenes contradictorias frecuentes de múltiples fuentes, falta crónica de recursos esenciales para cumplir funciones, cambios abruptos y constantes en tareas asignadas, solicitudes que van contra principios técnicos o éticos, y falta absoluta de claridad sobre expectativas y prioridades. Esta inconsistencia genera confusión profunda, frustración extrema e imposibilidad de desempeño coherente",
			schema.AltoTier:        "experimenta inconsistencias significativas en su rol, incluyendo instrucciones contradictorias ocasionales, variaciones frecuentes en tareas asignadas, o falta de recursos necesarios. Estas inconsistencias generan confusión y dificultan el desempeño efectivo",
			schema.MedioTier:       "presenta algunas inconsistencias ocasionales que requieren clarificación con supervisores y adaptación a cambios en funciones o prioridades",
			schema.BajoTier:        "tiene claridad en su rol laboral, funciones bien definidas, recursos adecuados disponibles y coherencia en las expectativas de desempeño",
		},
		schema.DemandasAmbientales: {
			schema.AltoCriticoTier: "trabaja en condiciones ambientales severamente adversas, incluyendo ruido excesivo que imposibilita comunicación, iluminación deficiente que afecta la visión, temperaturas extremas, ventilación inadecuada, exposición a agentes biológicos o químicos peligrosos, esfuerzo físico extenuante, o riesgo alto de accidentes. Estas condiciones representan amenaza directa para su salud física y seguridad, además de generar preocupación constante",
			schema.AltoTier:        "enfrenta condiciones ambientales adversas que incluyen ruido significativo, iluminación o temperatura inadecuadas, esfuerzo físico considerable, o preocupación por exposición a agentes de riesgo. Estas condiciones pueden afectar su salud y bienestar",
			schema.MedioTier:       "presenta exposición a condiciones ambientales que requieren adaptación y uso de protección, aunque manejables con los controles disponibles",
			schema.BajoTier:        "trabaja en condiciones ambientales adecuadas y seguras que favorecen su salud física y le permiten desempeñarse sin preocupaciones por su integridad",
		},
		schema.DemandasJornada: {
			schema.AltoCriticoTier: "trabaja en jornadas extenuantes que incluyen horarios nocturnos frecuentes o permanentes, turnos rotativos que impiden establecer rutinas de sueño, trabajo en días festivos y fines de semana sistemáticamente, extensión habitual de jornada más allá de lo legal, y contacto laboral fuera del horario establecido. Esta situación altera gravemente sus ritmos circadianos, impide recuperación física y mental adecuada, y deteriora severamente el balance vida-trabajo-familia",
			schema.AltoTier:        "enfrenta demandas de jornada significativas que incluyen trabajo nocturno, horarios extendidos frecuentes, o días consecutivos sin descanso. Esta situación afecta sus ciclos de sueño y recuperación, generando fatiga acumulada",
			schema.MedioTier:       "presenta jornadas que ocasionalmente se extienden o varían, requiriendo planificación para mantener equilibrio entre trabajo y vida personal",
			schema.BajoTier:        "mantiene horarios regulares con períodos de descanso adecuados que favorecen la recuperación física y mental, y permiten balance entre vida laboral y personal",
		},
	}
}

// bajo has no connectors of its own and falls back to medio.
func defaultImpactConnectors() map[schema.GlobalSeverity][]string {
	return map[schema.GlobalSeverity][]string{
		schema.CriticoSeverity: {
			"Esta confluencia de factores configura un cuadro de riesgo psicosocial severo que está generando o tiene alto potencial de generar",
			"El conjunto de estas condiciones representa una amenaza seria para su salud mental, manifestándose en riesgo de",
			"La exposición sostenida a estos múltiples estresores laborales de alta intensidad puede derivar en",
		},
		schema.MuyAltoSeverity: {
			"La combinación de estos factores genera un perfil de riesgo importante que puede manifestarse en",
			"Esta situación, de mantenerse sin intervención, tiene potencial de generar",
			"El cuadro identificado representa riesgo significativo de desarrollar",
		},
		schema.AltoSeverity: {
			"Estos factores, sin la intervención adecuada, pueden conducir a",
			"La situación identificada amerita atención para prevenir",
			"De no implementarse ajustes, existe riesgo de",
		},
		schema.MedioSeverity: {
			"Con el manejo apropiado, se puede prevenir",
			"Las medidas preventivas permitirán evitar",
			"El seguimiento adecuado prevendrá",
		},
	}
}

func defaultWorkerRecommendations() map[schema.Category]RecommendationSet {
	return map[schema.Category]RecommendationSet{
		schema.DemandasCuantitativas: {
			High: []string{
				"Implementar rigurosamente técnicas de gestión del tiempo, priorizando tareas según urgencia " +
					"e importancia real. Comunicar proactivamente al supervisor cuando la carga laboral exceda " +
					"su capacidad, estableciendo límites claros y negociando plazos realistas.",
			},
			Medium: []string{
				"Organizar el trabajo en bloques de tiempo definidos y mantener comunicación regular " +
					"con el supervisor sobre avances y dificultades en el cumplimiento de tareas.",
			},
		},
		schema.DemandasCargaMental: {
			High: []string{
				"Implementar pausas cognitivas obligatorias cada 60-90 minutos de trabajo mental intenso. " +
					"Practicar técnicas de mindfulness (atención plena) durante 5-10 minutos en estas pausas. " +
					"Asegurar sueño de 7-8 horas nocturnas sin interrupciones. Evitar multitasking; enfocarse " +
					"en una sola tarea compleja a la vez. Realizar actividades de baja demanda cognitiva fuera " +
					"del trabajo para permitir recuperación cerebral.",
			},
			Medium: []string{
				"Implementar pausas breves regulares para mantener la concentración óptima. " +
					"Organizar la información de trabajo de manera clara y sistemática.",
			},
		},
		schema.DemandasEmocionales: {
			High: []string{
				"Desarrollar y aplicar estrategias de regulación emocional profesional (distanciamiento " +
					"saludable sin indiferencia). Practicar técnicas de respiración diafragmática ante situaciones " +
					"de tensión emocional. Buscar apoyo psicológico profesional especializado en manejo de estrés " +
					"laboral. Establecer límites claros entre vida laboral y personal. Participar en actividades " +
					"de liberación emocional fuera del trabajo (ejercicio, arte, expresión creativa).",
			},
			Medium: []string{
				"Desarrollar habilidades de regulación emocional básicas y mantener canales de " +
					"comunicación abiertos con compañeros de trabajo para apoyo mutuo.",
			},
		},
		schema.ExigenciasResponsabilidad: {
			High: []string{
				"Documentar meticulosamente decisiones importantes y procesos críticos. Solicitar " +
					"retroalimentación frecuente sobre desempeño para validar decisiones. Compartir " +
					"responsabilidades con el equipo de manera estructurada. Mantenerse actualizado " +
					"constantemente en conocimientos críticos para el cargo.",
			},
			Medium: []string{
				"Clarificar con el supervisor el alcance de sus responsabilidades.",
				"Mantener comunicación constante sobre avances y desafíos.",
			},
		},
		schema.ConsistenciaRol: {
			High: []string{
				"Solicitar de manera asertiva pero firme reuniones de clarificación con el supervisor " +
					"inmediato cuando reciba instrucciones contradictorias. Documentar por escrito todas " +
					"las tareas, responsabilidades y cambios comunicados. Mantener comunicación proactiva " +
					"sobre necesidades de recursos o herramientas faltantes. Proponer soluciones constructivas " +
					"ante inconsistencias identificadas.",
			},
			Medium: []string{
				"Mantener comunicación clara sobre cambios en las tareas asignadas.",
				"Solicitar clarificación cuando haya dudas sobre prioridades.",
			},
		},
		schema.DemandasAmbientales: {
			High: []string{
				"Utilizar de manera rigurosa y sin excepciones todos los elementos de protección personal " +
					"asignados. Reportar de inmediato (mismo día) condiciones ambientales que pongan en riesgo " +
					"la salud o seguridad. Realizar pausas en ambientes más confortables cuando esté disponible. " +
					"Practicar ejercicios de estiramiento y movilidad cada 2 horas para contrarrestar esfuerzo físico.",
			},
			Medium: []string{
				"Usar adecuadamente los equipos de protección disponibles.",
				"Reportar condiciones que requieran mejora.",
			},
		},
		schema.DemandasJornada: {
			High: []string{
				"Priorizar sueño de calidad en horarios disponibles: habitación completamente oscura, sin ruido, " +
					"temperatura fresca (18-20°C). Mantener rutinas de sueño lo más constantes posible incluso en " +
					"horarios irregulares. Rechazar firmemente horas extras no programadas que afecten periodos de " +
					"recuperación esenciales. Comunicar formalmente efectos negativos documentados de la jornada " +
					"en salud física o mental.",
			},
			Medium: []string{
				"Planificar actividades personales considerando la variabilidad de horarios.",
				"Mantener rutinas de sueño regulares.",
			},
		},
	}
}

func defaultCompanyRecommendations() map[schema.Category]RecommendationSet {
	return map[schema.Category]RecommendationSet{
		schema.DemandasCuantitativas: {
			High: []string{
				"Realizar análisis objetivo e inmediato de la carga laboral del puesto mediante estudio de " +
					"tiempos y movimientos. Redistribuir tareas si se confirma sobrecarga sistemática, considerando " +
					"seriamente ampliación del equipo o contratación de personal de apoyo. Establecer prioridades " +
					"claras y realistas, eliminando tareas innecesarias.",
			},
			Medium: []string{
				"Revisar periódicamente la distribución de tareas y carga laboral, proporcionando " +
					"herramientas de gestión y soporte cuando se identifiquen picos de demanda.",
			},
		},
		schema.DemandasCargaMental: {
			High: []string{
				"Permitir y facilitar pausas programadas durante tareas de alta complejidad cognitiva. " +
					"Evitar asignación simultánea de múltiples proyectos complejos. Proporcionar tiempo adecuado " +
					"de capacitación en nuevos sistemas sin presión. Considerar rotación de tareas altamente " +
					"demandantes con otras más ligeras cognitivamente.",
			},
			Medium: []string{
				"Facilitar capacitación en nuevas herramientas o procesos. " +
					"Permitir tiempo adecuado para completar tareas complejas sin presión excesiva.",
			},
		},
		schema.DemandasEmocionales: {
			High: []string{
				"Proporcionar capacitación especializada en manejo de situaciones emocionalmente difíciles " +
					"y técnicas de comunicación en crisis. Ofrecer acceso a programa de apoyo psicológico " +
					"confidencial (EAP - Employee Assistance Program). Establecer espacios de debriefing o " +
					"descompresión después de situaciones críticas. Implementar rotación en tareas de muy alta " +
					"demanda emocional. Promover cultura de apoyo entre pares y supervisión empática.",
			},
			Medium: []string{
				"Fomentar comunicación abierta sobre situaciones de tensión emocional. " +
					"Ofrecer recursos básicos de apoyo psicológico preventivo.",
			},
		},
		schema.ExigenciasResponsabilidad: {
			High: []string{
				"Clarificar por escrito y de manera detallada el alcance exacto de las responsabilidades " +
					"del cargo. Establecer sistemas de supervisión, respaldo y retroalimentación constante. " +
					"Proporcionar capacitación continua intensiva en áreas críticas. Implementar mecanismos " +
					"de doble verificación en decisiones de alto impacto. Reconocer y compensar adecuadamente " +
					"el nivel de responsabilidad asumido.",
			},
			Medium: []string{
				"Clarificar expectativas y alcance de responsabilidades.",
				"Proporcionar retroalimentación regular sobre el desempeño.",
			},
		},
		schema.ConsistenciaRol: {
			High: []string{
				"Realizar descripción de cargo clara, detallada y por escrito. Establecer UN SOLO canal " +
					"de instrucción directo y exclusivo para evitar contradicciones. Proporcionar TODOS los " +
					"recursos, herramientas y personal necesarios documentados en el perfil del cargo. Mantener " +
					"estabilidad en tareas asignadas; comunicar cambios con anticipación mínima de 48 horas. " +
					"Implementar reuniones semanales de alineación de expectativas y prioridades.",
			},
			Medium: []string{
				"Mejorar la comunicación sobre cambios en funciones o prioridades.",
				"Asegurar disponibilidad de recursos necesarios.",
			},
		},
		schema.DemandasAmbientales: {
			High: []string{
				"Realizar evaluación ergonómica y ambiental profesional e inmediata del puesto de trabajo. " +
					"Implementar controles de ingeniería prioritarios para mejorar condiciones (ventilación forzada, " +
					"iluminación LED adecuada, control de temperatura, aislamiento acústico). Proporcionar elementos " +
					"de protección personal de alta calidad certificados. Establecer y capacitar en protocolos de " +
					"seguridad específicos. Permitir pausas frecuentes en ambientes confortables. Considerar rotación " +
					"de personal en condiciones extremadamente demandantes.",
			},
			Medium: []string{
				"Mejorar condiciones ergonómicas y ambientales identificadas.",
				"Asegurar disponibilidad de equipos de protección.",
			},
		},
		schema.DemandasJornada: {
			High: []string{
				"Cumplir ESTRICTAMENTE con la jornada laboral legal establecida (máximo 48 horas semanales). " +
					"ELIMINAR trabajo nocturno salvo que sea absolutamente inherente al cargo y con rotación adecuada " +
					"quincenal. GARANTIZAR mínimo UN día completo de descanso por semana sin excepciones. PROHIBIR " +
					"contacto laboral fuera de jornada (llamadas, mensajes, correos) bajo sanciones. Implementar " +
					"sistema de turnos que respete mínimo 11 horas de descanso entre jornadas.",
			},
			Medium: []string{
				"Respetar horarios establecidos y evitar extensiones frecuentes.",
				"Planificar trabajo para evitar sobrecargas puntuales.",
			},
		},
	}
}
