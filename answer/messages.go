package answer

import "fmt"

// Greeting is the assistant's opening message.
const Greeting = "¡Hola! Soy Info Sharki, tu asistente inteligente de la Universidad del Pacífico. ¿En qué puedo ayudarte hoy?"

// UnknownAction is returned for quick-action identifiers outside the
// fixed enumeration.
const UnknownAction = "Acción no reconocida. ¿Podrías intentar de nuevo?"

// noResultsGuidance lists example queries per category so the user knows
// what the assistant can answer.
const noResultsGuidance = "Puedes buscar, por ejemplo:\n" +
	"👨‍🏫 Profesores: \"profesor Carlos\", \"correo de González\"\n" +
	"📍 Aulas: \"aula 101\", \"laboratorio\"\n" +
	"📅 Horarios: \"horario de Programación\", \"clases de lunes\"\n" +
	"📞 Contactos: \"teléfono de admisiones\", \"biblioteca\""

// NoResults builds the guidance message for a query with no matches.
func NoResults(query string) string {
	return fmt.Sprintf("No encontré resultados para \"%s\". ¿Puedes intentar con otros términos?\n\n%s",
		query, noResultsGuidance)
}

// TooShort is returned when a query is too short for substring search and
// matches no staff name exactly.
const TooShort = "Tu búsqueda es muy corta. ¿Puedes ser más específico con lo que necesitas?"
