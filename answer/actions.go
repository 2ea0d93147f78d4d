package answer

import "github.com/poiesic/sharki/core"

// QuickAction identifies a shortcut that lists a whole category,
// bypassing intent resolution.
type QuickAction string

const (
	QuickActionRooms     QuickAction = "rooms"
	QuickActionStaff     QuickAction = "staff"
	QuickActionSchedules QuickAction = "schedules"
	QuickActionContacts  QuickAction = "contacts"
)

// QuickActions is the fixed enumeration of supported shortcuts.
var QuickActions = []QuickAction{
	QuickActionRooms,
	QuickActionStaff,
	QuickActionSchedules,
	QuickActionContacts,
}

// ActionLabels maps each quick action to its menu label.
var ActionLabels = map[QuickAction]string{
	QuickActionRooms:     "Mostrar todas las aulas disponibles",
	QuickActionStaff:     "Mostrar correos de profesores",
	QuickActionSchedules: "Mostrar horarios de clases",
	QuickActionContacts:  "Mostrar información de contacto",
}

// Category returns the record category a quick action lists.
func (a QuickAction) Category() (core.Category, bool) {
	switch a {
	case QuickActionRooms:
		return core.CategoryRooms, true
	case QuickActionStaff:
		return core.CategoryStaff, true
	case QuickActionSchedules:
		return core.CategorySchedules, true
	case QuickActionContacts:
		return core.CategoryContacts, true
	default:
		return "", false
	}
}

// RespondAction renders the full listing for a quick action. Unknown
// identifiers get the fixed unrecognized-action message.
func (r *Responder) RespondAction(action QuickAction) string {
	switch action {
	case QuickActionRooms:
		return FormatClassrooms(r.dataset.Classrooms)
	case QuickActionStaff:
		return FormatStaff(r.dataset.Staff)
	case QuickActionSchedules:
		return FormatSchedules(r.dataset.Schedules)
	case QuickActionContacts:
		return FormatContacts(r.dataset.Contacts)
	default:
		return UnknownAction
	}
}
