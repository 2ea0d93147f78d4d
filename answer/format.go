package answer

import (
	"fmt"
	"strings"

	"github.com/poiesic/sharki/core"
)

// Per-category caps for one-line summaries in multi-record and combined
// renderings.
const (
	maxStaffLines    = 3
	maxRoomLines     = 3
	maxScheduleLines = 2
	maxContactLines  = 2
)

// FormatClassrooms renders classroom results: a full labeled block for a
// single record, capped one-line summaries for several.
func FormatClassrooms(records []core.ClassroomRecord) string {
	if len(records) == 0 {
		return "No encontré aulas que coincidan con tu búsqueda."
	}

	if len(records) == 1 {
		room := &records[0]
		capacity := "No especificada"
		if room.Capacity > 0 {
			capacity = fmt.Sprintf("%d personas", room.Capacity)
		}
		equipment := "No especificado"
		if len(room.Equipment) > 0 {
			equipment = strings.Join(room.Equipment, ", ")
		}
		return fmt.Sprintf("📍 **%s**\nUbicación: %s\nEdificio: %s\nPiso: %s\nCapacidad: %s\nEquipamiento: %s",
			room.Name, room.Description, room.Building, room.Floor, capacity, equipment)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Encontré %d aulas:\n\n", len(records))
	writeRoomLines(&b, records)
	return b.String()
}

// FormatStaff renders staff results.
func FormatStaff(records []core.StaffRecord) string {
	if len(records) == 0 {
		return "No encontré profesores que coincidan con tu búsqueda."
	}

	if len(records) == 1 {
		person := &records[0]
		phone := person.Phone
		if phone == "" {
			phone = "No disponible"
		}
		office := person.Office
		if office == "" {
			office = "No especificada"
		}
		return fmt.Sprintf("👨‍🏫 **%s**\nEmail: %s\nDepartamento: %s\nCargo: %s\nTeléfono: %s\nOficina: %s",
			person.Name, person.Email, person.Department, person.Position, phone, office)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Encontré %d profesores:\n\n", len(records))
	writeStaffLines(&b, records)
	return b.String()
}

// FormatSchedules renders schedule results.
func FormatSchedules(records []core.ScheduleRecord) string {
	if len(records) == 0 {
		return "No encontré horarios que coincidan con tu búsqueda."
	}

	if len(records) == 1 {
		sched := &records[0]
		return fmt.Sprintf("📅 **%s**\nProfesor: %s\nAula: %s\nHorario: %s\nDías: %s\nCarrera: %s",
			sched.Subject, sched.StaffName, sched.Classroom, sched.Time,
			strings.Join(sched.Days, ", "), sched.Career)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Encontré %d horarios:\n\n", len(records))
	writeScheduleLines(&b, records)
	return b.String()
}

// FormatContacts renders contact results.
func FormatContacts(records []core.ContactRecord) string {
	if len(records) == 0 {
		return "No encontré información de contacto que coincida con tu búsqueda."
	}

	if len(records) == 1 {
		contact := &records[0]
		return fmt.Sprintf("📞 **%s**\nEmail: %s\nTeléfono: %s\nUbicación: %s\nHorarios: %s",
			contact.Area, contact.Email, contact.Phone, contact.Location, contact.Hours)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Encontré %d contactos:\n\n", len(records))
	writeContactLines(&b, records)
	return b.String()
}

// FormatCombined renders the multi-category summary in the fixed order
// staff, rooms, schedules, contacts.
func FormatCombined(query string, rooms []core.ClassroomRecord, staff []core.StaffRecord,
	schedules []core.ScheduleRecord, contacts []core.ContactRecord) string {

	var b strings.Builder
	fmt.Fprintf(&b, "Encontré información relacionada con \"%s\":\n\n", query)

	if len(staff) > 0 {
		fmt.Fprintf(&b, "👨‍🏫 **Profesores (%d)**\n", len(staff))
		writeStaffLines(&b, staff)
		b.WriteString("\n")
	}
	if len(rooms) > 0 {
		fmt.Fprintf(&b, "📍 **Aulas (%d)**\n", len(rooms))
		writeRoomLines(&b, rooms)
		b.WriteString("\n")
	}
	if len(schedules) > 0 {
		fmt.Fprintf(&b, "📅 **Horarios (%d)**\n", len(schedules))
		writeScheduleLines(&b, schedules)
		b.WriteString("\n")
	}
	if len(contacts) > 0 {
		fmt.Fprintf(&b, "📞 **Contactos (%d)**\n", len(contacts))
		writeContactLines(&b, contacts)
		b.WriteString("\n")
	}

	b.WriteString("¿Sobre cuál categoría te gustaría más información?")
	return b.String()
}

func writeStaffLines(b *strings.Builder, records []core.StaffRecord) {
	for i, person := range records {
		if i == maxStaffLines {
			break
		}
		fmt.Fprintf(b, "• %s - %s\n", person.Name, person.Email)
	}
	if len(records) > maxStaffLines {
		fmt.Fprintf(b, "• ... y %d más\n", len(records)-maxStaffLines)
	}
}

func writeRoomLines(b *strings.Builder, records []core.ClassroomRecord) {
	for i, room := range records {
		if i == maxRoomLines {
			break
		}
		fmt.Fprintf(b, "• %s - %s\n", room.Name, room.Description)
	}
	if len(records) > maxRoomLines {
		fmt.Fprintf(b, "• ... y %d más\n", len(records)-maxRoomLines)
	}
}

func writeScheduleLines(b *strings.Builder, records []core.ScheduleRecord) {
	for i, sched := range records {
		if i == maxScheduleLines {
			break
		}
		fmt.Fprintf(b, "• %s - %s\n", sched.Subject, sched.Time)
	}
	if len(records) > maxScheduleLines {
		fmt.Fprintf(b, "• ... y %d más\n", len(records)-maxScheduleLines)
	}
}

func writeContactLines(b *strings.Builder, records []core.ContactRecord) {
	for i, contact := range records {
		if i == maxContactLines {
			break
		}
		fmt.Fprintf(b, "• %s - %s\n", contact.Area, contact.Phone)
	}
	if len(records) > maxContactLines {
		fmt.Fprintf(b, "• ... y %d más\n", len(records)-maxContactLines)
	}
}
