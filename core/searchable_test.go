package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchableTextStable(t *testing.T) {
	room := ClassroomRecord{
		Id:          "1",
		Name:        "Aula 101",
		Building:    "Torre 1",
		Floor:       "Planta Baja",
		Description: "Torre 1 - Planta Baja - Lado Este",
		Capacity:    40,
		Equipment:   []string{"Proyector", "Aire acondicionado"},
	}

	first := room.SearchableText()
	assert.Equal(t, first, room.SearchableText())
	assert.Equal(t, "Aula 101 Torre 1 Planta Baja Torre 1 - Planta Baja - Lado Este Proyector Aire acondicionado", first)
}

func TestSearchableTextSkipsEmptyFields(t *testing.T) {
	staff := StaffRecord{
		Id:         "4",
		Name:       "Lic. Ana Martínez",
		Email:      "amartinez@upacifico.edu.py",
		Department: "Humanidades",
		Position:   "Profesora",
	}

	text := staff.SearchableText()
	assert.Equal(t, "Lic. Ana Martínez amartinez@upacifico.edu.py Humanidades Profesora", text)
}

func TestSearchableTextSchedule(t *testing.T) {
	sched := ScheduleRecord{
		Id:        "1",
		Subject:   "Programación I",
		StaffName: "Dr. Carlos López",
		Classroom: "Laboratorio 1",
		Time:      "08:00 - 10:00",
		Days:      []string{"Lunes", "Miércoles"},
		Career:    "Ingeniería en Informática",
	}

	text := sched.SearchableText()
	assert.Contains(t, text, "Programación I")
	assert.Contains(t, text, "Lunes Miércoles")
	assert.Equal(t, text, sched.SearchableText())
}

func TestIndexRecords(t *testing.T) {
	d := &Dataset{
		Classrooms: []ClassroomRecord{{Id: "1", Name: "Aula 101"}},
		Staff:      []StaffRecord{{Id: "1", Name: "Dr. Carlos López"}},
		Schedules:  []ScheduleRecord{{Id: "1", Subject: "Matemática I"}},
		Contacts:   []ContactRecord{{Id: "1", Area: "Biblioteca"}},
	}

	items := IndexRecords(d)
	require.Len(t, items, 4)

	t.Run("keys unique despite shared record IDs", func(t *testing.T) {
		keys := make(map[ID]bool)
		for _, item := range items {
			assert.False(t, keys[item.Key], "duplicate index key for %s/%s", item.Category, item.RecordId)
			keys[item.Key] = true
		}
	})

	t.Run("rebuild produces identical entries", func(t *testing.T) {
		assert.Equal(t, items, IndexRecords(d))
	})

	t.Run("categories are tagged", func(t *testing.T) {
		assert.Equal(t, CategoryRooms, items[0].Category)
		assert.Equal(t, CategoryStaff, items[1].Category)
		assert.Equal(t, CategorySchedules, items[2].Category)
		assert.Equal(t, CategoryContacts, items[3].Category)
	})
}
