package search

import (
	"testing"

	"github.com/poiesic/sharki/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchReturnsAllOnEmptyQuery(t *testing.T) {
	ds := dataset.Default()

	assert.Equal(t, ds.Classrooms, SearchClassrooms("", ds.Classrooms))
	assert.Equal(t, ds.Staff, SearchStaff("   ", ds.Staff))
	assert.Equal(t, ds.Schedules, SearchSchedules("", ds.Schedules))
	assert.Equal(t, ds.Contacts, SearchContacts("", ds.Contacts))
}

func TestSearchClassrooms(t *testing.T) {
	ds := dataset.Default()

	t.Run("by name fragment", func(t *testing.T) {
		results := SearchClassrooms("203", ds.Classrooms)
		require.Len(t, results, 1)
		assert.Equal(t, "Aula 203", results[0].Name)
	})

	t.Run("by building", func(t *testing.T) {
		results := SearchClassrooms("torre 1", ds.Classrooms)
		require.Len(t, results, 2)
		assert.Equal(t, "Aula 101", results[0].Name)
		assert.Equal(t, "Aula 203", results[1].Name)
	})

	t.Run("by equipment", func(t *testing.T) {
		results := SearchClassrooms("pizarra", ds.Classrooms)
		require.Len(t, results, 1)
		assert.Equal(t, "Aula 203", results[0].Name)
	})

	t.Run("accent insensitive", func(t *testing.T) {
		results := SearchClassrooms("informática", ds.Classrooms)
		require.Len(t, results, 1)
		assert.Equal(t, "Laboratorio 1", results[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SearchClassrooms("xyzzy123", ds.Classrooms))
	})
}

func TestSearchStaff(t *testing.T) {
	ds := dataset.Default()

	t.Run("short query matches whole name token", func(t *testing.T) {
		results := SearchStaff("Ana", ds.Staff)
		require.Len(t, results, 1)
		assert.Equal(t, "Lic. Ana Martínez", results[0].Name)
	})

	t.Run("short query does not substring match", func(t *testing.T) {
		assert.Empty(t, SearchStaff("an", ds.Staff))
	})

	t.Run("substring on surname", func(t *testing.T) {
		results := SearchStaff("gonzal", ds.Staff)
		require.Len(t, results, 1)
		assert.Equal(t, "Dra. María González", results[0].Name)
	})

	t.Run("by department", func(t *testing.T) {
		results := SearchStaff("ingenieria", ds.Staff)
		require.Len(t, results, 2)
		assert.Equal(t, "Dr. Carlos López", results[0].Name)
		assert.Equal(t, "Ing. Roberto Silva", results[1].Name)
	})

	t.Run("by email", func(t *testing.T) {
		results := SearchStaff("rsilva", ds.Staff)
		require.Len(t, results, 1)
		assert.Equal(t, "Ing. Roberto Silva", results[0].Name)
	})

	t.Run("diacritic insensitive name", func(t *testing.T) {
		results := SearchStaff("lopez", ds.Staff)
		require.Len(t, results, 1)
		assert.Equal(t, "Dr. Carlos López", results[0].Name)
	})
}

func TestStaffExactMatches(t *testing.T) {
	ds := dataset.Default()

	t.Run("whole token only", func(t *testing.T) {
		results := StaffExactMatches("ana", ds.Staff)
		require.Len(t, results, 1)
		assert.Equal(t, "Lic. Ana Martínez", results[0].Name)
	})

	t.Run("partial token excluded", func(t *testing.T) {
		assert.Empty(t, StaffExactMatches("mart", ds.Staff))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, StaffExactMatches("", ds.Staff))
	})
}

func TestSearchSchedules(t *testing.T) {
	ds := dataset.Default()

	t.Run("by subject", func(t *testing.T) {
		results := SearchSchedules("programacion", ds.Schedules)
		require.Len(t, results, 1)
		assert.Equal(t, "Programación I", results[0].Subject)
	})

	t.Run("by day", func(t *testing.T) {
		results := SearchSchedules("martes", ds.Schedules)
		require.Len(t, results, 2)
	})

	t.Run("by staff name", func(t *testing.T) {
		results := SearchSchedules("fernandez", ds.Schedules)
		require.Len(t, results, 1)
		assert.Equal(t, "Matemática I", results[0].Subject)
	})
}

func TestSearchContacts(t *testing.T) {
	ds := dataset.Default()

	t.Run("by area", func(t *testing.T) {
		results := SearchContacts("biblioteca", ds.Contacts)
		require.Len(t, results, 1)
		assert.Equal(t, "Biblioteca", results[0].Area)
	})

	t.Run("by phone", func(t *testing.T) {
		results := SearchContacts("021-123-401", ds.Contacts)
		require.Len(t, results, 1)
		assert.Equal(t, "Admisiones", results[0].Area)
	})

	t.Run("accent insensitive", func(t *testing.T) {
		results := SearchContacts("tesorería", ds.Contacts)
		require.Len(t, results, 1)
		assert.Equal(t, "Tesorería", results[0].Area)
	})
}

func TestSearchAllSubsetProperty(t *testing.T) {
	ds := dataset.Default()

	queries := []string{"", "aula", "torre", "ingenieria", "lunes", "xyzzy123"}
	for _, query := range queries {
		results := SearchAll(query, ds)
		assert.LessOrEqual(t, len(results.Rooms), len(ds.Classrooms))
		assert.LessOrEqual(t, len(results.Staff), len(ds.Staff))
		assert.LessOrEqual(t, len(results.Schedules), len(ds.Schedules))
		assert.LessOrEqual(t, len(results.Contacts), len(ds.Contacts))
		assert.Equal(t, PathKeyword, results.Path)
	}
}
