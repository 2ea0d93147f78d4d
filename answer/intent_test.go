package answer

import (
	"strings"
	"testing"

	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/dataset"
	"github.com/poiesic/sharki/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponder(t *testing.T) (*Responder, *core.Dataset) {
	t.Helper()
	ds := dataset.Default()
	responder, err := NewResponder(ds)
	require.NoError(t, err)
	return responder, ds
}

func TestRespondNoResults(t *testing.T) {
	responder, ds := newResponder(t)

	text := responder.Respond(search.SearchAll("xyzzy123", ds))
	assert.Contains(t, text, "No encontré resultados para \"xyzzy123\"")
	assert.Contains(t, text, "👨‍🏫 Profesores:")
	assert.Contains(t, text, "📍 Aulas:")
	assert.Contains(t, text, "📅 Horarios:")
	assert.Contains(t, text, "📞 Contactos:")
}

func TestRespondSingleCategory(t *testing.T) {
	responder, ds := newResponder(t)

	// Only one schedule mentions the subject, so the single-category
	// schedule rendering must be used, never the combined one.
	text := responder.Respond(search.SearchAll("programacion", ds))
	assert.True(t, strings.HasPrefix(text, "📅 **Programación I**"))
	assert.NotContains(t, text, "¿Sobre cuál categoría te gustaría más información?")
}

func TestRespondShortQueryExactStaffMatch(t *testing.T) {
	ds := &core.Dataset{
		Staff: []core.StaffRecord{
			{Id: "1", Name: "Dr. Li Chen", Email: "lchen@upacifico.edu.py", Department: "Ciencias", Position: "Profesor"},
			{Id: "2", Name: "Dra. María González", Email: "mgonzalez@upacifico.edu.py", Department: "Administración", Position: "Doctora"},
		},
	}
	responder, err := NewResponder(ds)
	require.NoError(t, err)

	// A short query that exactly equals a name token answers with that
	// restricted staff set alone.
	results := &search.ResultSet{
		Query:      "Li",
		Normalized: "li",
		Path:       search.PathSemantic,
		Staff:      ds.Staff,
	}
	text := responder.Respond(results)
	assert.True(t, strings.HasPrefix(text, "👨‍🏫 **Dr. Li Chen**"))
}

func TestRespondShortQueryWithoutExactMatch(t *testing.T) {
	responder, ds := newResponder(t)

	results := &search.ResultSet{
		Query:      "an",
		Normalized: "an",
		Path:       search.PathSemantic,
		Staff:      ds.Staff[:2],
	}
	assert.Equal(t, TooShort, responder.Respond(results))
}

func TestRespondKeywordPriorityStaff(t *testing.T) {
	responder, ds := newResponder(t)

	// Staff and rooms both non-empty; the staff keyword wins.
	results := &search.ResultSet{
		Query:      "profesor Carlos",
		Normalized: "profesor carlos",
		Path:       search.PathSemantic,
		Staff:      ds.Staff[:1],
		Rooms:      ds.Classrooms[:2],
	}
	text := responder.Respond(results)
	assert.True(t, strings.HasPrefix(text, "👨‍🏫 **Dr. Carlos López**"))
}

func TestRespondKeywordPriorityNameShaped(t *testing.T) {
	responder, ds := newResponder(t)

	results := &search.ResultSet{
		Query:      "Carlos Lopez",
		Normalized: "carlos lopez",
		Path:       search.PathSemantic,
		Staff:      ds.Staff[:1],
		Schedules:  ds.Schedules[:1],
	}
	text := responder.Respond(results)
	assert.True(t, strings.HasPrefix(text, "👨‍🏫 **Dr. Carlos López**"))
}

func TestRespondKeywordPriorityRooms(t *testing.T) {
	responder, ds := newResponder(t)

	results := &search.ResultSet{
		Query:      "aula de informatica",
		Normalized: "aula de informatica",
		Path:       search.PathSemantic,
		Rooms:      ds.Classrooms[3:4],
		Schedules:  ds.Schedules[:1],
	}
	text := responder.Respond(results)
	assert.True(t, strings.HasPrefix(text, "📍 **Laboratorio 1**"))
}

func TestRespondKeywordPriorityContacts(t *testing.T) {
	responder, ds := newResponder(t)

	results := &search.ResultSet{
		Query:      "telefono de admisiones",
		Normalized: "telefono de admisiones",
		Path:       search.PathSemantic,
		Contacts:   ds.Contacts[1:2],
		Schedules:  ds.Schedules[:1],
	}
	text := responder.Respond(results)
	assert.True(t, strings.HasPrefix(text, "📞 **Admisiones**"))
}

func TestRespondKeywordConditionNeedsResults(t *testing.T) {
	responder, ds := newResponder(t)

	// "clase" names both rooms and schedules, but rooms are empty, so the
	// schedule keyword is the first one whose list is non-empty.
	results := &search.ResultSet{
		Query:      "clase de programacion",
		Normalized: "clase de programacion",
		Path:       search.PathSemantic,
		Schedules:  ds.Schedules[:1],
		Contacts:   ds.Contacts[:1],
	}
	text := responder.Respond(results)
	assert.True(t, strings.HasPrefix(text, "📅 **Programación I**"))
}

func TestRespondCombined(t *testing.T) {
	responder, ds := newResponder(t)

	// "2" hits rooms, schedules and contacts; no keyword fires, so the
	// combined rendering is used in fixed category order.
	results := search.SearchAll("2", ds)
	require.Greater(t, len(results.NonEmptyCategories()), 1)

	text := responder.Respond(results)
	assert.True(t, strings.HasPrefix(text, "Encontré información relacionada con \"2\":"))

	roomsAt := strings.Index(text, "📍 **Aulas")
	schedulesAt := strings.Index(text, "📅 **Horarios")
	contactsAt := strings.Index(text, "📞 **Contactos")
	require.NotEqual(t, -1, roomsAt)
	require.NotEqual(t, -1, schedulesAt)
	require.NotEqual(t, -1, contactsAt)
	assert.Less(t, roomsAt, schedulesAt)
	assert.Less(t, schedulesAt, contactsAt)

	assert.True(t, strings.HasSuffix(text, "¿Sobre cuál categoría te gustaría más información?"))
}

func TestRespondAction(t *testing.T) {
	responder, _ := newResponder(t)

	t.Run("rooms lists all", func(t *testing.T) {
		text := responder.RespondAction(QuickActionRooms)
		assert.True(t, strings.HasPrefix(text, "Encontré 5 aulas:"))
	})

	t.Run("staff lists all", func(t *testing.T) {
		text := responder.RespondAction(QuickActionStaff)
		assert.True(t, strings.HasPrefix(text, "Encontré 5 profesores:"))
	})

	t.Run("unknown action", func(t *testing.T) {
		assert.Equal(t, UnknownAction, responder.RespondAction(QuickAction("menu")))
	})
}

func TestQuickActionCategories(t *testing.T) {
	for _, action := range QuickActions {
		category, ok := action.Category()
		assert.True(t, ok)
		assert.True(t, core.ValidCategory(category))
		assert.NotEmpty(t, ActionLabels[action])
	}

	_, ok := QuickAction("menu").Category()
	assert.False(t, ok)
}
