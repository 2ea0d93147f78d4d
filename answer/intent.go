package answer

import (
	"strings"

	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/search"
)

// containsAny reports whether the normalized query contains any of the
// keywords as a substring.
func containsAny(query string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}

// Responder turns a resolved result set into the final answer text. It
// holds the dataset so short queries can be re-checked against exact
// staff name tokens.
type Responder struct {
	dataset *core.Dataset
}

// NewResponder creates a responder over the dataset.
func NewResponder(dataset *core.Dataset) (*Responder, error) {
	if dataset == nil {
		return nil, search.ErrDatasetRequired
	}
	return &Responder{dataset: dataset}, nil
}

// Respond decides the shape of the answer: no-results guidance, a
// single-category rendering, or the combined multi-category summary.
func (r *Responder) Respond(results *search.ResultSet) string {
	if results.Empty() {
		return NoResults(results.Query)
	}

	query := results.Normalized

	// Short queries matched something, but substring hits on one or two
	// letters are noise. Only exact staff name tokens count.
	if query != "" && len([]rune(query)) < 3 && len(results.Staff) > 0 {
		exact := search.StaffExactMatches(query, r.dataset.Staff)
		if len(exact) > 0 {
			return FormatStaff(exact)
		}
		return TooShort
	}

	if categories := results.NonEmptyCategories(); len(categories) == 1 {
		return r.formatCategory(categories[0], results)
	}

	if category, ok := r.keywordPriority(query, results); ok {
		return r.formatCategory(category, results)
	}

	return FormatCombined(results.Query, results.Rooms, results.Staff,
		results.Schedules, results.Contacts)
}

// keywordPriority picks the first category, in the fixed order staff,
// rooms, schedules, contacts, whose keyword condition holds and whose
// result list is non-empty.
func (r *Responder) keywordPriority(query string, results *search.ResultSet) (core.Category, bool) {
	staffIntent := containsAny(query, "profesor", "correo", "email") ||
		(search.IsNameShaped(query) && len(results.Staff) > 0)
	if staffIntent && len(results.Staff) > 0 {
		return core.CategoryStaff, true
	}

	roomIntent := containsAny(query, "aula", "salon", "clase") ||
		search.HasThreeDigitToken(query)
	if roomIntent && len(results.Rooms) > 0 {
		return core.CategoryRooms, true
	}

	scheduleIntent := containsAny(query, "horario", "materia", "clase")
	if scheduleIntent && len(results.Schedules) > 0 {
		return core.CategorySchedules, true
	}

	contactIntent := containsAny(query, "contacto", "telefono", "secretaria", "admision")
	if contactIntent && len(results.Contacts) > 0 {
		return core.CategoryContacts, true
	}

	return "", false
}

func (r *Responder) formatCategory(category core.Category, results *search.ResultSet) string {
	switch category {
	case core.CategoryRooms:
		return FormatClassrooms(results.Rooms)
	case core.CategoryStaff:
		return FormatStaff(results.Staff)
	case core.CategorySchedules:
		return FormatSchedules(results.Schedules)
	case core.CategoryContacts:
		return FormatContacts(results.Contacts)
	default:
		return NoResults(results.Query)
	}
}
