package search

import "github.com/poiesic/sharki/core"

// Path identifies which search path produced a result set.
type Path string

const (
	// PathKeyword means the deterministic category searchers answered.
	PathKeyword Path = "keyword"
	// PathSemantic means the vector index answered.
	PathSemantic Path = "semantic"
)

// ResultSet holds the per-category results for one resolved query.
// All four lists come from the same path; answers are never partially
// semantic and partially keyword.
type ResultSet struct {
	Query      string
	Normalized string
	Path       Path

	Rooms     []core.ClassroomRecord
	Staff     []core.StaffRecord
	Schedules []core.ScheduleRecord
	Contacts  []core.ContactRecord
}

// Empty reports whether every category came back empty.
func (rs *ResultSet) Empty() bool {
	return len(rs.Rooms) == 0 && len(rs.Staff) == 0 &&
		len(rs.Schedules) == 0 && len(rs.Contacts) == 0
}

// NonEmptyCategories returns the categories with at least one result, in
// presentation order.
func (rs *ResultSet) NonEmptyCategories() []core.Category {
	var categories []core.Category
	if len(rs.Staff) > 0 {
		categories = append(categories, core.CategoryStaff)
	}
	if len(rs.Rooms) > 0 {
		categories = append(categories, core.CategoryRooms)
	}
	if len(rs.Schedules) > 0 {
		categories = append(categories, core.CategorySchedules)
	}
	if len(rs.Contacts) > 0 {
		categories = append(categories, core.CategoryContacts)
	}
	return categories
}
