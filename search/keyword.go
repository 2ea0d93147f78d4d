package search

import (
	"strings"

	"github.com/poiesic/sharki/core"
)

// shortQueryThreshold is the minimum normalized query length for staff
// substring matching. Shorter queries only match whole name tokens.
const shortQueryThreshold = 3

// SearchClassrooms returns the classrooms whose searchable fields contain
// the normalized query. An empty or whitespace query returns every record.
func SearchClassrooms(query string, records []core.ClassroomRecord) []core.ClassroomRecord {
	normalized := Normalize(query)
	if normalized == "" {
		return records
	}

	var matched []core.ClassroomRecord
	for _, record := range records {
		if classroomMatches(&record, normalized) {
			matched = append(matched, record)
		}
	}
	return matched
}

func classroomMatches(record *core.ClassroomRecord, normalized string) bool {
	if strings.Contains(Normalize(record.Name), normalized) ||
		strings.Contains(Normalize(record.Building), normalized) ||
		strings.Contains(Normalize(record.Floor), normalized) ||
		strings.Contains(Normalize(record.Description), normalized) {
		return true
	}
	for _, equipment := range record.Equipment {
		if strings.Contains(Normalize(equipment), normalized) {
			return true
		}
	}
	return false
}

// SearchStaff returns the staff whose searchable fields match the query.
// Name matching strips honorific title prefixes and prefers exact whole
// token matches; queries shorter than three characters only match whole
// name tokens. An empty or whitespace query returns every record.
func SearchStaff(query string, records []core.StaffRecord) []core.StaffRecord {
	normalized := Normalize(query)
	if normalized == "" {
		return records
	}

	short := len([]rune(normalized)) < shortQueryThreshold

	var matched []core.StaffRecord
	for _, record := range records {
		if staffNameTokenMatches(&record, normalized) {
			matched = append(matched, record)
			continue
		}
		if short {
			continue
		}
		if staffSubstringMatches(&record, normalized) {
			matched = append(matched, record)
		}
	}
	return matched
}

// StaffExactMatches returns only the staff whose name contains the query
// as a whole token. Used when a query is too short for substring search.
func StaffExactMatches(query string, records []core.StaffRecord) []core.StaffRecord {
	normalized := Normalize(query)
	if normalized == "" {
		return nil
	}

	var matched []core.StaffRecord
	for _, record := range records {
		if staffNameTokenMatches(&record, normalized) {
			matched = append(matched, record)
		}
	}
	return matched
}

func staffNameTokenMatches(record *core.StaffRecord, normalized string) bool {
	fullName := Normalize(record.Name)
	return hasExactToken(fullName, normalized) || hasExactToken(stripHonorific(fullName), normalized)
}

func staffSubstringMatches(record *core.StaffRecord, normalized string) bool {
	fullName := Normalize(record.Name)
	return strings.Contains(fullName, normalized) ||
		strings.Contains(stripHonorific(fullName), normalized) ||
		strings.Contains(Normalize(record.Department), normalized) ||
		strings.Contains(Normalize(record.Email), normalized) ||
		strings.Contains(Normalize(record.Position), normalized)
}

// SearchSchedules returns the schedules whose searchable fields contain
// the normalized query. An empty or whitespace query returns every record.
func SearchSchedules(query string, records []core.ScheduleRecord) []core.ScheduleRecord {
	normalized := Normalize(query)
	if normalized == "" {
		return records
	}

	var matched []core.ScheduleRecord
	for _, record := range records {
		if scheduleMatches(&record, normalized) {
			matched = append(matched, record)
		}
	}
	return matched
}

func scheduleMatches(record *core.ScheduleRecord, normalized string) bool {
	if strings.Contains(Normalize(record.Subject), normalized) ||
		strings.Contains(Normalize(record.StaffName), normalized) ||
		strings.Contains(Normalize(record.Classroom), normalized) ||
		strings.Contains(Normalize(record.Career), normalized) ||
		strings.Contains(Normalize(record.Time), normalized) {
		return true
	}
	for _, day := range record.Days {
		if strings.Contains(Normalize(day), normalized) {
			return true
		}
	}
	return false
}

// SearchContacts returns the contact points whose searchable fields contain
// the normalized query. An empty or whitespace query returns every record.
func SearchContacts(query string, records []core.ContactRecord) []core.ContactRecord {
	normalized := Normalize(query)
	if normalized == "" {
		return records
	}

	var matched []core.ContactRecord
	for _, record := range records {
		if contactMatches(&record, normalized) {
			matched = append(matched, record)
		}
	}
	return matched
}

func contactMatches(record *core.ContactRecord, normalized string) bool {
	return strings.Contains(Normalize(record.Area), normalized) ||
		strings.Contains(Normalize(record.Email), normalized) ||
		strings.Contains(Normalize(record.Phone), normalized) ||
		strings.Contains(Normalize(record.Location), normalized) ||
		strings.Contains(Normalize(record.Hours), normalized)
}

// SearchAll runs the four category searchers against the dataset.
func SearchAll(query string, dataset *core.Dataset) *ResultSet {
	return &ResultSet{
		Query:      query,
		Normalized: Normalize(query),
		Path:       PathKeyword,
		Rooms:      SearchClassrooms(query, dataset.Classrooms),
		Staff:      SearchStaff(query, dataset.Staff),
		Schedules:  SearchSchedules(query, dataset.Schedules),
		Contacts:   SearchContacts(query, dataset.Contacts),
	}
}
