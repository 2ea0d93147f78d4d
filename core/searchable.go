package core

import "strings"

// SearchableText returns the textual projection of the record used for
// embedding generation. The concatenation order is fixed so regenerating
// the projection for the same record always yields the same string.
func (r *ClassroomRecord) SearchableText() string {
	parts := []string{r.Name, r.Building, r.Floor, r.Description}
	parts = append(parts, r.Equipment...)
	return joinFields(parts)
}

// SearchableText returns the textual projection of the record used for
// embedding generation.
func (r *StaffRecord) SearchableText() string {
	return joinFields([]string{r.Name, r.Email, r.Department, r.Position, r.Phone, r.Office})
}

// SearchableText returns the textual projection of the record used for
// embedding generation.
func (r *ScheduleRecord) SearchableText() string {
	parts := []string{r.Subject, r.StaffName, r.Classroom, r.Time}
	parts = append(parts, r.Days...)
	parts = append(parts, r.Career)
	return joinFields(parts)
}

// SearchableText returns the textual projection of the record used for
// embedding generation.
func (r *ContactRecord) SearchableText() string {
	return joinFields([]string{r.Area, r.Email, r.Phone, r.Location, r.Hours})
}

// joinFields concatenates non-empty fields with single spaces.
func joinFields(fields []string) string {
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}

// IndexRecords projects every record of the dataset into an IndexedRecord
// for the semantic index. Keys are derived from category and record ID, so
// rebuilding the index over the same dataset produces identical entries.
func IndexRecords(d *Dataset) []IndexedRecord {
	items := make([]IndexedRecord, 0, d.Len())
	for i := range d.Classrooms {
		r := &d.Classrooms[i]
		items = append(items, newIndexedRecord(CategoryRooms, r.Id, r.SearchableText()))
	}
	for i := range d.Staff {
		r := &d.Staff[i]
		items = append(items, newIndexedRecord(CategoryStaff, r.Id, r.SearchableText()))
	}
	for i := range d.Schedules {
		r := &d.Schedules[i]
		items = append(items, newIndexedRecord(CategorySchedules, r.Id, r.SearchableText()))
	}
	for i := range d.Contacts {
		r := &d.Contacts[i]
		items = append(items, newIndexedRecord(CategoryContacts, r.Id, r.SearchableText()))
	}
	return items
}

func newIndexedRecord(category Category, id, text string) IndexedRecord {
	return IndexedRecord{
		Key:            IDFromContent(string(category) + "/" + id),
		RecordId:       id,
		Category:       category,
		SearchableText: text,
	}
}
