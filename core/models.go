package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for vector index entries.
// It is generated using content-based hashing so re-indexing is idempotent.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category identifies one of the four institutional record sets.
type Category string

const (
	// CategoryRooms covers classrooms, laboratories and auditoriums.
	CategoryRooms Category = "rooms"
	// CategoryStaff covers teaching and administrative staff.
	CategoryStaff Category = "staff"
	// CategorySchedules covers class schedules.
	CategorySchedules Category = "schedules"
	// CategoryContacts covers institutional contact points.
	CategoryContacts Category = "contacts"
)

// Categories lists all categories in the fixed presentation order used
// by combined answers: staff, rooms, schedules, contacts.
var Categories = []Category{CategoryStaff, CategoryRooms, CategorySchedules, CategoryContacts}

// ValidCategory reports whether c is one of the four known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryRooms, CategoryStaff, CategorySchedules, CategoryContacts:
		return true
	}
	return false
}

// ClassroomRecord describes a physical room.
type ClassroomRecord struct {
	Id          string
	Name        string
	Building    string
	Floor       string
	Description string
	Capacity    int // 0 when not recorded
	Equipment   []string
}

// StaffRecord describes a member of the teaching or administrative staff.
// Phone and Office are optional and may be empty.
type StaffRecord struct {
	Id         string
	Name       string
	Email      string
	Department string
	Position   string
	Phone      string
	Office     string
}

// ScheduleRecord describes a scheduled class.
type ScheduleRecord struct {
	Id        string
	Subject   string
	StaffName string
	Classroom string
	Time      string
	Days      []string
	Career    string
}

// ContactRecord describes an institutional contact point.
type ContactRecord struct {
	Id       string
	Area     string
	Email    string
	Phone    string
	Location string
	Hours    string
}

// Dataset holds the four category record sets. Record sets are loaded once
// at startup and are never mutated while queries are being resolved.
type Dataset struct {
	Classrooms []ClassroomRecord
	Staff      []StaffRecord
	Schedules  []ScheduleRecord
	Contacts   []ContactRecord
}

// Empty reports whether all four record sets are empty.
func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Len returns the total number of records across all categories.
func (d *Dataset) Len() int {
	return len(d.Classrooms) + len(d.Staff) + len(d.Schedules) + len(d.Contacts)
}

// IndexedRecord wraps a category record for the semantic index.
// SearchableText is the textual projection used for embedding generation.
type IndexedRecord struct {
	Key            ID // content-derived index key
	RecordId       string
	Category       Category
	SearchableText string
}

// RankedHit is a scored match returned by the semantic search path.
type RankedHit struct {
	Category Category
	RecordId string
	Score    float32
}
