package storage

import (
	"context"

	"github.com/poiesic/sharki/core"
)

// RecordStore provides read access to the canonical institutional records.
// Implementations return the full current set per category; no pagination
// is required. Implementations must be thread-safe.
type RecordStore interface {
	// Classrooms returns all classroom records in insertion order.
	Classrooms(ctx context.Context) ([]core.ClassroomRecord, error)

	// Staff returns all staff records in insertion order.
	Staff(ctx context.Context) ([]core.StaffRecord, error)

	// Schedules returns all schedule records in insertion order.
	Schedules(ctx context.Context) ([]core.ScheduleRecord, error)

	// Contacts returns all contact records in insertion order.
	Contacts(ctx context.Context) ([]core.ContactRecord, error)

	// Close closes the store and releases resources.
	Close() error
}

// SnapshotStore persists the last known good dataset so the engine can
// keep answering when the record store becomes unavailable.
type SnapshotStore interface {
	// SaveSnapshot persists the dataset, replacing any previous snapshot.
	SaveSnapshot(ctx context.Context, dataset *core.Dataset) error

	// LoadSnapshot retrieves the last saved dataset.
	// Returns ErrNotFound if no snapshot has been saved.
	LoadSnapshot(ctx context.Context) (*core.Dataset, error)

	// Close closes the store and releases resources.
	Close() error
}

// LoadDataset loads all four category record sets from a store.
// The returned dataset preserves the store's per-category ordering.
func LoadDataset(ctx context.Context, store RecordStore) (*core.Dataset, error) {
	classrooms, err := store.Classrooms(ctx)
	if err != nil {
		return nil, err
	}
	staff, err := store.Staff(ctx)
	if err != nil {
		return nil, err
	}
	schedules, err := store.Schedules(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := store.Contacts(ctx)
	if err != nil {
		return nil, err
	}

	return &core.Dataset{
		Classrooms: classrooms,
		Staff:      staff,
		Schedules:  schedules,
		Contacts:   contacts,
	}, nil
}
