package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/poiesic/sharki/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSeedAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	dataset := &core.Dataset{
		Classrooms: []core.ClassroomRecord{
			{
				Id:          "1",
				Name:        "Aula 101",
				Building:    "Torre 1",
				Floor:       "Planta Baja",
				Description: "Torre 1 - Planta Baja - Lado Este",
				Capacity:    40,
				Equipment:   []string{"Proyector", "Aire acondicionado"},
			},
			{
				Id:       "2",
				Name:     "Laboratorio 1",
				Building: "Torre 2",
				Capacity: 25,
			},
		},
		Staff: []core.StaffRecord{
			{
				Id:         "1",
				Name:       "Dr. Carlos López",
				Email:      "clopez@upacifico.edu.py",
				Department: "Ingeniería",
				Position:   "Profesor Titular",
				Phone:      "021-123-456",
				Office:     "Torre 1 - Piso 2",
			},
		},
		Schedules: []core.ScheduleRecord{
			{
				Id:        "1",
				Subject:   "Programación I",
				StaffName: "Dr. Carlos López",
				Classroom: "Laboratorio 1",
				Time:      "08:00 - 10:00",
				Days:      []string{"Lunes", "Miércoles"},
				Career:    "Ingeniería en Informática",
			},
		},
		Contacts: []core.ContactRecord{
			{
				Id:       "1",
				Area:     "Secretaría Académica",
				Email:    "secretaria@upacifico.edu.py",
				Phone:    "021-123-400",
				Location: "Torre 1 - Planta Baja",
				Hours:    "Lunes a Viernes 07:00 - 19:00",
			},
		},
	}

	require.NoError(t, store.Seed(ctx, dataset))

	t.Run("classrooms preserve order and equipment", func(t *testing.T) {
		classrooms, err := store.Classrooms(ctx)
		require.NoError(t, err)
		require.Len(t, classrooms, 2)
		assert.Equal(t, dataset.Classrooms[0], classrooms[0])
		assert.Equal(t, "Laboratorio 1", classrooms[1].Name)
		assert.Nil(t, classrooms[1].Equipment)
	})

	t.Run("staff", func(t *testing.T) {
		staff, err := store.Staff(ctx)
		require.NoError(t, err)
		require.Len(t, staff, 1)
		assert.Equal(t, dataset.Staff[0], staff[0])
	})

	t.Run("schedules preserve days", func(t *testing.T) {
		schedules, err := store.Schedules(ctx)
		require.NoError(t, err)
		require.Len(t, schedules, 1)
		assert.Equal(t, dataset.Schedules[0], schedules[0])
	})

	t.Run("contacts", func(t *testing.T) {
		contacts, err := store.Contacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, dataset.Contacts[0], contacts[0])
	})
}

func TestSeedReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &core.Dataset{
		Contacts: []core.ContactRecord{{Id: "1", Area: "Admisiones"}},
	}
	second := &core.Dataset{
		Contacts: []core.ContactRecord{{Id: "1", Area: "Tesorería"}},
	}

	require.NoError(t, store.Seed(ctx, first))
	require.NoError(t, store.Seed(ctx, second))

	contacts, err := store.Contacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Tesorería", contacts[0].Area)
}

func TestSeedRejectsInvalidDataset(t *testing.T) {
	store := newTestStore(t)

	invalid := &core.Dataset{
		Staff: []core.StaffRecord{{Id: "", Name: "Sin ID"}},
	}
	err := store.Seed(context.Background(), invalid)
	assert.ErrorIs(t, err, core.ErrEmptyID)
}

func TestEmptyStoreReturnsNoRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	classrooms, err := store.Classrooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, classrooms)

	staff, err := store.Staff(ctx)
	require.NoError(t, err)
	assert.Empty(t, staff)
}
