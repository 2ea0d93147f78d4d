package badger

import (
	"context"
	"testing"

	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	store, backend, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer backend.Close()

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
				Equipment:   []string{"Proyector", "Sistema de sonido"},
			},
		},
		Staff: []core.StaffRecord{
			{
				Id:         "1",
				Name:       "Dr. Carlos López",
				Email:      "clopez@upacifico.edu.py",
				Department: "Ingeniería",
				Position:   "Profesor Titular",
			},
		},
		Schedules: []core.ScheduleRecord{
			{
				Id:        "1",
				Subject:   "Programación I",
				StaffName: "Dr. Carlos López",
				Classroom: "Laboratorio 1",
				Time:      "08:00 - 10:00",
				Days:      []string{"Lunes", "Miércoles", "Viernes"},
				Career:    "Ingeniería en Informática",
			},
		},
		Contacts: []core.ContactRecord{
			{
				Id:       "3",
				Area:     "Biblioteca",
				Email:    "biblioteca@upacifico.edu.py",
				Phone:    "021-123-402",
				Location: "Torre 2 - Piso 1",
				Hours:    "Lunes a Viernes 07:00 - 20:00",
			},
		},
	}

	require.NoError(t, store.SaveSnapshot(ctx, dataset))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, dataset, loaded)
}

func TestSnapshotReplacesPrevious(t *testing.T) {
	store, backend, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()

	first := &core.Dataset{Contacts: []core.ContactRecord{{Id: "1", Area: "Admisiones"}}}
	second := &core.Dataset{Contacts: []core.ContactRecord{{Id: "1", Area: "Tesorería"}}}

	require.NoError(t, store.SaveSnapshot(ctx, first))
	require.NoError(t, store.SaveSnapshot(ctx, second))

	loaded, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Contacts, 1)
	assert.Equal(t, "Tesorería", loaded.Contacts[0].Area)
}

func TestLoadSnapshotNotFound(t *testing.T) {
	store, backend, err := NewMemorySnapshotStore()
	require.NoError(t, err)
	defer backend.Close()

	_, err = store.LoadSnapshot(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
