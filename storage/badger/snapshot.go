// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/storage"
)

// snapshotKey is the single key under which the dataset snapshot is stored.
const snapshotKey = "dataset:snapshot"

// SnapshotRepository implements storage.SnapshotStore for BadgerDB.
// It holds the last known good dataset so queries can still be answered
// when the record store is unavailable.
type SnapshotRepository struct {
	backend *Backend
}

var _ storage.SnapshotStore = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a SnapshotRepository over an open backend.
// The caller retains ownership of the backend.
func NewSnapshotRepository(backend *Backend) *SnapshotRepository {
	return &SnapshotRepository{
		backend: backend,
	}
}

// OpenSnapshotStore opens a BadgerDB database at the given path and returns
// a snapshot store over it. Closing the store closes the database.
func OpenSnapshotStore(filePath string, inMemory bool) (storage.SnapshotStore, error) {
	backend, err := OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}
	return &ownedSnapshotStore{SnapshotRepository: NewSnapshotRepository(backend)}, nil
}

// SaveSnapshot persists the dataset, replacing any previous snapshot.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, dataset *core.Dataset) error {
	if dataset == nil {
		return storage.ErrSerializationFailed
	}
	return r.backend.WithTx(func(tx *badger.Txn) error {
		value := storage.MarshalDataset(dataset)
		if err := tx.Set([]byte(snapshotKey), value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadSnapshot retrieves the last saved dataset.
// Returns storage.ErrNotFound if no snapshot exists.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context) (*core.Dataset, error) {
	var dataset *core.Dataset
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(snapshotKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			dataset, unmarshalErr = storage.UnmarshalDataset(val)
			return unmarshalErr
		})
	}, false)
	if err != nil {
		return nil, err
	}

	return dataset, nil
}

// Close is a no-op; the backend is owned by the caller.
func (r *SnapshotRepository) Close() error {
	return nil
}

// ownedSnapshotStore closes its backend together with the repository.
type ownedSnapshotStore struct {
	*SnapshotRepository
}

func (s *ownedSnapshotStore) Close() error {
	return s.backend.Close()
}
