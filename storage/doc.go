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


// Package storage provides the storage abstraction layer for the assistant.
//
// This package defines two store interfaces that decouple storage
// implementations from the query engine:
//
//   - RecordStore: read access to the canonical institutional records
//     (implemented by storage/sqlite)
//   - SnapshotStore: last-known-good dataset cache used when the record
//     store is unavailable (implemented by storage/badger)
//
// # Constructor Return Type Pattern
//
// Public constructors return interface types where the consumer only needs
// the interface; implementation packages may expose concrete types for
// operations outside the interfaces (such as seeding).
//
// # Thread Safety
//
// All store implementations must be thread-safe. Record sets are loaded
// once at startup and treated as immutable afterwards, so concurrent
// queries never observe a partial update.
//
// # Context Support
//
// All store methods accept context.Context for cancellation and timeout
// support.
package storage
