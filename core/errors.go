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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidClassroom indicates a ClassroomRecord failed validation.
	ErrInvalidClassroom = errors.New("invalid classroom record")

	// ErrInvalidStaff indicates a StaffRecord failed validation.
	ErrInvalidStaff = errors.New("invalid staff record")

	// ErrInvalidSchedule indicates a ScheduleRecord failed validation.
	ErrInvalidSchedule = errors.New("invalid schedule record")

	// ErrInvalidContact indicates a ContactRecord failed validation.
	ErrInvalidContact = errors.New("invalid contact record")

	// ErrEmptyID indicates the record Id field is empty.
	ErrEmptyID = errors.New("record id cannot be empty")

	// ErrDuplicateID indicates two records share an Id within one category.
	ErrDuplicateID = errors.New("duplicate record id within category")

	// ErrEmptyName indicates a required name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidCategory indicates an unknown Category value.
	ErrInvalidCategory = errors.New("invalid category")
)
