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

import "fmt"

// ValidateClassroom validates a ClassroomRecord according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Name must not be empty
//
// NOT validated:
//   - Capacity (0 means "not recorded")
//   - Equipment (may be empty)
func ValidateClassroom(record *ClassroomRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidClassroom)
	}
	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClassroom, ErrEmptyID)
	}
	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClassroom, ErrEmptyName)
	}
	return nil
}

// ValidateStaff validates a StaffRecord according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Name must not be empty
//
// NOT validated:
//   - Phone and Office (optional fields)
func ValidateStaff(record *StaffRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidStaff)
	}
	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStaff, ErrEmptyID)
	}
	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStaff, ErrEmptyName)
	}
	return nil
}

// ValidateSchedule validates a ScheduleRecord according to domain rules.
func ValidateSchedule(record *ScheduleRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidSchedule)
	}
	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSchedule, ErrEmptyID)
	}
	if record.Subject == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSchedule, ErrEmptyName)
	}
	return nil
}

// ValidateContact validates a ContactRecord according to domain rules.
func ValidateContact(record *ContactRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidContact)
	}
	if record.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContact, ErrEmptyID)
	}
	if record.Area == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContact, ErrEmptyName)
	}
	return nil
}

// ValidateDataset validates every record in the dataset and checks that
// record IDs are unique within their category. IDs do not need to be
// globally unique across categories.
func ValidateDataset(d *Dataset) error {
	if d == nil {
		return fmt.Errorf("dataset is nil")
	}

	seen := make(map[string]bool, len(d.Classrooms))
	for i := range d.Classrooms {
		if err := ValidateClassroom(&d.Classrooms[i]); err != nil {
			return err
		}
		if seen[d.Classrooms[i].Id] {
			return fmt.Errorf("%w: classroom %q", ErrDuplicateID, d.Classrooms[i].Id)
		}
		seen[d.Classrooms[i].Id] = true
	}

	seen = make(map[string]bool, len(d.Staff))
	for i := range d.Staff {
		if err := ValidateStaff(&d.Staff[i]); err != nil {
			return err
		}
		if seen[d.Staff[i].Id] {
			return fmt.Errorf("%w: staff %q", ErrDuplicateID, d.Staff[i].Id)
		}
		seen[d.Staff[i].Id] = true
	}

	seen = make(map[string]bool, len(d.Schedules))
	for i := range d.Schedules {
		if err := ValidateSchedule(&d.Schedules[i]); err != nil {
			return err
		}
		if seen[d.Schedules[i].Id] {
			return fmt.Errorf("%w: schedule %q", ErrDuplicateID, d.Schedules[i].Id)
		}
		seen[d.Schedules[i].Id] = true
	}

	seen = make(map[string]bool, len(d.Contacts))
	for i := range d.Contacts {
		if err := ValidateContact(&d.Contacts[i]); err != nil {
			return err
		}
		if seen[d.Contacts[i].Id] {
			return fmt.Errorf("%w: contact %q", ErrDuplicateID, d.Contacts[i].Id)
		}
		seen[d.Contacts[i].Id] = true
	}

	return nil
}
