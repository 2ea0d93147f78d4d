package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/poiesic/sharki/core"
	"github.com/poiesic/sharki/storage"
)

// Store is a SQLite-backed record store holding the canonical
// institutional records.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

var _ storage.RecordStore = (*Store)(nil)

// NewStore opens (or creates) a SQLite record store at the given path and
// ensures the schema exists. Slice-valued columns (equipment, days) are
// stored as JSON text.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite store: path is required")
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:     db,
		path:   dbPath,
		logger: slog.Default().With("component", "sqlite-store"),
	}

	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(schema)
	return err
}

// Classrooms returns all classroom records in insertion order.
func (s *Store) Classrooms(ctx context.Context) ([]core.ClassroomRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, building, floor, description, capacity, equipment
		 FROM classrooms ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []core.ClassroomRecord
	for rows.Next() {
		var record core.ClassroomRecord
		var equipment string
		if err := rows.Scan(&record.Id, &record.Name, &record.Building, &record.Floor,
			&record.Description, &record.Capacity, &equipment); err != nil {
			return nil, err
		}
		if err := unmarshalList(equipment, &record.Equipment); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Staff returns all staff records in insertion order.
func (s *Store) Staff(ctx context.Context) ([]core.StaffRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, department, position, phone, office
		 FROM staff ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []core.StaffRecord
	for rows.Next() {
		var record core.StaffRecord
		if err := rows.Scan(&record.Id, &record.Name, &record.Email, &record.Department,
			&record.Position, &record.Phone, &record.Office); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Schedules returns all schedule records in insertion order.
func (s *Store) Schedules(ctx context.Context) ([]core.ScheduleRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, subject, staff_name, classroom, time, days, career
		 FROM schedules ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []core.ScheduleRecord
	for rows.Next() {
		var record core.ScheduleRecord
		var days string
		if err := rows.Scan(&record.Id, &record.Subject, &record.StaffName, &record.Classroom,
			&record.Time, &days, &record.Career); err != nil {
			return nil, err
		}
		if err := unmarshalList(days, &record.Days); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Contacts returns all contact records in insertion order.
func (s *Store) Contacts(ctx context.Context) ([]core.ContactRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, area, email, phone, location, hours
		 FROM contacts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []core.ContactRecord
	for rows.Next() {
		var record core.ContactRecord
		if err := rows.Scan(&record.Id, &record.Area, &record.Email, &record.Phone,
			&record.Location, &record.Hours); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Seed inserts or replaces every record of the dataset.
// Used by cmd/seeder to populate a fresh store.
func (s *Store) Seed(ctx context.Context, dataset *core.Dataset) error {
	if err := core.ValidateDataset(dataset); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i := range dataset.Classrooms {
		r := &dataset.Classrooms[i]
		equipment, err := marshalList(r.Equipment)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO classrooms (id, name, building, floor, description, capacity, equipment)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.Id, r.Name, r.Building, r.Floor, r.Description, r.Capacity, equipment)
		if err != nil {
			return err
		}
	}

	for i := range dataset.Staff {
		r := &dataset.Staff[i]
		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO staff (id, name, email, department, position, phone, office)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.Id, r.Name, r.Email, r.Department, r.Position, r.Phone, r.Office)
		if err != nil {
			return err
		}
	}

	for i := range dataset.Schedules {
		r := &dataset.Schedules[i]
		days, err := marshalList(r.Days)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO schedules (id, subject, staff_name, classroom, time, days, career)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.Id, r.Subject, r.StaffName, r.Classroom, r.Time, days, r.Career)
		if err != nil {
			return err
		}
	}

	for i := range dataset.Contacts {
		r := &dataset.Contacts[i]
		_, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO contacts (id, area, email, phone, location, hours)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.Id, r.Area, r.Email, r.Phone, r.Location, r.Hours)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func marshalList(values []string) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalList(data string, out *[]string) error {
	if data == "" || data == "[]" {
		return nil
	}
	return json.Unmarshal([]byte(data), out)
}
