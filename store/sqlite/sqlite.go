/*
Package sqlite provides the SQLite-backed roster input store.

PURPOSE:
  Persists normalized roster-request rows (the alternate ingestion path) and
  materializes the engine's inputs from them: the employee list and the
  preference index. The engine itself never touches the database.

KEY TABLES:
  employees: one row per employee (id, name, skills, preference_rate)
  shifts:    normalized request rows with a generated id and a date-typed
             desired_date column, one row per (employee, date, window)

IMPORT SEMANTICS:
  Import replaces the whole data set atomically, mirroring how roster files
  are re-submitted wholesale for a period. Preference rates survive a
  re-import for employees that remain on the roster.

WAL MODE:
  The database is opened with WAL (Write-Ahead Logging) so readers don't
  block the importer.

USAGE:
  store, err := sqlite.New("./data/roster.db")
  if err != nil { ... }
  defer store.Close()

  if err := store.Import(ctx, rows); err != nil { ... }
  employees, prefs, err := store.Load(ctx)

SEE ALSO:
  - loader/: Produces the normalized rows
  - roster/types.go: The materialized input types
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/roster-engine/loader"
	"github.com/warp/roster-engine/roster"
)

// Store persists roster inputs in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at the given path and migrates the
// schema. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		skills TEXT NOT NULL DEFAULT '',
		preference_rate INTEGER NOT NULL DEFAULT 100,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS shifts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		desired_date DATE NOT NULL,
		clock_in TEXT NOT NULL,
		clock_out TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_shifts_employee_date
		ON shifts(employee_id, desired_date);
	CREATE INDEX IF NOT EXISTS idx_shifts_date
		ON shifts(desired_date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Import replaces the stored roster with the given rows atomically.
// Preference rates of employees that remain on the roster are preserved.
func (s *Store) Import(ctx context.Context, rows []loader.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rates, err := preferenceRates(ctx, tx)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM shifts`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return err
	}

	insertEmployee, err := tx.PrepareContext(ctx, `
		INSERT INTO employees (id, name, skills, preference_rate, position)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertEmployee.Close()

	insertShift, err := tx.PrepareContext(ctx, `
		INSERT INTO shifts (employee_id, desired_date, clock_in, clock_out)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer insertShift.Close()

	position := 0
	seen := make(map[roster.EmployeeID]bool)
	for _, row := range rows {
		if !seen[row.EmployeeID] {
			seen[row.EmployeeID] = true
			rate, ok := rates[row.EmployeeID]
			if !ok {
				rate = 100
			}
			if _, err := insertEmployee.ExecContext(ctx,
				string(row.EmployeeID), row.Name, joinSkills(row.Skills), rate, position); err != nil {
				return err
			}
			position++
		}
		if _, err := insertShift.ExecContext(ctx,
			string(row.EmployeeID), row.Date.String(), row.Window.Start.String(), row.Window.End.String()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SetPreferenceRate updates one employee's acceptance probability.
func (s *Store) SetPreferenceRate(ctx context.Context, id roster.EmployeeID, rate int) error {
	if rate < 0 || rate > 100 {
		return fmt.Errorf("employee %s: rate %d: %w", id, rate, roster.ErrInvalidPreferenceRate)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE employees SET preference_rate = ? WHERE id = ?`, rate, string(id))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("employee %s: %w", id, roster.ErrUnknownEmployee)
	}
	return nil
}

// Load materializes the engine's inputs: employees in imported roster order
// and the preference index.
func (s *Store) Load(ctx context.Context) ([]*roster.Employee, roster.PreferenceIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	employees, err := s.loadEmployees(ctx)
	if err != nil {
		return nil, nil, err
	}

	prefs := make(roster.PreferenceIndex)
	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, desired_date, clock_in, clock_out
		FROM shifts ORDER BY id`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, dateS, inS, outS string
		if err := rows.Scan(&id, &dateS, &inS, &outS); err != nil {
			return nil, nil, err
		}
		date, err := roster.ParseDate(dateS)
		if err != nil {
			return nil, nil, err
		}
		start, err := roster.ParseClock(inS)
		if err != nil {
			return nil, nil, err
		}
		end, err := roster.ParseClock(outS)
		if err != nil {
			return nil, nil, err
		}
		prefs.Add(roster.EmployeeID(id), date, roster.Window{Start: start, End: end})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return employees, prefs, nil
}

func (s *Store) loadEmployees(ctx context.Context) ([]*roster.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, skills, preference_rate
		FROM employees ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*roster.Employee
	for rows.Next() {
		var id, name, skills string
		var rate int
		if err := rows.Scan(&id, &name, &skills, &rate); err != nil {
			return nil, err
		}
		out = append(out, &roster.Employee{
			ID:             roster.EmployeeID(id),
			Name:           name,
			Skills:         loader.ParseSkills(skills),
			PreferenceRate: rate,
		})
	}
	return out, rows.Err()
}

func preferenceRates(ctx context.Context, tx *sql.Tx) (map[roster.EmployeeID]int, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, preference_rate FROM employees`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rates := make(map[roster.EmployeeID]int)
	for rows.Next() {
		var id string
		var rate int
		if err := rows.Scan(&id, &rate); err != nil {
			return nil, err
		}
		rates[roster.EmployeeID(id)] = rate
	}
	return rates, rows.Err()
}

func joinSkills(skills roster.SkillSet) string {
	parts := make([]string, len(skills))
	for i, skill := range skills {
		parts[i] = string(skill)
	}
	return strings.Join(parts, ",")
}
