/*
Package loader ingests roster-request CSV files.

PURPOSE:
  Parses the wide roster-request format stores submit and normalizes it into
  one row per (employee, date, window). The engine never reads files itself;
  it consumes the materialized employee list and preference index this
  package (or the sqlite store) produces.

CSV FORMAT:
  employee_id,name,skills,2024/07/01,2024/07/02,...
  1,Tanaka,"cashier,refrigeration",09:00-14:00,休み,...

  - skills is a comma-joined subset of {cashier, refrigeration, stocking}
  - date columns use YYYY/MM/DD
  - cells are "HH:MM-HH:MM", blank, or the day-off token
  - blank and day-off cells produce no row

VALIDATION:
  Malformed dates and times reject the whole file here, at load time; the
  engine assumes validated input and is never handed unparsable records.

SEE ALSO:
  - store/sqlite: Persists the normalized rows with a generated id
  - roster/types.go: The employee and preference types built from rows
*/
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/warp/roster-engine/roster"
)

// DefaultDayOffToken is the localized cell value marking a requested day off.
const DefaultDayOffToken = "休み"

// Row is one normalized roster request: an employee wants to work the window
// on the date.
type Row struct {
	EmployeeID roster.EmployeeID
	Name       string
	Skills     roster.SkillSet
	Date       roster.Date
	Window     roster.Window
}

// Loader parses roster-request CSVs.
type Loader struct {
	// DayOffToken marks a requested day off; such cells are dropped.
	// Defaults to DefaultDayOffToken when empty.
	DayOffToken string
}

// Parse reads the wide CSV form and returns normalized rows in file order.
func (l Loader) Parse(r io.Reader) ([]Row, error) {
	dayOff := l.DayOffToken
	if dayOff == "" {
		dayOff = DefaultDayOffToken
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 4 {
		return nil, fmt.Errorf("header needs employee_id, name, skills and at least one date column")
	}

	// Date columns start at the fourth field.
	dates := make([]roster.Date, len(header)-3)
	for i, cell := range header[3:] {
		t, err := parseHeaderDate(cell)
		if err != nil {
			return nil, err
		}
		dates[i] = t
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line+1, err)
		}
		line++

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: missing employee columns", line)
		}
		id := roster.EmployeeID(strings.TrimSpace(record[0]))
		if id == "" {
			return nil, fmt.Errorf("line %d: empty employee id", line)
		}
		name := strings.TrimSpace(record[1])
		skills := ParseSkills(record[2])

		for i, cell := range record[3:] {
			if i >= len(dates) {
				return nil, fmt.Errorf("line %d: more cells than date columns", line)
			}
			cell = strings.TrimSpace(cell)
			if cell == "" || cell == dayOff {
				continue
			}
			window, err := roster.ParseWindow(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, %s: %w", line, dates[i], err)
			}
			rows = append(rows, Row{
				EmployeeID: id,
				Name:       name,
				Skills:     skills,
				Date:       dates[i],
				Window:     window,
			})
		}
	}
	return rows, nil
}

// parseHeaderDate accepts the importer's YYYY/MM/DD headers and, for
// convenience, ISO YYYY-MM-DD.
func parseHeaderDate(cell string) (roster.Date, error) {
	cell = strings.TrimSpace(cell)
	if strings.Contains(cell, "/") {
		cell = strings.ReplaceAll(cell, "/", "-")
	}
	d, err := roster.ParseDate(cell)
	if err != nil {
		return roster.Date{}, fmt.Errorf("date column %q: %w", cell, err)
	}
	return d, nil
}

// ParseSkills splits a comma-joined skill cell into a SkillSet, preserving
// order and dropping empty segments.
func ParseSkills(cell string) roster.SkillSet {
	var out roster.SkillSet
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, roster.Skill(part))
		}
	}
	return out
}

// Materialize turns normalized rows into the engine's inputs: a deduplicated
// employee list in first-seen order and a preference index. Employees start
// with a preference rate of 100 (always accept); callers may adjust rates
// before generation.
func Materialize(rows []Row) ([]*roster.Employee, roster.PreferenceIndex) {
	var employees []*roster.Employee
	seen := make(map[roster.EmployeeID]bool)
	prefs := make(roster.PreferenceIndex)

	for _, row := range rows {
		if !seen[row.EmployeeID] {
			seen[row.EmployeeID] = true
			employees = append(employees, &roster.Employee{
				ID:             row.EmployeeID,
				Name:           row.Name,
				Skills:         row.Skills,
				PreferenceRate: 100,
			})
		}
		prefs.Add(row.EmployeeID, row.Date, row.Window)
	}
	return employees, prefs
}
