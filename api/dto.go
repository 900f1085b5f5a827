/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's internal model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers and the engine, not in DTOs. DTOs are pure
  data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/config.go: The configuration wire form
*/
package api

import (
	"github.com/warp/roster-engine/roster"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// EmployeeDTO is one roster member.
type EmployeeDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Skills         []string `json:"skills"`
	PreferenceRate int      `json:"preference_rate"`
}

// PreferenceDTO is one declared desired window.
type PreferenceDTO struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`   // YYYY-MM-DD
	Start      string `json:"start"`  // HH:MM
	End        string `json:"end"`    // HH:MM
}

// GenerateRequest asks for a schedule over a period. Employees and
// preferences may be supplied inline; when Source is "store" they are loaded
// from the sqlite store instead.
type GenerateRequest struct {
	Start       string          `json:"start"` // YYYY-MM-DD
	End         string          `json:"end"`   // YYYY-MM-DD
	Seed        *int64          `json:"seed,omitempty"`
	Source      string          `json:"source,omitempty"` // "" (inline) or "store"
	Employees   []EmployeeDTO   `json:"employees,omitempty"`
	Preferences []PreferenceDTO `json:"preferences,omitempty"`
	Holidays    []string        `json:"holidays,omitempty"` // YYYY-MM-DD
}

// AssignmentDTO is one committed placement.
type AssignmentDTO struct {
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`
	Slot         string `json:"slot"`
	Start        string `json:"start"`
	End          string `json:"end"`
	BreakMinutes int    `json:"break_minutes"`
}

// ShortageDTO is one understaffed (date, slot).
type ShortageDTO struct {
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Shortfall int    `json:"shortfall"`
}

// SkillShortageDTO flags a (date, slot) with no required-skill cover.
type SkillShortageDTO struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// WarningDTO is one soft labor-rule finding.
type WarningDTO struct {
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	EmployeeID string `json:"employee_id"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// ReflectionDTO is one employee's preference satisfaction.
type ReflectionDTO struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	Stated           bool   `json:"stated"`
	PreferredMinutes int    `json:"preferred_minutes"`
	ReflectedMinutes int    `json:"reflected_minutes"`
	Rate             string `json:"rate"` // decimal percentage
}

// GenerateResponse is the complete outcome of a run.
type GenerateResponse struct {
	Start          string             `json:"start"`
	End            string             `json:"end"`
	Assignments    []AssignmentDTO    `json:"assignments"`
	Shortages      []ShortageDTO      `json:"shortages"`
	SkillShortages []SkillShortageDTO `json:"skill_shortages"`
	Warnings       []WarningDTO       `json:"warnings"`
	Reflection     []ReflectionDTO    `json:"reflection"`
	OverallRate    string             `json:"overall_rate"`
	Rendered       string             `json:"rendered,omitempty"`
}

// ImportResponse reports an accepted roster import.
type ImportResponse struct {
	Rows      int `json:"rows"`
	Employees int `json:"employees"`
}

// SetRateRequest updates one employee's preference rate.
type SetRateRequest struct {
	Rate int `json:"rate"`
}

func toEmployeeDTO(e *roster.Employee) EmployeeDTO {
	skills := make([]string, len(e.Skills))
	for i, s := range e.Skills {
		skills[i] = string(s)
	}
	return EmployeeDTO{
		ID:             string(e.ID),
		Name:           e.Name,
		Skills:         skills,
		PreferenceRate: e.PreferenceRate,
	}
}
