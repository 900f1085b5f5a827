/*
handlers.go - HTTP API handlers for the rostering engine

PURPOSE:
  Exposes schedule generation and roster ingestion via REST. Handles HTTP
  request/response and JSON serialization, and delegates everything else to
  the engine, loader, and store.

ENDPOINTS:
  POST /api/roster/generate   Generate a schedule for a period
  POST /api/roster/import     Import a roster-request CSV into the store
  GET  /api/employees         List stored employees
  PUT  /api/employees/{id}/rate  Set an employee's preference rate
  GET  /api/config/default    The canonical engine configuration as JSON

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: invalid configuration or inconsistent input data
  - 404: unknown employee
  - 500: storage failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/roster-engine/calendar"
	"github.com/warp/roster-engine/factory"
	"github.com/warp/roster-engine/loader"
	"github.com/warp/roster-engine/report"
	"github.com/warp/roster-engine/roster"
	"github.com/warp/roster-engine/store/sqlite"
)

// Handler holds the API dependencies.
type Handler struct {
	Store  *sqlite.Store
	Config roster.Config
	Loader loader.Loader
}

// NewHandler builds a handler around the store with the given engine
// configuration.
func NewHandler(store *sqlite.Store, cfg roster.Config) *Handler {
	return &Handler{Store: store, Config: cfg}
}

// =============================================================================
// GENERATION
// =============================================================================

// Generate runs the assignment engine over the requested period.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	period, err := parsePeriod(req.Start, req.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid period (use YYYY-MM-DD)", err)
		return
	}

	employees, prefs, err := h.inputs(r, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid roster input", err)
		return
	}

	cal, err := parseHolidays(req.Holidays)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid holiday date (use YYYY-MM-DD)", err)
		return
	}

	var rnd roster.Rand
	if req.Seed != nil {
		rnd = roster.NewSeededRand(*req.Seed)
	}

	engine, err := roster.NewEngine(h.Config, cal, rnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid engine configuration", err)
		return
	}

	result, err := engine.Generate(r.Context(), employees, prefs, period)
	if err != nil {
		status := http.StatusInternalServerError
		if roster.IsConfigError(err) || roster.IsDataError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Generation failed", err)
		return
	}

	reflection := roster.CalculateReflection(result.Schedule, employees, prefs, period)
	writeJSON(w, http.StatusOK, h.toGenerateResponse(result, employees, reflection))
}

func (h *Handler) inputs(r *http.Request, req GenerateRequest) ([]*roster.Employee, roster.PreferenceIndex, error) {
	if req.Source == "store" {
		return h.Store.Load(r.Context())
	}

	var employees []*roster.Employee
	for _, dto := range req.Employees {
		skills := make(roster.SkillSet, len(dto.Skills))
		for i, s := range dto.Skills {
			skills[i] = roster.Skill(s)
		}
		rate := dto.PreferenceRate
		if rate == 0 {
			rate = 100
		}
		employees = append(employees, &roster.Employee{
			ID:             roster.EmployeeID(dto.ID),
			Name:           dto.Name,
			Skills:         skills,
			PreferenceRate: rate,
		})
	}

	prefs := make(roster.PreferenceIndex)
	for _, p := range req.Preferences {
		date, err := roster.ParseDate(p.Date)
		if err != nil {
			return nil, nil, err
		}
		start, err := roster.ParseClock(p.Start)
		if err != nil {
			return nil, nil, err
		}
		end, err := roster.ParseClock(p.End)
		if err != nil {
			return nil, nil, err
		}
		prefs.Add(roster.EmployeeID(p.EmployeeID), date, roster.Window{Start: start, End: end})
	}
	return employees, prefs, nil
}

func (h *Handler) toGenerateResponse(result *roster.Result, employees []*roster.Employee, reflection roster.ReflectionSummary) GenerateResponse {
	resp := GenerateResponse{
		Start:          result.Period.Start.String(),
		End:            result.Period.End.String(),
		Assignments:    []AssignmentDTO{},
		Shortages:      []ShortageDTO{},
		SkillShortages: []SkillShortageDTO{},
		Warnings:       []WarningDTO{},
		OverallRate:    reflection.OverallStated.StringFixed(2),
	}

	for _, date := range result.Schedule.Dates() {
		for _, a := range result.Schedule.On(date) {
			resp.Assignments = append(resp.Assignments, AssignmentDTO{
				EmployeeID:   string(a.EmployeeID),
				Date:         a.Date.String(),
				Slot:         string(a.Slot),
				Start:        a.Window.Start.String(),
				End:          a.Window.End.String(),
				BreakMinutes: a.BreakMinutes,
			})
		}
	}
	for _, date := range result.Shortages.Dates() {
		for slot, n := range result.Shortages[date] {
			resp.Shortages = append(resp.Shortages, ShortageDTO{Date: date.String(), Slot: string(slot), Shortfall: n})
		}
	}
	for date, slots := range result.SkillShortages {
		for slot := range slots {
			resp.SkillShortages = append(resp.SkillShortages, SkillShortageDTO{Date: date.String(), Slot: string(slot)})
		}
	}
	for _, warning := range result.Warnings {
		resp.Warnings = append(resp.Warnings, WarningDTO{
			Date:       warning.Date.String(),
			Slot:       string(warning.Slot),
			EmployeeID: string(warning.EmployeeID),
			Code:       string(warning.Code),
			Message:    warning.Message,
		})
	}
	for _, rate := range reflection.PerEmployee {
		resp.Reflection = append(resp.Reflection, ReflectionDTO{
			EmployeeID:       string(rate.EmployeeID),
			Name:             rate.Name,
			Stated:           rate.Stated,
			PreferredMinutes: rate.PreferredMinutes,
			ReflectedMinutes: rate.ReflectedMinutes,
			Rate:             rate.Rate.StringFixed(2),
		})
	}

	renderer := report.Renderer{Breaks: h.Config.Breaks}
	resp.Rendered = renderer.Render(result, employees)
	return resp
}

// =============================================================================
// INGESTION
// =============================================================================

// Import parses a roster-request CSV body and replaces the stored roster.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Loader.Parse(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid roster CSV", err)
		return
	}
	if err := h.Store.Import(r.Context(), rows); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to store roster", err)
		return
	}

	employees, _ := loader.Materialize(rows)
	writeJSON(w, http.StatusOK, ImportResponse{Rows: len(rows), Employees: len(employees)})
}

// ListEmployees returns the stored roster.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, _, err := h.Store.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list employees", err)
		return
	}
	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, toEmployeeDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SetPreferenceRate updates one employee's acceptance probability.
func (h *Handler) SetPreferenceRate(w http.ResponseWriter, r *http.Request) {
	id := roster.EmployeeID(chi.URLParam(r, "id"))

	var req SetRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := h.Store.SetPreferenceRate(r.Context(), id, req.Rate)
	switch {
	case errors.Is(err, roster.ErrInvalidPreferenceRate):
		writeError(w, http.StatusBadRequest, "Rate must be within [0,100]", err)
	case errors.Is(err, roster.ErrUnknownEmployee):
		writeError(w, http.StatusNotFound, "Employee not found", err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to update rate", err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// DefaultConfig returns the canonical engine configuration document.
func (h *Handler) DefaultConfig(w http.ResponseWriter, r *http.Request) {
	doc, err := factory.MarshalConfig(roster.DefaultConfig())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render configuration", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// =============================================================================
// HELPERS
// =============================================================================

func parsePeriod(start, end string) (roster.DateRange, error) {
	s, err := roster.ParseDate(start)
	if err != nil {
		return roster.DateRange{}, err
	}
	e, err := roster.ParseDate(end)
	if err != nil {
		return roster.DateRange{}, err
	}
	return roster.DateRange{Start: s, End: e}, nil
}

func parseHolidays(dates []string) (roster.HolidayCalendar, error) {
	if len(dates) == 0 {
		return calendar.None{}, nil
	}
	holidays := make(map[roster.Date]string, len(dates))
	for _, s := range dates {
		d, err := roster.ParseDate(s)
		if err != nil {
			return nil, err
		}
		holidays[d] = "holiday"
	}
	return calendar.NewFixed(holidays), nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
