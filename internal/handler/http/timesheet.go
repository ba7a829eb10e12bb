package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/timesheet"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	timesheetService "github.com/staffhub/staffhub-backend-go/internal/service/timesheet"
)

type TimesheetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	CreateEntry(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheetService.TimesheetService
}

func NewTimesheetHandler(service timesheetService.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: service}
}

// List implements TimesheetHandler. Query parameters: employee_id, date
// (YYYY-MM-DD).
func (h *timesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter timesheet.ListFilter
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			response.BadRequest(w, "Date must be YYYY-MM-DD", nil)
			return
		}
		filter.Date = &date
	}
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		filter.EmployeeID = &id
	}

	entries, err := h.timesheetService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]timesheet.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, timesheet.ToResponse(entry))
	}
	response.Success(w, result)
}

// ClockIn implements TimesheetHandler.
func (h *timesheetHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ClockInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	entry, err := h.timesheetService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Clocked in", timesheet.ToResponse(entry))
}

// ClockOut implements TimesheetHandler.
func (h *timesheetHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timesheet.ClockOutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	entry, err := h.timesheetService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Clocked out", timesheet.ToResponse(entry))
}

// CreateEntry implements TimesheetHandler.
func (h *timesheetHandlerImpl) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req timesheet.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entry, err := h.timesheetService.CreateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Time entry created", timesheet.ToResponse(entry))
}

// Delete implements TimesheetHandler.
func (h *timesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid time entry id", nil)
		return
	}

	if err := h.timesheetService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Time entry deleted", nil)
}
