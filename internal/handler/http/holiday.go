package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/holiday"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	holidayService "github.com/staffhub/staffhub-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holidayService.HolidayService
}

func NewHolidayHandler(service holidayService.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: service}
}

// List implements HolidayHandler. Query parameters: employee_id, year,
// month (two digits).
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := holiday.ListFilter{
		Year:  r.URL.Query().Get("year"),
		Month: r.URL.Query().Get("month"),
	}
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		filter.EmployeeID = &id
	}

	holidays, err := h.holidayService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, item := range holidays {
		result = append(result, holiday.ToResponse(item))
	}
	response.Success(w, result)
}

// Get implements HolidayHandler.
func (h *holidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid leave request id", nil)
		return
	}

	item, err := h.holidayService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holiday.ToResponse(item))
}

// Create implements HolidayHandler.
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request created", holiday.ToResponse(created))
}

// Update implements HolidayHandler.
func (h *holidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid leave request id", nil)
		return
	}

	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.holidayService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request updated", holiday.ToResponse(updated))
}

// Delete implements HolidayHandler.
func (h *holidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid leave request id", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request deleted", nil)
}

// Summary implements HolidayHandler. Defaults to the current year.
func (h *holidayHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := idParam(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	summary, err := h.holidayService.Summary(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// Calendar implements HolidayHandler. Defaults to the current month.
func (h *holidayHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		month = parsed
	}

	cal, err := h.holidayService.Calendar(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cal)
}
