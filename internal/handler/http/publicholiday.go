package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/staffhub-backend-go/internal/domain/publicholiday"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	publicHolidayService "github.com/staffhub/staffhub-backend-go/internal/service/publicholiday"
)

type PublicHolidayHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	AddEntry(w http.ResponseWriter, r *http.Request)
	DeleteEntries(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type publicHolidayHandlerImpl struct {
	publicHolidayService publicHolidayService.PublicHolidayService
}

func NewPublicHolidayHandler(service publicHolidayService.PublicHolidayService) PublicHolidayHandler {
	return &publicHolidayHandlerImpl{publicHolidayService: service}
}

// Get implements PublicHolidayHandler.
func (h *publicHolidayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	list, err := h.publicHolidayService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, publicholiday.ToResponse(list))
}

// AddEntry implements PublicHolidayHandler.
func (h *publicHolidayHandlerImpl) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req publicholiday.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	list, err := h.publicHolidayService.AddEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Public holiday added", publicholiday.ToResponse(list))
}

// DeleteEntries implements PublicHolidayHandler. Removes every entry on
// the given date.
func (h *publicHolidayHandlerImpl) DeleteEntries(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if date == "" {
		response.BadRequest(w, "Invalid date", nil)
		return
	}

	list, err := h.publicHolidayService.DeleteEntries(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Public holiday removed", publicholiday.ToResponse(list))
}

// Refresh implements PublicHolidayHandler.
func (h *publicHolidayHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req publicholiday.RefreshRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	list, err := h.publicHolidayService.Refresh(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Public holidays refreshed", publicholiday.ToResponse(list))
}
