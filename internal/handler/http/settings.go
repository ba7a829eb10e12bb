package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/settings"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	settingsService "github.com/staffhub/staffhub-backend-go/internal/service/settings"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settingsService.SettingsService
}

func NewSettingsHandler(service settingsService.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{settingsService: service}
}

// Get implements SettingsHandler.
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	current, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings.ToResponse(current))
}

// Update implements SettingsHandler.
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settings updated", settings.ToResponse(updated))
}
