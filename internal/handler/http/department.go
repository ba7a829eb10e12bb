package http

import (
	"encoding/json"
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	departmentService "github.com/staffhub/staffhub-backend-go/internal/service/department"
)

type DepartmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService departmentService.DepartmentService
}

func NewDepartmentHandler(service departmentService.DepartmentService) DepartmentHandler {
	return &departmentHandlerImpl{departmentService: service}
}

// List implements DepartmentHandler.
func (h *departmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		result = append(result, department.ToResponse(d))
	}
	response.Success(w, result)
}

// Get implements DepartmentHandler.
func (h *departmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid department id", nil)
		return
	}

	d, err := h.departmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, department.ToResponse(d))
}

// Create implements DepartmentHandler.
func (h *departmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created", department.ToResponse(created))
}

// Update implements DepartmentHandler.
func (h *departmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid department id", nil)
		return
	}

	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.departmentService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated", department.ToResponse(updated))
}

// Delete implements DepartmentHandler.
func (h *departmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid department id", nil)
		return
	}

	if err := h.departmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted", nil)
}
