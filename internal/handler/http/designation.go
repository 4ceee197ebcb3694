package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/designation"
	"github.com/hrpay-io/hrpay-backend-go/internal/handler/http/response"
)

type DesignationHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DesignationHandlerImpl struct {
	designationService designation.DesignationService
}

func NewDesignationHandler(designationService designation.DesignationService) DesignationHandler {
	return &DesignationHandlerImpl{designationService: designationService}
}

// List implements DesignationHandler.
func (h *DesignationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	designations, err := h.designationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, designations)
}

// GetByID implements DesignationHandler.
func (h *DesignationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.designationService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Create implements DesignationHandler.
func (h *DesignationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req designation.CreateDesignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.designationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Designation created successfully", created)
}

// Update implements DesignationHandler.
func (h *DesignationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req designation.UpdateDesignationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.designationService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Designation updated successfully", nil)
}

// Delete implements DesignationHandler.
func (h *DesignationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.designationService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Designation deleted successfully", nil)
}
