package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
	"github.com/hrpay-io/hrpay-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListCycles(w http.ResponseWriter, r *http.Request)
	GetCycle(w http.ResponseWriter, r *http.Request)
	CreateCycle(w http.ResponseWriter, r *http.Request)
	DeleteCycle(w http.ResponseWriter, r *http.Request)
	ListItems(w http.ResponseWriter, r *http.Request)
	CreateItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
	ProcessCycle(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// ListCycles implements PayrollHandler.
func (h *PayrollHandlerImpl) ListCycles(w http.ResponseWriter, r *http.Request) {
	cycles, err := h.payrollService.ListCycles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cycles)
}

// GetCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) GetCycle(w http.ResponseWriter, r *http.Request) {
	cycle, err := h.payrollService.GetCycle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cycle)
}

// CreateCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateCycle(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.CreateCycle(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create payroll cycle", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll cycle created successfully", created)
}

// DeleteCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteCycle(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteCycle(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll cycle deleted successfully", nil)
}

// ListItems implements PayrollHandler.
func (h *PayrollHandlerImpl) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.payrollService.ListItems(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, items)
}

// CreateItem implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CycleID = chi.URLParam(r, "id")

	created, err := h.payrollService.CreateItem(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Payroll item created successfully", created)
}

// DeleteItem implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteItem(r.Context(), chi.URLParam(r, "itemID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll item deleted successfully", nil)
}

// ProcessCycle implements PayrollHandler.
func (h *PayrollHandlerImpl) ProcessCycle(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ProcessCycle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Failed to process payroll cycle", "error", err, "cycle_id", chi.URLParam(r, "id"))
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll cycle processed successfully", result)
}
