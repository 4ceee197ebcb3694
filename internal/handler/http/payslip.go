package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payslip"
	"github.com/hrpay-io/hrpay-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	GetDocument(w http.ResponseWriter, r *http.Request)
	Issue(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
	ExportPrint(w http.ResponseWriter, r *http.Request)
}

type PayslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &PayslipHandlerImpl{payslipService: payslipService}
}

// Get implements PayslipHandler.
func (h *PayslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.payslipService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// ListByEmployee implements PayslipHandler.
func (h *PayslipHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "Query parameter 'employee_id' is required", nil)
		return
	}

	payslips, err := h.payslipService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payslips)
}

// GetDocument implements PayslipHandler. Returns the fully resolved
// display document used by export and print.
func (h *PayslipHandlerImpl) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.payslipService.GetDocument(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, doc)
}

// Issue implements PayslipHandler.
func (h *PayslipHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	if err := h.payslipService.Issue(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payslip issued successfully", nil)
}

// ExportPDF implements PayslipHandler.
func (h *PayslipHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.payslipService.ExportPDF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Payslip PDF export failed", "error", err, "payslip_id", chi.URLParam(r, "id"))
		response.HandleError(w, err)
		return
	}
	response.Attachment(w, artifact.Filename, artifact.ContentType, artifact.Content)
}

// ExportPrint implements PayslipHandler. The optional theme query
// parameter selects the rendered background; anything other than
// "dark" falls back to light.
func (h *PayslipHandlerImpl) ExportPrint(w http.ResponseWriter, r *http.Request) {
	theme := payslip.ThemeLight
	if r.URL.Query().Get("theme") == string(payslip.ThemeDark) {
		theme = payslip.ThemeDark
	}

	artifact, err := h.payslipService.ExportPrint(r.Context(), chi.URLParam(r, "id"), theme)
	if err != nil {
		slog.Error("Payslip print export failed", "error", err, "payslip_id", chi.URLParam(r, "id"))
		response.HandleError(w, err)
		return
	}
	response.Inline(w, artifact.ContentType, artifact.Content)
}
