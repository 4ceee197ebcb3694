package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payslip"
)

// stubPayslipService returns canned values so handler behavior can be
// tested without a database.
type stubPayslipService struct {
	payslip    payslip.PayslipResponse
	artifact   payslip.Artifact
	err        error
	issuedID   string
	themeGiven payslip.Theme
}

func (s *stubPayslipService) Get(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	return s.payslip, s.err
}

func (s *stubPayslipService) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []payslip.PayslipResponse{s.payslip}, nil
}

func (s *stubPayslipService) GetDocument(ctx context.Context, id string) (payslip.DocumentResponse, error) {
	return payslip.DocumentResponse{}, s.err
}

func (s *stubPayslipService) Issue(ctx context.Context, id string) error {
	s.issuedID = id
	return s.err
}

func (s *stubPayslipService) ExportPDF(ctx context.Context, id string) (payslip.Artifact, error) {
	return s.artifact, s.err
}

func (s *stubPayslipService) ExportPrint(ctx context.Context, id string, theme payslip.Theme) (payslip.Artifact, error) {
	s.themeGiven = theme
	return s.artifact, s.err
}

func newPayslipTestRouter(svc payslip.PayslipService) *chi.Mux {
	handler := NewPayslipHandler(svc)
	r := chi.NewRouter()
	r.Get("/payslips", handler.ListByEmployee)
	r.Get("/payslips/{id}", handler.Get)
	r.Get("/payslips/{id}/export/pdf", handler.ExportPDF)
	r.Get("/payslips/{id}/export/print", handler.ExportPrint)
	r.Post("/payslips/{id}/issue", handler.Issue)
	return r
}

func TestPayslipGetNotFound(t *testing.T) {
	router := newPayslipTestRouter(&stubPayslipService{err: payslip.ErrPayslipNotFound})

	req := httptest.NewRequest(http.MethodGet, "/payslips/missing-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestPayslipGetSuccess(t *testing.T) {
	router := newPayslipTestRouter(&stubPayslipService{
		payslip: payslip.PayslipResponse{ID: "slip-1", Status: "draft"},
	})

	req := httptest.NewRequest(http.MethodGet, "/payslips/slip-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "slip-1", body.Data.ID)
}

func TestPayslipListRequiresEmployeeID(t *testing.T) {
	router := newPayslipTestRouter(&stubPayslipService{})

	req := httptest.NewRequest(http.MethodGet, "/payslips", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPayslipExportPDFSetsAttachmentHeaders(t *testing.T) {
	router := newPayslipTestRouter(&stubPayslipService{
		artifact: payslip.Artifact{
			Filename:    "EMP-001_DelaCruz_Juan.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4"),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/payslips/slip-1/export/pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "EMP-001_DelaCruz_Juan.pdf")
	assert.Equal(t, "%PDF-1.4", rec.Body.String())
}

func TestPayslipExportPrintThemeParsing(t *testing.T) {
	svc := &stubPayslipService{
		artifact: payslip.Artifact{ContentType: "text/html; charset=utf-8", Content: []byte("<html>")},
	}
	router := newPayslipTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/payslips/slip-1/export/print?theme=dark", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payslip.ThemeDark, svc.themeGiven)

	// Unknown themes fall back to light.
	req = httptest.NewRequest(http.MethodGet, "/payslips/slip-1/export/print?theme=sepia", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payslip.ThemeLight, svc.themeGiven)
}
