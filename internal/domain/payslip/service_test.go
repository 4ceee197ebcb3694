package payslip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/company"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/employee"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/salary"
)

var errNotStubbed = errors.New("not stubbed")

type stubPayslipRepo struct {
	slip Payslip
}

func (r *stubPayslipRepo) GetByID(_ context.Context, _ string) (Payslip, error) {
	return r.slip, nil
}

func (r *stubPayslipRepo) ListByEmployee(_ context.Context, _ string) ([]Payslip, error) {
	return nil, errNotStubbed
}

func (r *stubPayslipRepo) ListByCycle(_ context.Context, _ string) ([]Payslip, error) {
	return nil, errNotStubbed
}

func (r *stubPayslipRepo) Issue(_ context.Context, _ string) error { return errNotStubbed }

type stubEmployeeRepo struct {
	emp employee.Employee
}

func (r *stubEmployeeRepo) List(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, errNotStubbed
}

func (r *stubEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, errNotStubbed
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return r.emp, nil
}

func (r *stubEmployeeRepo) GetByCode(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, errNotStubbed
}

func (r *stubEmployeeRepo) Create(_ context.Context, _ employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, errNotStubbed
}

func (r *stubEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return errNotStubbed
}

func (r *stubEmployeeRepo) UpdatePhotoURL(_ context.Context, _ string, _ string) error {
	return errNotStubbed
}

func (r *stubEmployeeRepo) Delete(_ context.Context, _ string) error { return errNotStubbed }

type stubCompanyRepo struct {
	companies []company.Company
	err       error
}

func (r *stubCompanyRepo) List(_ context.Context) ([]company.Company, error) {
	return r.companies, r.err
}

func (r *stubCompanyRepo) GetByID(_ context.Context, _ string) (company.Company, error) {
	return company.Company{}, errNotStubbed
}

func (r *stubCompanyRepo) Create(_ context.Context, _ company.Company) (company.Company, error) {
	return company.Company{}, errNotStubbed
}

func (r *stubCompanyRepo) Update(_ context.Context, _ company.UpdateCompanyRequest) error {
	return errNotStubbed
}

func (r *stubCompanyRepo) UpdateLogoURL(_ context.Context, _ string, _ string) error {
	return errNotStubbed
}

func (r *stubCompanyRepo) Delete(_ context.Context, _ string) error { return errNotStubbed }

type stubCycleRepo struct {
	cycle payroll.Cycle
}

func (r *stubCycleRepo) List(_ context.Context) ([]payroll.Cycle, error) {
	return nil, errNotStubbed
}

func (r *stubCycleRepo) GetByID(_ context.Context, _ string) (payroll.Cycle, error) {
	return r.cycle, nil
}

func (r *stubCycleRepo) FindOverlapping(_ context.Context, _, _ time.Time) ([]payroll.Cycle, error) {
	return nil, errNotStubbed
}

func (r *stubCycleRepo) Create(_ context.Context, _ payroll.Cycle) (payroll.Cycle, error) {
	return payroll.Cycle{}, errNotStubbed
}

func (r *stubCycleRepo) UpdateStatus(_ context.Context, _ string, _ payroll.CycleStatus) error {
	return errNotStubbed
}

func (r *stubCycleRepo) Delete(_ context.Context, _ string) error { return errNotStubbed }

type stubItemRepo struct {
	items []payroll.Item
}

func (r *stubItemRepo) ListByCycle(_ context.Context, _ string) ([]payroll.Item, error) {
	return r.items, nil
}

func (r *stubItemRepo) GetByID(_ context.Context, _ string) (payroll.Item, error) {
	return payroll.Item{}, errNotStubbed
}

func (r *stubItemRepo) Create(_ context.Context, _ payroll.Item) (payroll.Item, error) {
	return payroll.Item{}, errNotStubbed
}

func (r *stubItemRepo) Delete(_ context.Context, _ string) error { return errNotStubbed }

type stubSalaryRepo struct {
	config salary.SalaryConfig
	err    error
}

func (r *stubSalaryRepo) ListByEmployee(_ context.Context, _ string) ([]salary.SalaryConfig, error) {
	return nil, errNotStubbed
}

func (r *stubSalaryRepo) GetByID(_ context.Context, _ string) (salary.SalaryConfig, error) {
	return salary.SalaryConfig{}, errNotStubbed
}

func (r *stubSalaryRepo) GetActiveByEmployee(_ context.Context, _ string, _ time.Time) (salary.SalaryConfig, error) {
	return r.config, r.err
}

func (r *stubSalaryRepo) Create(_ context.Context, _ salary.SalaryConfig) (salary.SalaryConfig, error) {
	return salary.SalaryConfig{}, errNotStubbed
}

func (r *stubSalaryRepo) Delete(_ context.Context, _ string) error { return errNotStubbed }

func newDocumentTestService(companyRepo company.CompanyRepository) PayslipService {
	in := testDocumentInput()
	return NewPayslipService(
		&stubPayslipRepo{slip: in.Payslip},
		&stubEmployeeRepo{emp: in.Employee},
		companyRepo,
		&stubCycleRepo{cycle: in.Cycle},
		&stubItemRepo{items: in.Items},
		&stubSalaryRepo{err: salary.ErrNoActiveSalaryConfig},
		nil,
	)
}

func TestGetDocumentCompanyLookupFails(t *testing.T) {
	// A transient database failure must surface as an error, not render a
	// document with the company section quietly missing.
	dbErr := errors.New("connection refused")
	service := newDocumentTestService(&stubCompanyRepo{err: dbErr})

	_, err := service.GetDocument(context.Background(), "slip-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestGetDocumentNoCompanyOnRecord(t *testing.T) {
	service := newDocumentTestService(&stubCompanyRepo{})

	doc, err := service.GetDocument(context.Background(), "slip-1")

	require.NoError(t, err)
	assert.Equal(t, "N/A", doc.CompanyName)
	assert.Equal(t, "Juan Dela Cruz", doc.EmployeeName)
}

func TestExportPDFCompanyLookupFails(t *testing.T) {
	service := newDocumentTestService(&stubCompanyRepo{err: errors.New("connection refused")})

	_, err := service.ExportPDF(context.Background(), "slip-1")

	assert.Error(t, err)
}
