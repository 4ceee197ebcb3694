package payslip

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")
	// ErrExportFailed wraps rasterization or document-assembly failures. No
	// partial artifact is returned alongside it.
	ErrExportFailed = errors.New("payslip export failed")
)
