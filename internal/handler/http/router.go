package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/config"
	"github.com/hrpay-io/hrpay-backend-go/internal/handler/http/middleware"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/jwt"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth        AuthHandler
	Company     CompanyHandler
	Department  DepartmentHandler
	Designation DesignationHandler
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Holiday     HolidayHandler
	Shift       ShiftHandler
	Salary      SalaryHandler
	Payroll     PayrollHandler
	Payslip     PayslipHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrpay-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.Company.List)
				r.Get("/{id}", h.Company.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Company.Create)
					r.Put("/{id}", h.Company.Update)
					r.Delete("/{id}", h.Company.Delete)
					r.Post("/{id}/logo", h.Company.UploadLogo)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.List)
				r.Get("/{id}", h.Department.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Department.Create)
					r.Put("/{id}", h.Department.Update)
					r.Delete("/{id}", h.Department.Delete)
				})
			})

			r.Route("/designations", func(r chi.Router) {
				r.Get("/", h.Designation.List)
				r.Get("/{id}", h.Designation.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Designation.Create)
					r.Put("/{id}", h.Designation.Update)
					r.Delete("/{id}", h.Designation.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.GetByID)
				r.Get("/{employeeID}/salary-configs/active", h.Salary.GetActive)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Post("/{id}/photo", h.Employee.UploadPhoto)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Get("/{id}", h.Holiday.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Put("/{id}", h.Holiday.Update)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Shift.List)
				r.Get("/{id}", h.Shift.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Shift.Create)
					r.Put("/{id}", h.Shift.Update)
					r.Delete("/{id}", h.Shift.Delete)
				})
			})

			r.Route("/shift-assignments", func(r chi.Router) {
				r.Get("/", h.Shift.ListAssignments)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Shift.Assign)
					r.Put("/{id}/end", h.Shift.EndAssignment)
				})
			})

			// Admin only
			r.Route("/salary-configs", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Salary.ListByEmployee)
				r.Post("/", h.Salary.Create)
				r.Delete("/{id}", h.Salary.Delete)
			})

			// Admin only
			r.Route("/payroll-cycles", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Payroll.ListCycles)
				r.Post("/", h.Payroll.CreateCycle)
				r.Get("/{id}", h.Payroll.GetCycle)
				r.Delete("/{id}", h.Payroll.DeleteCycle)
				r.Get("/{id}/items", h.Payroll.ListItems)
				r.Post("/{id}/items", h.Payroll.CreateItem)
				r.Delete("/{id}/items/{itemID}", h.Payroll.DeleteItem)
				r.Post("/{id}/process", h.Payroll.ProcessCycle)
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", h.Payslip.ListByEmployee)
				r.Get("/{id}", h.Payslip.Get)
				r.Get("/{id}/document", h.Payslip.GetDocument)
				r.Get("/{id}/export/pdf", h.Payslip.ExportPDF)
				r.Get("/{id}/export/print", h.Payslip.ExportPrint)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{id}/issue", h.Payslip.Issue)
				})
			})
		})
	})

	return r
}
