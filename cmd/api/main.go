package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrpay-io/hrpay-backend-go/internal/config"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/attendance"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/auth"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/company"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/department"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/designation"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/employee"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/holiday"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payslip"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/salary"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/shift"
	appHTTP "github.com/hrpay-io/hrpay-backend-go/internal/handler/http"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/cron"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/database"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/email"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/jwt"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/oauth"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/storage"
	"github.com/hrpay-io/hrpay-backend-go/internal/repository/postgresql"
)

const staleSessionHours = 16

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	salaryConfigRepo := postgresql.NewSalaryConfigRepository(db)
	payrollCycleRepo := postgresql.NewPayrollCycleRepository(db)
	payrollItemRepo := postgresql.NewPayrollItemRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	logger := slog.Default()

	authService := auth.NewAuthService(userRepo, jwtService, refreshTokenRepo)
	companyService := company.NewCompanyService(companyRepo, fileStorage)
	departmentService := department.NewDepartmentService(departmentRepo)
	designationService := designation.NewDesignationService(designationRepo)
	employeeService := employee.NewEmployeeService(employeeRepo, fileStorage)
	attendanceService := attendance.NewAttendanceService(attendanceRepo, employeeRepo)
	holidayService := holiday.NewHolidayService(holidayRepo)
	shiftService := shift.NewShiftService(shiftRepo, shiftAssignmentRepo)
	salaryService := salary.NewSalaryService(salaryConfigRepo)
	payrollService := payroll.NewPayrollService(
		payrollCycleRepo,
		payrollItemRepo,
		employeeRepo,
		salaryConfigRepo,
		companyRepo,
		payslipRepo,
		emailService,
		logger,
	)
	payslipService := payslip.NewPayslipService(
		payslipRepo,
		employeeRepo,
		companyRepo,
		payrollCycleRepo,
		payrollItemRepo,
		salaryConfigRepo,
		logger,
	)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authService, jwtService, googleService),
		Company:     appHTTP.NewCompanyHandler(companyService),
		Department:  appHTTP.NewDepartmentHandler(departmentService),
		Designation: appHTTP.NewDesignationHandler(designationService),
		Employee:    appHTTP.NewEmployeeHandler(employeeService),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceService),
		Holiday:     appHTTP.NewHolidayHandler(holidayService),
		Shift:       appHTTP.NewShiftHandler(shiftService),
		Salary:      appHTTP.NewSalaryHandler(salaryService),
		Payroll:     appHTTP.NewPayrollHandler(payrollService),
		Payslip:     appHTTP.NewPayslipHandler(payslipService),
	})

	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("attendance-auto-close", time.Hour, func(ctx context.Context) error {
		_, err := attendanceService.AutoCloseStaleSessions(ctx, staleSessionHours)
		return err
	})
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
