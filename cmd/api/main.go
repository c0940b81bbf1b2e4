package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	appHTTP "github.com/peoplecore/hrm-backend-go/internal/handler/http"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/cron"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/email"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peoplecore/hrm-backend-go/internal/service/attendance"
	authService "github.com/peoplecore/hrm-backend-go/internal/service/auth"
	employeeService "github.com/peoplecore/hrm-backend-go/internal/service/employee"
	leaveService "github.com/peoplecore/hrm-backend-go/internal/service/leave"
	payrollService "github.com/peoplecore/hrm-backend-go/internal/service/payroll"
)

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
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryConfigRepo := postgresql.NewSalaryConfigRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	notifier, err := email.NewNotifier(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email notifier:", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	leaveSvc := leaveService.NewLeaveService(db, leaveBalanceRepo, leaveRequestRepo, employeeRepo, notifier)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, notifier)
	payrollSvc := payrollService.NewPayrollService(salaryConfigRepo, payrollRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, leaveSvc, payrollSvc, notifier)

	scheduler := cron.NewScheduler()
	cron.NewScanJobs(attendanceSvc, employeeSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
