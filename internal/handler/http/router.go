package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hrm-backend-go/internal/config"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Leave      LeaveHandler
	Attendance AttendanceHandler
	Payroll    PayrollHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peoplecore-hrm"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
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
			r.Post("/refresh", h.Auth.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.With(middleware.RequirePermission(user.PermissionEmployeeManage)).
				Post("/auth/users", h.Auth.CreateUser)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.GetMe)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeViewAll))
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Get("/{id}/attendance", h.Attendance.History)
					r.Get("/{id}/attendance/summary", h.Attendance.Summary)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionEmployeeManage))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
				})

				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).
					Get("/{id}/leave-balances", h.Leave.GetEmployeeBalances)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionSalaryConfigManage))
					r.Put("/{id}/salary-config", h.Payroll.UpdateSalaryConfig)
					r.Get("/{id}/salary-config/history", h.Payroll.ConfigHistory)
				})

				r.With(middleware.RequirePermission(user.PermissionPayrollViewAll)).
					Get("/{id}/salary-breakdown", h.Payroll.GetBreakdown)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/requests", h.Leave.CreateRequest)
				r.Get("/requests/my", h.Leave.ListMyRequests)
				r.Get("/requests/{id}", h.Leave.GetRequest)
				r.Post("/requests/{id}/cancel", h.Leave.CancelRequest)
				r.Get("/balances/my", h.Leave.GetMyBalances)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveDecide))
					r.Get("/requests/pending", h.Leave.ListPending)
					r.Post("/requests/{id}/approve", h.Leave.ApproveRequest)
					r.Post("/requests/{id}/reject", h.Leave.RejectRequest)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/my", h.Attendance.History)
				r.Get("/my/summary", h.Attendance.Summary)

				r.With(middleware.RequirePermission(user.PermissionAttendanceMark)).
					Post("/mark", h.Attendance.Mark)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my/breakdown", h.Payroll.GetMyBreakdown)
				r.Get("/my/records", h.Payroll.ListMyRecords)
				r.Get("/records/{id}", h.Payroll.GetRecord)
				r.Get("/records/{id}/payslip", h.Payroll.Payslip)

				r.With(middleware.RequirePermission(user.PermissionPayrollRun)).
					Post("/generate", h.Payroll.Generate)
				r.With(middleware.RequirePermission(user.PermissionPayrollViewAll)).
					Get("/records", h.Payroll.ListByPeriod)
				r.With(middleware.RequirePermission(user.PermissionPayrollRun)).
					Post("/records/{id}/pay", h.Payroll.MarkPaid)
			})
		})
	})
	return r
}
