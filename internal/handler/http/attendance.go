package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Mark(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	a.clock(w, r, a.attendanceService.CheckIn, "Checked in successfully")
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	a.clock(w, r, a.attendanceService.CheckOut, "Checked out successfully")
}

func (a *AttendanceHandlerImpl) clock(
	w http.ResponseWriter,
	r *http.Request,
	clockFn func(ctx context.Context, employeeID string, body attendance.ClockBody) (attendance.DayRecordResponse, error),
	message string,
) {
	claims, ok := claimsFrom(r)
	if !ok || claims.EmployeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	var body attendance.ClockBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Clock decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := clockFn(r.Context(), claims.EmployeeID, body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, record)
}

// Today implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok || claims.EmployeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	record, err := a.attendanceService.Today(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// History implements AttendanceHandler. Without attendance.view_all the
// caller is pinned to their own records regardless of the query param.
func (a *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID := a.targetEmployee(r, claims)
	if employeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	records, err := a.attendanceService.History(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Summary implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID := a.targetEmployee(r, claims)
	if employeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	now := time.Now()
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	if month < 1 || month > 12 {
		response.BadRequest(w, "Month must be between 1 and 12", nil)
		return
	}

	summary, err := a.attendanceService.Summary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Mark implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var body attendance.MarkBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("Mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.Mark(r.Context(), body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked successfully", record)
}

func (a *AttendanceHandlerImpl) targetEmployee(r *http.Request, claims requestClaims) string {
	requested := chi.URLParam(r, "id")
	if requested != "" && claims.canViewAll(user.PermissionAttendanceViewAll) {
		return requested
	}
	return claims.EmployeeID
}

// parseRange reads from/to query params, defaulting to the last 30
// days.
func parseRange(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("Invalid from date, expected YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("Invalid to date, expected YYYY-MM-DD")
		}
		to = parsed
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("From date must not be after to date")
	}
	return from, to, nil
}
