package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/leave"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListMyRequests(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	GetMyBalances(w http.ResponseWriter, r *http.Request)
	GetEmployeeBalances(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.Service
}

func NewLeaveHandler(leaveService leave.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok || claims.EmployeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	var body leave.CreateLeaveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.CreateRequest(r.Context(), claims.EmployeeID, body)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", created)
}

// GetRequest implements LeaveHandler. Employees only see their own
// requests.
func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	request, err := l.leaveService.GetRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !claims.canViewAll(user.PermissionLeaveViewAll) && request.EmployeeID != claims.EmployeeID {
		response.HandleError(w, leave.ErrLeaveRequestNotFound)
		return
	}

	response.Success(w, request)
}

// ListMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok || claims.EmployeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	requests, err := l.leaveService.ListMyRequests(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := l.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ApproveRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, l.leaveService.Approve, "Leave request approved successfully")
}

// RejectRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	l.decide(w, r, l.leaveService.Reject, "Leave request rejected successfully")
}

func (l *LeaveHandlerImpl) decide(
	w http.ResponseWriter,
	r *http.Request,
	decideFn func(ctx context.Context, requestID, approverID string, body leave.DecideLeaveRequestBody) error,
	message string,
) {
	claims, ok := claimsFrom(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var body leave.DecideLeaveRequestBody
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			slog.Error("Decide decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	if err := decideFn(r.Context(), requestID, claims.EmployeeID, body); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, nil)
}

// CancelRequest implements LeaveHandler. Approvers may cancel any
// request; employees only their own.
func (l *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var body leave.CancelLeaveRequestBody
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			slog.Error("CancelRequest decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	callerEmployeeID := claims.EmployeeID
	if claims.canViewAll(user.PermissionLeaveDecide) {
		callerEmployeeID = ""
	}

	if err := l.leaveService.Cancel(r.Context(), requestID, callerEmployeeID, body); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled successfully", nil)
}

// GetMyBalances implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r)
	if !ok || claims.EmployeeID == "" {
		response.Unauthorized(w, "No employee linked to this account")
		return
	}

	l.writeBalances(w, r, claims.EmployeeID)
}

// GetEmployeeBalances implements LeaveHandler.
func (l *LeaveHandlerImpl) GetEmployeeBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	l.writeBalances(w, r, employeeID)
}

func (l *LeaveHandlerImpl) writeBalances(w http.ResponseWriter, r *http.Request, employeeID string) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if year == 0 {
		year = time.Now().Year()
	}

	balances, err := l.leaveService.Balances(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}
