package leavehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"talentnest/internal/domain/audit"
	"talentnest/internal/domain/leave"
	"talentnest/internal/transport/http/api"
	"talentnest/internal/transport/http/middleware"
	"talentnest/internal/transport/http/shared"
)

type Handler struct {
	Store *leave.Store
	Audit *audit.Service
}

func NewHandler(store *leave.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.Get("/types", h.handleListTypes)
		r.Post("/types", h.handleCreateType)
		r.Delete("/types/{typeID}", h.handleDeleteType)

		r.Get("/requests", h.handleListRequests)
		r.Post("/requests", h.handleCreateRequest)
		r.Get("/requests/{requestID}", h.handleGetRequest)
		r.Post("/requests/{requestID}/approve", h.transitionHandler(leave.StatusApproved, "leave.approve"))
		r.Post("/requests/{requestID}/reject", h.transitionHandler(leave.StatusRejected, "leave.reject"))
		r.Post("/requests/{requestID}/cancel", h.transitionHandler(leave.StatusCancelled, "leave.cancel"))

		r.Get("/calendar", h.handleCalendar)
	})
}

func (h *Handler) handleListTypes(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	types, err := h.Store.ListTypes(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_type_list_failed", "failed to list leave types", requestID)
		return
	}
	api.Success(w, types, requestID)
}

func (h *Handler) handleCreateType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload leave.LeaveType
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "leave type name is required")
	v.Required("code", payload.Code, "leave type code is required")
	if payload.MaxDays < 0 {
		v.Add("maxDays", "max days cannot be negative")
	}
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Store.CreateType(r.Context(), payload)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			api.Fail(w, http.StatusConflict, "duplicate_leave_type", "a leave type with this code already exists", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_type_create_failed", "failed to create leave type", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "leave.type.create", "leaveType", id, requestID, nil); err != nil {
		slog.Warn("audit leave.type.create failed", "err", err)
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleDeleteType(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	typeID := chi.URLParam(r, "typeID")

	if err := h.Store.DeleteType(r.Context(), typeID); err != nil {
		if errors.Is(err, leave.ErrTypeNotFound) {
			api.Fail(w, http.StatusNotFound, "leave_type_not_found", "leave type not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_type_delete_failed", "failed to delete leave type", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "leave.type.delete", "leaveType", typeID, requestID, nil); err != nil {
		slog.Warn("audit leave.type.delete failed", "err", err)
	}
	api.Success(w, map[string]string{"id": typeID}, requestID)
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	requests, err := h.Store.ListRequests(r.Context(), leave.RequestFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		Status:     r.URL.Query().Get("status"),
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_request_list_failed", "failed to list leave requests", requestID)
		return
	}
	api.Success(w, requests, requestID)
}

type createRequestPayload struct {
	EmployeeID  string `json:"employeeId"`
	LeaveTypeID string `json:"leaveTypeId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartHalf   bool   `json:"startHalf"`
	EndHalf     bool   `json:"endHalf"`
	Reason      string `json:"reason"`
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload createRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("leaveTypeId", payload.LeaveTypeID, "leave type id is required")
	start, startOK := v.Date("startDate", payload.StartDate)
	end, endOK := v.Date("endDate", payload.EndDate)
	if startOK && endOK {
		v.DateOrder("startDate", start, "endDate", end)
	}
	if v.Reject(w, requestID) {
		return
	}

	if _, err := h.Store.GetType(r.Context(), payload.LeaveTypeID); err != nil {
		if errors.Is(err, leave.ErrTypeNotFound) {
			api.Fail(w, http.StatusBadRequest, "leave_type_not_found", "leave type not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_request_create_failed", "failed to create leave request", requestID)
		return
	}

	days, err := leave.CalculateRequestDays(start, end, payload.StartHalf, payload.EndHalf)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date_range", err.Error(), requestID)
		return
	}

	id, err := h.Store.CreateRequest(r.Context(), leave.LeaveRequest{
		EmployeeID:  payload.EmployeeID,
		LeaveTypeID: payload.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		StartHalf:   payload.StartHalf,
		EndHalf:     payload.EndHalf,
		Days:        days,
		Reason:      payload.Reason,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "leave_request_create_failed", "failed to create leave request", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), payload.EmployeeID, "leave.request.create", "leaveRequest", id, requestID, nil); err != nil {
		slog.Warn("audit leave.request.create failed", "err", err)
	}
	api.Created(w, map[string]any{"id": id, "days": days}, requestID)
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	req, err := h.Store.GetRequest(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		if errors.Is(err, leave.ErrRequestNotFound) {
			api.Fail(w, http.StatusNotFound, "leave_request_not_found", "leave request not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "leave_request_get_failed", "failed to load leave request", requestID)
		return
	}
	api.Success(w, req, requestID)
}

func (h *Handler) transitionHandler(status, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetRequestID(r.Context())
		leaveRequestID := chi.URLParam(r, "requestID")

		var payload struct {
			DecidedBy string `json:"decidedBy"`
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&payload)
		}

		if err := h.Store.Transition(r.Context(), leaveRequestID, status, payload.DecidedBy); err != nil {
			switch {
			case errors.Is(err, leave.ErrRequestNotFound):
				api.Fail(w, http.StatusNotFound, "leave_request_not_found", "leave request not found", requestID)
			case errors.Is(err, leave.ErrInvalidState):
				api.Fail(w, http.StatusConflict, "leave_request_decided", "leave request is no longer pending", requestID)
			default:
				api.Fail(w, http.StatusInternalServerError, "leave_request_transition_failed", "failed to update leave request", requestID)
			}
			return
		}

		if err := h.Audit.Record(r.Context(), payload.DecidedBy, action, "leaveRequest", leaveRequestID, requestID, nil); err != nil {
			slog.Warn("audit leave transition failed", "action", action, "err", err)
		}
		api.Success(w, map[string]string{"id": leaveRequestID, "status": status}, requestID)
	}
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	now := time.Now()
	year := now.Year()
	month := now.Month()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1970 || parsed > 2200 {
			api.Fail(w, http.StatusBadRequest, "invalid_year", "year must be a valid calendar year", requestID)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			api.Fail(w, http.StatusBadRequest, "invalid_month", "month must be between 1 and 12", requestID)
			return
		}
		month = time.Month(parsed)
	}

	api.Success(w, map[string]any{
		"year":  year,
		"month": int(month),
		"days":  leave.MonthDays(year, month),
	}, requestID)
}
