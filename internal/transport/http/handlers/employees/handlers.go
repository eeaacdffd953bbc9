package employeehandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"talentnest/internal/domain/audit"
	"talentnest/internal/domain/employee"
	"talentnest/internal/transport/http/api"
	"talentnest/internal/transport/http/middleware"
	"talentnest/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
	Audit   *audit.Service
}

func NewHandler(service *employee.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
		r.Get("/{employeeID}/summary.pdf", h.handleSummaryPDF)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	filter := employee.ListFilter{
		Department:     r.URL.Query().Get("department"),
		EmploymentType: r.URL.Query().Get("employmentType"),
		Status:         r.URL.Query().Get("status"),
		Search:         r.URL.Query().Get("q"),
		Limit:          page.Limit,
		Offset:         page.Offset,
	}
	employees, err := h.Service.Store.List(r.Context(), filter)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.Required("workEmail", payload.WorkEmail, "work email is required")
	if v.Reject(w, requestID) {
		return
	}

	if payload.EmployeeNumber == "" {
		number, err := h.Service.NextEmployeeNumber(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to allocate employee number", requestID)
			return
		}
		payload.EmployeeNumber = number
	}

	id, err := h.Service.Store.Create(r.Context(), payload)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			api.Fail(w, http.StatusConflict, "duplicate_employee", "an employee with this email or number already exists", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "employee.create", "employee", id, requestID, nil); err != nil {
		slog.Warn("audit employee.create failed", "err", err)
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	emp, err := h.Service.Store.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_get_failed", "failed to load employee", requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.Required("workEmail", payload.WorkEmail, "work email is required")
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Service.Store.Update(r.Context(), employeeID, payload); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_update_failed", "failed to update employee", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "employee.update", "employee", employeeID, requestID, nil); err != nil {
		slog.Warn("audit employee.update failed", "err", err)
	}
	api.Success(w, map[string]string{"id": employeeID}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.Service.Store.Delete(r.Context(), employeeID); err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "employee_delete_failed", "failed to delete employee", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "employee.delete", "employee", employeeID, requestID, nil); err != nil {
		slog.Warn("audit employee.delete failed", "err", err)
	}
	api.Success(w, map[string]string{"id": employeeID}, requestID)
}

func (h *Handler) handleSummaryPDF(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	data, err := h.Service.SummaryPDF(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "employee_not_found", "employee not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "summary_pdf_failed", "failed to render summary", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="onboarding-summary-`+employeeID+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
