package onboardinghandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"

	"talentnest/internal/domain/audit"
	"talentnest/internal/domain/employee"
	"talentnest/internal/domain/identity"
	"talentnest/internal/domain/onboarding"
	"talentnest/internal/transport/http/api"
	"talentnest/internal/transport/http/middleware"
	"talentnest/internal/transport/http/shared"
)

type Handler struct {
	Employees *employee.Service
	Identity  *identity.Store
	Audit     *audit.Service
}

func NewHandler(employees *employee.Service, identityStore *identity.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Employees: employees, Identity: identityStore, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/onboarding", func(r chi.Router) {
		r.Get("/steps", h.handleListSteps)
		r.Post("/submissions", h.handleSubmit)
	})
}

type stepInfo struct {
	Order int    `json:"order"`
	Name  string `json:"name"`
}

func (h *Handler) handleListSteps(w http.ResponseWriter, r *http.Request) {
	steps := make([]stepInfo, 0, int(onboarding.LastStep))
	for step := onboarding.FirstStep; step <= onboarding.LastStep; step++ {
		steps = append(steps, stepInfo{Order: int(step), Name: step.String()})
	}
	api.Success(w, steps, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload onboarding.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.Required("workEmail", payload.WorkEmail, "work email is required")
	v.Required("nationalId", payload.NationalID, "national id is required")
	v.Required("department", payload.Department, "department is required")
	v.Required("position", payload.Position, "position is required")
	v.Enum("employmentType", payload.EmploymentType, []string{
		onboarding.EmploymentFullTime, onboarding.EmploymentPartTime,
		onboarding.EmploymentContract, onboarding.EmploymentIntern,
	}, "unknown employment type")
	v.Positive("salaryAmount", payload.SalaryAmount, "salary must be greater than zero")
	v.Required("hireDate", payload.HireDate, "hire date is required")
	if payload.HireDate != "" {
		v.Date("hireDate", payload.HireDate)
	}
	switch payload.EmploymentType {
	case onboarding.EmploymentContract, onboarding.EmploymentIntern:
		v.Required("terminationDate", payload.TerminationDate, "termination date is required for contract and intern employment")
	}
	if v.Reject(w, requestID) {
		return
	}

	emp := employee.FromPayload(payload)
	if strings.TrimSpace(emp.EmployeeNumber) == "" {
		number, err := h.Employees.NextEmployeeNumber(r.Context())
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "submission_failed", "failed to allocate employee number", requestID)
			return
		}
		emp.EmployeeNumber = number
	}

	id, err := h.Employees.Store.Create(r.Context(), emp)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			api.Fail(w, http.StatusConflict, "duplicate_employee", "an employee with this email or number already exists", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "submission_failed", "failed to create employee record", requestID)
		return
	}

	if _, err := h.Identity.CreateUser(r.Context(), identity.User{
		Email:      payload.WorkEmail,
		Role:       "Employee",
		EmployeeID: id,
		Status:     identity.StatusPending,
	}); err != nil && !mongo.IsDuplicateKeyError(err) {
		slog.Warn("user record creation failed after submission", "employeeId", id, "err", err)
	}

	if err := h.Audit.Record(r.Context(), "", "onboarding.submit", "employee", id, requestID, map[string]string{"workEmail": payload.WorkEmail}); err != nil {
		slog.Warn("audit onboarding.submit failed", "err", err)
	}

	api.Created(w, map[string]string{"id": id}, requestID)
}
