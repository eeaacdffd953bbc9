package credentialhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentnest/internal/domain/audit"
	"talentnest/internal/domain/credentials"
	"talentnest/internal/transport/http/api"
	"talentnest/internal/transport/http/middleware"
	"talentnest/internal/transport/http/shared"
)

type Handler struct {
	Service *credentials.Service
	Audit   *audit.Service
}

func NewHandler(service *credentials.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/credentials", func(r chi.Router) {
		r.Post("/otp", h.handleIssue)
		r.Post("/otp/verify", h.handleVerify)
		r.Get("/otp/history", h.handleHistory)
	})
}

func (h *Handler) handleIssue(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload struct {
		Username string `json:"username"`
		IssuedBy string `json:"issuedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("username", payload.Username, "username is required")
	if v.Reject(w, requestID) {
		return
	}

	code, err := h.Service.Issue(r.Context(), payload.Username, payload.IssuedBy)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "otp_issue_failed", "failed to issue one-time password", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), payload.IssuedBy, "credentials.otp.issue", "user", payload.Username, requestID, nil); err != nil {
		slog.Warn("audit credentials.otp.issue failed", "err", err)
	}
	// The clear code is returned exactly once; only its hash is stored.
	api.Created(w, map[string]string{"username": payload.Username, "code": code}, requestID)
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload struct {
		Username string `json:"username"`
		Code     string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("username", payload.Username, "username is required")
	v.Required("code", payload.Code, "code is required")
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Service.Verify(r.Context(), payload.Username, payload.Code); err != nil {
		switch {
		case errors.Is(err, credentials.ErrNoActiveCode):
			api.Fail(w, http.StatusNotFound, "otp_not_found", "no active one-time password for this user", requestID)
		case errors.Is(err, credentials.ErrCodeExpired):
			api.Fail(w, http.StatusGone, "otp_expired", "one-time password has expired", requestID)
		case errors.Is(err, credentials.ErrCodeMismatch):
			api.Fail(w, http.StatusUnauthorized, "otp_mismatch", "one-time password does not match", requestID)
		default:
			api.Fail(w, http.StatusInternalServerError, "otp_verify_failed", "failed to verify one-time password", requestID)
		}
		return
	}

	if err := h.Audit.Record(r.Context(), payload.Username, "credentials.otp.verify", "user", payload.Username, requestID, nil); err != nil {
		slog.Warn("audit credentials.otp.verify failed", "err", err)
	}
	api.Success(w, map[string]string{"username": payload.Username, "status": "verified"}, requestID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	username := r.URL.Query().Get("username")
	if username == "" {
		api.Fail(w, http.StatusBadRequest, "missing_username", "username query parameter is required", requestID)
		return
	}

	page := shared.ParsePagination(r, 20, 100)
	records, err := h.Service.History(r.Context(), username, page.Limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "otp_history_failed", "failed to load one-time password history", requestID)
		return
	}
	api.Success(w, records, requestID)
}
