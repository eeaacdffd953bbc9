package audithandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentnest/internal/domain/audit"
	"talentnest/internal/transport/http/api"
	"talentnest/internal/transport/http/middleware"
	"talentnest/internal/transport/http/shared"
)

type Handler struct {
	Audit *audit.Service
}

func NewHandler(auditSvc *audit.Service) *Handler {
	return &Handler{Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/audit", h.handleRecent)
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 500)

	events, err := h.Audit.Recent(r.Context(), page.Limit)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "audit_list_failed", "failed to list audit events", requestID)
		return
	}
	api.Success(w, events, requestID)
}
