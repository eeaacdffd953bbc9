package documenthandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentnest/internal/domain/audit"
	"talentnest/internal/domain/documents"
	"talentnest/internal/transport/http/api"
	"talentnest/internal/transport/http/middleware"
	"talentnest/internal/transport/http/shared"
)

type Handler struct {
	Store *documents.Store
	Audit *audit.Service
}

func NewHandler(store *documents.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{documentID}", h.handleGet)
		r.Delete("/{documentID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		api.Fail(w, http.StatusBadRequest, "missing_owner", "ownerId query parameter is required", requestID)
		return
	}

	page := shared.ParsePagination(r, 50, 200)
	docs, err := h.Store.ListByOwner(r.Context(), ownerID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_list_failed", "failed to list documents", requestID)
		return
	}
	api.Success(w, docs, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload documents.Document
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("ownerId", payload.OwnerID, "owner id is required")
	v.Required("fileName", payload.FileName, "file name is required")
	if payload.SizeBytes < 0 {
		v.Add("sizeBytes", "size cannot be negative")
	}
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Store.Create(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "document_create_failed", "failed to create document", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), payload.UploadedBy, "document.create", "document", id, requestID, nil); err != nil {
		slog.Warn("audit document.create failed", "err", err)
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	doc, err := h.Store.Get(r.Context(), chi.URLParam(r, "documentID"))
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "document_not_found", "document not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_get_failed", "failed to load document", requestID)
		return
	}
	api.Success(w, doc, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	documentID := chi.URLParam(r, "documentID")

	if err := h.Store.Delete(r.Context(), documentID); err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "document_not_found", "document not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "document_delete_failed", "failed to delete document", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "document.delete", "document", documentID, requestID, nil); err != nil {
		slog.Warn("audit document.delete failed", "err", err)
	}
	api.Success(w, map[string]string{"id": documentID}, requestID)
}
