package identityhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"talentnest/internal/domain/audit"
	"talentnest/internal/domain/identity"
	"talentnest/internal/transport/http/api"
	"talentnest/internal/transport/http/middleware"
	"talentnest/internal/transport/http/shared"
)

type Handler struct {
	Store *identity.Store
	Audit *audit.Service
}

func NewHandler(store *identity.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.handleListUsers)
		r.Post("/", h.handleCreateUser)
		r.Get("/{userID}", h.handleGetUser)
		r.Put("/{userID}/status", h.handleUpdateStatus)
		r.Delete("/{userID}", h.handleDeleteUser)
	})
	r.Route("/roles", func(r chi.Router) {
		r.Get("/", h.handleListRoles)
		r.Post("/", h.handleCreateRole)
		r.Put("/{roleID}/permissions", h.handleUpdatePermissions)
	})
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	page := shared.ParsePagination(r, 50, 200)
	users, err := h.Store.ListUsers(r.Context(), identity.UserFilter{
		Role:   r.URL.Query().Get("role"),
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "user_list_failed", "failed to list users", requestID)
		return
	}
	api.Success(w, users, requestID)
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload identity.User
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("email", payload.Email, "email is required")
	v.Required("role", payload.Role, "role is required")
	if payload.Status != "" {
		v.Enum("status", payload.Status,
			[]string{identity.StatusActive, identity.StatusInactive, identity.StatusPending},
			"status must be active, inactive or pending")
	}
	if v.Reject(w, requestID) {
		return
	}
	if payload.Status == "" {
		payload.Status = identity.StatusPending
	}

	id, err := h.Store.CreateUser(r.Context(), payload)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			api.Fail(w, http.StatusConflict, "duplicate_user", "a user with this email already exists", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "user_create_failed", "failed to create user", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "user.create", "user", id, requestID, nil); err != nil {
		slog.Warn("audit user.create failed", "err", err)
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, err := h.Store.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "user_get_failed", "failed to load user", requestID)
		return
	}
	api.Success(w, user, requestID)
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	userID := chi.URLParam(r, "userID")

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Enum("status", payload.Status,
		[]string{identity.StatusActive, identity.StatusInactive, identity.StatusPending},
		"status must be active, inactive or pending")
	if v.Reject(w, requestID) {
		return
	}

	if err := h.Store.UpdateUser(r.Context(), userID, bson.M{"status": payload.Status}); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "user_update_failed", "failed to update user", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "user.status", "user", userID, requestID, map[string]string{"status": payload.Status}); err != nil {
		slog.Warn("audit user.status failed", "err", err)
	}
	api.Success(w, map[string]string{"id": userID, "status": payload.Status}, requestID)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	userID := chi.URLParam(r, "userID")

	if err := h.Store.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			api.Fail(w, http.StatusNotFound, "user_not_found", "user not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "user_delete_failed", "failed to delete user", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "user.delete", "user", userID, requestID, nil); err != nil {
		slog.Warn("audit user.delete failed", "err", err)
	}
	api.Success(w, map[string]string{"id": userID}, requestID)
}

func (h *Handler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	roles, err := h.Store.ListRoles(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "role_list_failed", "failed to list roles", requestID)
		return
	}
	api.Success(w, roles, requestID)
}

func (h *Handler) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload identity.Role
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	v.Required("name", payload.Name, "role name is required")
	if v.Reject(w, requestID) {
		return
	}

	id, err := h.Store.CreateRole(r.Context(), payload)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			api.Fail(w, http.StatusConflict, "duplicate_role", "a role with this name already exists", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "role_create_failed", "failed to create role", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "role.create", "role", id, requestID, nil); err != nil {
		slog.Warn("audit role.create failed", "err", err)
	}
	api.Created(w, map[string]string{"id": id}, requestID)
}

func (h *Handler) handleUpdatePermissions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	roleID := chi.URLParam(r, "roleID")

	var payload struct {
		Permissions []string `json:"permissions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if payload.Permissions == nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "permissions list is required", requestID)
		return
	}

	if err := h.Store.UpdateRolePermissions(r.Context(), roleID, payload.Permissions); err != nil {
		if errors.Is(err, identity.ErrRoleNotFound) {
			api.Fail(w, http.StatusNotFound, "role_not_found", "role not found", requestID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "role_update_failed", "failed to update role permissions", requestID)
		return
	}

	if err := h.Audit.Record(r.Context(), "", "role.permissions", "role", roleID, requestID, payload.Permissions); err != nil {
		slog.Warn("audit role.permissions failed", "err", err)
	}
	api.Success(w, map[string]string{"id": roleID}, requestID)
}
