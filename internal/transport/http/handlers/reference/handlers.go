package referencehandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentnest/internal/domain/geo"
	"talentnest/internal/transport/http/api"
	"talentnest/internal/transport/http/middleware"
)

// Handler proxies the public country dataset so the onboarding form never
// talks to the upstream service directly.
type Handler struct {
	Geo *geo.Client
}

func NewHandler(client *geo.Client) *Handler {
	return &Handler{Geo: client}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reference", func(r chi.Router) {
		r.Get("/countries", h.handleCountries)
		r.Get("/countries/{country}/subdivisions", h.handleSubdivisions)
		r.Get("/currencies", h.handleCurrencies)
	})
}

func (h *Handler) handleCountries(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	countries, err := h.Geo.Countries(r.Context())
	if err != nil {
		api.Fail(w, http.StatusBadGateway, "reference_unavailable", "country dataset is unavailable", requestID)
		return
	}
	api.Success(w, countries, requestID)
}

func (h *Handler) handleSubdivisions(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	country := chi.URLParam(r, "country")

	subdivisions, err := h.Geo.Subdivisions(r.Context(), country)
	if err != nil {
		// A failed lookup means the form treats the country as stateless;
		// report an empty list rather than an error.
		api.Success(w, []string{}, requestID)
		return
	}
	api.Success(w, subdivisions, requestID)
}

func (h *Handler) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	api.Success(w, h.Geo.Currencies(r.Context()), requestID)
}
