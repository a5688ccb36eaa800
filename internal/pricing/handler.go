// aykutspohr | 2026
// handler.go

package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aykutspohrdev/spohr-portfolio-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/pricing", func(r chi.Router) {
		r.Get("/tiers", h.ListTiers)
		r.Get("/tiers/{tierID}", h.GetTier)
	})
}

type TierListResponse struct {
	Tiers []Tier `json:"tiers"`
	Total int    `json:"total"`
}

// ListTiers returns bookable tiers in display order. Deprecated and
// coming-soon tiers are only included with ?all=true.
func (h *Handler) ListTiers(w http.ResponseWriter, r *http.Request) {
	all, err := core.QueryFlag(r, "all")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	highlighted, err := core.QueryFlag(r, "highlighted")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	var tiers []Tier
	if all {
		tiers = h.service.All()
	} else {
		tiers = h.service.Active()
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		cat, ok := ParseTierCategory(raw)
		if !ok {
			core.BadRequest(w, "unknown pricing category")
			return
		}
		filtered := make([]Tier, 0, len(tiers))
		for _, t := range tiers {
			if t.Category == cat {
				filtered = append(filtered, t)
			}
		}
		tiers = filtered
	}

	if highlighted {
		filtered := make([]Tier, 0, len(tiers))
		for _, t := range tiers {
			if t.Highlighted {
				filtered = append(filtered, t)
			}
		}
		tiers = filtered
	}

	core.OK(w, TierListResponse{
		Tiers: tiers,
		Total: len(tiers),
	})
}

func (h *Handler) GetTier(w http.ResponseWriter, r *http.Request) {
	tierID := chi.URLParam(r, "tierID")

	tier, ok := h.service.GetByID(tierID)
	if !ok {
		core.NotFound(w, "pricing tier")
		return
	}

	core.OK(w, tier)
}
