// aykutspohr | 2026
// handler.go

package testimonial

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
	r.Route("/testimonials", func(r chi.Router) {
		r.Get("/", h.ListTestimonials)
		r.Get("/{testimonialID}", h.GetTestimonial)
	})
}

type TestimonialListResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
	Total        int           `json:"total"`
}

func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	featured, err := core.QueryFlag(r, "featured")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	var testimonials []Testimonial
	if featured {
		testimonials = h.service.Featured()
	} else {
		testimonials = h.service.Displayable()
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		cat, ok := ParseCategory(raw)
		if !ok {
			core.BadRequest(w, "unknown testimonial category")
			return
		}
		filtered := make([]Testimonial, 0, len(testimonials))
		for _, t := range testimonials {
			if t.Category == cat {
				filtered = append(filtered, t)
			}
		}
		testimonials = filtered
	}

	if raw := r.URL.Query().Get("lang"); raw != "" {
		lang, ok := ParseLanguage(raw)
		if !ok {
			core.BadRequest(w, "unknown language")
			return
		}
		filtered := make([]Testimonial, 0, len(testimonials))
		for _, t := range testimonials {
			if t.Language == lang {
				filtered = append(filtered, t)
			}
		}
		testimonials = filtered
	}

	core.OK(w, TestimonialListResponse{
		Testimonials: testimonials,
		Total:        len(testimonials),
	})
}

func (h *Handler) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonialID := chi.URLParam(r, "testimonialID")

	testimonial, ok := h.service.GetByID(testimonialID)
	if !ok {
		core.NotFound(w, "testimonial")
		return
	}

	core.OK(w, testimonial)
}
