// aykutspohr | 2026
// handler.go

package portfolio

import (
	"net/http"
	"strconv"

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
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.ListProjects)
		r.Get("/{projectID}", h.GetProject)
		r.Get("/{projectID}/related", h.GetRelatedProjects)
	})

	r.Route("/portfolio", func(r chi.Router) {
		r.Get("/stats", h.GetStats)
		r.Get("/technologies", h.ListTechnologies)
		r.Get("/categories", h.ListCategories)
	})
}

// ListProjects applies the query filters in sequence over the catalog.
// Filters that match nothing yield an empty list, never an error; only
// a malformed enum value is rejected.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	featured, err := core.QueryFlag(r, "featured")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	recent, err := core.QueryFlag(r, "recent")
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	params := ListProjectsParams{
		Category:   r.URL.Query().Get("category"),
		Technology: r.URL.Query().Get("technology"),
		Search:     r.URL.Query().Get("q"),
		Featured:   featured,
		Recent:     recent,
	}

	var projects []Project

	switch {
	case params.Search != "":
		projects = h.service.Search(params.Search)
	case params.Recent:
		projects = h.service.Recent()
	default:
		projects = h.service.All()
	}

	if params.Featured {
		projects = filterProjects(projects, func(p *Project) bool {
			return p.Featured
		})
	}

	if params.Category != "" {
		cat, ok := ParseCategory(params.Category)
		if !ok {
			core.BadRequest(w, "unknown project category")
			return
		}
		projects = filterProjects(projects, func(p *Project) bool {
			return p.Category == cat
		})
	}

	if params.Technology != "" {
		projects = filterProjects(projects, func(p *Project) bool {
			return p.UsesTechnology(params.Technology)
		})
	}

	core.OK(w, ProjectListResponse{
		Projects: projects,
		Total:    len(projects),
	})
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	project, ok := h.service.GetByID(projectID)
	if !ok {
		core.NotFound(w, "project")
		return
	}

	core.OK(w, project)
}

func (h *Handler) GetRelatedProjects(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	if _, ok := h.service.GetByID(projectID); !ok {
		core.NotFound(w, "project")
		return
	}

	limit := RelatedDefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			core.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	related := h.service.Related(projectID, limit)

	core.OK(w, ProjectListResponse{
		Projects: related,
		Total:    len(related),
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	core.OK(w, h.service.Stats())
}

func (h *Handler) ListTechnologies(w http.ResponseWriter, r *http.Request) {
	core.OK(w, TechnologyListResponse{
		Technologies: h.service.Technologies(),
	})
}

// ListCategories returns the closed category enumeration with German
// labels and per-category counts, zero-count categories included.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	grouped := h.service.ByCategory()

	infos := make([]CategoryInfo, 0, len(Categories()))
	for _, cat := range Categories() {
		infos = append(infos, CategoryInfo{
			Value: cat,
			Label: CategoryLabels[cat],
			Count: len(grouped[cat]),
		})
	}

	core.OK(w, CategoryListResponse{Categories: infos})
}

func filterProjects(
	projects []Project,
	keep func(*Project) bool,
) []Project {
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if keep(&p) {
			out = append(out, p)
		}
	}
	return out
}
