// aykutspohr | 2026
// service.go

package portfolio

import (
	"sort"
	"strings"
	"time"
)

// satisfactionRate is an editorial constant, not derived from project
// data.
const satisfactionRate = 98

// Service computes derived views over the immutable project catalog.
// Every view recomputes its projection per call and never mutates the
// underlying slice, so a single Service is safe for concurrent reads.
type Service struct {
	projects []Project
	now      func() time.Time
}

type Option func(*Service)

// WithClock overrides the wall-clock source used by recency views.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(projects []Project, opts ...Option) *Service {
	s := &Service{
		projects: projects,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// All returns every project in authoring order.
func (s *Service) All() []Project {
	out := make([]Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Featured returns projects flagged as featured, preserving authoring
// order.
func (s *Service) Featured() []Project {
	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory partitions all projects by category, preserving per-group
// insertion order. A project with an unrecognized category falls back
// to custom-solution so every project lands in exactly one group.
func (s *Service) ByCategory() map[Category][]Project {
	groups := make(map[Category][]Project)
	for _, p := range s.projects {
		cat := p.Category
		if !cat.Valid() {
			cat = CategoryCustomSolution
		}
		groups[cat] = append(groups[cat], p)
	}
	return groups
}

// Recent returns projects completed within the last year, most recent
// first. The boundary is inclusive: a project dated exactly one year
// ago is included. Completion dates carry no time of day, so the
// cutoff is truncated to date granularity before comparing.
func (s *Service) Recent() []Project {
	year, month, day := s.now().Date()
	cutoff := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).
		AddDate(-1, 0, 0)

	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		completed := p.CompletedAt()
		if completed.IsZero() {
			continue
		}
		if !completed.Before(cutoff) {
			out = append(out, p)
		}
	}

	// ISO date strings compare chronologically; stable sort keeps
	// authoring order deterministic on ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletionDate > out[j].CompletionDate
	})

	return out
}

// Technologies returns every technology used across the catalog,
// deduplicated case-sensitively and sorted ascending.
func (s *Service) Technologies() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, p := range s.projects {
		for _, tech := range p.Technologies {
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			out = append(out, tech)
		}
	}

	sort.Strings(out)
	return out
}

type Stats struct {
	TotalProjects     int              `json:"total_projects"`
	FeaturedProjects  int              `json:"featured_projects"`
	Categories        map[Category]int `json:"categories"`
	Technologies      map[string]int   `json:"technologies"`
	AverageDuration   float64          `json:"average_duration_months"`
	CompletedThisYear int              `json:"completed_this_year"`
	SatisfactionRate  int              `json:"satisfaction_rate"`
}

// Stats aggregates the catalog. Category counts only include categories
// present in the data; consumers needing the full enumeration should
// iterate Categories() and treat missing keys as zero.
func (s *Service) Stats() Stats {
	stats := Stats{
		TotalProjects:    len(s.projects),
		Categories:       make(map[Category]int),
		Technologies:     make(map[string]int),
		SatisfactionRate: satisfactionRate,
	}

	currentYear := s.now().Year()

	var durationTotal int
	var durationCount int

	for _, p := range s.projects {
		if p.Featured {
			stats.FeaturedProjects++
		}

		cat := p.Category
		if !cat.Valid() {
			cat = CategoryCustomSolution
		}
		stats.Categories[cat]++

		for _, tech := range p.Technologies {
			stats.Technologies[tech]++
		}

		if p.Duration > 0 {
			durationTotal += p.Duration
			durationCount++
		}

		if completed := p.CompletedAt(); !completed.IsZero() &&
			completed.Year() == currentYear {
			stats.CompletedThisYear++
		}
	}

	if durationCount > 0 {
		stats.AverageDuration = float64(durationTotal) / float64(durationCount)
	}

	return stats
}

// GetByID looks up a project by its stable id. A miss returns
// (nil, false); stale links are expected and are not an error.
func (s *Service) GetByID(id string) (*Project, bool) {
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p, true
		}
	}
	return nil, false
}

// InCategory filters by exact category match, preserving authoring
// order.
func (s *Service) InCategory(cat Category) []Project {
	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to limit projects sharing the given project's
// category, excluding the project itself, ordered by descending
// display order. Higher display order surfaces first deliberately:
// manually promoted work is considered most related. An unknown id
// yields an empty slice.
func (s *Service) Related(id string, limit int) []Project {
	if limit <= 0 {
		limit = RelatedDefaultLimit
	}

	current, ok := s.GetByID(id)
	if !ok {
		return []Project{}
	}

	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.ID == current.ID {
			continue
		}
		if p.Category == current.Category {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder > out[j].DisplayOrder
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out
}

// Search performs a case-insensitive substring match over title,
// client, problem, solution and technologies. Results keep authoring
// order; there is no ranking.
func (s *Service) Search(term string) []Project {
	needle := strings.ToLower(term)

	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if projectMatches(&p, needle) {
			out = append(out, p)
		}
	}
	return out
}

func projectMatches(p *Project, needle string) bool {
	if strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Client), needle) ||
		strings.Contains(strings.ToLower(p.Problem), needle) ||
		strings.Contains(strings.ToLower(p.Solution), needle) {
		return true
	}

	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}

	return false
}

// WithTechnology filters to projects whose technology set contains tech
// exactly (case-sensitive).
func (s *Service) WithTechnology(tech string) []Project {
	out := make([]Project, 0, len(s.projects))
	for _, p := range s.projects {
		if p.UsesTechnology(tech) {
			out = append(out, p)
		}
	}
	return out
}
