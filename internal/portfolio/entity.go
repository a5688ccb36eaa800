// aykutspohr | 2026
// entity.go

package portfolio

import (
	"time"
)

// Category classifies a project by the kind of deliverable.
type Category string

const (
	CategoryLandingPage      Category = "landing-page"
	CategoryCorporateWebsite Category = "corporate-website"
	CategoryECommerce        Category = "e-commerce"
	CategoryWebApplication   Category = "web-application"
	CategoryMobileApp        Category = "mobile-app"
	CategoryCustomSolution   Category = "custom-solution"
)

// Status tracks where a project sits in its lifecycle.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusShowcased  Status = "showcased"
	StatusArchived   Status = "archived"
)

// Categories returns all category values in display order.
func Categories() []Category {
	return []Category{
		CategoryLandingPage,
		CategoryCorporateWebsite,
		CategoryECommerce,
		CategoryWebApplication,
		CategoryMobileApp,
		CategoryCustomSolution,
	}
}

func Statuses() []Status {
	return []Status{
		StatusPlanning,
		StatusInProgress,
		StatusCompleted,
		StatusShowcased,
		StatusArchived,
	}
}

// IsCategory reports whether s is a known category value. Unrecognized
// input yields false, never an error.
func IsCategory(s string) bool {
	_, ok := ParseCategory(s)
	return ok
}

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryLandingPage,
		CategoryCorporateWebsite,
		CategoryECommerce,
		CategoryWebApplication,
		CategoryMobileApp,
		CategoryCustomSolution:
		return Category(s), true
	}
	return "", false
}

func IsStatus(s string) bool {
	_, ok := ParseStatus(s)
	return ok
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPlanning,
		StatusInProgress,
		StatusCompleted,
		StatusShowcased,
		StatusArchived:
		return Status(s), true
	}
	return "", false
}

func (c Category) Valid() bool {
	return IsCategory(string(c))
}

func (s Status) Valid() bool {
	return IsStatus(string(s))
}

// Metric is a single client-facing outcome figure, e.g. "+40% Umsatz".
type Metric struct {
	Name   string `json:"name"              validate:"required"`
	Value  string `json:"value"             validate:"required"`
	Unit   string `json:"unit,omitempty"`
	Change string `json:"change,omitempty"`
}

// Project is a portfolio case study. Projects are authored at compile
// time and immutable after the catalog is loaded; the json tags define
// the read API representation.
type Project struct {
	ID             string   `json:"id"                        validate:"required"`
	Title          string   `json:"title"                     validate:"required,min=5,max=80"`
	Client         string   `json:"client"                    validate:"required,min=2,max=100"`
	Problem        string   `json:"problem"                   validate:"required,min=50,max=500"`
	Solution       string   `json:"solution"                  validate:"required,min=50,max=500"`
	Outcome        string   `json:"outcome"                   validate:"required,min=50,max=500"`
	ImageURL       string   `json:"image_url"                 validate:"required,url"`
	GalleryImages  []string `json:"gallery_images,omitempty"  validate:"omitempty,dive,url"`
	Technologies   []string `json:"technologies"              validate:"required,min=1,dive,min=1,max=50"`
	ProjectURL     string   `json:"project_url,omitempty"     validate:"omitempty,url"`
	CompletionDate string   `json:"completion_date"           validate:"required,datetime=2006-01-02"`
	Featured       bool     `json:"featured"`
	DisplayOrder   int      `json:"display_order"`
	Category       Category `json:"category"                  validate:"required"`
	Status         Status   `json:"status"                    validate:"required"`
	Duration       int      `json:"duration_months,omitempty" validate:"omitempty,min=1,max=36"`
	TeamSize       int      `json:"team_size,omitempty"       validate:"omitempty,min=1,max=20"`
	Description    string   `json:"description,omitempty"     validate:"omitempty,max=1000"`
	Challenges     []string `json:"challenges,omitempty"`
	Learnings      []string `json:"learnings,omitempty"`
	Metrics        []Metric `json:"metrics,omitempty"         validate:"omitempty,dive"`
}

const dateLayout = "2006-01-02"

// CompletedAt parses the completion date. Content validation guarantees
// the date is well-formed, so a zero time on the error path only occurs
// for records that bypassed the loader.
func (p *Project) CompletedAt() time.Time {
	t, err := time.Parse(dateLayout, p.CompletionDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (p *Project) UsesTechnology(tech string) bool {
	for _, t := range p.Technologies {
		if t == tech {
			return true
		}
	}
	return false
}
