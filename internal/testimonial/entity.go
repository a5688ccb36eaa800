// aykutspohr | 2026
// entity.go

package testimonial

// Status tracks editorial review of a testimonial.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusFeatured Status = "featured"
	StatusArchived Status = "archived"
	StatusRejected Status = "rejected"
)

// Category mirrors the project categories a testimonial refers to.
type Category string

const (
	CategoryLandingPage      Category = "landing-page"
	CategoryCorporateWebsite Category = "corporate-website"
	CategoryECommerce        Category = "e-commerce"
	CategoryWebApplication   Category = "web-application"
	CategoryMobileApp        Category = "mobile-app"
	CategoryCustomSolution   Category = "custom-solution"
)

type Industry string

const (
	IndustryRetail        Industry = "retail"
	IndustryGastronomy    Industry = "gastronomy"
	IndustryHealthFitness Industry = "health-fitness"
	IndustryConsulting    Industry = "consulting"
	IndustryCrafts        Industry = "crafts"
	IndustryServices      Industry = "services"
	IndustryOther         Industry = "other"
)

// Source records how the testimonial was collected.
type Source string

const (
	SourceDirect        Source = "direct"
	SourceEmail         Source = "email"
	SourceGoogleReview  Source = "google-review"
	SourceLinkedIn      Source = "linkedin"
	SourceVideoCall     Source = "video-call"
	SourceWrittenLetter Source = "written-letter"
)

type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
)

func IsStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusFeatured,
		StatusArchived, StatusRejected:
		return true
	}
	return false
}

func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryLandingPage, CategoryCorporateWebsite, CategoryECommerce,
		CategoryWebApplication, CategoryMobileApp, CategoryCustomSolution:
		return Category(s), true
	}
	return "", false
}

func IsCategory(s string) bool {
	_, ok := ParseCategory(s)
	return ok
}

func IsIndustry(s string) bool {
	switch Industry(s) {
	case IndustryRetail, IndustryGastronomy, IndustryHealthFitness,
		IndustryConsulting, IndustryCrafts, IndustryServices, IndustryOther:
		return true
	}
	return false
}

func IsSource(s string) bool {
	switch Source(s) {
	case SourceDirect, SourceEmail, SourceGoogleReview,
		SourceLinkedIn, SourceVideoCall, SourceWrittenLetter:
		return true
	}
	return false
}

func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LanguageGerman, LanguageEnglish:
		return Language(s), true
	}
	return "", false
}

func IsLanguage(s string) bool {
	_, ok := ParseLanguage(s)
	return ok
}

// Testimonial is a client quote. At least one of ClientPhoto and
// CompanyLogo must be set; the loader enforces this cross-field rule.
type Testimonial struct {
	ID            string   `json:"id"                     validate:"required"`
	Quote         string   `json:"quote"                  validate:"required,min=50,max=300"`
	ClientName    string   `json:"client_name"            validate:"required,min=2,max=50"`
	Company       string   `json:"company"                validate:"required,min=2,max=100"`
	Role          string   `json:"role,omitempty"         validate:"omitempty,max=80"`
	ClientPhoto   string   `json:"client_photo,omitempty" validate:"omitempty,url"`
	CompanyLogo   string   `json:"company_logo,omitempty" validate:"omitempty,url"`
	Featured      bool     `json:"featured"`
	DisplayOrder  int      `json:"display_order"`
	Status        Status   `json:"status"                 validate:"required"`
	DateGiven     string   `json:"date_given"             validate:"required,datetime=2006-01-02"`
	Rating        int      `json:"rating,omitempty"       validate:"omitempty,min=1,max=5"`
	Category      Category `json:"category"               validate:"required"`
	ServiceAreas  []string `json:"service_areas,omitempty"`
	Industry      Industry `json:"industry,omitempty"`
	Metrics       []string `json:"metrics,omitempty"`
	Language      Language `json:"language"               validate:"required,oneof=de en"`
	HasPermission bool     `json:"has_permission"`
	Source        Source   `json:"source"                 validate:"required"`
	ProjectID     string   `json:"project_id,omitempty"`
}

// HasVisualAsset reports the required-asset rule: a testimonial without
// a photo or logo cannot be rendered.
func (t *Testimonial) HasVisualAsset() bool {
	return t.ClientPhoto != "" || t.CompanyLogo != ""
}

// Displayable reports whether the testimonial may be shown publicly.
// Publication consent is a hard requirement regardless of status.
func (t *Testimonial) Displayable() bool {
	if !t.HasPermission {
		return false
	}
	return t.Status == StatusApproved || t.Status == StatusFeatured
}
