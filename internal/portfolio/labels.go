// aykutspohr | 2026
// labels.go

package portfolio

// CategoryLabels maps each category to its German display label.
// Consumers must treat this as read-only reference data.
var CategoryLabels = map[Category]string{
	CategoryLandingPage:      "Landingpage",
	CategoryCorporateWebsite: "Unternehmenswebsite",
	CategoryECommerce:        "E-Commerce",
	CategoryWebApplication:   "Webanwendung",
	CategoryMobileApp:        "Mobile App",
	CategoryCustomSolution:   "Individuelle Lösung",
}

var StatusLabels = map[Status]string{
	StatusPlanning:   "In Planung",
	StatusInProgress: "In Umsetzung",
	StatusCompleted:  "Abgeschlossen",
	StatusShowcased:  "Referenzprojekt",
	StatusArchived:   "Archiviert",
}

// Validation rule constants. The loader enforces these through the
// struct tags on Project; they are exported so the presentation layer
// can mirror the same bounds in authoring tooling.
const (
	TitleMinLength      = 5
	TitleMaxLength      = 80
	NarrativeMinLength  = 50
	NarrativeMaxLength  = 500
	DurationMaxMonths   = 36
	RelatedDefaultLimit = 2
)
