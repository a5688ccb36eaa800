// aykutspohr | 2026
// labels.go

package pricing

// CategoryLabels maps each tier category to its German display label.
var CategoryLabels = map[TierCategory]string{
	CategoryWebsite:      "Website",
	CategoryApplication:  "Anwendung",
	CategoryConsultation: "Beratung",
	CategoryMaintenance:  "Wartung & Pflege",
}

var StatusLabels = map[TierStatus]string{
	StatusActive:     "Verfügbar",
	StatusFeatured:   "Empfohlen",
	StatusDeprecated: "Nicht mehr angeboten",
	StatusComingSoon: "Demnächst",
}

const (
	DescriptionMinLength = 20
	DescriptionMaxLength = 150
	FeaturesMinCount     = 5
	FeaturesMaxCount     = 12
	CTAMinLength         = 5
	CTAMaxLength         = 30
)
