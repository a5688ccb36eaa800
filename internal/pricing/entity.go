// aykutspohr | 2026
// entity.go

package pricing

// TierName is the closed set of offering names.
type TierName string

const (
	TierLanding  TierName = "Landing"
	TierStandard TierName = "Standard"
	TierCustom   TierName = "Custom"
)

type TierStatus string

const (
	StatusActive     TierStatus = "active"
	StatusFeatured   TierStatus = "featured"
	StatusDeprecated TierStatus = "deprecated"
	StatusComingSoon TierStatus = "coming-soon"
)

type TierCategory string

const (
	CategoryWebsite      TierCategory = "website"
	CategoryApplication  TierCategory = "application"
	CategoryConsultation TierCategory = "consultation"
	CategoryMaintenance  TierCategory = "maintenance"
)

type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

func IsTierName(s string) bool {
	switch TierName(s) {
	case TierLanding, TierStandard, TierCustom:
		return true
	}
	return false
}

func IsTierStatus(s string) bool {
	switch TierStatus(s) {
	case StatusActive, StatusFeatured, StatusDeprecated, StatusComingSoon:
		return true
	}
	return false
}

func ParseTierCategory(s string) (TierCategory, bool) {
	switch TierCategory(s) {
	case CategoryWebsite, CategoryApplication,
		CategoryConsultation, CategoryMaintenance:
		return TierCategory(s), true
	}
	return "", false
}

func IsTierCategory(s string) bool {
	_, ok := ParseTierCategory(s)
	return ok
}

func IsCurrency(s string) bool {
	switch Currency(s) {
	case CurrencyEUR, CurrencyUSD:
		return true
	}
	return false
}

// Price describes the starting price of a tier. Display carries the
// human-readable form shown verbatim by the presentation layer, e.g.
// "ab 1.490 €".
type Price struct {
	Amount    int      `json:"amount"               validate:"required,min=1"`
	MaxAmount int      `json:"max_amount,omitempty" validate:"omitempty,gtefield=Amount"`
	Currency  Currency `json:"currency"             validate:"required,oneof=EUR USD"`
	Period    string   `json:"period,omitempty"`
	Display   string   `json:"display"              validate:"required"`
	Discount  string   `json:"discount,omitempty"`
}

// AddOn is an optionally bookable extra with its own price.
type AddOn struct {
	ID          string `json:"id"          validate:"required"`
	Name        string `json:"name"        validate:"required,min=2,max=60"`
	Description string `json:"description" validate:"required,max=200"`
	Price       *Price `json:"price,omitempty"`
}

// Tier is a pricing offering. IsCustom is authoritative for whether the
// tier is priced individually; the loader rejects content where it
// disagrees with Name == "Custom".
type Tier struct {
	ID              string       `json:"id"                         validate:"required"`
	Name            TierName     `json:"name"                       validate:"required,oneof=Landing Standard Custom"`
	Description     string       `json:"description"                validate:"required,min=20,max=150"`
	Features        []string     `json:"features"                   validate:"required,min=5,max=12,dive,min=5,max=100"`
	StartingPrice   *Price       `json:"starting_price,omitempty"`
	IsCustom        bool         `json:"is_custom"`
	CTAText         string       `json:"cta_text"                   validate:"required,min=5,max=30"`
	Highlighted     bool         `json:"highlighted"`
	DisplayOrder    int          `json:"display_order"`
	Status          TierStatus   `json:"status"                     validate:"required"`
	Benefits        []string     `json:"benefits,omitempty"`
	Limitations     []string     `json:"limitations,omitempty"`
	Timeline        string       `json:"timeline,omitempty"`
	Revisions       int          `json:"revisions,omitempty"        validate:"omitempty,min=1"`
	SupportDuration string       `json:"support_duration,omitempty"`
	AddOns          []AddOn      `json:"add_ons,omitempty"          validate:"omitempty,dive"`
	Category        TierCategory `json:"category"                   validate:"required"`
	TargetClients   []string     `json:"target_clients,omitempty"`
}

// Consistent reports whether the custom flag agrees with the name.
// Well-formed content always satisfies this; the loader checks it.
func (t *Tier) Consistent() bool {
	return t.IsCustom == (t.Name == TierCustom)
}

// Bookable reports whether the tier is currently offered.
func (t *Tier) Bookable() bool {
	return t.Status == StatusActive || t.Status == StatusFeatured
}
