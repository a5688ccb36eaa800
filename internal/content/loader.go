// aykutspohr | 2026
// loader.go

package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/aykutspohrdev/spohr-portfolio-api/internal/config"
	"github.com/aykutspohrdev/spohr-portfolio-api/internal/core"
	"github.com/aykutspohrdev/spohr-portfolio-api/internal/portfolio"
	"github.com/aykutspohrdev/spohr-portfolio-api/internal/pricing"
	"github.com/aykutspohrdev/spohr-portfolio-api/internal/testimonial"
)

// Catalog is the immutable static content store. It is loaded once at
// startup and shared read-only across all requests; no write path
// exists at runtime.
type Catalog struct {
	Projects     []portfolio.Project
	PricingTiers []pricing.Tier
	Testimonials []testimonial.Testimonial
}

// Load builds the catalog from the authored content and runs the
// declared validation rules against it. With strict validation every
// violation fails startup; otherwise violations are logged and the
// content is served as authored.
func Load(cfg config.ContentConfig, logger *slog.Logger) (*Catalog, error) {
	catalog := &Catalog{
		Projects:     projects(),
		PricingTiers: pricingTiers(),
		Testimonials: testimonials(),
	}

	violations := catalog.validate()

	if len(violations) > 0 {
		if cfg.StrictValidation {
			return nil, fmt.Errorf(
				"content validation failed: %d violation(s), first: %v",
				len(violations), violations[0],
			)
		}

		for _, v := range violations {
			logger.Warn("content validation violation", "error", v)
		}
	}

	logger.Info("content catalog loaded",
		"projects", len(catalog.Projects),
		"pricing_tiers", len(catalog.PricingTiers),
		"testimonials", len(catalog.Testimonials),
	)

	return catalog, nil
}

// Check reports whether the catalog is usable; wired into readiness.
func (c *Catalog) Check(_ context.Context) error {
	if len(c.Projects) == 0 {
		return fmt.Errorf("catalog has no projects")
	}
	if len(c.PricingTiers) == 0 {
		return fmt.Errorf("catalog has no pricing tiers")
	}
	return nil
}

func (c *Catalog) validate() []error {
	v := validator.New(validator.WithRequiredStructEnabled())

	var violations []error

	seenProjects := make(map[string]struct{}, len(c.Projects))
	for i := range c.Projects {
		p := &c.Projects[i]

		if err := v.Struct(p); err != nil {
			violations = append(violations, fmt.Errorf(
				"project %s: %s", p.ID, core.FormatValidationError(err)))
		}

		if !p.Category.Valid() {
			violations = append(violations,
				fmt.Errorf("project %s: unknown category %q", p.ID, p.Category))
		}

		if !p.Status.Valid() {
			violations = append(violations,
				fmt.Errorf("project %s: unknown status %q", p.ID, p.Status))
		}

		if _, dup := seenProjects[p.ID]; dup {
			violations = append(violations,
				fmt.Errorf("project %s: duplicate id", p.ID))
		}
		seenProjects[p.ID] = struct{}{}
	}

	seenTiers := make(map[string]struct{}, len(c.PricingTiers))
	for i := range c.PricingTiers {
		t := &c.PricingTiers[i]

		if err := v.Struct(t); err != nil {
			violations = append(violations, fmt.Errorf(
				"pricing tier %s: %s", t.ID, core.FormatValidationError(err)))
		}

		if !pricing.IsTierStatus(string(t.Status)) {
			violations = append(violations,
				fmt.Errorf("pricing tier %s: unknown status %q", t.ID, t.Status))
		}

		if !pricing.IsTierCategory(string(t.Category)) {
			violations = append(violations,
				fmt.Errorf("pricing tier %s: unknown category %q", t.ID, t.Category))
		}

		if !t.Consistent() {
			violations = append(violations, fmt.Errorf(
				"pricing tier %s: is_custom=%t disagrees with name %q",
				t.ID, t.IsCustom, t.Name,
			))
		}

		if _, dup := seenTiers[t.ID]; dup {
			violations = append(violations,
				fmt.Errorf("pricing tier %s: duplicate id", t.ID))
		}
		seenTiers[t.ID] = struct{}{}
	}

	seenTestimonials := make(map[string]struct{}, len(c.Testimonials))
	for i := range c.Testimonials {
		t := &c.Testimonials[i]

		if err := v.Struct(t); err != nil {
			violations = append(violations, fmt.Errorf(
				"testimonial %s: %s", t.ID, core.FormatValidationError(err)))
		}

		if !testimonial.IsStatus(string(t.Status)) {
			violations = append(violations,
				fmt.Errorf("testimonial %s: unknown status %q", t.ID, t.Status))
		}

		if !testimonial.IsCategory(string(t.Category)) {
			violations = append(violations,
				fmt.Errorf("testimonial %s: unknown category %q", t.ID, t.Category))
		}

		if t.Industry != "" && !testimonial.IsIndustry(string(t.Industry)) {
			violations = append(violations,
				fmt.Errorf("testimonial %s: unknown industry %q", t.ID, t.Industry))
		}

		if !testimonial.IsSource(string(t.Source)) {
			violations = append(violations,
				fmt.Errorf("testimonial %s: unknown source %q", t.ID, t.Source))
		}

		if !t.HasVisualAsset() {
			violations = append(violations, fmt.Errorf(
				"testimonial %s: requires a client photo or company logo",
				t.ID,
			))
		}

		if t.ProjectID != "" {
			if _, ok := seenProjects[t.ProjectID]; !ok {
				violations = append(violations, fmt.Errorf(
					"testimonial %s: references unknown project %q",
					t.ID, t.ProjectID,
				))
			}
		}

		if _, dup := seenTestimonials[t.ID]; dup {
			violations = append(violations,
				fmt.Errorf("testimonial %s: duplicate id", t.ID))
		}
		seenTestimonials[t.ID] = struct{}{}
	}

	return violations
}
