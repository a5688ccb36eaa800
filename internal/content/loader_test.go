// aykutspohr | 2026
// loader_test.go

package content

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aykutspohrdev/spohr-portfolio-api/internal/config"
	"github.com/aykutspohrdev/spohr-portfolio-api/internal/portfolio"
)

func strictConfig() config.ContentConfig {
	return config.ContentConfig{
		DefaultLanguage:  "de",
		StrictValidation: true,
	}
}

func TestLoadStrict(t *testing.T) {
	catalog, err := Load(strictConfig(), slog.Default())

	require.NoError(t, err, "authored content must pass its own validation rules")
	require.NotNil(t, catalog)

	assert.NotEmpty(t, catalog.Projects)
	assert.NotEmpty(t, catalog.PricingTiers)
	assert.NotEmpty(t, catalog.Testimonials)
}

func TestAuthoredProjectsAreWellFormed(t *testing.T) {
	catalog, err := Load(strictConfig(), slog.Default())
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for _, p := range catalog.Projects {
		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate project id %s", p.ID)
		seen[p.ID] = struct{}{}

		assert.True(t, p.Category.Valid())
		assert.True(t, p.Status.Valid())
		assert.False(t, p.CompletedAt().IsZero(), "project %s has unparseable date", p.ID)
	}
}

func TestAuthoredFeaturedProjects(t *testing.T) {
	catalog, err := Load(strictConfig(), slog.Default())
	require.NoError(t, err)

	svc := portfolio.NewService(catalog.Projects)
	featured := svc.Featured()

	require.Len(t, featured, 2)
	assert.Equal(t, "baeckerei-hofmann", featured[0].ID)
	assert.Equal(t, "studio-move-booking", featured[1].ID)
}

func TestAuthoredBakerySearchable(t *testing.T) {
	catalog, err := Load(strictConfig(), slog.Default())
	require.NoError(t, err)

	svc := portfolio.NewService(catalog.Projects)

	results := svc.Search("bäckerei")
	require.NotEmpty(t, results)
	assert.Equal(t, "baeckerei-hofmann", results[0].ID)
}

func TestAuthoredTiersConsistent(t *testing.T) {
	catalog, err := Load(strictConfig(), slog.Default())
	require.NoError(t, err)

	for _, tier := range catalog.PricingTiers {
		assert.True(t, tier.Consistent(), "tier %s", tier.ID)
	}
}

func TestValidateCatchesViolations(t *testing.T) {
	catalog := &Catalog{
		Projects: projects(),
	}
	catalog.Projects[0].Title = "x"
	catalog.Projects[1].Category = "not-a-category"

	violations := catalog.validate()

	assert.GreaterOrEqual(t, len(violations), 2)
}

func TestValidateCatchesDuplicateIDs(t *testing.T) {
	catalog := &Catalog{
		Projects: projects(),
	}
	catalog.Projects[1].ID = catalog.Projects[0].ID

	violations := catalog.validate()

	require.NotEmpty(t, violations)
	found := false
	for _, v := range violations {
		if strings.Contains(v.Error(), "duplicate id") {
			found = true
		}
	}
	assert.True(t, found, "expected a duplicate id violation")
}

func TestCheck(t *testing.T) {
	catalog, err := Load(strictConfig(), slog.Default())
	require.NoError(t, err)

	assert.NoError(t, catalog.Check(context.Background()))

	empty := &Catalog{}
	assert.Error(t, empty.Check(context.Background()))
}
