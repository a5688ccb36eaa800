// aykutspohr | 2026
// service_test.go

package testimonial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:            "approved-de",
			ClientName:    "Martina Hofmann",
			Featured:      true,
			DisplayOrder:  2,
			Status:        StatusFeatured,
			Rating:        5,
			Category:      CategoryCorporateWebsite,
			Language:      LanguageGerman,
			HasPermission: true,
		},
		{
			ID:            "approved-en",
			ClientName:    "Daniel Krause",
			DisplayOrder:  1,
			Status:        StatusApproved,
			Rating:        4,
			Category:      CategoryWebApplication,
			Language:      LanguageEnglish,
			HasPermission: true,
		},
		{
			ID:            "no-consent",
			ClientName:    "Thomas Weber",
			DisplayOrder:  3,
			Status:        StatusApproved,
			Category:      CategoryCorporateWebsite,
			Language:      LanguageGerman,
			HasPermission: false,
		},
		{
			ID:            "pending",
			ClientName:    "Anna Schulz",
			DisplayOrder:  4,
			Status:        StatusPending,
			Category:      CategoryECommerce,
			Language:      LanguageGerman,
			HasPermission: true,
		},
	}
}

func TestDisplayable(t *testing.T) {
	svc := NewService(testTestimonials())

	displayable := svc.Displayable()

	require.Len(t, displayable, 2)
	// Sorted by display order, not authoring order.
	assert.Equal(t, "approved-en", displayable[0].ID)
	assert.Equal(t, "approved-de", displayable[1].ID)
}

func TestDisplayableRequiresConsent(t *testing.T) {
	svc := NewService(testTestimonials())

	for _, item := range svc.Displayable() {
		assert.True(t, item.HasPermission)
		assert.NotEqual(t, "no-consent", item.ID)
		assert.NotEqual(t, "pending", item.ID)
	}
}

func TestFeatured(t *testing.T) {
	svc := NewService(testTestimonials())

	featured := svc.Featured()

	require.Len(t, featured, 1)
	assert.Equal(t, "approved-de", featured[0].ID)
}

func TestByCategory(t *testing.T) {
	svc := NewService(testTestimonials())

	corporate := svc.ByCategory(CategoryCorporateWebsite)
	require.Len(t, corporate, 1)
	assert.Equal(t, "approved-de", corporate[0].ID)

	assert.Empty(t, svc.ByCategory(CategoryMobileApp))
}

func TestInLanguage(t *testing.T) {
	svc := NewService(testTestimonials())

	english := svc.InLanguage(LanguageEnglish)
	require.Len(t, english, 1)
	assert.Equal(t, "approved-en", english[0].ID)
}

func TestGetByIDOnlyReturnsDisplayable(t *testing.T) {
	svc := NewService(testTestimonials())

	got, ok := svc.GetByID("approved-de")
	require.True(t, ok)
	assert.Equal(t, "Martina Hofmann", got.ClientName)

	_, ok = svc.GetByID("no-consent")
	assert.False(t, ok, "unpublished quotes must not leak through id lookup")

	_, ok = svc.GetByID("missing")
	assert.False(t, ok)
}

func TestAverageRating(t *testing.T) {
	svc := NewService(testTestimonials())

	avg, count := svc.AverageRating()
	assert.Equal(t, 2, count)
	assert.InDelta(t, 4.5, avg, 0.001)
}

func TestAverageRatingEmpty(t *testing.T) {
	svc := NewService(nil)

	avg, count := svc.AverageRating()
	assert.Zero(t, avg)
	assert.Zero(t, count)
}

func TestHasVisualAsset(t *testing.T) {
	assert.False(t, (&Testimonial{}).HasVisualAsset())
	assert.True(t, (&Testimonial{ClientPhoto: "https://example.com/p.webp"}).HasVisualAsset())
	assert.True(t, (&Testimonial{CompanyLogo: "https://example.com/l.svg"}).HasVisualAsset())
}

func TestGuards(t *testing.T) {
	assert.True(t, IsStatus("approved"))
	assert.False(t, IsStatus("published"))

	assert.True(t, IsCategory("e-commerce"))
	assert.False(t, IsCategory("E-Commerce"))

	assert.True(t, IsIndustry("gastronomy"))
	assert.False(t, IsIndustry("finance"))

	assert.True(t, IsSource("google-review"))
	assert.False(t, IsSource("twitter"))

	assert.True(t, IsLanguage("de"))
	assert.True(t, IsLanguage("en"))
	assert.False(t, IsLanguage("fr"))
}
