// aykutspohr | 2026
// service_test.go

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTiers() []Tier {
	return []Tier{
		{
			ID:           "tier-custom",
			Name:         TierCustom,
			IsCustom:     true,
			DisplayOrder: 3,
			Status:       StatusActive,
			Category:     CategoryApplication,
		},
		{
			ID:           "tier-landing",
			Name:         TierLanding,
			DisplayOrder: 1,
			Status:       StatusActive,
			Category:     CategoryWebsite,
		},
		{
			ID:           "tier-standard",
			Name:         TierStandard,
			Highlighted:  true,
			DisplayOrder: 2,
			Status:       StatusFeatured,
			Category:     CategoryWebsite,
		},
		{
			ID:           "tier-legacy",
			Name:         TierStandard,
			DisplayOrder: 4,
			Status:       StatusDeprecated,
			Category:     CategoryWebsite,
		},
	}
}

func TestActive(t *testing.T) {
	svc := NewService(testTiers())

	active := svc.Active()

	require.Len(t, active, 3)
	assert.Equal(t, "tier-landing", active[0].ID)
	assert.Equal(t, "tier-standard", active[1].ID)
	assert.Equal(t, "tier-custom", active[2].ID)

	for _, tier := range active {
		assert.True(t, tier.Bookable())
	}
}

func TestHighlighted(t *testing.T) {
	svc := NewService(testTiers())

	highlighted := svc.Highlighted()

	require.Len(t, highlighted, 1)
	assert.Equal(t, "tier-standard", highlighted[0].ID)
}

func TestGetTierByID(t *testing.T) {
	svc := NewService(testTiers())

	tier, ok := svc.GetByID("tier-custom")
	require.True(t, ok)
	assert.Equal(t, TierCustom, tier.Name)

	_, ok = svc.GetByID("tier-enterprise")
	assert.False(t, ok)
}

func TestInCategory(t *testing.T) {
	svc := NewService(testTiers())

	website := svc.InCategory(CategoryWebsite)
	assert.Len(t, website, 3)

	assert.Empty(t, svc.InCategory(CategoryMaintenance))
}

func TestConsistent(t *testing.T) {
	custom := Tier{Name: TierCustom, IsCustom: true}
	assert.True(t, custom.Consistent())

	standard := Tier{Name: TierStandard, IsCustom: false}
	assert.True(t, standard.Consistent())

	// Disagreement in either direction is malformed content.
	flagOnly := Tier{Name: TierStandard, IsCustom: true}
	assert.False(t, flagOnly.Consistent())

	nameOnly := Tier{Name: TierCustom, IsCustom: false}
	assert.False(t, nameOnly.Consistent())
}

func TestTierGuards(t *testing.T) {
	assert.True(t, IsTierName("Landing"))
	assert.False(t, IsTierName("landing"))

	assert.True(t, IsTierStatus("coming-soon"))
	assert.False(t, IsTierStatus("retired"))

	assert.True(t, IsTierCategory("maintenance"))
	assert.False(t, IsTierCategory("hosting"))

	assert.True(t, IsCurrency("EUR"))
	assert.False(t, IsCurrency("GBP"))
}
