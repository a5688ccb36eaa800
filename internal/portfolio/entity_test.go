// aykutspohr | 2026
// entity_test.go

package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories() {
		parsed, ok := ParseCategory(string(cat))
		require.True(t, ok, "category %s must parse", cat)
		assert.Equal(t, cat, parsed)
	}

	_, ok := ParseCategory("blog")
	assert.False(t, ok)

	_, ok = ParseCategory("")
	assert.False(t, ok)

	// Guards are exact-match, not case-folding.
	_, ok = ParseCategory("Landing-Page")
	assert.False(t, ok)
}

func TestParseStatus(t *testing.T) {
	for _, status := range Statuses() {
		parsed, ok := ParseStatus(string(status))
		require.True(t, ok)
		assert.Equal(t, status, parsed)
	}

	_, ok := ParseStatus("cancelled")
	assert.False(t, ok)
}

func TestCategoryLabelsCoverEnumeration(t *testing.T) {
	for _, cat := range Categories() {
		assert.NotEmpty(t, CategoryLabels[cat], "missing label for %s", cat)
	}
	assert.Len(t, CategoryLabels, len(Categories()))
}

func TestStatusLabelsCoverEnumeration(t *testing.T) {
	for _, status := range Statuses() {
		assert.NotEmpty(t, StatusLabels[status], "missing label for %s", status)
	}
}

func TestCompletedAt(t *testing.T) {
	p := Project{CompletionDate: "2026-02-18"}
	completed := p.CompletedAt()
	assert.Equal(t, 2026, completed.Year())
	assert.Equal(t, 18, completed.Day())

	malformed := Project{CompletionDate: "18.02.2026"}
	assert.True(t, malformed.CompletedAt().IsZero())
}

func TestUsesTechnology(t *testing.T) {
	p := Project{Technologies: []string{"Next.js", "TypeScript"}}

	assert.True(t, p.UsesTechnology("Next.js"))
	assert.False(t, p.UsesTechnology("next.js"))
	assert.False(t, p.UsesTechnology("Vue"))
}
