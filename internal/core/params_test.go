// aykutspohr | 2026
// params_test.go

package core

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFlag(t *testing.T) {
	for raw, want := range map[string]bool{
		"true": true, "1": true, "TRUE": true,
		"false": false, "0": false,
	} {
		req := httptest.NewRequest("GET", "/?flag="+raw, nil)
		got, err := QueryFlag(req, "flag")
		require.NoError(t, err, "value %q", raw)
		assert.Equal(t, want, got, "value %q", raw)
	}
}

func TestQueryFlagAbsentIsFalse(t *testing.T) {
	got, err := QueryFlag(httptest.NewRequest("GET", "/", nil), "flag")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestQueryFlagMalformed(t *testing.T) {
	for _, raw := range []string{"yes", "on", "maybe"} {
		req := httptest.NewRequest("GET", "/?flag="+raw, nil)
		_, err := QueryFlag(req, "flag")
		assert.Error(t, err, "value %q", raw)
	}
}
