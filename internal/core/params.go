// aykutspohr | 2026
// params.go

package core

import (
	"fmt"
	"net/http"
	"strconv"
)

// QueryFlag parses an optional boolean query parameter. An absent
// parameter is false; a present one must be a value strconv.ParseBool
// accepts, mirroring the 400-on-malformed policy of the enum guards.
func QueryFlag(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean value", name)
	}

	return value, nil
}
