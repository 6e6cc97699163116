package query

import (
	"net/url"
	"strings"

	"github.com/cobia-app/cobia-api/internal/domain"
)

// unsafeTerms are store operator names that allow arbitrary code execution
// and must never appear anywhere in a query string.
var unsafeTerms = []string{"$where"}

// CheckSafety inspects every query parameter name and value,
// case-insensitively, for unsafe operator substrings. It must run before
// Build. Returns a ValidationError wrapping domain.ErrUnsafeQuery when an
// unsafe term is found, nil otherwise.
func CheckSafety(params url.Values) error {
	for name, values := range params {
		if containsUnsafeTerm(name) {
			return domain.NewValidationError("query", "contains an unsafe term", domain.ErrUnsafeQuery)
		}
		for _, v := range values {
			if containsUnsafeTerm(v) {
				return domain.NewValidationError("query", "contains an unsafe term", domain.ErrUnsafeQuery)
			}
		}
	}
	return nil
}

func containsUnsafeTerm(s string) bool {
	lowered := strings.ToLower(s)
	for _, term := range unsafeTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
