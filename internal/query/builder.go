// Package query translates inbound request query parameters into the
// structured filter, sort, paging and projection specs consumed by the
// store layer.
package query

import "net/url"

// AllowedTerms is the canonical set of query parameters that may filter the
// events collection. Every other parameter name is silently dropped.
var AllowedTerms = []string{"captureType", "method", "resourceType"}

// Clause is a single equality condition: Field must equal Value.
// Values are carried as raw strings with no type coercion.
type Clause struct {
	Field string
	Value string
}

// Filter is an ordered conjunction of equality clauses. An empty Filter is
// still a conjunction (an AND of zero clauses) and matches every document;
// the store layer is responsible for rendering it as "no filter".
type Filter struct {
	And []Clause
}

// Empty reports whether the filter contains no clauses.
func (f Filter) Empty() bool {
	return len(f.And) == 0
}

// Build maps the request's query parameters to a conjunction filter.
// Allowed terms are visited in AllowedTerms order, not request order, so the
// result is deterministic for a given parameter set. For repeated
// parameters the first value wins. Building from the same parameters twice
// yields structurally identical filters.
func Build(params url.Values) Filter {
	var f Filter
	for _, term := range AllowedTerms {
		if _, ok := params[term]; !ok {
			continue
		}
		f.And = append(f.And, Clause{Field: term, Value: params.Get(term)})
	}
	return f
}
