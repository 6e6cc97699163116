package query

// DefaultFetchSize is the fixed page size for event queries. Paging beyond
// the first page is not reachable in this version.
const DefaultFetchSize = 1000

// SortField orders results by one field.
type SortField struct {
	Field      string
	Descending bool
}

// EventSort is the fixed ordering for event queries: dateTime descending,
// url ascending, _id descending as a stable tie-break.
func EventSort() []SortField {
	return []SortField{
		{Field: "dateTime", Descending: true},
		{Field: "url"},
		{Field: "_id", Descending: true},
	}
}

// EventProjection is the fixed set of fields excluded from returned event
// documents.
func EventProjection() []string {
	return []string{"tabId", "requestId", "origin"}
}

// Spec bundles everything the store needs to run one find operation.
type Spec struct {
	Filter  Filter
	Sort    []SortField
	Limit   int64
	Exclude []string
}

// EventSpec assembles the full find spec for the events collection from an
// already-built filter: fixed sort criteria, fixed projection and the
// default fetch size.
func EventSpec(f Filter) Spec {
	return Spec{
		Filter:  f,
		Sort:    EventSort(),
		Limit:   DefaultFetchSize,
		Exclude: EventProjection(),
	}
}
