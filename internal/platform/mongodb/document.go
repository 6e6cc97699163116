package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/cobia-app/cobia-api/internal/query"
)

// filterDocument renders a conjunction filter as a driver filter document.
// A non-empty filter becomes {$and: [{field: {$eq: value}}, ...]} with
// clauses in the filter's declared order. The empty conjunction matches all
// documents, which the driver expects as an empty document rather than an
// empty $and array.
func filterDocument(f query.Filter) bson.D {
	if f.Empty() {
		return bson.D{}
	}

	clauses := make(bson.A, 0, len(f.And))
	for _, c := range f.And {
		clauses = append(clauses, bson.D{
			{Key: c.Field, Value: bson.D{{Key: "$eq", Value: c.Value}}},
		})
	}
	return bson.D{{Key: "$and", Value: clauses}}
}

// sortDocument renders sort criteria in declared order, 1 for ascending and
// -1 for descending.
func sortDocument(fields []query.SortField) bson.D {
	doc := make(bson.D, 0, len(fields))
	for _, f := range fields {
		dir := 1
		if f.Descending {
			dir = -1
		}
		doc = append(doc, bson.E{Key: f.Field, Value: dir})
	}
	return doc
}

// projectionDocument renders a field exclusion list as a projection document.
// Returns nil when nothing is excluded so the caller can skip the option.
func projectionDocument(exclude []string) bson.D {
	if len(exclude) == 0 {
		return nil
	}
	doc := make(bson.D, 0, len(exclude))
	for _, field := range exclude {
		doc = append(doc, bson.E{Key: field, Value: 0})
	}
	return doc
}
