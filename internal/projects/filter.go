package projects

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter holds the optional list-endpoint parameters. All are
// independently optional and conjunctive when combined; the zero Filter
// matches every project.
type Filter struct {
	Domain string
	Year   int
	Query  string
}

// Document translates the filter into a store-native expression:
// exact match on domain and year, and a case-insensitive substring
// match over title, summary, or any tag for the free-text query. The
// query is quoted so it is matched literally, not as a pattern.
func (f Filter) Document() bson.M {
	q := bson.M{}
	if f.Domain != "" {
		q["domain"] = f.Domain
	}
	if f.Year != 0 {
		q["year"] = f.Year
	}
	if f.Query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		q["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"summary": re},
			bson.M{"tags": re},
		}
	}
	return q
}
