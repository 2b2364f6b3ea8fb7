package utils

import (
	"context"
	"net/http"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ParsePagination reads page/limit query params and converts them to
// skip/limit values, clamping limit to maxLimit.
func ParsePagination(r *http.Request, defLimit, maxLimit int64) (skip, limit int64) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return (page - 1) * limit, limit
}

// ParseSort maps a sort keyword to a bson sort document, falling back
// to def for unknown or empty keywords.
func ParseSort(keyword string, def bson.D, known map[string]bson.D) bson.D {
	if s, ok := known[keyword]; ok {
		return s
	}
	return def
}

// RegexFilter builds a case-insensitive substring match on field. The
// term is quoted so user input is never interpreted as a pattern.
func RegexFilter(field, term string) bson.M {
	return bson.M{field: bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}}
}

// FindAndDecode runs a Find and decodes every document into a slice of T.
// Always returns a non-nil slice so empty results serialize as [].
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
