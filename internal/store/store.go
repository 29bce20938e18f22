package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUnavailable is returned by every operation when the document store
// is not configured or not reachable. Callers distinguish it from an
// empty result, which is never an error.
var ErrUnavailable = errors.New("document store unavailable")

// Store is a thin adapter over a collection-oriented document store.
// Implementations must be safe for concurrent use by multiple in-flight
// requests. Find returns documents in store-defined order; callers must
// not assume that order is stable across calls.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (string, error)
	Find(ctx context.Context, collection string, filter bson.M) ([]bson.Raw, error)
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	Collections(ctx context.Context) ([]string, error)
}

// Unavailable returns a Store whose every operation fails with
// ErrUnavailable. The service runs on it when DATABASE_URL is unset or
// the store cannot be reached at startup.
func Unavailable() Store {
	return unavailable{}
}

type unavailable struct{}

func (unavailable) Insert(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (unavailable) Find(context.Context, string, bson.M) ([]bson.Raw, error) {
	return nil, ErrUnavailable
}

func (unavailable) Count(context.Context, string, bson.M) (int64, error) {
	return 0, ErrUnavailable
}

func (unavailable) Collections(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}
