package publications

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mjuwandi/portfolio-backend/internal/schema"
	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type Repo struct {
	store store.Store
}

func NewRepo(st store.Store) *Repo {
	return &Repo{store: st}
}

func (r *Repo) List(ctx context.Context) ([]Publication, error) {
	docs, err := r.store.Find(ctx, Collection, bson.M{})
	if err != nil {
		return nil, err
	}

	out := make([]Publication, 0, len(docs))
	for _, doc := range docs {
		var p Publication
		if err := schema.Decode(doc, &p); err != nil {
			return nil, fmt.Errorf("publication document: %w", err)
		}
		p.normalize()
		out = append(out, p)
	}
	return out, nil
}

func (r *Repo) Create(ctx context.Context, p Publication) (string, error) {
	if err := schema.Validate(&p); err != nil {
		return "", err
	}
	return r.store.Insert(ctx, Collection, p)
}
