package projects

import (
	"context"
	"fmt"

	"github.com/mjuwandi/portfolio-backend/internal/schema"
	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type Repo struct {
	store store.Store
}

func NewRepo(st store.Store) *Repo {
	return &Repo{store: st}
}

// List returns projects matching the filter, in store return order.
func (r *Repo) List(ctx context.Context, f Filter) ([]Project, error) {
	docs, err := r.store.Find(ctx, Collection, f.Document())
	if err != nil {
		return nil, err
	}

	out := make([]Project, 0, len(docs))
	for _, doc := range docs {
		var p Project
		if err := schema.Decode(doc, &p); err != nil {
			return nil, fmt.Errorf("project document: %w", err)
		}
		p.normalize()
		out = append(out, p)
	}
	return out, nil
}

func (r *Repo) Create(ctx context.Context, p Project) (string, error) {
	if err := schema.Validate(&p); err != nil {
		return "", err
	}
	return r.store.Insert(ctx, Collection, p)
}
