package contact

import (
	"context"

	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type Repo struct {
	store store.Store
}

func NewRepo(st store.Store) *Repo {
	return &Repo{store: st}
}

func (r *Repo) Create(ctx context.Context, m Message) (string, error) {
	return r.store.Insert(ctx, Collection, m)
}
