// Package seed populates the content collections with sample data. Each
// collection is seeded independently and only while it is empty, so
// repeated runs leave already-populated collections untouched.
package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/mjuwandi/portfolio-backend/internal/blog"
	"github.com/mjuwandi/portfolio-backend/internal/projects"
	"github.com/mjuwandi/portfolio-backend/internal/publications"
	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type Seeder struct {
	projects     *projects.Repo
	publications *publications.Repo
	blog         *blog.Repo
	store        store.Store
}

func NewSeeder(st store.Store) *Seeder {
	return &Seeder{
		projects:     projects.NewRepo(st),
		publications: publications.NewRepo(st),
		blog:         blog.NewRepo(st),
		store:        st,
	}
}

// Run seeds each empty content collection. The emptiness check is
// existence-only: adding fields to the samples later has no effect on a
// collection that already holds documents.
func (s *Seeder) Run(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, projects.Collection)
	if err != nil {
		return err
	}
	if empty {
		for _, p := range sampleProjects() {
			if _, err := s.projects.Create(ctx, p); err != nil {
				return fmt.Errorf("seed %s: %w", projects.Collection, err)
			}
		}
	}

	empty, err = s.isEmpty(ctx, publications.Collection)
	if err != nil {
		return err
	}
	if empty {
		for _, p := range samplePublications() {
			if _, err := s.publications.Create(ctx, p); err != nil {
				return fmt.Errorf("seed %s: %w", publications.Collection, err)
			}
		}
	}

	empty, err = s.isEmpty(ctx, blog.Collection)
	if err != nil {
		return err
	}
	if empty {
		for _, p := range samplePosts() {
			if _, err := s.blog.Create(ctx, p); err != nil {
				return fmt.Errorf("seed %s: %w", blog.Collection, err)
			}
		}
	}

	return nil
}

func (s *Seeder) isEmpty(ctx context.Context, collection string) (bool, error) {
	n, err := s.store.Count(ctx, collection, bson.M{})
	if err != nil {
		return false, fmt.Errorf("count %s: %w", collection, err)
	}
	return n == 0, nil
}
