package seed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjuwandi/portfolio-backend/internal/blog"
	"github.com/mjuwandi/portfolio-backend/internal/contact"
	"github.com/mjuwandi/portfolio-backend/internal/projects"
	"github.com/mjuwandi/portfolio-backend/internal/publications"
	"github.com/mjuwandi/portfolio-backend/internal/seed"
	"github.com/mjuwandi/portfolio-backend/internal/store"
	"github.com/mjuwandi/portfolio-backend/internal/store/storetest"
)

func TestSeedPopulatesEmptyCollections(t *testing.T) {
	fake := storetest.NewFake()

	require.NoError(t, seed.NewSeeder(fake).Run(context.Background()))

	assert.Equal(t, 3, fake.Len(projects.Collection))
	assert.Equal(t, 2, fake.Len(publications.Collection))
	assert.Equal(t, 4, fake.Len(blog.Collection))
	assert.Equal(t, 0, fake.Len(contact.Collection))
}

func TestSeedIsIdempotentPerCollection(t *testing.T) {
	fake := storetest.NewFake()
	seeder := seed.NewSeeder(fake)
	ctx := context.Background()

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	assert.Equal(t, 3, fake.Len(projects.Collection))
	assert.Equal(t, 2, fake.Len(publications.Collection))
	assert.Equal(t, 4, fake.Len(blog.Collection))
}

func TestSeedSkipsNonEmptyCollection(t *testing.T) {
	fake := storetest.NewFake()
	ctx := context.Background()

	_, err := fake.Insert(ctx, projects.Collection, projects.Project{
		Title: "Existing", Slug: "existing", Summary: "already here",
		Domain: "Other", Year: 2020,
	})
	require.NoError(t, err)

	require.NoError(t, seed.NewSeeder(fake).Run(ctx))

	// Projects were already populated; the other collections still seed.
	assert.Equal(t, 1, fake.Len(projects.Collection))
	assert.Equal(t, 2, fake.Len(publications.Collection))
	assert.Equal(t, 4, fake.Len(blog.Collection))
}

func TestSeedEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fake := storetest.NewFake()

	r := gin.New()
	seed.Register(r, seed.NewSeeder(fake))

	req := httptest.NewRequest(http.MethodPost, "/seed", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	assert.Equal(t, 3, fake.Len(projects.Collection))
}

func TestSeedEndpointStoreUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	seed.Register(r, seed.NewSeeder(store.Unavailable()))

	req := httptest.NewRequest(http.MethodPost, "/seed", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "database not configured")
}
