package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/mjuwandi/portfolio-backend/internal/api/http"
	"github.com/mjuwandi/portfolio-backend/internal/api/http/middleware"
	"github.com/mjuwandi/portfolio-backend/internal/blog"
	"github.com/mjuwandi/portfolio-backend/internal/contact"
	"github.com/mjuwandi/portfolio-backend/internal/projects"
	"github.com/mjuwandi/portfolio-backend/internal/publications"
	"github.com/mjuwandi/portfolio-backend/internal/seed"
	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Store          store.Store
	DatabaseURLSet bool
	DatabaseName   string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// Wide-open CORS: the portfolio frontend may be served from anywhere.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestID())

	statusHandler := httpapi.NewStatusHandler(dep.ServiceName, dep.Version, dep.Store, dep.DatabaseURLSet, dep.DatabaseName)
	statusHandler.RegisterRoutes(r)

	projects.Register(r.Group("/projects"), projects.NewRepo(dep.Store))
	publications.Register(r.Group("/publications"), publications.NewRepo(dep.Store))
	blog.Register(r.Group("/blog"), blog.NewRepo(dep.Store))
	contact.Register(r.Group("/contact"), contact.NewRepo(dep.Store))

	seed.Register(r, seed.NewSeeder(dep.Store))

	return r
}
