package projects

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type Handler struct {
	repo *Repo
}

func Register(rg gin.IRoutes, repo *Repo) {
	h := &Handler{repo: repo}

	rg.GET("", h.list)
}

func (h *Handler) list(c *gin.Context) {
	f := Filter{
		Domain: c.Query("domain"),
		Query:  c.Query("q"),
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
		f.Year = year
	}

	items, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		// Reads degrade to an empty list when the store is down.
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusOK, []Project{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, items)
}
