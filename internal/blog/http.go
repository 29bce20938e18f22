package blog

import (
	"errors"
	"net/http"

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
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusOK, []Post{})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blog posts"})
		return
	}

	c.JSON(http.StatusOK, items)
}
