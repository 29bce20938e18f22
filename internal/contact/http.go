package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mjuwandi/portfolio-backend/internal/schema"
	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type Handler struct {
	repo *Repo
}

func Register(rg gin.IRoutes, repo *Repo) {
	h := &Handler{repo: repo}

	rg.POST("", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var msg Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		body := gin.H{"error": "invalid body"}
		if details := schema.Describe(err); details != nil {
			body["details"] = details
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}

	// Unlike the read paths, a write must not silently succeed when the
	// store is down.
	if _, err := h.repo.Create(c.Request.Context(), msg); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}
