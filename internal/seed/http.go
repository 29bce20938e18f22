package seed

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mjuwandi/portfolio-backend/internal/store"
)

type Handler struct {
	seeder *Seeder
}

func Register(rg gin.IRoutes, seeder *Seeder) {
	h := &Handler{seeder: seeder}

	rg.POST("/seed", h.seed)
}

func (h *Handler) seed(c *gin.Context) {
	if err := h.seeder.Run(c.Request.Context()); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "seeding failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
