package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mjuwandi/portfolio-backend/internal/store"
)

const maxCollectionNames = 10

type StatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type StatusHandler struct {
	serviceName  string
	version      string
	store        store.Store
	urlSet       bool
	databaseName string
}

func NewStatusHandler(serviceName, version string, st store.Store, urlSet bool, databaseName string) *StatusHandler {
	return &StatusHandler{
		serviceName:  serviceName,
		version:      version,
		store:        st,
		urlSet:       urlSet,
		databaseName: databaseName,
	}
}

func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello from " + h.serviceName + "!",
		"version": h.version,
	})
}

// Status probes the document store and reports the result. It never
// fails: probe errors are rendered as a truncated status string.
func (h *StatusHandler) Status(c *gin.Context) {
	resp := StatusResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(h.urlSet),
		DatabaseName:     h.databaseName,
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	probeCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	names, err := h.store.Collections(probeCtx)
	switch {
	case errors.Is(err, store.ErrUnavailable):
		// Leave the defaults: store not configured.
	case err != nil:
		resp.Database = "connected but error: " + truncate(err.Error(), 80)
		resp.ConnectionStatus = "connected"
	default:
		resp.Database = "connected"
		resp.ConnectionStatus = "connected"
		if len(names) > maxCollectionNames {
			names = names[:maxCollectionNames]
		}
		resp.Collections = names
	}

	c.JSON(http.StatusOK, resp)
}

func (h *StatusHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/test", h.Status)
}

func setOrNot(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
