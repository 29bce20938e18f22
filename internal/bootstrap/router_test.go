package bootstrap_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjuwandi/portfolio-backend/internal/bootstrap"
	"github.com/mjuwandi/portfolio-backend/internal/store"
	"github.com/mjuwandi/portfolio-backend/internal/store/storetest"
)

func newRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "Portfolio Backend",
		Version:        "test",
		Store:          st,
		DatabaseURLSet: true,
		DatabaseName:   "portfolio",
	})
}

func TestRouterWiresAllEndpoints(t *testing.T) {
	r := newRouter(storetest.NewFake())

	cases := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/test", "", http.StatusOK},
		{http.MethodPost, "/seed", "", http.StatusOK},
		{http.MethodGet, "/projects", "", http.StatusOK},
		{http.MethodGet, "/publications", "", http.StatusOK},
		{http.MethodGet, "/blog", "", http.StatusOK},
		{http.MethodPost, "/contact", `{"name":"Ada","email":"a@b.c","message":"hi"}`, http.StatusOK},
	}

	for _, tc := range cases {
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(tc.method, tc.path, nil)
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, tc.want, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestRouterSeedThenList(t *testing.T) {
	r := newRouter(storetest.NewFake())

	req := httptest.NewRequest(http.MethodPost, "/seed", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/projects?q=churn", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Customer Churn Prediction")
}

func TestRouterEchoesRequestID(t *testing.T) {
	r := newRouter(store.Unavailable())

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-Id"))
}

func TestRouterCORSAllowsAnyOrigin(t *testing.T) {
	r := newRouter(store.Unavailable())

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
