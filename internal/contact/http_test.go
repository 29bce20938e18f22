package contact_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjuwandi/portfolio-backend/internal/contact"
	"github.com/mjuwandi/portfolio-backend/internal/store"
	"github.com/mjuwandi/portfolio-backend/internal/store/storetest"
)

func newRouter(st store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	contact.Register(r.Group("/contact"), contact.NewRepo(st))
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestSubmitContact(t *testing.T) {
	fake := storetest.NewFake()

	rr := post(newRouter(fake), `{"name":"Ada","email":"ada@example.com","message":"Hi there"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"received"}`, rr.Body.String())
	assert.Equal(t, 1, fake.Len(contact.Collection))
}

func TestSubmitContactMissingFields(t *testing.T) {
	fake := storetest.NewFake()

	rr := post(newRouter(fake), `{"name":"Ada"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "email")
	assert.Contains(t, rr.Body.String(), "message")
	assert.Equal(t, 0, fake.Len(contact.Collection))
}

func TestSubmitContactMalformedBody(t *testing.T) {
	rr := post(newRouter(storetest.NewFake()), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmitContactEmailFormatNotChecked(t *testing.T) {
	fake := storetest.NewFake()

	rr := post(newRouter(fake), `{"name":"Ada","email":"not-an-email","message":"Hi"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, fake.Len(contact.Collection))
}

func TestSubmitContactStoreUnavailable(t *testing.T) {
	rr := post(newRouter(store.Unavailable()), `{"name":"Ada","email":"ada@example.com","message":"Hi"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "database not configured")
}
