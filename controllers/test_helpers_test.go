// file: controllers/test_helpers_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"go-clan-admin/middleware"
	"go-clan-admin/models"
	"go-clan-admin/services"
)

const (
	testEmail    = "tarek@admin.com"
	testPassword = "tarek123"
)

// testEnv is a router with sessions and the admin gate, ready for routes.
type testEnv struct {
	router    *gin.Engine
	authority *services.SessionAuthority
	gate      *middleware.Gate
	admin     gin.HandlerFunc
}

// setupTestRouter creates a gin engine with the cookie session store and an
// admin gate backed by it.
func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions(services.SessionCookieName, cookie.NewStore([]byte("test-secret"))))

	authority := services.NewSessionAuthority(
		services.StaticVerifier{Email: testEmail, Password: testPassword},
		models.AdminIdentity{ID: "admin-1", Username: "Admin Tarek", Email: testEmail, Roles: []string{models.RoleAdmin}, IsAdmin: true},
		168*time.Hour, false)
	gate := middleware.NewGate(nil, middleware.SessionResolver{Authority: authority})

	return &testEnv{router: router, authority: authority, gate: gate, admin: middleware.AdminRequired(gate)}
}

// SetSession issues an admin session through a helper route and returns the
// session cookie for later requests.
func (e *testEnv) SetSession(t *testing.T) *http.Cookie {
	t.Helper()
	e.router.GET("/test/session", func(c *gin.Context) {
		if err := e.authority.IssueSession(sessions.Default(c)); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	w := e.do(http.MethodGet, "/test/session", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, ck := range w.Result().Cookies() {
		if ck.Name == services.SessionCookieName {
			return ck
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

// do sends body (raw string or JSON-encoded value) with an optional cookie.
func (e *testEnv) do(method, path string, body any, ck *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if ck != nil {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	out := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
