package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaalakam-backend/internal/domains/auth"
	usermodel "jaalakam-backend/internal/domains/user/model"
	"jaalakam-backend/internal/shared/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type resolverFunc func(ctx context.Context, authorization string) *auth.AuthContext

func (f resolverFunc) Resolve(ctx context.Context, authorization string) *auth.AuthContext {
	return f(ctx, authorization)
}

// tokens maps a bearer header to a role; anything else resolves to guest.
func fakeResolver(tokens map[string]usermodel.Role) ContextResolver {
	return resolverFunc(func(_ context.Context, header string) *auth.AuthContext {
		role, ok := tokens[header]
		if !ok {
			return auth.Guest()
		}
		return auth.FromUser(&usermodel.User{ID: uuid.New(), Role: role})
	})
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.Use(Identity(fakeResolver(map[string]usermodel.Role{
		"Bearer member": usermodel.RoleMember,
		"Bearer author": usermodel.RoleAuthor,
		"Bearer admin":  usermodel.RoleAdmin,
	})))

	ok := func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"role": auth.FromContext(c.Request.Context()).Role})
	}
	r.GET("/public", ok)
	r.GET("/member", RequireAuthenticated(), ok)
	r.GET("/author", RequireAuthor(), ok)
	r.GET("/admin", RequireAdmin(), ok)
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, path, authorization string) (*httptest.ResponseRecorder, response.Response) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestIdentityAndGuards(t *testing.T) {
	r := newRouter()

	t.Run("Should serve public routes to guests", func(t *testing.T) {
		w, body := do(r, "/public", "Bearer garbage")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, body.Success)
		assert.Equal(t, map[string]interface{}{"role": "GUEST"}, body.Data)
	})

	cases := []struct {
		path, token string
		status      int
		code        string
	}{
		{"/member", "", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"/author", "", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"/admin", "", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"/member", "Bearer member", http.StatusOK, ""},
		{"/author", "Bearer member", http.StatusForbidden, "FORBIDDEN"},
		{"/admin", "Bearer member", http.StatusForbidden, "FORBIDDEN"},
		{"/author", "Bearer author", http.StatusOK, ""},
		{"/admin", "Bearer author", http.StatusForbidden, "FORBIDDEN"},
		{"/author", "Bearer admin", http.StatusOK, ""},
		{"/admin", "Bearer admin", http.StatusOK, ""},
	}
	for _, tc := range cases {
		t.Run("Should answer "+tc.path+" for "+tc.token, func(t *testing.T) {
			w, body := do(r, tc.path, tc.token)
			assert.Equal(t, tc.status, w.Code)
			if tc.code != "" {
				require.NotNil(t, body.Error)
				assert.Equal(t, tc.code, body.Error.Code)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newRouter()

	t.Run("Should generate an id", func(t *testing.T) {
		w, _ := do(r, "/public", "")
		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("Should echo a caller supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set(RequestIDHeader, "trace-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	w, body := do(newRouter(), "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://jaalakam.example"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://jaalakam.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "https://jaalakam.example", w.Header().Get("Access-Control-Allow-Origin"))
}
