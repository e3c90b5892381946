package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-mohammad-rakib/employee-management-backend/domain"
	"github.com/sheikh-mohammad-rakib/employee-management-backend/utils"
)

const testSecret = "test-secret-key-at-least-32-characters!"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(manager *utils.JWTManager) *gin.Engine {
	r := gin.New()

	authed := r.Group("/", RequireAuth(manager))
	authed.GET("/me", func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "role": string(user.Role)})
	})
	authed.GET("/elevated", RequireElevated(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	authed.GET("/users/:id", RequireSelfOrElevated("id"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func issueToken(t *testing.T, manager *utils.JWTManager, id string, role domain.Role) string {
	t.Helper()
	token, err := manager.GenerateToken(domain.AuthUser{ID: id, Email: id + "@corp.com", Role: role})
	require.NoError(t, err)
	return token
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	manager := utils.NewJWTManager(testSecret, time.Hour)
	r := newTestRouter(manager)

	w := doRequest(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	manager := utils.NewJWTManager(testSecret, time.Hour)
	r := newTestRouter(manager)

	token := issueToken(t, manager, "u1", domain.RoleEmployee)
	w := doRequest(r, "/me", "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	manager := utils.NewJWTManager(testSecret, time.Hour)
	r := newTestRouter(manager)

	w := doRequest(r, "/me", "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := utils.NewJWTManager(testSecret, -time.Second)
	r := newTestRouter(utils.NewJWTManager(testSecret, time.Hour))

	token := issueToken(t, expired, "u1", domain.RoleEmployee)
	w := doRequest(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_AttachesIdentity(t *testing.T) {
	manager := utils.NewJWTManager(testSecret, time.Hour)
	r := newTestRouter(manager)

	token := issueToken(t, manager, "u1", domain.RoleEmployee)
	w := doRequest(r, "/me", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"employee"`)
}

func TestRequireElevated(t *testing.T) {
	manager := utils.NewJWTManager(testSecret, time.Hour)
	r := newTestRouter(manager)

	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleEmployee, http.StatusForbidden},
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleHR, http.StatusOK},
	}
	for _, tc := range cases {
		token := issueToken(t, manager, "u-"+string(tc.role), tc.role)
		w := doRequest(r, "/elevated", "Bearer "+token)
		assert.Equal(t, tc.want, w.Code, "role %s", tc.role)
	}
}

func TestRequireSelfOrElevated(t *testing.T) {
	manager := utils.NewJWTManager(testSecret, time.Hour)
	r := newTestRouter(manager)

	employeeToken := issueToken(t, manager, "emp-1", domain.RoleEmployee)
	hrToken := issueToken(t, manager, "hr-1", domain.RoleHR)

	// Own resource.
	w := doRequest(r, "/users/emp-1", "Bearer "+employeeToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Someone else's resource.
	w = doRequest(r, "/users/emp-2", "Bearer "+employeeToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Elevated role reaches anyone's resource.
	w = doRequest(r, "/users/emp-1", "Bearer "+hrToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
