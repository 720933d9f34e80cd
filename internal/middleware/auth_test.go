package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurbatov/social-network-api/internal/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(tokens *auth.Manager, blacklist *auth.Blacklist) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Auth(tokens, blacklist), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt(ContextUserID)})
	})
	return r
}

func TestAuthMissingToken(t *testing.T) {
	r := protectedRouter(auth.NewManager("s"), auth.NewBlacklist())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Error"`)
}

func TestAuthBearerToken(t *testing.T) {
	tokens := auth.NewManager("s")
	r := protectedRouter(tokens, auth.NewBlacklist())

	token, err := tokens.IssueAccessToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuthQueryTokenFallback(t *testing.T) {
	tokens := auth.NewManager("s")
	r := protectedRouter(tokens, auth.NewBlacklist())

	token, err := tokens.IssueAccessToken(7)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestAuthRevokedTokenRejected(t *testing.T) {
	tokens := auth.NewManager("s")
	blacklist := auth.NewBlacklist()
	r := protectedRouter(tokens, blacklist)

	token, err := tokens.IssueAccessToken(7)
	require.NoError(t, err)
	blacklist.Revoke(token)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMalformedHeaderRejected(t *testing.T) {
	r := protectedRouter(auth.NewManager("s"), auth.NewBlacklist())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
