package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkurbatov/social-network-api/internal/auth"
)

// Context keys populated by Auth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextToken  = "token"
)

// Auth validates the bearer token and threads the caller's identity into
// the request context. The websocket route cannot set headers, so a
// `token` query parameter is accepted as a fallback.
func Auth(tokens *auth.Manager, blacklist *auth.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			unauthenticated(c)
			return
		}
		if blacklist.Contains(tokenString) {
			unauthenticated(c)
			return
		}

		userID, err := tokens.ParseAccessToken(tokenString)
		if err != nil {
			unauthenticated(c)
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "Error",
		"message": "Unauthenticated",
		"data":    []any{},
	})
}
