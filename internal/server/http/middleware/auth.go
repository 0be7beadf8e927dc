package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/fixhive/fixhive/internal/pkg/auth"
)

const (
	// SubjectIDContextKey is a gin context key for the authenticated subject.
	SubjectIDContextKey = "subjectID"
	// SubjectRoleContextKey is a gin context key for the subject's role.
	SubjectRoleContextKey = "subjectRole"
	authCookieName        = "fixhive_token"
)

// TokenParser validates bearer credentials and extracts the subject.
type TokenParser interface {
	ParseToken(token string) (int64, pkgAuth.Role, error)
}

// AuthRequired ensures the caller holds a valid token for the given role.
// A missing or invalid token yields 401; a valid token of the wrong role 403.
func AuthRequired(parser TokenParser, role pkgAuth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		subjectID, subjectRole, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if subjectRole != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Set(SubjectIDContextKey, subjectID)
		c.Set(SubjectRoleContextKey, subjectRole)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}
