package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// legacyTokenHeader is the header the admin panel sends its token in.
const legacyTokenHeader = "atoken"

// TokenVerifier checks a token signature and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTAuthAdminMiddleware admits requests carrying a valid token whose subject
// equals expectedSubject. The token is read from "Authorization: Bearer" and
// falls back to the atoken header.
func JWTAuthAdminMiddleware(verifier TokenVerifier, expectedSubject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := adminToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized Login Again"})
			return
		}

		subject, err := verifier.Verify(tokenString)
		if err != nil || subject != expectedSubject {
			zap.L().Warn("Rejected admin token", zap.String("ip", getClientIP(c)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Not Authorized Login Again"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}

func adminToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.GetHeader(legacyTokenHeader))
}
