package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"maquete-admin-backend/internal/config"
	"maquete-admin-backend/internal/models"
)

// Realm is sent in the WWW-Authenticate challenge on failed auth.
const Realm = "Maquetes Admin"

// BasicAuth guards the admin pages and the JSON API. Credentials are
// compared in constant time against the two configured secrets; there
// is no session or token, the pair is checked on every call.
func BasicAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || !credentialsMatch(cfg, username, password) {
			c.Header("WWW-Authenticate", `Basic realm="`+Realm+`"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "unauthorized",
			})
			return
		}
		c.Next()
	}
}

func credentialsMatch(cfg *config.Config, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(cfg.AdminPassword)) == 1
	return userOK && passOK
}
