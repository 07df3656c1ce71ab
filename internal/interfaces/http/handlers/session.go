// internal/interfaces/http/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
)

// getOrCreateSessionID returns the storefront session id from the
// session cookie, minting a new one when absent. Every cart and
// checkout is keyed by this id.
func getOrCreateSessionID(c *gin.Context, cfg *config.Config) string {
	sessionID, err := c.Cookie(cfg.Session.CookieName)
	if err == nil && sessionID != "" {
		return sessionID
	}

	sessionID = uuid.NewString()
	maxAge := int(cfg.Session.CartTTL.Seconds())
	c.SetCookie(cfg.Session.CookieName, sessionID, maxAge, "/", "", cfg.IsProduction(), true)
	return sessionID
}
