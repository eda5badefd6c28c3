package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sitekit-io/sitekit/internal/config"
)

// CORS lets the builder dashboard call the owner API from configured
// origins. The public /api/v1 surface answers any origin without
// credentials, since generated sites can be hosted anywhere.
func CORS(cfg *config.Config) gin.HandlerFunc {
	owner := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Trace-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		owner.AllowAllOrigins = true
		owner.AllowCredentials = false
	} else {
		owner.AllowOrigins = cfg.CORS.AllowOrigins
	}

	ownerCORS := cors.New(owner)
	publicCORS := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
		ExposeHeaders:   []string{"X-Trace-Id"},
		MaxAge:          12 * time.Hour,
	})

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/v1/") {
			publicCORS(c)
			return
		}
		ownerCORS(c)
	}
}
