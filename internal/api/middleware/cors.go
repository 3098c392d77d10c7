package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS restricts cross-origin calls to the configured domains. An empty
// list allows every origin; cors.New would otherwise panic on a config with
// no origins at all.
func ConfigCORS(allowedDomains []string) gin.HandlerFunc {
	conf := cors.DefaultConfig()
	if len(allowedDomains) == 0 {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = allowedDomains
	}
	conf.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	conf.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-Id"}
	conf.MaxAge = 12 * time.Hour

	return cors.New(conf)
}
