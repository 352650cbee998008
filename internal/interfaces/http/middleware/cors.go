package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds CORS middleware configuration
type CORSConfig struct {
	AllowOrigin      string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
}

// DefaultCORSConfig returns the permissive configuration the storefront
// expects: any origin, the full method list and the standard header
// allow-list.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigin:  "*",
		AllowMethods: []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
		AllowHeaders: []string{
			"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version",
			"Content-Length", "Content-MD5", "Content-Type", "Date", "X-Api-Version",
		},
		AllowCredentials: true,
	}
}

// CORS returns a CORS middleware with the default configuration
func CORS() gin.HandlerFunc {
	return CORSWithConfig(DefaultCORSConfig())
}

// CORSWithConfig returns a CORS middleware. The headers are set on every
// response, not only preflights; OPTIONS requests are answered with an
// empty 200 body.
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	methods := strings.Join(cfg.AllowMethods, ",")
	headers := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		c.Header("Access-Control-Allow-Origin", cfg.AllowOrigin)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
