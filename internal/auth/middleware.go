package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const decisionKey = "auth_decision"

// Middleware rejects unauthorized requests and stores the Decision of
// authorized ones in the gin context
func Middleware(g *Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := g.Authorize(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			var authErr *Error
			if !errors.As(err, &authErr) {
				authErr = reject(http.StatusInternalServerError, "Server error", err)
			}

			log.Warn().
				Err(authErr.Err).
				Int("status", authErr.Status).
				Str("path", c.Request.URL.Path).
				Msg(authErr.Message)

			c.AbortWithStatusJSON(authErr.Status, gin.H{"error": authErr.Message})
			return
		}

		c.Set(decisionKey, *decision)
		c.Next()
	}
}

// FromContext returns the Decision stored by Middleware
func FromContext(c *gin.Context) (Decision, bool) {
	v, ok := c.Get(decisionKey)
	if !ok {
		return Decision{}, false
	}
	d, ok := v.(Decision)
	return d, ok
}
