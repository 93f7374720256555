package middleware

import (
	"strconv"
	"strings"

	"solar_quote/internal/infrastructure/identity"
	"solar_quote/internal/infrastructure/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const HeaderAgentID = "X-Agent-ID"

// AgentIdentity copies the X-Agent-ID header into the request context.
// A missing or malformed header leaves the agent unresolved; the request is
// never rejected for it.
func AgentIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderAgentID))
		if raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				logging.L().Warn("[identity][middleware] ignoring malformed agent id", zap.String("value", raw))
			} else {
				c.Request = c.Request.WithContext(identity.WithAgentID(c.Request.Context(), id))
			}
		}
		c.Next()
	}
}
