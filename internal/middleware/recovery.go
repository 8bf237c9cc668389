package middleware

import (
	"insights-srv/pkg/discord"
	"insights-srv/pkg/log"
	"insights-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery converts handler panics into the opaque 500 envelope. When a
// Discord client is configured the panic is also reported there.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Errorf(c.Request.Context(), "internal.middleware.Recovery: panic %v on %s %s",
				recovered, c.Request.Method, c.Request.URL.Path)

			response.PanicError(c, recovered, discordClient)
			c.Abort()
		}()

		c.Next()
	}
}
