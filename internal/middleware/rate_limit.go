package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"aroma_front_end/internal/cache"
)

const (
	loginMaxAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// LoginRateLimit throttles admin password attempts per client IP. The
// gate behind it is cosmetic, so slowing guessing down is the only
// protection this side of the backend offers.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		client := cache.RedisClient
		if client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := "login_attempts:" + c.ClientIP()

		attempts, err := client.Incr(ctx, key).Result()
		if err != nil {
			// Redis trouble never blocks the login path.
			c.Next()
			return
		}
		if attempts == 1 {
			client.Expire(ctx, key, loginCooldown)
		}

		if attempts > loginMaxAttempts {
			ttl := client.TTL(ctx, key).Val()
			minutes := int(ttl.Minutes()) + 1
			msg := fmt.Sprintf("Too many attempts. Try again in %d minutes", minutes)
			c.Redirect(http.StatusSeeOther, "/admin?alert="+url.QueryEscape(msg))
			c.Abort()
			return
		}

		c.Next()
	}
}
