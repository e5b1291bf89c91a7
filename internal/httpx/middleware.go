// Package httpx holds the gin middleware of the mock API.
package httpx

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	initdata "github.com/telegram-mini-apps/init-data-golang"
)

const (
	ridKey      = "rid"
	telegramKey = "tg"
	tokenHeader = "X-API-Token"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ridKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get(ridKey)
		tg := int64(0)
		if u, ok := TelegramUser(c); ok {
			tg = u.ID
		}
		log.Printf("[http] rid=%v %s %s tg=%d status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, tg, c.Writer.Status(), time.Since(start))
	}
}

// InitData validates the X-API-Token header and stores the Telegram user
// in the context. An empty botToken skips the signature check. Requests
// without a valid token pass through; handlers decide whether to reject.
func InitData(botToken string, expIn time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(tokenHeader)
		if token == "" {
			c.Next()
			return
		}
		if botToken != "" {
			if err := initdata.Validate(token, botToken, expIn); err != nil {
				log.Printf("[http] rejecting init data: %v", err)
				c.Next()
				return
			}
		}
		parsed, err := initdata.Parse(token)
		if err != nil || parsed.User.ID == 0 {
			c.Next()
			return
		}
		c.Set(telegramKey, parsed.User)
		c.Next()
	}
}

// TelegramUser returns the user set by InitData.
func TelegramUser(c *gin.Context) (initdata.User, bool) {
	v, ok := c.Get(telegramKey)
	if !ok {
		return initdata.User{}, false
	}
	u, ok := v.(initdata.User)
	return u, ok
}
