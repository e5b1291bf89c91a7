package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultAPIURL = "http://localhost:8000"

type Config struct {
	APIURL         string
	APIToken       string // Telegram init data handed over by the host
	LaunchURL      string
	RequestTimeout time.Duration

	MockAPIAddr      string
	BotToken         string
	AdminTelegramIDs []int64
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[config] invalid %s=%q, using %s", k, v, def)
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		APIURL:           os.Getenv("API_URL"),
		APIToken:         os.Getenv("API_TOKEN"),
		LaunchURL:        os.Getenv("LAUNCH_URL"),
		RequestTimeout:   getenvDuration("REQUEST_TIMEOUT", 10*time.Second),
		MockAPIAddr:      getenv("MOCK_API_ADDR", ":8000"),
		BotToken:         os.Getenv("BOT_TOKEN"),
		AdminTelegramIDs: parseIDs(os.Getenv("ADMIN_TELEGRAM_IDS")),
	}
	log.Printf("[config] API_URL=%s", cfg.APIURL)
	log.Printf("[config] REQUEST_TIMEOUT=%s", cfg.RequestTimeout)
	return cfg
}

func parseIDs(v string) []int64 {
	var out []int64
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("[config] skipping invalid telegram id %q", part)
			continue
		}
		out = append(out, id)
	}
	return out
}

// Source reports the injected base URL once it is available.
type Source func() (string, bool)

// EnvSource reads the base URL from an environment variable.
func EnvSource(key string) Source {
	return func() (string, bool) {
		v := os.Getenv(key)
		return v, v != ""
	}
}

// Resolution parameters for the injected base URL.
const (
	PollInterval = 100 * time.Millisecond
	ResolveWait  = 2000 * time.Millisecond
)

// ResolveBaseURL polls src every poll until it yields a value, giving up
// after wait and returning fallback instead.
func ResolveBaseURL(ctx context.Context, src Source, poll, wait time.Duration, fallback string) string {
	if v, ok := src(); ok {
		return v
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()
	deadline := time.NewTimer(wait)
	defer deadline.Stop()

	for {
		select {
		case <-ticker.C:
			if v, ok := src(); ok {
				return v
			}
		case <-deadline.C:
			log.Printf("[config] base URL not available after %s, using %s", wait, fallback)
			return fallback
		case <-ctx.Done():
			return fallback
		}
	}
}
