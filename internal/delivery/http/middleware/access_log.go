package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
	skip   map[string]bool
}

// NewAccessLogMiddleware logs one line per request. Paths listed in skip
// (probes, scrapes) are served without a log line.
func NewAccessLogMiddleware(logger *log.Logger, skip ...string) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	m := &AccessLogMiddleware{logger: logger, skip: make(map[string]bool, len(skip))}
	for _, p := range skip {
		m.skip[p] = true
	}
	return m
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		err := c.Next()
		if m.skip[c.Path()] {
			return err
		}

		m.logger.Printf(
			"[HTTP] access | rid=%s sid=%s ip=%s method=%s path=%s status=%d latency=%s resp_bytes=%d ua=%q",
			rid, SessionID(c), c.IP(), c.Method(), c.OriginalURL(), c.Response().StatusCode(),
			time.Since(start), len(c.Response().Body()), c.Get("User-Agent"),
		)
		return err
	}
}
