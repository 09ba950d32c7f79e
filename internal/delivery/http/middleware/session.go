package middleware

import (
	"log"
	"time"

	"tradeaskill/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxSessionIDKey = "session_id"

type SessionMiddleware struct {
	jwt        jwt.Service
	cookieName string
	ttl        time.Duration
	secure     bool
	logger     *log.Logger
}

func NewSessionMiddleware(jwtSvc jwt.Service, cookieName string, ttl time.Duration, secure bool, logger *log.Logger) *SessionMiddleware {
	return &SessionMiddleware{jwt: jwtSvc, cookieName: cookieName, ttl: ttl, secure: secure, logger: logger}
}

// Middleware resolves the browser session from its cookie. A missing,
// expired or forged cookie starts a fresh session, which reads as a guest.
func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if tok := c.Cookies(m.cookieName); tok != "" {
			claims, err := m.jwt.ValidateToken(tok)
			if err == nil {
				c.Locals(CtxSessionIDKey, claims.SessionID)
				return c.Next()
			}
			if m.logger != nil {
				m.logger.Printf("[Session] Discarding cookie | reason=%v", err)
			}
		}

		sid, tok, err := m.jwt.NewSession()
		if err != nil {
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
		c.Cookie(&fiber.Cookie{
			Name:     m.cookieName,
			Value:    tok,
			Path:     "/",
			Expires:  time.Now().Add(m.ttl),
			HTTPOnly: true,
			Secure:   m.secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(CtxSessionIDKey, sid)
		return c.Next()
	}
}

func SessionID(c fiber.Ctx) string {
	sid, _ := c.Locals(CtxSessionIDKey).(string)
	return sid
}
