package middleware

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/adspark/internal/session"
)

type SessionGate struct {
	credential session.Credential
}

func NewSessionGate(credential session.Credential) *SessionGate {
	return &SessionGate{credential: credential}
}

// IsExemptPath lists what stays reachable without a session: the login page, the
// auth endpoints, bundled assets and anything that looks like a file.
func IsExemptPath(path string) bool {
	switch {
	case path == "/login", strings.HasPrefix(path, "/login/"):
		return true
	case strings.HasPrefix(path, "/api/auth"):
		return true
	case strings.HasPrefix(path, "/static/"), strings.HasPrefix(path, "/images/"):
		return true
	case strings.Contains(path, "."):
		return true
	}
	return false
}

// Handler redirects unauthenticated requests to the login page and remembers where
// they were going. It only checks the cookie, the API handlers trust it.
func (g *SessionGate) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if IsExemptPath(path) {
			return c.Next()
		}

		if g.credential.Verify(c.Cookies(session.CookieName)) {
			return c.Next()
		}

		return c.Redirect("/login?from="+url.QueryEscape(path), fiber.StatusTemporaryRedirect)
	}
}
