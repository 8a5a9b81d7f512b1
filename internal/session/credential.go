// Package session decides what the auth cookie holds and whether a presented value is
// still good. The gate and the login handler only talk to Credential, so the storage
// behind a session can change without touching routing.
package session

import (
	"crypto/subtle"
	"log/slog"
	"time"

	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/pkg/utils"
)

const (
	CookieName = "auth"
	MaxAge     = 24 * time.Hour
)

type Credential interface {
	// Issue returns the value to store in the auth cookie after a successful login.
	Issue() (string, error)
	Verify(value string) bool
}

// SecretCredential stores the shared secret itself in the cookie. Every client holding
// the secret is authenticated; logging out elsewhere does not revoke it.
type SecretCredential struct {
	secret string
}

func NewSecretCredential(secret string) *SecretCredential {
	return &SecretCredential{secret: secret}
}

func (c *SecretCredential) Issue() (string, error) {
	return c.secret, nil
}

func (c *SecretCredential) Verify(value string) bool {
	if c.secret == "" || value == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(value), []byte(c.secret)) == 1
}

// SignedCredential stores an HS256 token signed with the secret, so the cookie never
// carries the secret and expires on its own after MaxAge.
type SignedCredential struct {
	secret  string
	subject string
	ttl     time.Duration
}

func NewSignedCredential(secret, subject string, ttl time.Duration) *SignedCredential {
	return &SignedCredential{secret: secret, subject: subject, ttl: ttl}
}

func (c *SignedCredential) Issue() (string, error) {
	return utils.GenerateToken(c.secret, c.subject, c.ttl)
}

func (c *SignedCredential) Verify(value string) bool {
	if c.secret == "" || value == "" {
		return false
	}
	claims, err := utils.ValidateToken(c.secret, value)
	if err != nil {
		slog.Info("session token rejected", "error", err.Error())
		return false
	}
	return claims.Subject == c.subject
}

// FromConfig picks the credential for SESSION_MODE, defaulting to the shared secret.
func FromConfig(cfg *config.Config) Credential {
	if cfg.SessionMode == config.SessionModeSigned {
		return NewSignedCredential(cfg.SessionSecret, cfg.LoginUsername, MaxAge)
	}
	return NewSecretCredential(cfg.SessionSecret)
}
