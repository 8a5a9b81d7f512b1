package service

import (
	"context"
	"testing"

	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(user, pass, secret string) AuthService {
	cfg := config.Config{LoginUsername: user, LoginPassword: pass, SessionSecret: secret}
	return NewAuthService(cfg, session.NewSecretCredential(secret))
}

func TestLogin_Success(t *testing.T) {
	value, err := newAuthService("admin", "secret1", "S").Login(context.Background(), "admin", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "S", value)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, err := newAuthService("admin", "secret1", "S").Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "Invalid username or password", err.Error())
}

func TestLogin_WrongUser(t *testing.T) {
	_, err := newAuthService("admin", "secret1", "S").Login(context.Background(), "root", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NotConfigured(t *testing.T) {
	cases := []struct{ user, pass, secret string }{
		{"", "secret1", "S"},
		{"admin", "", "S"},
		{"admin", "secret1", ""},
	}
	for _, c := range cases {
		_, err := newAuthService(c.user, c.pass, c.secret).Login(context.Background(), "admin", "secret1")
		assert.ErrorIs(t, err, ErrLoginNotConfigured)
	}
}
