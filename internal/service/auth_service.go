package service

import (
	"context"
	"crypto/subtle"
	"log/slog"

	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/session"
)

type AuthService interface {
	// Login checks the submitted credentials against the configured pair and returns
	// the value to put in the auth cookie.
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	cfg        config.Config
	credential session.Credential
}

func NewAuthService(cfg config.Config, credential session.Credential) AuthService {
	return &authService{
		cfg:        cfg,
		credential: credential,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.cfg.LoginConfigured() {
		slog.Error("login attempted but LOGIN_USERNAME, LOGIN_PASSWORD or SESSION_SECRET is unset")
		return "", ErrLoginNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.LoginUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.LoginPassword)) == 1
	if !userOK || !passOK {
		slog.Info("login rejected", "username", username)
		return "", ErrInvalidCredentials
	}

	value, err := s.credential.Issue()
	if err != nil {
		return "", err
	}

	return value, nil
}
