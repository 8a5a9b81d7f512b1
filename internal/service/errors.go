package service

import "errors"

var (
	ErrMissingPostID      = errors.New("Missing post id")
	ErrPostNotFound       = errors.New("Post not found")
	ErrLoginNotConfigured = errors.New("Server login not configured")
	ErrInvalidCredentials = errors.New("Invalid username or password")
)
