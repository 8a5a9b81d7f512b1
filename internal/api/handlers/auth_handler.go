package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/service"
	"github.com/maheshrc27/adspark/internal/session"
)

type AuthHandler struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthHandler(cfg config.Config, service service.AuthService) *AuthHandler {
	return &AuthHandler{s: service, cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request")
	}

	value, err := h.s.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return errorJSON(c, statusFor(err), err.Error())
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(session.MaxAge.Seconds()),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"success": true})
}

// Logout always succeeds. The shared secret itself stays valid for anyone else holding it.
// fasthttp drops a zero max-age, so the expiring cookie is written by hand.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	expired := &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	c.Append(fiber.HeaderSetCookie, expired.String())

	return c.JSON(fiber.Map{"success": true})
}
