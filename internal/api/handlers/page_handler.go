package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/models"
	"github.com/maheshrc27/adspark/internal/service"
	"github.com/maheshrc27/adspark/web"
)

// RefetchDelayMs is how long the dashboard waits after a create request before reloading posts.
const RefetchDelayMs = 15000

type PageHandler struct {
	s     service.PostService
	cfg   config.Config
	pages map[string]*template.Template
}

func NewPageHandler(cfg config.Config, service service.PostService) (*PageHandler, error) {
	pages, err := web.Templates()
	if err != nil {
		return nil, err
	}
	return &PageHandler{s: service, cfg: cfg, pages: pages}, nil
}

type loginPage struct {
	From string
}

type dashboardPage struct {
	Posts                []*models.SocialMediaPost
	Error                string
	ApproveWebhookURL    string
	CreatePostWebhookURL string
	RefetchDelayMs       int
}

func (h *PageHandler) LoginPage(c *fiber.Ctx) error {
	return h.render(c, "login", loginPage{From: safeReturnPath(c.Query("from"))})
}

// Dashboard renders whatever the store returned. A failed read shows the banner
// instead of the grid, it never redirects.
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	data := dashboardPage{
		Posts:                []*models.SocialMediaPost{},
		ApproveWebhookURL:    h.cfg.Webhooks.ApproveURL,
		CreatePostWebhookURL: h.cfg.Webhooks.CreatePostURL,
		RefetchDelayMs:       RefetchDelayMs,
	}

	posts, err := h.s.List(c.Context())
	if err != nil {
		slog.Info(err.Error())
		data.Error = messageOr(err, "unknown error")
	} else if posts != nil {
		data.Posts = posts
	}

	return h.render(c, "dashboard", data)
}

func (h *PageHandler) render(c *fiber.Ctx, page string, data any) error {
	t, ok := h.pages[page]
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "missing template "+page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Info(err.Error())
		return err
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// safeReturnPath keeps the post-login redirect on this site.
func safeReturnPath(from string) string {
	if !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return "/"
	}
	return from
}
