package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/api/handlers"
	"github.com/maheshrc27/adspark/internal/api/middleware"
	"github.com/maheshrc27/adspark/internal/service"
	"github.com/maheshrc27/adspark/internal/session"
	"github.com/maheshrc27/adspark/web"
)

type Dependencies struct {
	Config      config.Config
	Credential  session.Credential
	AuthService service.AuthService
	PostService service.PostService
}

func NewApp(deps Dependencies) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("request failed", "path", c.Path(), "error", err.Error())
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	if deps.Config.AllowedOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     deps.Config.AllowedOrigins,
			AllowMethods:     "GET,POST,DELETE,OPTIONS",
			AllowHeaders:     "Origin, Content-Type, Accept",
			AllowCredentials: !strings.Contains(deps.Config.AllowedOrigins, "*"),
			MaxAge:           3600,
		}))
	}

	gate := middleware.NewSessionGate(deps.Credential)
	app.Use(gate.Handler())

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	pages, err := handlers.NewPageHandler(deps.Config, deps.PostService)
	if err != nil {
		return nil, err
	}
	app.Get("/login", pages.LoginPage)
	app.Get("/", pages.Dashboard)

	api := app.Group("/api")

	auth := handlers.NewAuthHandler(deps.Config, deps.AuthService)
	api.Post("/auth/login", auth.Login)
	api.Post("/auth/logout", auth.Logout)

	post := handlers.NewPostHandler(deps.PostService)
	api.Get("/posts", post.ListPosts)
	api.Get("/posts/:id", post.GetPost)
	api.Delete("/posts/:id", post.DeletePost)

	return app, nil
}
