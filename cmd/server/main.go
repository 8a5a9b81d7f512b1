package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/api"
	"github.com/maheshrc27/adspark/internal/database"
	job "github.com/maheshrc27/adspark/internal/jobs"
	"github.com/maheshrc27/adspark/internal/repository"
	"github.com/maheshrc27/adspark/internal/service"
	"github.com/maheshrc27/adspark/internal/session"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if !cfg.LoginConfigured() {
		log.Println("Warning: LOGIN_USERNAME, LOGIN_PASSWORD or SESSION_SECRET is not set, logins will fail")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Open(ctx, cfg.Postgres)
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	postRepo := repository.NewPostRepository(db)

	var images service.ImageStore
	if cfg.R2.Enabled() {
		images = service.NewR2Service(cfg.R2)
	}

	credential := session.FromConfig(cfg)
	authService := service.NewAuthService(*cfg, credential)
	postService := service.NewPostService(postRepo, images)

	app, err := api.NewApp(api.Dependencies{
		Config:      *cfg,
		Credential:  credential,
		AuthService: authService,
		PostService: postService,
	})
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// cron jobs
	poolStatsJob := job.NewPoolStatsJob(db)

	c := cron.New()
	if err := c.AddFunc(cfg.PoolStatsSchedule, poolStatsJob.LogStats); err != nil {
		log.Printf("Invalid POOL_STATS_SCHEDULE %q: %v", cfg.PoolStatsSchedule, err)
	}
	c.Start()
	defer c.Stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
