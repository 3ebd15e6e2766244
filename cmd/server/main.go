package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/internboard/backend/internal/api"
	"github.com/internboard/backend/internal/config"
	"github.com/internboard/backend/internal/session"
	"github.com/internboard/backend/internal/storage"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Optional .env for local development; environment wins over config file
	_ = godotenv.Load()

	exePath, err := os.Executable()
	if err != nil {
		fmt.Printf("Failed to get executable path: %v\n", err)
		os.Exit(1)
	}
	exeDir := filepath.Dir(exePath)

	configPath := filepath.Join(exeDir, "internboard.yaml")
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		fmt.Printf("Failed to create directories: %v\n", err)
		os.Exit(1)
	}

	fileStore, err := storage.NewLocalStore(cfg.GetUploadDir())
	if err != nil {
		fmt.Printf("Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	sessionMgr := session.NewManager()

	h := api.NewHandlerFromDeps(&api.Dependencies{
		Store:      fileStore,
		SessionMgr: sessionMgr,
		Config:     cfg,
	})

	// Optional auto-rate mapping override from the data directory
	if err := h.LoadRatingRules(); err != nil {
		fmt.Printf("Warning: failed to load rating rules: %v\n", err)
	}

	e := echo.New()
	e.HideBanner = true

	api.SetupMiddleware(e, cfg)
	api.RegisterRoutes(e, h)

	fmt.Printf("Internship Recruitment Tracker %s (built %s)\n", Version, BuildTime)
	fmt.Printf("Config:   %s\n", configPath)
	fmt.Printf("Data dir: %s\n", cfg.GetDataDir())
	fmt.Printf("Listen:   http://%s\n", cfg.GetServerAddr())

	e.Logger.Fatal(e.Start(cfg.GetServerAddr()))
}
