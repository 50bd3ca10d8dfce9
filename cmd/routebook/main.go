package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"routebook/cmd"
	"routebook/internal/adapters/in/cli"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	loadDotEnv()
	config := getConfigs()

	err := cli.Execute(context.Background(), config.CLIOptions(), func(logger *slog.Logger) cli.Services {
		app := cmd.NewCompositionRoot(logger)
		return app.Services()
	})
	if err != nil {
		os.Exit(1)
	}
}

// loadDotEnv loads .env when present. Variables already set in the
// environment win.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func getConfigs() cmd.Config {
	config, err := cmd.ParseConfig(
		os.Getenv("ROUTEBOOK_LOG_LEVEL"),
		os.Getenv("ROUTEBOOK_LOG_FILE"),
		os.Getenv("ROUTEBOOK_NO_CLEAR"),
	)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}
