package impl

import (
	"io"
	"log/slog"

	"cromptch/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Argon2: config.Argon2Config{Memory: 1024, Iterations: 1, Parallelism: 1},
		},
		Recipe: &config.RecipeConfig{DefaultListLimit: 10, MaxListLimit: 100},
	}
}
