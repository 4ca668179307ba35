package impl

import (
	"io"
	"log/slog"

	"shelfswap/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Feed: &config.FeedConfig{
			DefaultLimit: 10,
			MaxLimit:     50,
		},
		Messaging: &config.MessagingConfig{
			MaxContentLength: 2000,
			DefaultPageSize:  50,
			MaxPageSize:      200,
		},
	}
}
