package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
)

func createTestCatalogConfig() *config.Config {
	return &config.Config{
		Catalog: &config.CatalogConfig{
			StatusMessageTTL: 100 * time.Millisecond,
			SearchMinLength:  1,
		},
	}
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
