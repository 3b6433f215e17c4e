package tiffcore

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// NewDefaultLogger returns the package's default structured logger: tint's
// colorized handler writing to stderr at Info level. Open and Create
// install it on every new Handle; Handle.SetLogger lets an embedding
// application substitute its own slog.Logger.
func NewDefaultLogger() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
	}))
}
