package bootstrap

import (
	"log/slog"

	"github.com/IneMentenPXL/FlightsApp/internal/handler/middleware"
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
