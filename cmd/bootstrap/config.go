package bootstrap

import (
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
