package bootstrap

import (
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/clock"
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/config"
	"github.com/IneMentenPXL/FlightsApp/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk)
}
