package imagehost

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/baspana/backend/internal/config"
	"github.com/baspana/backend/internal/usecase"
)

// Module exposes the image host client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (usecase.ImageHost, error) {
	if p.Config.ImageHostAddress == "" {
		return Disabled{}, nil
	}
	return NewHTTPClient(p.Config.ImageHostAddress, p.Config.ImageHostKey, p.Logger)
}
