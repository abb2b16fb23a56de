package di

import (
	"go.uber.org/fx"

	"github.com/baspana/backend/internal/adapter/imagehost"
	"github.com/baspana/backend/internal/app"
	"github.com/baspana/backend/internal/config"
	"github.com/baspana/backend/internal/logger"
	"github.com/baspana/backend/internal/pkg/auth"
	"github.com/baspana/backend/internal/server/http/handlers"
	"github.com/baspana/backend/internal/server/http/router"
	"github.com/baspana/backend/internal/storage/postgres"
	"github.com/baspana/backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		imagehost.Module,
		usecase.Module,
		fx.Provide(func(f *app.BaspanaFacade) handlers.BaspanaFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
