package di

import (
	"go.uber.org/fx"

	"github.com/fixhive/fixhive/internal/adapter/mailer"
	"github.com/fixhive/fixhive/internal/app"
	"github.com/fixhive/fixhive/internal/config"
	"github.com/fixhive/fixhive/internal/logger"
	"github.com/fixhive/fixhive/internal/pkg/auth"
	"github.com/fixhive/fixhive/internal/server/http/handlers"
	"github.com/fixhive/fixhive/internal/server/http/router"
	"github.com/fixhive/fixhive/internal/storage/postgres"
	"github.com/fixhive/fixhive/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(g *mailer.Gateway) usecase.Notifier { return g }),
		fx.Provide(func(f *app.MarketplaceFacade) handlers.MarketplaceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
