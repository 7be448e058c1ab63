package di

import (
	"go.uber.org/fx"

	"github.com/shopmart/shopmart/internal/app"
	"github.com/shopmart/shopmart/internal/config"
	"github.com/shopmart/shopmart/internal/logger"
	"github.com/shopmart/shopmart/internal/pkg/auth"
	"github.com/shopmart/shopmart/internal/server/http/router"
	"github.com/shopmart/shopmart/internal/storage/postgres"
	"github.com/shopmart/shopmart/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
