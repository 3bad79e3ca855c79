package di

import (
	"go.uber.org/fx"

	"github.com/snacksprint/storefront/internal/adapter/catalog"
	"github.com/snacksprint/storefront/internal/app"
	"github.com/snacksprint/storefront/internal/chatbot"
	"github.com/snacksprint/storefront/internal/config"
	"github.com/snacksprint/storefront/internal/logger"
	"github.com/snacksprint/storefront/internal/pkg/auth"
	"github.com/snacksprint/storefront/internal/server/http/handlers"
	"github.com/snacksprint/storefront/internal/server/http/router"
	"github.com/snacksprint/storefront/internal/storage/memory"
	"github.com/snacksprint/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		memory.Module,
		catalog.Module,
		chatbot.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
