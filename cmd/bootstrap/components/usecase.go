package components

import (
	"turipack/internal/pkg/clock"
	"turipack/internal/pkg/config"
	"turipack/internal/usecase/commands"
	"turipack/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.SessionConfig {
		return cfg.Session
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPackageCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPackageQueries,
		queries.NewCatalogQueries,
	),
)
