package components

import (
	"turipack/internal/infra/readstore"
	"turipack/internal/infra/repo_impl"
	"turipack/internal/usecase/commands"
	"turipack/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repo_impl.NewSnapshotRepository,
			fx.As(new(commands.SnapshotRepository)),
			fx.As(new(queries.SnapshotReader)),
		),
		// Read-side store for catalog queries
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
	),
)
