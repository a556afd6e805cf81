package components

import (
	"turipack/internal/handler"
	"turipack/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewPackageHandler,
	),
	fx.Invoke(handler.NewRouter),
)
