package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"turipack/internal/handler/api"
	"turipack/internal/handler/middleware"
	"turipack/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, catalogHandler *api.CatalogHandler, packageHandler *api.PackageHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, packageHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, packageHandler *api.PackageHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		catalogGroup := apiGroup.Group("/catalog")
		{
			addRoutes(catalogGroup, []route{
				{Method: http.MethodGet, Path: "/services", Handler: catalogHandler.ListServices},
				{Method: http.MethodGet, Path: "/services/:id", Handler: catalogHandler.GetService},
			})
		}

		packageGroup := apiGroup.Group("/package")
		packageGroup.Use(middleware.SessionMiddleware())
		{
			addRoutes(packageGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: packageHandler.GetPackage},
				{Method: http.MethodDelete, Path: "", Handler: packageHandler.ClearPackage},
				{Method: http.MethodPost, Path: "/items", Handler: packageHandler.AddItem},
				{Method: http.MethodDelete, Path: "/items/:serviceId", Handler: packageHandler.RemoveItem},
				{Method: http.MethodPatch, Path: "/items/:serviceId", Handler: packageHandler.UpdateItem},
				{Method: http.MethodPut, Path: "/travelers", Handler: packageHandler.SetTravelers},
				{Method: http.MethodPut, Path: "/dates", Handler: packageHandler.SetDates},
				{Method: http.MethodPost, Path: "/recalculate", Handler: packageHandler.Recalculate},
				{Method: http.MethodPost, Path: "/save", Handler: packageHandler.SavePackage},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
