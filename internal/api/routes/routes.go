package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/iamivanribeiro/Report-SIGAMI/internal/api/handlers"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/config"
	"github.com/iamivanribeiro/Report-SIGAMI/internal/dashboard"
	middlewares "github.com/iamivanribeiro/Report-SIGAMI/internal/middleware"
)

func SetupRouter(cfg *config.Config, store *dashboard.Store) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestTiming())

	service := dashboard.NewService(store)

	dashboardHandler := handlers.NewDashboardHandler(service)
	filtrosHandler := handlers.NewFiltrosHandler(service)
	importacaoHandler := handlers.NewImportacaoHandler(service, cfg.ImportMaxBytes)
	healthHandler := handlers.NewHealthHandler(store)

	api := r.Group("/api/v1")
	{
		api.GET("/dashboard", dashboardHandler.Dashboard)
		api.GET("/relatorio", dashboardHandler.Relatorio)
		api.GET("/solicitacoes", dashboardHandler.Solicitacoes)
		api.GET("/solicitacoes/export", importacaoHandler.Export)

		api.GET("/filtros", filtrosHandler.Get)
		api.PUT("/filtros", filtrosHandler.Set)
		api.DELETE("/filtros", filtrosHandler.Clear)
		api.POST("/filtros/drilldown", filtrosHandler.DrillDown)
		api.DELETE("/filtros/drilldown", filtrosHandler.ClearDrillDown)
		api.GET("/filtros/opcoes", filtrosHandler.Opcoes)

		api.POST("/importacao", importacaoHandler.Upload)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
