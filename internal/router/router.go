package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/sitekit-io/sitekit/docs"
	"github.com/sitekit-io/sitekit/internal/config"
	"github.com/sitekit-io/sitekit/internal/middleware"
	"github.com/sitekit-io/sitekit/internal/modules/handler"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config           *config.Config
	Log              *zap.Logger
	Gate             service.TenantGate
	ProjectService   service.ProjectService
	ProjectHandler   *handler.ProjectHandler
	ModuleHandler    *handler.ModuleHandler
	AdminDataHandler *handler.AdminDataHandler
	DynamicHandler   *handler.DynamicHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.CORS(d.Config))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.OK("ok", nil)) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// owner surface, JWT from the identity provider
	owner := r.Group("/api")
	{
		owner.Use(middleware.OwnerAuth(d.Config))

		owner.GET("/modules", d.ModuleHandler.ListModules)
		owner.GET("/modules/:module_id", d.ModuleHandler.GetModule)

		owner.GET("/projects", d.ProjectHandler.ListProjects)
		owner.POST("/projects", d.ProjectHandler.CreateProject)

		project := owner.Group("/projects/:project_id")
		{
			project.Use(middleware.ProjectOwner(d.ProjectService))

			project.GET("", d.ProjectHandler.GetProject)
			project.PUT("", d.ProjectHandler.UpdateProject)
			project.DELETE("", d.ProjectHandler.DeleteProject)
			project.POST("/regenerate-token", d.ProjectHandler.RegenerateToken)

			project.GET("/modules", d.ProjectHandler.ListProjectModules)
			project.POST("/modules", d.ProjectHandler.EnableModule)
			project.DELETE("/modules/:module_id", d.ProjectHandler.DisableModule)

			admin := project.Group("/admin")
			{
				admin.GET("/data/:data_type", d.AdminDataHandler.ListItems)
				admin.POST("/data/:data_type", d.AdminDataHandler.CreateItem)
				admin.GET("/data/:data_type/:item_id", d.AdminDataHandler.GetItem)
				admin.PUT("/data/:data_type/:item_id", d.AdminDataHandler.UpdateItem)
				admin.DELETE("/data/:data_type/:item_id", d.AdminDataHandler.DeleteItem)

				admin.POST("/upload", d.AdminDataHandler.UploadImage)
			}

			project.GET("/export/:module_slug", d.AdminDataHandler.ExportModule)
		}
	}

	// public surface, addressed by project token
	site := r.Group("/api/v1/:project_token")
	{
		site.Use(middleware.ProjectToken(d.Gate))

		site.GET("", d.DynamicHandler.GetManifest)
		site.GET("/:module_slug", d.DynamicHandler.ListRecords)
		site.POST("/:module_slug", d.DynamicHandler.CreateRecord)
		site.GET("/:module_slug/:id", d.DynamicHandler.GetRecord)
		site.PUT("/:module_slug/:id", d.DynamicHandler.ReplaceRecord)
		site.DELETE("/:module_slug/:id", d.DynamicHandler.DeleteRecord)
	}

	return r
}
