package routes

import (
	"net/http"

	_ "resident_service/docs" // generated by swag init
	"resident_service/internal/adapter/http/handlers"
	"resident_service/internal/usecase"
	"resident_service/internal/usecase/interfaces"
	"resident_service/pkg/clock"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the use cases and adapters served over HTTP.
type Dependencies struct {
	Sessions usecase.ISessionManager
	Resets   usecase.IResetTicketIssuer
	Catalog  interfaces.IFixtureCatalog
	Clock    clock.Clock
	Metrics  http.Handler
	Logger   *zap.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.Logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	getRoutes(router, deps)
	return router
}

func getRoutes(router *gin.Engine, deps Dependencies) {
	sessionHandler := handlers.NewSessionHandler(deps.Sessions)
	resetHandler := handlers.NewPasswordResetHandler(deps.Resets, deps.Clock)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	workflowHandler := handlers.NewWorkflowHandler()

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)

	// Signed-in routes
	authed := v1.Group("", handlers.RequireSession(deps.Sessions))
	addSessionRoutes(v1, authed, sessionHandler, resetHandler)
	addWorkflowRoutes(authed, workflowHandler)
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http][router] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
