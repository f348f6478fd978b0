package routes

import (
	"net/http"
	"strconv"

	_ "sales_engine/docs"
	"sales_engine/internal/adapter/http/handlers"
	"sales_engine/internal/infrastructure/metrics"
	"sales_engine/internal/logger"
	"sales_engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies is everything the HTTP layer reads from. Metrics may be nil.
type Dependencies struct {
	Analyst *usecase.SalesAnalyst
	Catalog usecase.ICatalogUseCase
	Log     *zap.Logger
	Metrics *metrics.Metrics
}

// Run will start the server
func Run(port int, deps Dependencies) error {
	router := NewRouter(deps)

	deps.Log.Info("http server listening", zap.Int("port", port))
	return router.Run(":" + strconv.Itoa(port))
}

func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}

	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	getRoutes(router, deps)
	return router
}

func getRoutes(router *gin.Engine, deps Dependencies) {
	customerHandler := handlers.NewCustomerHandler(deps.Analyst.Customers)
	merchantHandler := handlers.NewMerchantHandler(deps.Analyst.Merchants)
	itemHandler := handlers.NewItemHandler(deps.Analyst.Items)
	invoiceHandler := handlers.NewInvoiceHandler(deps.Analyst.Invoices)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAnalyticsRoutes(v1, customerHandler, merchantHandler, itemHandler, invoiceHandler)
	addCatalogRoutes(v1, catalogHandler)
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(logger.GinMiddleware(deps.Log))
	router.Use(deps.Metrics.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		deps.Log.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("request_id", logger.RequestID(c)),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
