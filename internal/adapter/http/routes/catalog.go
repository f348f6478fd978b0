package routes

import (
	"sales_engine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	merchants := rg.Group(PathMerchants)
	{
		merchants.GET("", catalogHandler.SearchMerchants)
		merchants.POST("", catalogHandler.CreateMerchant)
		merchants.GET("/:id", catalogHandler.GetMerchant)
		merchants.PATCH("/:id", catalogHandler.UpdateMerchant)
		merchants.DELETE("/:id", catalogHandler.DeleteMerchant)
	}

	items := rg.Group(PathItems)
	{
		items.GET("", catalogHandler.SearchItems)
		items.POST("", catalogHandler.CreateItem)
		items.GET("/:id", catalogHandler.GetItem)
		items.PATCH("/:id", catalogHandler.UpdateItem)
		items.DELETE("/:id", catalogHandler.DeleteItem)
	}
}
