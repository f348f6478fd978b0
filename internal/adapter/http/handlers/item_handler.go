package handlers

import (
	"net/http"

	response "sales_engine/internal/adapter/http/dto/response"
	"sales_engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	stats usecase.IItemStats
}

func NewItemHandler(stats usecase.IItemStats) *ItemHandler {
	return &ItemHandler{stats: stats}
}

func (h *ItemHandler) Golden(c *gin.Context) {
	items, err := h.stats.GoldenItems()
	if err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromItems(items))
}

func (h *ItemHandler) PriceStats(c *gin.Context) {
	avg, err := h.stats.AverageItemPrice()
	if err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	sd, err := h.stats.ItemPriceStandardDeviation()
	if err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	avgAvg, err := h.stats.AverageAveragePricePerMerchant()
	if err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	ceiling, _ := h.stats.MaxItemPrice()
	c.JSON(http.StatusOK, response.NewItemPriceStats(avg, sd, avgAvg, ceiling))
}

// MerchantAveragePrice answers GET /merchants/:id/average-item-price.
func (h *ItemHandler) MerchantAveragePrice(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	avg, err := h.stats.AverageItemPriceForMerchant(id)
	if err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"merchant_id": id, "average_item_price": response.Money(avg)})
}
