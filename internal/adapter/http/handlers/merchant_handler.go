package handlers

import (
	"net/http"

	response "sales_engine/internal/adapter/http/dto/response"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase"
	"sales_engine/pkg"

	"github.com/gin-gonic/gin"
)

// MerchantHandler serves merchant counts, revenue and rankings.

type MerchantHandler struct {
	stats usecase.IMerchantStats
}

func NewMerchantHandler(stats usecase.IMerchantStats) *MerchantHandler {
	return &MerchantHandler{stats: stats}
}

func (h *MerchantHandler) Stats(c *gin.Context) {
	var (
		out response.MerchantCountStatsResponse
		err error
	)
	if out.AverageItems, err = h.stats.AverageItemsPerMerchant(); err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	if out.ItemsStandardDeviation, err = h.stats.AverageItemsPerMerchantStandardDeviation(); err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	if out.AverageInvoices, err = h.stats.AverageInvoicesPerMerchant(); err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	if out.InvoicesStandardDeviation, err = h.stats.AverageInvoicesPerMerchantStandardDeviation(); err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *MerchantHandler) HighItemCount(c *gin.Context) {
	h.writeMerchants(c, h.stats.MerchantsWithHighItemCount)
}

func (h *MerchantHandler) TopByInvoiceCount(c *gin.Context) {
	h.writeMerchants(c, h.stats.TopMerchantsByInvoiceCount)
}

func (h *MerchantHandler) BottomByInvoiceCount(c *gin.Context) {
	h.writeMerchants(c, h.stats.BottomMerchantsByInvoiceCount)
}

func (h *MerchantHandler) writeMerchants(c *gin.Context, query func() ([]entities.Merchant, error)) {
	merchants, err := query()
	if err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMerchants(merchants))
}

func (h *MerchantHandler) Revenue(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.MerchantRevenueResponse{
		MerchantID: id,
		Revenue:    response.Money(h.stats.RevenueByMerchant(id)),
	})
}

func (h *MerchantHandler) BestItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	item, found := h.stats.BestItemForMerchant(id)
	if !found {
		writeError(c, pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Merchant has no paid sales", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}

func (h *MerchantHandler) MostSoldItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromItems(h.stats.MostSoldItemForMerchant(id)))
}

// TopRevenueEarners ranks merchants by revenue; ?n= defaults to 20.
func (h *MerchantHandler) TopRevenueEarners(c *gin.Context) {
	n, ok := parseLimit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromMerchants(h.stats.TopRevenueEarners(n)))
}

// RankedByRevenue lists every merchant with its revenue, highest first.
func (h *MerchantHandler) RankedByRevenue(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMerchantRevenues(h.stats.RankedRevenue()))
}
