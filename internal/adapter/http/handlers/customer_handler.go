package handlers

import (
	"net/http"
	"strconv"

	response "sales_engine/internal/adapter/http/dto/response"
	"sales_engine/internal/usecase"
	"sales_engine/pkg"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves customer buying-behaviour analytics.

type CustomerHandler struct {
	stats usecase.ICustomerStats
}

func NewCustomerHandler(stats usecase.ICustomerStats) *CustomerHandler {
	return &CustomerHandler{stats: stats}
}

func (h *CustomerHandler) OneTimeBuyers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCustomers(h.stats.OneTimeBuyers()))
}

func (h *CustomerHandler) OneTimeBuyersTopItem(c *gin.Context) {
	item, ok := h.stats.OneTimeBuyersTopItem()
	if !ok {
		writeError(c, pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "No item bought by one-time buyers", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromItem(item))
}

// TopBuyers ranks customers by paid spend; ?n= defaults to 20.
func (h *CustomerHandler) TopBuyers(c *gin.Context) {
	n, ok := parseLimit(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(h.stats.TopBuyers(n)))
}

func (h *CustomerHandler) Spend(c *gin.Context) {
	spend := h.stats.TopSpenders()
	out := make([]response.CustomerSpendResponse, len(spend))
	for i, s := range spend {
		out[i] = response.FromCustomerSpend(s)
	}
	c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) TopMerchant(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	m, found := h.stats.TopMerchantForCustomer(id)
	if !found {
		writeError(c, pkg.NewDomainErrorSimple("MERCHANT_NOT_FOUND", "No merchant found for customer", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromMerchant(m))
}

func (h *CustomerHandler) HighestVolumeItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromItems(h.stats.HighestVolumeItems(id)))
}

// ItemsBoughtInYear requires ?year=YYYY.
func (h *CustomerHandler) ItemsBoughtInYear(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1000 || year > 9999 {
		writeError(c, errInvalidYear)
		return
	}
	c.JSON(http.StatusOK, response.FromItems(h.stats.ItemsBoughtInYear(id, year)))
}

func (h *CustomerHandler) Unpaid(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCustomers(h.stats.CustomersWithUnpaidInvoices()))
}
