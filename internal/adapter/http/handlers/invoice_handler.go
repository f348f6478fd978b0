package handlers

import (
	"net/http"
	"strings"

	response "sales_engine/internal/adapter/http/dto/response"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase"
	"sales_engine/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves invoice status, weekday and per-date analytics.

type InvoiceHandler struct {
	stats usecase.IInvoiceStats
}

func NewInvoiceHandler(stats usecase.IInvoiceStats) *InvoiceHandler {
	return &InvoiceHandler{stats: stats}
}

func (h *InvoiceHandler) StatusShare(c *gin.Context) {
	status, err := entities.ParseInvoiceStatus(c.Param("status"))
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_STATUS", "status must be pending, shipped or returned", http.StatusBadRequest))
		return
	}
	pct, err := h.stats.InvoiceStatus(status)
	if err != nil {
		writeError(c, mapStatsError(err))
		return
	}
	c.JSON(http.StatusOK, response.StatusShareResponse{Status: string(status), Percentage: pct})
}

func (h *InvoiceHandler) Weekdays(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDayCounts(h.stats.DayCountHash(), h.stats.InvoiceWeekdayStandardDeviation()))
}

func (h *InvoiceHandler) TopDays(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromWeekdays(h.stats.TopDaysByInvoiceCount()))
}

func (h *InvoiceHandler) Total(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.InvoiceTotalResponse{
		InvoiceID:  id,
		Total:      response.Money(h.stats.InvoiceTotal(id)),
		PaidInFull: h.stats.InvoicePaidInFull(id),
	})
}

// Best answers ?by=revenue (default) or ?by=quantity over paid invoices.
func (h *InvoiceHandler) Best(c *gin.Context) {
	var (
		inv   entities.Invoice
		found bool
	)
	switch strings.ToLower(c.DefaultQuery("by", "revenue")) {
	case "revenue":
		inv, found = h.stats.BestInvoiceByRevenue()
	case "quantity":
		inv, found = h.stats.BestInvoiceByQuantity()
	default:
		writeError(c, errInvalidRequest)
		return
	}
	if !found {
		writeError(c, pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "No paid invoice", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) InvoicesByDate(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(h.stats.InvoicesByDate(date)))
}

func (h *InvoiceHandler) TransactionsByDate(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(h.stats.TransactionsByDate(date)))
}

func (h *InvoiceHandler) RevenueByDate(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.RevenueByDateResponse{
		Date:    entities.DateKey(date),
		Revenue: response.Money(h.stats.TotalRevenueByDate(date)),
	})
}
