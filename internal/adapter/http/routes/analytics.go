package routes

import (
	"sales_engine/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers    = "/customers"
	PathMerchants    = "/merchants"
	PathItems        = "/items"
	PathInvoices     = "/invoices"
	PathTransactions = "/transactions"
	PathRevenue      = "/revenue"
)

func addAnalyticsRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	merchantHandler *handlers.MerchantHandler,
	itemHandler *handlers.ItemHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.GET("/one-time-buyers", customerHandler.OneTimeBuyers)
		customers.GET("/one-time-buyers/top-item", customerHandler.OneTimeBuyersTopItem)
		customers.GET("/top-buyers", customerHandler.TopBuyers)
		customers.GET("/spend", customerHandler.Spend)
		customers.GET("/unpaid", customerHandler.Unpaid)
		customers.GET("/:id/top-merchant", customerHandler.TopMerchant)
		customers.GET("/:id/highest-volume-items", customerHandler.HighestVolumeItems)
		customers.GET("/:id/items", customerHandler.ItemsBoughtInYear)
	}

	merchants := rg.Group(PathMerchants)
	{
		merchants.GET("/stats", merchantHandler.Stats)
		merchants.GET("/high-item-count", merchantHandler.HighItemCount)
		merchants.GET("/top-by-invoice-count", merchantHandler.TopByInvoiceCount)
		merchants.GET("/bottom-by-invoice-count", merchantHandler.BottomByInvoiceCount)
		merchants.GET("/top-revenue-earners", merchantHandler.TopRevenueEarners)
		merchants.GET("/ranked-by-revenue", merchantHandler.RankedByRevenue)
		merchants.GET("/:id/revenue", merchantHandler.Revenue)
		merchants.GET("/:id/best-item", merchantHandler.BestItem)
		merchants.GET("/:id/most-sold-items", merchantHandler.MostSoldItems)
		merchants.GET("/:id/average-item-price", itemHandler.MerchantAveragePrice)
	}

	items := rg.Group(PathItems)
	{
		items.GET("/golden", itemHandler.Golden)
		items.GET("/price-stats", itemHandler.PriceStats)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/status/:status", invoiceHandler.StatusShare)
		invoices.GET("/weekdays", invoiceHandler.Weekdays)
		invoices.GET("/top-days", invoiceHandler.TopDays)
		invoices.GET("/best", invoiceHandler.Best)
		invoices.GET("/date/:date", invoiceHandler.InvoicesByDate)
		invoices.GET("/:id/total", invoiceHandler.Total)
	}

	rg.GET(PathTransactions+"/date/:date", invoiceHandler.TransactionsByDate)
	rg.GET(PathRevenue+"/:date", invoiceHandler.RevenueByDate)
}
