package response

import (
	"time"

	"sales_engine/internal/usecase"

	"github.com/shopspring/decimal"
)

type MerchantRevenueResponse struct {
	MerchantID int64  `json:"merchant_id"`
	Revenue    string `json:"revenue"`
}

type RankedMerchantResponse struct {
	Merchant MerchantResponse `json:"merchant"`
	Revenue  string           `json:"revenue"`
}

func FromMerchantRevenues(ranked []usecase.MerchantRevenue) []RankedMerchantResponse {
	out := make([]RankedMerchantResponse, len(ranked))
	for i, r := range ranked {
		out[i] = RankedMerchantResponse{Merchant: FromMerchant(r.Merchant), Revenue: Money(r.Revenue)}
	}
	return out
}

type RevenueByDateResponse struct {
	Date    string `json:"date"`
	Revenue string `json:"revenue"`
}

type CustomerSpendResponse struct {
	Customer CustomerResponse `json:"customer"`
	Total    string           `json:"total"`
}

func FromCustomerSpend(s usecase.CustomerSpend) CustomerSpendResponse {
	return CustomerSpendResponse{Customer: FromCustomer(s.Customer), Total: Money(s.Total)}
}

type StatusShareResponse struct {
	Status     string  `json:"status"`
	Percentage float64 `json:"percentage"`
}

type WeekdayCount struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

type WeekdaysResponse struct {
	Counts            []WeekdayCount `json:"counts"`
	StandardDeviation float64        `json:"standard_deviation"`
}

// FromDayCounts lists observed weekdays Sunday first.
func FromDayCounts(counts map[time.Weekday]int, stdDev float64) WeekdaysResponse {
	out := WeekdaysResponse{Counts: []WeekdayCount{}, StandardDeviation: stdDev}
	for day := time.Sunday; day <= time.Saturday; day++ {
		if n, ok := counts[day]; ok {
			out.Counts = append(out.Counts, WeekdayCount{Weekday: day.String(), Count: n})
		}
	}
	return out
}

func FromWeekdays(days []time.Weekday) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()
	}
	return out
}

type ItemPriceStatsResponse struct {
	AveragePrice              string  `json:"average_price"`
	StandardDeviation         float64 `json:"standard_deviation"`
	AverageOfMerchantAverages string  `json:"average_of_merchant_averages"`
	MaxPrice                  string  `json:"max_price"`
}

func NewItemPriceStats(avg decimal.Decimal, sd float64, avgAvg, ceiling decimal.Decimal) ItemPriceStatsResponse {
	return ItemPriceStatsResponse{
		AveragePrice:              Money(avg),
		StandardDeviation:         sd,
		AverageOfMerchantAverages: Money(avgAvg),
		MaxPrice:                  Money(ceiling),
	}
}

type MerchantCountStatsResponse struct {
	AverageItems              float64 `json:"average_items"`
	ItemsStandardDeviation    float64 `json:"items_standard_deviation"`
	AverageInvoices           float64 `json:"average_invoices"`
	InvoicesStandardDeviation float64 `json:"invoices_standard_deviation"`
}

type InvoiceTotalResponse struct {
	InvoiceID  int64  `json:"invoice_id"`
	Total      string `json:"total"`
	PaidInFull bool   `json:"paid_in_full"`
}
