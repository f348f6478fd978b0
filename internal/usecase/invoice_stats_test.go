package usecase

import (
	"testing"
	"time"

	"sales_engine/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := entities.ParseTime(raw)
	require.NoError(t, err)
	return d
}

func TestInvoiceStats_InvoiceStatus(t *testing.T) {
	sa := storeAnalyst(t)

	for status, want := range map[entities.InvoiceStatus]float64{
		entities.InvoiceStatusShipped:  40.0,
		entities.InvoiceStatusPending:  40.0,
		entities.InvoiceStatusReturned: 20.0,
	} {
		got, err := sa.Invoices.InvoiceStatus(status)
		require.NoError(t, err)
		assert.Equal(t, want, got, status)
	}

	empty := newRepos(t, entities.Dataset{})
	_, err := NewSalesAnalyst(empty).Invoices.InvoiceStatus(entities.InvoiceStatusShipped)
	assert.ErrorIs(t, err, ErrInsufficientSample)
}

func TestInvoiceStats_Weekdays(t *testing.T) {
	sa := storeAnalyst(t)

	counts := sa.Invoices.DayCountHash()
	assert.Equal(t, map[time.Weekday]int{time.Sunday: 3, time.Monday: 1, time.Wednesday: 1}, counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 5, total)

	assert.Equal(t, 1.11, sa.Invoices.InvoiceWeekdayStandardDeviation())
	assert.Equal(t, []time.Weekday{time.Sunday}, sa.Invoices.TopDaysByInvoiceCount())
}

func TestInvoiceStats_PaidAndTotals(t *testing.T) {
	sa := storeAnalyst(t)

	assert.True(t, sa.Invoices.InvoicePaidInFull(1))
	assert.True(t, sa.Invoices.InvoicePaidInFull(2))
	assert.False(t, sa.Invoices.InvoicePaidInFull(4))
	assert.False(t, sa.Invoices.InvoicePaidInFull(5))
	assert.False(t, sa.Invoices.InvoicePaidInFull(404))

	assertMoney(t, "380", sa.Invoices.InvoiceTotal(3))
	assertMoney(t, "0", sa.Invoices.InvoiceTotal(404))
}

func TestInvoiceStats_ByDate(t *testing.T) {
	sa := storeAnalyst(t)

	assert.Equal(t, []int64{3, 4, 5, 6}, ids(sa.Invoices.TransactionsByDate(date(t, "2012-03-27 23:59:59 UTC"))))
	assert.Equal(t, []int64{1, 3, 4}, ids(sa.Invoices.InvoicesByDate(date(t, "2012-03-25"))))
	assert.Empty(t, sa.Invoices.InvoicesByDate(date(t, "2001-01-01")))

	// invoice 3 has two successful charges on the 27th and counts once
	assertMoney(t, "430", sa.Invoices.TotalRevenueByDate(date(t, "2012-03-27")))
	assertMoney(t, "30", sa.Invoices.TotalRevenueByDate(date(t, "2012-03-25")))
	assertMoney(t, "0", sa.Invoices.TotalRevenueByDate(date(t, "2012-03-26")))
}

func TestInvoiceStats_BestInvoice(t *testing.T) {
	sa := storeAnalyst(t)

	byRevenue, ok := sa.Invoices.BestInvoiceByRevenue()
	require.True(t, ok)
	assert.Equal(t, int64(3), byRevenue.ID)

	byQuantity, ok := sa.Invoices.BestInvoiceByQuantity()
	require.True(t, ok)
	assert.Equal(t, int64(3), byQuantity.ID)

	empty := newRepos(t, entities.Dataset{})
	_, ok = NewSalesAnalyst(empty).Invoices.BestInvoiceByRevenue()
	assert.False(t, ok)
}

func TestInvoiceStats_OffsetTimestampsKeepTheirCalendarDate(t *testing.T) {
	sa := NewSalesAnalyst(newRepos(t, entities.Dataset{
		entities.KindMerchants: {{"id": "1", "name": "Alpha"}},
		entities.KindItems: {
			{"id": "10", "name": "Pen", "unit_price": "1000", "merchant_id": "1"},
		},
		entities.KindCustomers: {{"id": "1", "first_name": "Joey", "last_name": "Ondricka"}},
		entities.KindInvoices: {
			{"id": "1", "customer_id": "1", "merchant_id": "1", "status": "shipped", "created_at": "2012-03-27 21:30:00 -0700"},
			{"id": "2", "customer_id": "1", "merchant_id": "1", "status": "shipped", "created_at": "2012-12-31 20:00:00 -0500"},
		},
		entities.KindInvoiceItems: {
			{"id": "1", "item_id": "10", "invoice_id": "1", "quantity": "1", "unit_price": "1000"},
			{"id": "2", "item_id": "10", "invoice_id": "2", "quantity": "1", "unit_price": "1000"},
		},
		entities.KindTransactions: {
			{"id": "1", "invoice_id": "1", "credit_card_number": "4068631943231473", "result": "success", "created_at": "2012-03-27 21:30:00 -0700"},
		},
	}))

	day := date(t, "2012-03-27")
	assert.Equal(t, []int64{1}, ids(sa.Invoices.InvoicesByDate(day)))
	assert.Equal(t, []int64{1}, ids(sa.Invoices.TransactionsByDate(day)))
	assertMoney(t, "10", sa.Invoices.TotalRevenueByDate(day))
	assert.Empty(t, sa.Invoices.InvoicesByDate(date(t, "2012-03-28")))

	assert.Equal(t, map[time.Weekday]int{time.Tuesday: 1, time.Monday: 1}, sa.Invoices.DayCountHash())
	assert.Equal(t, []int64{10}, ids(sa.Customers.ItemsBoughtInYear(1, 2012)))
	assert.Empty(t, sa.Customers.ItemsBoughtInYear(1, 2013))
}
