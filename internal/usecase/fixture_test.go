package usecase

import (
	"fmt"
	"testing"

	"sales_engine/internal/adapter/persistence/repository"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeDataset is a small store with hand-computed answers:
//
//	paid invoices: 1 (c1, m1, 30.00), 2 (c1, m2, 50.00), 3 (c2, m1, 380.00)
//	unpaid: 4 (c3, m3, failed charge), 5 (c3, m1, never charged)
//	invoice item 7 references an item that does not exist.
func storeDataset() entities.Dataset {
	return entities.Dataset{
		entities.KindMerchants: {
			{"id": "1", "name": "Alpha"},
			{"id": "2", "name": "Beta"},
			{"id": "3", "name": "Gamma"},
			{"id": "4", "name": "Delta"},
		},
		entities.KindItems: {
			{"id": "10", "name": "Pen", "description": "blue pen", "unit_price": "1000", "merchant_id": "1"},
			{"id": "11", "name": "Pencil", "description": "hb pencil", "unit_price": "1000", "merchant_id": "1"},
			{"id": "12", "name": "Eraser", "description": "soft eraser", "unit_price": "1000", "merchant_id": "1"},
			{"id": "13", "name": "Ruler", "description": "30cm ruler", "unit_price": "1000", "merchant_id": "1"},
			{"id": "14", "name": "Mug", "description": "coffee mug", "unit_price": "1000", "merchant_id": "2"},
			{"id": "15", "name": "Cup", "description": "tea cup", "unit_price": "1000", "merchant_id": "2"},
			{"id": "16", "name": "Card", "description": "greeting card", "unit_price": "1000", "merchant_id": "3"},
			{"id": "17", "name": "Watch", "description": "gold watch", "unit_price": "100000", "merchant_id": "3"},
		},
		entities.KindCustomers: {
			{"id": "1", "first_name": "Joey", "last_name": "Ondricka"},
			{"id": "2", "first_name": "Cecelia", "last_name": "Osinski"},
			{"id": "3", "first_name": "Mariah", "last_name": "Toy"},
			{"id": "4", "first_name": "Leanne", "last_name": "Braun"},
		},
		entities.KindInvoices: {
			{"id": "1", "customer_id": "1", "merchant_id": "1", "status": "shipped", "created_at": "2012-03-25"},
			{"id": "2", "customer_id": "1", "merchant_id": "2", "status": "shipped", "created_at": "2012-03-26"},
			{"id": "3", "customer_id": "2", "merchant_id": "1", "status": "pending", "created_at": "2012-03-25"},
			{"id": "4", "customer_id": "3", "merchant_id": "3", "status": "returned", "created_at": "2012-03-25"},
			{"id": "5", "customer_id": "3", "merchant_id": "1", "status": "pending", "created_at": "2013-03-27"},
		},
		entities.KindInvoiceItems: {
			{"id": "1", "item_id": "10", "invoice_id": "1", "quantity": "2", "unit_price": "1000"},
			{"id": "2", "item_id": "11", "invoice_id": "1", "quantity": "1", "unit_price": "1000"},
			{"id": "3", "item_id": "14", "invoice_id": "2", "quantity": "5", "unit_price": "1000"},
			{"id": "4", "item_id": "12", "invoice_id": "3", "quantity": "3", "unit_price": "1000"},
			{"id": "5", "item_id": "17", "invoice_id": "4", "quantity": "1", "unit_price": "100000"},
			{"id": "6", "item_id": "13", "invoice_id": "5", "quantity": "4", "unit_price": "1000"},
			{"id": "7", "item_id": "99", "invoice_id": "3", "quantity": "7", "unit_price": "5000"},
		},
		entities.KindTransactions: {
			{"id": "1", "invoice_id": "1", "credit_card_number": "4068631943231473", "result": "success", "created_at": "2012-03-25 10:00:00 UTC"},
			{"id": "2", "invoice_id": "2", "credit_card_number": "4177816490204479", "result": "failed", "created_at": "2012-03-26 09:00:00 UTC"},
			{"id": "3", "invoice_id": "2", "credit_card_number": "4177816490204479", "result": "success", "created_at": "2012-03-27 09:00:00 UTC"},
			{"id": "4", "invoice_id": "3", "credit_card_number": "4297222479613658", "result": "success", "created_at": "2012-03-27 18:30:00 UTC"},
			{"id": "5", "invoice_id": "4", "credit_card_number": "4155348155532186", "result": "failed", "created_at": "2012-03-27 11:00:00 UTC"},
			{"id": "6", "invoice_id": "3", "credit_card_number": "4297222479613658", "result": "success", "created_at": "2012-03-27 19:00:00 UTC"},
		},
	}
}

func newRepos(t *testing.T, ds entities.Dataset) interfaces.Repositories {
	t.Helper()
	repos, err := repository.NewRepositories(ds, nil)
	require.NoError(t, err)
	return repos
}

func storeAnalyst(t *testing.T) *SalesAnalyst {
	t.Helper()
	return NewSalesAnalyst(newRepos(t, storeDataset()))
}

// invoiceSpreadDataset gives merchant i the number of invoices in counts[i].
func invoiceSpreadDataset(counts []int) entities.Dataset {
	ds := entities.Dataset{
		entities.KindCustomers: {{"id": "1", "first_name": "Joey", "last_name": "Ondricka"}},
	}
	invoiceID := 1
	for i, n := range counts {
		merchantID := fmt.Sprint(i + 1)
		ds[entities.KindMerchants] = append(ds[entities.KindMerchants], entities.Row{"id": merchantID, "name": "Shop " + merchantID})
		for j := 0; j < n; j++ {
			ds[entities.KindInvoices] = append(ds[entities.KindInvoices], entities.Row{
				"id": fmt.Sprint(invoiceID), "customer_id": "1", "merchant_id": merchantID, "status": "shipped",
			})
			invoiceID++
		}
	}
	return ds
}

func ids[T entities.Record[T]](records []T) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.GetID()
	}
	return out
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "expected %s, got %s", want, got)
}
