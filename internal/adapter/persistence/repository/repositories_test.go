package repository

import (
	"testing"
	"time"

	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() entities.Dataset {
	return entities.Dataset{
		entities.KindMerchants: merchantRows(),
		entities.KindItems: {
			{"id": "263395237", "name": "510+ RealPush Icon Set", "description": "Social media icon set", "unit_price": "1200", "merchant_id": "12334105"},
			{"id": "263395617", "name": "Glitter scrabble frames", "description": "Glitter frames for your wall", "unit_price": "1300", "merchant_id": "12334105"},
			{"id": "263395721", "name": "Disney scrabble frames", "description": "Frames with DISNEY characters", "unit_price": "1350", "merchant_id": "12334112"},
		},
		entities.KindCustomers: {
			{"id": "1", "first_name": "Joey", "last_name": "Ondricka"},
			{"id": "2", "first_name": "Cecelia", "last_name": "Osinski"},
		},
		entities.KindInvoices: {
			{"id": "1", "customer_id": "1", "merchant_id": "12334105", "status": "pending", "created_at": "2009-02-07"},
			{"id": "2", "customer_id": "1", "merchant_id": "12334112", "status": "shipped", "created_at": "2012-11-23"},
			{"id": "3", "customer_id": "2", "merchant_id": "12334105", "status": "shipped", "created_at": "2009-02-07"},
		},
		entities.KindInvoiceItems: {
			{"id": "1", "item_id": "263395237", "invoice_id": "1", "quantity": "5", "unit_price": "1200"},
			{"id": "2", "item_id": "263395617", "invoice_id": "1", "quantity": "1", "unit_price": "1300"},
			{"id": "3", "item_id": "263395237", "invoice_id": "3", "quantity": "2", "unit_price": "1100"},
		},
		entities.KindTransactions: {
			{"id": "1", "invoice_id": "1", "credit_card_number": "4068631943231473", "result": "success", "created_at": "2012-02-26 20:56:56 UTC"},
			{"id": "2", "invoice_id": "2", "credit_card_number": "4177816490204479", "result": "failed", "created_at": "2012-02-26 08:01:02 UTC"},
			{"id": "3", "invoice_id": "2", "credit_card_number": "4177816490204479", "result": "success", "created_at": "2012-02-27 10:00:00 UTC"},
		},
	}
}

func TestNewRepositories(t *testing.T) {
	repos, err := NewRepositories(sampleDataset(), clock.NewFakeClock(loadTime))
	require.NoError(t, err)

	assert.Equal(t, 4, repos.Merchants.Len())
	assert.Equal(t, 3, repos.Items.Len())
	assert.Equal(t, 2, repos.Customers.Len())
	assert.Equal(t, 3, repos.Invoices.Len())
	assert.Equal(t, 3, repos.InvoiceItems.Len())
	assert.Equal(t, 3, repos.Transactions.Len())
}

func TestNewRepositories_MalformedRowFailsLoad(t *testing.T) {
	ds := sampleDataset()
	ds[entities.KindInvoices] = append(ds[entities.KindInvoices], entities.Row{"id": "9", "customer_id": "x", "merchant_id": "1", "status": "pending"})

	_, err := NewRepositories(ds, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoices row 4")
}

func TestItemRepository_Finders(t *testing.T) {
	repos, err := NewRepositories(sampleDataset(), nil)
	require.NoError(t, err)
	items := repos.Items

	assert.Len(t, items.FindAllByMerchantID(12334105), 2)
	assert.Empty(t, items.FindAllByMerchantID(999))
	assert.Len(t, items.FindAllWithDescription("frames"), 2)
	assert.Len(t, items.FindAllByPrice(decimal.NewFromInt(12)), 1)
	assert.Len(t, items.FindAllBy("unit_price", "1300"), 1)
	assert.Len(t, items.FindAllByPriceInRange(decimal.NewFromInt(12), decimal.NewFromInt(13)), 2)

	it, ok := items.FindByName("disney SCRABBLE frames")
	require.True(t, ok)
	assert.Equal(t, int64(263395721), it.ID)
}

func TestInvoiceAndTransactionRepository_Finders(t *testing.T) {
	repos, err := NewRepositories(sampleDataset(), nil)
	require.NoError(t, err)

	assert.Len(t, repos.Invoices.FindAllByCustomerID(1), 2)
	assert.Len(t, repos.Invoices.FindAllByMerchantID(12334105), 2)
	assert.Len(t, repos.Invoices.FindAllByStatus(entities.InvoiceStatusShipped), 2)
	assert.Empty(t, repos.Invoices.FindAllByStatus(entities.InvoiceStatusReturned))
	assert.Len(t, repos.Invoices.FindAllByCreatedAt(time.Date(2009, 2, 7, 18, 0, 0, 0, time.UTC)), 2)

	assert.Len(t, repos.InvoiceItems.FindAllByInvoiceID(1), 2)
	assert.Len(t, repos.InvoiceItems.FindAllByItemID(263395237), 2)

	assert.Len(t, repos.Transactions.FindAllByInvoiceID(2), 2)
	assert.Len(t, repos.Transactions.FindAllByCreditCardNumber("4177816490204479"), 2)
	assert.Len(t, repos.Transactions.FindAllByResult(entities.TransactionResultSuccess), 2)
	assert.Len(t, repos.Transactions.FindAllByCreatedAt(time.Date(2012, 2, 26, 0, 0, 0, 0, time.UTC)), 2)

	assert.Len(t, repos.Customers.FindAllByFirstName("joey"), 1)
	assert.Len(t, repos.Customers.FindAllByLastNameFragment("os"), 1)
	assert.Len(t, repos.Customers.FindAllByFirstNameFragment("e"), 2)
}
