package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerStats_OneTimeBuyers(t *testing.T) {
	sa := storeAnalyst(t)

	buyers := sa.Customers.OneTimeBuyers()
	require.Len(t, buyers, 1)
	assert.Equal(t, int64(2), buyers[0].ID)

	item, ok := sa.Customers.OneTimeBuyersTopItem()
	require.True(t, ok)
	assert.Equal(t, int64(12), item.ID)
}

func TestCustomerStats_TopSpenders(t *testing.T) {
	sa := storeAnalyst(t)

	spend := sa.Customers.TopSpenders()
	require.Len(t, spend, 4)
	assertMoney(t, "80", spend[0].Total)
	assertMoney(t, "380", spend[1].Total)
	assertMoney(t, "0", spend[2].Total)
	assertMoney(t, "0", spend[3].Total)
}

func TestCustomerStats_TopBuyers(t *testing.T) {
	sa := storeAnalyst(t)

	assert.Equal(t, []int64{2, 1, 3}, ids(sa.Customers.TopBuyers(3)))
	// customers without paid invoices keep their relative order
	assert.Equal(t, []int64{2, 1, 3, 4}, ids(sa.Customers.TopBuyers(20)))
	assert.Empty(t, sa.Customers.TopBuyers(0))
}

func TestCustomerStats_TopMerchantForCustomer(t *testing.T) {
	sa := storeAnalyst(t)

	m, ok := sa.Customers.TopMerchantForCustomer(1)
	require.True(t, ok)
	assert.Equal(t, "Beta", m.Name)

	m, ok = sa.Customers.TopMerchantForCustomer(3)
	require.True(t, ok)
	assert.Equal(t, int64(1), m.ID)

	_, ok = sa.Customers.TopMerchantForCustomer(4)
	assert.False(t, ok)
}

func TestCustomerStats_Items(t *testing.T) {
	sa := storeAnalyst(t)

	assert.Equal(t, []int64{14}, ids(sa.Customers.HighestVolumeItems(1)))
	assert.Empty(t, sa.Customers.HighestVolumeItems(4))

	assert.Equal(t, []int64{10, 11, 14}, ids(sa.Customers.ItemsBoughtInYear(1, 2012)))
	assert.Equal(t, []int64{13}, ids(sa.Customers.ItemsBoughtInYear(3, 2013)))
	assert.Empty(t, sa.Customers.ItemsBoughtInYear(1, 2013))
}

func TestCustomerStats_CustomersWithUnpaidInvoices(t *testing.T) {
	sa := storeAnalyst(t)

	assert.Equal(t, []int64{3}, ids(sa.Customers.CustomersWithUnpaidInvoices()))
}
