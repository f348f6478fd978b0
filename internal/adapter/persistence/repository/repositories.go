package repository

import (
	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

// NewRepositories builds every indexed repository from a raw dataset. A
// malformed row fails the whole load.
func NewRepositories(ds entities.Dataset, clk clock.Clock) (interfaces.Repositories, error) {
	merchants, err := NewMerchantRepository(ds[entities.KindMerchants], clk)
	if err != nil {
		return interfaces.Repositories{}, err
	}
	items, err := NewItemRepository(ds[entities.KindItems], clk)
	if err != nil {
		return interfaces.Repositories{}, err
	}
	customers, err := NewCustomerRepository(ds[entities.KindCustomers], clk)
	if err != nil {
		return interfaces.Repositories{}, err
	}
	invoices, err := NewInvoiceRepository(ds[entities.KindInvoices], clk)
	if err != nil {
		return interfaces.Repositories{}, err
	}
	invoiceItems, err := NewInvoiceItemRepository(ds[entities.KindInvoiceItems], clk)
	if err != nil {
		return interfaces.Repositories{}, err
	}
	transactions, err := NewTransactionRepository(ds[entities.KindTransactions], clk)
	if err != nil {
		return interfaces.Repositories{}, err
	}

	return interfaces.Repositories{
		Merchants:    merchants,
		Items:        items,
		Customers:    customers,
		Invoices:     invoices,
		InvoiceItems: invoiceItems,
		Transactions: transactions,
	}, nil
}
