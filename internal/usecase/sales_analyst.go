package usecase

import "sales_engine/internal/usecase/interfaces"

// SalesAnalyst bundles the analytics services over one set of repositories.
// Every service reads through the same Relations resolver.
type SalesAnalyst struct {
	Items     IItemStats
	Merchants IMerchantStats
	Customers ICustomerStats
	Invoices  IInvoiceStats
}

func NewSalesAnalyst(repos interfaces.Repositories) *SalesAnalyst {
	rel := NewRelations(repos)
	return &SalesAnalyst{
		Items:     NewItemStats(repos.Items, repos.Merchants),
		Merchants: NewMerchantStats(repos.Merchants, repos.Items, repos.Transactions, rel),
		Customers: NewCustomerStats(repos.Customers, repos.Items, rel),
		Invoices:  NewInvoiceStats(repos.Invoices, repos.Transactions, rel),
	}
}
