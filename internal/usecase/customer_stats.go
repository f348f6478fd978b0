package usecase

import (
	"sort"

	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// ICustomerStats answers buying-behaviour questions about customers.

type ICustomerStats interface {
	OneTimeBuyers() []entities.Customer
	TopSpenders() []CustomerSpend
	TopBuyers(n int) []entities.Customer
	OneTimeBuyersTopItem() (entities.Item, bool)
	TopMerchantForCustomer(customerID int64) (entities.Merchant, bool)
	HighestVolumeItems(customerID int64) []entities.Item
	ItemsBoughtInYear(customerID int64, year int) []entities.Item
	CustomersWithUnpaidInvoices() []entities.Customer
}

// CustomerSpend is a customer's total over fully paid invoices. A customer
// with no paid invoice spends zero.
type CustomerSpend struct {
	Customer entities.Customer
	Total    decimal.Decimal
}

type CustomerStats struct {
	customers interfaces.ICustomerRepository
	items     interfaces.IItemRepository
	relations *Relations
}

var _ ICustomerStats = (*CustomerStats)(nil)

func NewCustomerStats(
	customers interfaces.ICustomerRepository,
	items interfaces.IItemRepository,
	relations *Relations,
) *CustomerStats {
	return &CustomerStats{customers: customers, items: items, relations: relations}
}

// OneTimeBuyers are customers with exactly one fully paid invoice.
func (s *CustomerStats) OneTimeBuyers() []entities.Customer {
	out := []entities.Customer{}
	for _, c := range s.customers.All() {
		if len(s.relations.CustomerPaidInvoices(c.ID)) == 1 {
			out = append(out, c)
		}
	}
	return out
}

// TopSpenders lists every customer with its paid total, in repository order.
func (s *CustomerStats) TopSpenders() []CustomerSpend {
	all := s.customers.All()
	out := make([]CustomerSpend, len(all))
	for i, c := range all {
		total := decimal.Zero
		for _, inv := range s.relations.CustomerPaidInvoices(c.ID) {
			total = total.Add(s.relations.InvoiceTotal(inv.ID))
		}
		out[i] = CustomerSpend{Customer: c, Total: total}
	}
	return out
}

// TopBuyers returns at most n customers by descending paid total. Ties keep
// repository order.
func (s *CustomerStats) TopBuyers(n int) []entities.Customer {
	spend := s.TopSpenders()
	sort.SliceStable(spend, func(i, j int) bool {
		return spend[i].Total.GreaterThan(spend[j].Total)
	})
	out := make([]entities.Customer, len(spend))
	for i, cs := range spend {
		out[i] = cs.Customer
	}
	return firstN(out, n)
}

// OneTimeBuyersTopItem is the item with the largest quantity summed over the
// paid invoices of all one-time buyers. The first item seen wins a tie.
func (s *CustomerStats) OneTimeBuyersTopItem() (entities.Item, bool) {
	tally := newItemTally()
	for _, c := range s.OneTimeBuyers() {
		for _, inv := range s.relations.CustomerPaidInvoices(c.ID) {
			for _, ii := range s.relations.InvoiceItems(inv.ID) {
				tally.add(ii.ItemID, ii.Quantity)
			}
		}
	}
	items := tally.leaders(s.items)
	if len(items) == 0 {
		return entities.Item{}, false
	}
	return items[0], true
}

// TopMerchantForCustomer is the merchant of the customer's invoice carrying
// the most units.
func (s *CustomerStats) TopMerchantForCustomer(customerID int64) (entities.Merchant, bool) {
	var top entities.Invoice
	most, found := -1, false
	for _, inv := range s.relations.CustomerInvoices(customerID) {
		if q := s.relations.InvoiceQuantity(inv.ID); q > most {
			top, most, found = inv, q, true
		}
	}
	if !found {
		return entities.Merchant{}, false
	}
	return s.relations.InvoiceMerchant(top)
}

// HighestVolumeItems sums quantities per item over all of the customer's
// invoices and returns every item reaching the maximum.
func (s *CustomerStats) HighestVolumeItems(customerID int64) []entities.Item {
	tally := newItemTally()
	for _, inv := range s.relations.CustomerInvoices(customerID) {
		for _, ii := range s.relations.InvoiceItems(inv.ID) {
			tally.add(ii.ItemID, ii.Quantity)
		}
	}
	return tally.leaders(s.items)
}

// ItemsBoughtInYear lists the distinct items on the customer's invoices
// created in year.
func (s *CustomerStats) ItemsBoughtInYear(customerID int64, year int) []entities.Item {
	seen := make(map[int64]struct{})
	out := []entities.Item{}
	for _, inv := range s.relations.CustomerInvoices(customerID) {
		if inv.CreatedAt.Year() != year {
			continue
		}
		for _, it := range s.relations.InvoiceLineItems(inv.ID) {
			if _, dup := seen[it.ID]; dup {
				continue
			}
			seen[it.ID] = struct{}{}
			out = append(out, it)
		}
	}
	return out
}

// CustomersWithUnpaidInvoices are customers holding at least one invoice
// without a successful transaction.
func (s *CustomerStats) CustomersWithUnpaidInvoices() []entities.Customer {
	out := []entities.Customer{}
	for _, c := range s.customers.All() {
		for _, inv := range s.relations.CustomerInvoices(c.ID) {
			if !s.relations.IsPaidInFull(inv.ID) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
