package usecase

import (
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Relations resolves foreign keys into entities by delegating to the owning
// repository. It is shared, read-only context: it never mutates and a
// dangling key resolves to an empty slice or ok=false.
type Relations struct {
	repos interfaces.Repositories
}

func NewRelations(repos interfaces.Repositories) *Relations {
	return &Relations{repos: repos}
}

func (r *Relations) MerchantItems(merchantID int64) []entities.Item {
	return r.repos.Items.FindAllByMerchantID(merchantID)
}

func (r *Relations) MerchantInvoices(merchantID int64) []entities.Invoice {
	return r.repos.Invoices.FindAllByMerchantID(merchantID)
}

func (r *Relations) CustomerInvoices(customerID int64) []entities.Invoice {
	return r.repos.Invoices.FindAllByCustomerID(customerID)
}

// CustomerPaidInvoices are the customer's invoices that are paid in full.
func (r *Relations) CustomerPaidInvoices(customerID int64) []entities.Invoice {
	return r.paidOnly(r.CustomerInvoices(customerID))
}

// MerchantPaidInvoices are the merchant's invoices that are paid in full.
func (r *Relations) MerchantPaidInvoices(merchantID int64) []entities.Invoice {
	return r.paidOnly(r.MerchantInvoices(merchantID))
}

func (r *Relations) paidOnly(invoices []entities.Invoice) []entities.Invoice {
	out := make([]entities.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if r.IsPaidInFull(inv.ID) {
			out = append(out, inv)
		}
	}
	return out
}

func (r *Relations) InvoiceMerchant(inv entities.Invoice) (entities.Merchant, bool) {
	return r.repos.Merchants.FindByID(inv.MerchantID)
}

func (r *Relations) InvoiceItems(invoiceID int64) []entities.InvoiceItem {
	return r.repos.InvoiceItems.FindAllByInvoiceID(invoiceID)
}

// InvoiceLineItems resolves the items sold on an invoice, skipping lines whose
// item no longer exists.
func (r *Relations) InvoiceLineItems(invoiceID int64) []entities.Item {
	out := []entities.Item{}
	for _, ii := range r.InvoiceItems(invoiceID) {
		if it, ok := r.repos.Items.FindByID(ii.ItemID); ok {
			out = append(out, it)
		}
	}
	return out
}

func (r *Relations) InvoiceTransactions(invoiceID int64) []entities.Transaction {
	return r.repos.Transactions.FindAllByInvoiceID(invoiceID)
}

func (r *Relations) TransactionInvoice(t entities.Transaction) (entities.Invoice, bool) {
	return r.repos.Invoices.FindByID(t.InvoiceID)
}

// IsPaidInFull is true when at least one transaction for the invoice succeeded.
func (r *Relations) IsPaidInFull(invoiceID int64) bool {
	for _, t := range r.InvoiceTransactions(invoiceID) {
		if t.Succeeded() {
			return true
		}
	}
	return false
}

// InvoiceTotal sums possible revenue over the invoice's lines.
func (r *Relations) InvoiceTotal(invoiceID int64) decimal.Decimal {
	total := decimal.Zero
	for _, ii := range r.InvoiceItems(invoiceID) {
		total = total.Add(ii.PossibleRevenue())
	}
	return total
}

// InvoiceQuantity sums the quantities over the invoice's lines.
func (r *Relations) InvoiceQuantity(invoiceID int64) int {
	total := 0
	for _, ii := range r.InvoiceItems(invoiceID) {
		total += ii.Quantity
	}
	return total
}
