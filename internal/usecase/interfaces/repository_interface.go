package interfaces

import (
	"time"

	"sales_engine/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IRepository is the indexed in-memory collection contract shared by every entity.
//
// Lookups never fail: a missing id yields ok=false and a missing attribute
// value yields an empty slice. Mutations rebuild every secondary index.
type IRepository[T any] interface {
	All() []T
	Len() int
	FindByID(id int64) (T, bool)
	FindBy(attribute, value string) (T, bool)
	FindAllBy(attribute, value string) []T
	Create(attrs entities.Row) (T, error)
	Update(id int64, attrs entities.Row) (T, bool, error)
	Delete(id int64) bool
}

type IMerchantRepository interface {
	IRepository[entities.Merchant]
	FindByName(name string) (entities.Merchant, bool)
	FindAllByName(name string) []entities.Merchant
	FindAllByNameFragment(fragment string) []entities.Merchant
}

type IItemRepository interface {
	IRepository[entities.Item]
	FindByName(name string) (entities.Item, bool)
	FindAllWithDescription(fragment string) []entities.Item
	FindAllByPrice(price decimal.Decimal) []entities.Item
	FindAllByPriceInRange(low, high decimal.Decimal) []entities.Item
	FindAllByMerchantID(merchantID int64) []entities.Item
}

type ICustomerRepository interface {
	IRepository[entities.Customer]
	FindAllByFirstName(name string) []entities.Customer
	FindAllByLastName(name string) []entities.Customer
	FindAllByFirstNameFragment(fragment string) []entities.Customer
	FindAllByLastNameFragment(fragment string) []entities.Customer
}

type IInvoiceRepository interface {
	IRepository[entities.Invoice]
	FindAllByCustomerID(customerID int64) []entities.Invoice
	FindAllByMerchantID(merchantID int64) []entities.Invoice
	FindAllByStatus(status entities.InvoiceStatus) []entities.Invoice
	FindAllByCreatedAt(date time.Time) []entities.Invoice
}

type IInvoiceItemRepository interface {
	IRepository[entities.InvoiceItem]
	FindAllByItemID(itemID int64) []entities.InvoiceItem
	FindAllByInvoiceID(invoiceID int64) []entities.InvoiceItem
}

type ITransactionRepository interface {
	IRepository[entities.Transaction]
	FindAllByInvoiceID(invoiceID int64) []entities.Transaction
	FindAllByCreditCardNumber(number string) []entities.Transaction
	FindAllByResult(result entities.TransactionResult) []entities.Transaction
	FindAllByCreatedAt(date time.Time) []entities.Transaction
}

// Repositories bundles one repository per collection of a loaded snapshot.
type Repositories struct {
	Merchants    IMerchantRepository
	Items        IItemRepository
	Customers    ICustomerRepository
	Invoices     IInvoiceRepository
	InvoiceItems IInvoiceItemRepository
	Transactions ITransactionRepository
}
