package entities

// Kind names an entity collection. It doubles as the source name: the CSV file
// stem and the DynamoDB table suffix.
type Kind string

const (
	KindMerchants    Kind = "merchants"
	KindItems        Kind = "items"
	KindCustomers    Kind = "customers"
	KindInvoices     Kind = "invoices"
	KindInvoiceItems Kind = "invoice_items"
	KindTransactions Kind = "transactions"
)

// Kinds lists every collection in load order.
var Kinds = []Kind{
	KindMerchants,
	KindItems,
	KindCustomers,
	KindInvoices,
	KindInvoiceItems,
	KindTransactions,
}

// Dataset is the raw input for one snapshot: rows grouped by collection.
type Dataset map[Kind][]Row
