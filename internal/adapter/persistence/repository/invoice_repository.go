package repository

import (
	"time"

	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

var invoiceSchema = Schema[entities.Invoice]{
	Kind:   entities.KindInvoices,
	Decode: entities.InvoiceFromRow,
	Indexes: append([]Index[entities.Invoice]{
		idIndex("customer_id", func(i entities.Invoice) int64 { return i.CustomerID }),
		idIndex("merchant_id", func(i entities.Invoice) int64 { return i.MerchantID }),
		textIndex("status", func(i entities.Invoice) string { return string(i.Status) }),
	}, stampIndexes[entities.Invoice]()...),
}

type InvoiceRepository struct {
	*indexedStore[entities.Invoice]
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(rows []entities.Row, clk clock.Clock) (*InvoiceRepository, error) {
	store, err := newIndexedStore(invoiceSchema, rows, clk)
	if err != nil {
		return nil, err
	}
	return &InvoiceRepository{indexedStore: store}, nil
}

func (r *InvoiceRepository) FindAllByCustomerID(customerID int64) []entities.Invoice {
	return r.findAllByKey("customer_id", entities.IDKey(customerID))
}

func (r *InvoiceRepository) FindAllByMerchantID(merchantID int64) []entities.Invoice {
	return r.findAllByKey("merchant_id", entities.IDKey(merchantID))
}

func (r *InvoiceRepository) FindAllByStatus(status entities.InvoiceStatus) []entities.Invoice {
	return r.findAllByKey("status", string(status))
}

// FindAllByCreatedAt matches on calendar date only.
func (r *InvoiceRepository) FindAllByCreatedAt(date time.Time) []entities.Invoice {
	return r.findAllByKey(entities.FieldCreatedAt, entities.DateKey(date))
}
