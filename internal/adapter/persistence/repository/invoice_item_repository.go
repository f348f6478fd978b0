package repository

import (
	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

var invoiceItemSchema = Schema[entities.InvoiceItem]{
	Kind:   entities.KindInvoiceItems,
	Decode: entities.InvoiceItemFromRow,
	Indexes: append([]Index[entities.InvoiceItem]{
		idIndex("item_id", func(ii entities.InvoiceItem) int64 { return ii.ItemID }),
		idIndex("invoice_id", func(ii entities.InvoiceItem) int64 { return ii.InvoiceID }),
		{
			Attribute: "unit_price",
			Key:       func(ii entities.InvoiceItem) string { return moneyKey(ii.UnitPrice) },
			Normalize: normalizeMoney,
		},
	}, stampIndexes[entities.InvoiceItem]()...),
}

type InvoiceItemRepository struct {
	*indexedStore[entities.InvoiceItem]
}

var _ interfaces.IInvoiceItemRepository = (*InvoiceItemRepository)(nil)

func NewInvoiceItemRepository(rows []entities.Row, clk clock.Clock) (*InvoiceItemRepository, error) {
	store, err := newIndexedStore(invoiceItemSchema, rows, clk)
	if err != nil {
		return nil, err
	}
	return &InvoiceItemRepository{indexedStore: store}, nil
}

func (r *InvoiceItemRepository) FindAllByItemID(itemID int64) []entities.InvoiceItem {
	return r.findAllByKey("item_id", entities.IDKey(itemID))
}

func (r *InvoiceItemRepository) FindAllByInvoiceID(invoiceID int64) []entities.InvoiceItem {
	return r.findAllByKey("invoice_id", entities.IDKey(invoiceID))
}
