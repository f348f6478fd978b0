package entities

import "github.com/shopspring/decimal"

// InvoiceItem is one line of an invoice: an item, a quantity, and the unit
// price charged at sale time.
type InvoiceItem struct {
	ID        int64           `json:"id"`
	ItemID    int64           `json:"item_id"`
	InvoiceID int64           `json:"invoice_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Stamps
}

func InvoiceItemFromRow(row Row) (InvoiceItem, error) {
	id, err := row.requiredInt64(FieldID)
	if err != nil {
		return InvoiceItem{}, err
	}
	itemID, err := row.requiredInt64("item_id")
	if err != nil {
		return InvoiceItem{}, err
	}
	invoiceID, err := row.requiredInt64("invoice_id")
	if err != nil {
		return InvoiceItem{}, err
	}
	qty, err := row.intField("quantity")
	if err != nil {
		return InvoiceItem{}, err
	}
	price, err := row.money("unit_price")
	if err != nil {
		return InvoiceItem{}, err
	}
	stamps, err := stampsFromRow(row)
	if err != nil {
		return InvoiceItem{}, err
	}
	return InvoiceItem{
		ID:        id,
		ItemID:    itemID,
		InvoiceID: invoiceID,
		Quantity:  qty,
		UnitPrice: price,
		Stamps:    stamps,
	}, nil
}

// PossibleRevenue is quantity × unit_price.
func (ii InvoiceItem) PossibleRevenue() decimal.Decimal {
	return ii.UnitPrice.Mul(decimal.NewFromInt(int64(ii.Quantity)))
}

func (ii InvoiceItem) GetID() int64      { return ii.ID }
func (ii InvoiceItem) GetStamps() Stamps { return ii.Stamps }

func (ii InvoiceItem) WithID(id int64) InvoiceItem {
	ii.ID = id
	return ii
}

func (ii InvoiceItem) WithStamps(s Stamps) InvoiceItem {
	ii.Stamps = s
	return ii
}

func (ii InvoiceItem) Patch(row Row) (InvoiceItem, error) {
	if row.Has("item_id") {
		v, err := row.requiredInt64("item_id")
		if err != nil {
			return InvoiceItem{}, err
		}
		ii.ItemID = v
	}
	if row.Has("invoice_id") {
		v, err := row.requiredInt64("invoice_id")
		if err != nil {
			return InvoiceItem{}, err
		}
		ii.InvoiceID = v
	}
	if row.Has("quantity") {
		v, err := row.intField("quantity")
		if err != nil {
			return InvoiceItem{}, err
		}
		ii.Quantity = v
	}
	if row.Has("unit_price") {
		v, err := row.money("unit_price")
		if err != nil {
			return InvoiceItem{}, err
		}
		ii.UnitPrice = v
	}
	return ii, nil
}
