package entities

import "github.com/shopspring/decimal"

// Item is a product listed by a merchant.
//
// UnitPrice is the current list price; the price paid at sale time lives on InvoiceItem.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	MerchantID  int64           `json:"merchant_id"`
	Stamps
}

func ItemFromRow(row Row) (Item, error) {
	id, err := row.requiredInt64(FieldID)
	if err != nil {
		return Item{}, err
	}
	price, err := row.money("unit_price")
	if err != nil {
		return Item{}, err
	}
	merchantID, err := row.requiredInt64("merchant_id")
	if err != nil {
		return Item{}, err
	}
	stamps, err := stampsFromRow(row)
	if err != nil {
		return Item{}, err
	}
	return Item{
		ID:          id,
		Name:        row.str("name"),
		Description: row.str("description"),
		UnitPrice:   price,
		MerchantID:  merchantID,
		Stamps:      stamps,
	}, nil
}

func (i Item) GetID() int64      { return i.ID }
func (i Item) GetStamps() Stamps { return i.Stamps }

func (i Item) WithID(id int64) Item {
	i.ID = id
	return i
}

func (i Item) WithStamps(s Stamps) Item {
	i.Stamps = s
	return i
}

func (i Item) Patch(row Row) (Item, error) {
	if row.Has("name") {
		i.Name = row.str("name")
	}
	if row.Has("description") {
		i.Description = row.str("description")
	}
	if row.Has("unit_price") {
		price, err := row.money("unit_price")
		if err != nil {
			return Item{}, err
		}
		i.UnitPrice = price
	}
	if row.Has("merchant_id") {
		merchantID, err := row.requiredInt64("merchant_id")
		if err != nil {
			return Item{}, err
		}
		i.MerchantID = merchantID
	}
	return i, nil
}
