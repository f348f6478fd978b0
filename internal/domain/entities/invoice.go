package entities

import (
	"fmt"
	"strings"
)

// InvoiceStatus is the fulfilment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusShipped  InvoiceStatus = "shipped"
	InvoiceStatusReturned InvoiceStatus = "returned"
)

// ParseInvoiceStatus validates a raw status value.
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	switch s := InvoiceStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case InvoiceStatusPending, InvoiceStatusShipped, InvoiceStatusReturned:
		return s, nil
	}
	return "", fmt.Errorf("%w: status=%q", ErrInvalidField, raw)
}

// Invoice belongs to a customer and a merchant.
//
// Whether an invoice is paid in full is derived from its transactions and is
// never stored here.
type Invoice struct {
	ID         int64         `json:"id"`
	CustomerID int64         `json:"customer_id"`
	MerchantID int64         `json:"merchant_id"`
	Status     InvoiceStatus `json:"status"`
	Stamps
}

func InvoiceFromRow(row Row) (Invoice, error) {
	id, err := row.requiredInt64(FieldID)
	if err != nil {
		return Invoice{}, err
	}
	customerID, err := row.requiredInt64("customer_id")
	if err != nil {
		return Invoice{}, err
	}
	merchantID, err := row.requiredInt64("merchant_id")
	if err != nil {
		return Invoice{}, err
	}
	status, err := ParseInvoiceStatus(row.str("status"))
	if err != nil {
		return Invoice{}, err
	}
	stamps, err := stampsFromRow(row)
	if err != nil {
		return Invoice{}, err
	}
	return Invoice{
		ID:         id,
		CustomerID: customerID,
		MerchantID: merchantID,
		Status:     status,
		Stamps:     stamps,
	}, nil
}

func (i Invoice) GetID() int64      { return i.ID }
func (i Invoice) GetStamps() Stamps { return i.Stamps }

func (i Invoice) WithID(id int64) Invoice {
	i.ID = id
	return i
}

func (i Invoice) WithStamps(s Stamps) Invoice {
	i.Stamps = s
	return i
}

func (i Invoice) Patch(row Row) (Invoice, error) {
	if row.Has("customer_id") {
		v, err := row.requiredInt64("customer_id")
		if err != nil {
			return Invoice{}, err
		}
		i.CustomerID = v
	}
	if row.Has("merchant_id") {
		v, err := row.requiredInt64("merchant_id")
		if err != nil {
			return Invoice{}, err
		}
		i.MerchantID = v
	}
	if row.Has("status") {
		s, err := ParseInvoiceStatus(row.str("status"))
		if err != nil {
			return Invoice{}, err
		}
		i.Status = s
	}
	return i, nil
}
