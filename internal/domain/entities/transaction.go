package entities

import (
	"fmt"
	"strings"
)

// TransactionResult is the outcome of a card charge against an invoice.
type TransactionResult string

const (
	TransactionResultSuccess TransactionResult = "success"
	TransactionResultFailed  TransactionResult = "failed"
)

func ParseTransactionResult(raw string) (TransactionResult, error) {
	switch r := TransactionResult(strings.ToLower(strings.TrimSpace(raw))); r {
	case TransactionResultSuccess, TransactionResultFailed:
		return r, nil
	}
	return "", fmt.Errorf("%w: result=%q", ErrInvalidField, raw)
}

// Transaction is a payment attempt for an invoice.
type Transaction struct {
	ID                       int64             `json:"id"`
	InvoiceID                int64             `json:"invoice_id"`
	CreditCardNumber         string            `json:"credit_card_number"`
	CreditCardExpirationDate string            `json:"credit_card_expiration_date"`
	Result                   TransactionResult `json:"result"`
	Stamps
}

func TransactionFromRow(row Row) (Transaction, error) {
	id, err := row.requiredInt64(FieldID)
	if err != nil {
		return Transaction{}, err
	}
	invoiceID, err := row.requiredInt64("invoice_id")
	if err != nil {
		return Transaction{}, err
	}
	result, err := ParseTransactionResult(row.str("result"))
	if err != nil {
		return Transaction{}, err
	}
	stamps, err := stampsFromRow(row)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:                       id,
		InvoiceID:                invoiceID,
		CreditCardNumber:         row.str("credit_card_number"),
		CreditCardExpirationDate: row.str("credit_card_expiration_date"),
		Result:                   result,
		Stamps:                   stamps,
	}, nil
}

// Succeeded reports whether the charge went through.
func (t Transaction) Succeeded() bool {
	return t.Result == TransactionResultSuccess
}

func (t Transaction) GetID() int64      { return t.ID }
func (t Transaction) GetStamps() Stamps { return t.Stamps }

func (t Transaction) WithID(id int64) Transaction {
	t.ID = id
	return t
}

func (t Transaction) WithStamps(s Stamps) Transaction {
	t.Stamps = s
	return t
}

func (t Transaction) Patch(row Row) (Transaction, error) {
	if row.Has("invoice_id") {
		v, err := row.requiredInt64("invoice_id")
		if err != nil {
			return Transaction{}, err
		}
		t.InvoiceID = v
	}
	if row.Has("credit_card_number") {
		t.CreditCardNumber = row.str("credit_card_number")
	}
	if row.Has("credit_card_expiration_date") {
		t.CreditCardExpirationDate = row.str("credit_card_expiration_date")
	}
	if row.Has("result") {
		r, err := ParseTransactionResult(row.str("result"))
		if err != nil {
			return Transaction{}, err
		}
		t.Result = r
	}
	return t, nil
}
