package repository

import (
	"strings"
	"time"

	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

var transactionSchema = Schema[entities.Transaction]{
	Kind:   entities.KindTransactions,
	Decode: entities.TransactionFromRow,
	Indexes: append([]Index[entities.Transaction]{
		idIndex("invoice_id", func(t entities.Transaction) int64 { return t.InvoiceID }),
		{
			Attribute: "credit_card_number",
			Key:       func(t entities.Transaction) string { return t.CreditCardNumber },
		},
		textIndex("result", func(t entities.Transaction) string { return string(t.Result) }),
	}, stampIndexes[entities.Transaction]()...),
}

type TransactionRepository struct {
	*indexedStore[entities.Transaction]
}

var _ interfaces.ITransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(rows []entities.Row, clk clock.Clock) (*TransactionRepository, error) {
	store, err := newIndexedStore(transactionSchema, rows, clk)
	if err != nil {
		return nil, err
	}
	return &TransactionRepository{indexedStore: store}, nil
}

func (r *TransactionRepository) FindAllByInvoiceID(invoiceID int64) []entities.Transaction {
	return r.findAllByKey("invoice_id", entities.IDKey(invoiceID))
}

func (r *TransactionRepository) FindAllByCreditCardNumber(number string) []entities.Transaction {
	return r.findAllByKey("credit_card_number", strings.TrimSpace(number))
}

func (r *TransactionRepository) FindAllByResult(result entities.TransactionResult) []entities.Transaction {
	return r.findAllByKey("result", string(result))
}

func (r *TransactionRepository) FindAllByCreatedAt(date time.Time) []entities.Transaction {
	return r.findAllByKey(entities.FieldCreatedAt, entities.DateKey(date))
}
