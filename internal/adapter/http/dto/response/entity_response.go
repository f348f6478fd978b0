package response

import (
	"time"

	"sales_engine/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Money renders a fixed-point amount with two decimals, e.g. "136.35".
func Money(v decimal.Decimal) string {
	return v.StringFixed(2)
}

type MerchantResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMerchant(m entities.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromMerchants(ms []entities.Merchant) []MerchantResponse {
	out := make([]MerchantResponse, len(ms))
	for i, m := range ms {
		out[i] = FromMerchant(m)
	}
	return out
}

type ItemResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnitPrice   string    `json:"unit_price"`
	MerchantID  int64     `json:"merchant_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromItem(it entities.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		UnitPrice:   Money(it.UnitPrice),
		MerchantID:  it.MerchantID,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func FromItems(items []entities.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = FromItem(it)
	}
	return out
}

type CustomerResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(cs))
	for i, c := range cs {
		out[i] = FromCustomer(c)
	}
	return out
}

type InvoiceResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	MerchantID int64     `json:"merchant_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		MerchantID: inv.MerchantID,
		Status:     string(inv.Status),
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

func FromInvoices(invs []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invs))
	for i, inv := range invs {
		out[i] = FromInvoice(inv)
	}
	return out
}

// TransactionResponse never echoes the full card number.
type TransactionResponse struct {
	ID             int64     `json:"id"`
	InvoiceID      int64     `json:"invoice_id"`
	CardLastDigits string    `json:"card_last_digits"`
	Result         string    `json:"result"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	last := t.CreditCardNumber
	if len(last) > 4 {
		last = last[len(last)-4:]
	}
	return TransactionResponse{
		ID:             t.ID,
		InvoiceID:      t.InvoiceID,
		CardLastDigits: last,
		Result:         string(t.Result),
		CreatedAt:      t.CreatedAt,
	}
}

func FromTransactions(ts []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		out[i] = FromTransaction(t)
	}
	return out
}
