package request

import (
	"errors"
	"strconv"
	"strings"

	"sales_engine/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidUnitPrice = errors.New("unit_price must be non-negative with at most two decimal places")

// validUnitPrice rejects amounts that cannot be stored as whole cents.
func validUnitPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.Equal(p.Round(2))
}

type CreateMerchantRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r CreateMerchantRequest) ToRow() entities.Row {
	return entities.Row{"name": strings.TrimSpace(r.Name)}
}

// UpdateMerchantRequest only carries the fields being changed.
type UpdateMerchantRequest struct {
	Name *string `json:"name"`
}

func (r UpdateMerchantRequest) ToRow() entities.Row {
	row := entities.Row{}
	if r.Name != nil {
		row["name"] = strings.TrimSpace(*r.Name)
	}
	return row
}

// CreateItemRequest takes unit_price in currency units, as a JSON number or string.
type CreateItemRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price" binding:"required"`
	MerchantID  int64            `json:"merchant_id" binding:"required,gt=0"`
}

func (r CreateItemRequest) Validate() error {
	if r.UnitPrice == nil || !validUnitPrice(*r.UnitPrice) {
		return ErrInvalidUnitPrice
	}
	return nil
}

func (r CreateItemRequest) ToRow() entities.Row {
	return entities.Row{
		"name":        strings.TrimSpace(r.Name),
		"description": strings.TrimSpace(r.Description),
		"unit_price":  entities.FormatMoney(*r.UnitPrice),
		"merchant_id": strconv.FormatInt(r.MerchantID, 10),
	}
}

type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	MerchantID  *int64           `json:"merchant_id" binding:"omitempty,gt=0"`
}

func (r UpdateItemRequest) Validate() error {
	if r.UnitPrice != nil && !validUnitPrice(*r.UnitPrice) {
		return ErrInvalidUnitPrice
	}
	return nil
}

func (r UpdateItemRequest) ToRow() entities.Row {
	row := entities.Row{}
	if r.Name != nil {
		row["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		row["description"] = strings.TrimSpace(*r.Description)
	}
	if r.UnitPrice != nil {
		row["unit_price"] = entities.FormatMoney(*r.UnitPrice)
	}
	if r.MerchantID != nil {
		row["merchant_id"] = strconv.FormatInt(*r.MerchantID, 10)
	}
	return row
}
