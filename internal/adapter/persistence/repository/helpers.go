package repository

import (
	"strings"

	"sales_engine/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func normalizeID(raw string) string {
	id, err := entities.ParseID(raw)
	if err != nil {
		return raw
	}
	return entities.IDKey(id)
}

func normalizeDate(raw string) string {
	t, err := entities.ParseTime(raw)
	if err != nil {
		return raw
	}
	return entities.DateKey(t)
}

func normalizeMoney(raw string) string {
	v, err := entities.ParseMoney(raw)
	if err != nil {
		return raw
	}
	return moneyKey(v)
}

func moneyKey(v decimal.Decimal) string {
	return v.String()
}

func containsFold(s, fragment string) bool {
	return strings.Contains(entities.FoldKey(s), entities.FoldKey(fragment))
}

func idIndex[T any](attribute string, key func(T) int64) Index[T] {
	return Index[T]{
		Attribute: attribute,
		Key:       func(rec T) string { return entities.IDKey(key(rec)) },
		Normalize: normalizeID,
	}
}

func textIndex[T any](attribute string, key func(T) string) Index[T] {
	return Index[T]{
		Attribute: attribute,
		Key:       func(rec T) string { return entities.FoldKey(key(rec)) },
		Normalize: entities.FoldKey,
	}
}

func stampIndexes[T entities.Record[T]]() []Index[T] {
	return []Index[T]{
		{
			Attribute: entities.FieldCreatedAt,
			Key:       func(rec T) string { return entities.DateKey(rec.GetStamps().CreatedAt) },
			Normalize: normalizeDate,
		},
		{
			Attribute: entities.FieldUpdatedAt,
			Key:       func(rec T) string { return entities.DateKey(rec.GetStamps().UpdatedAt) },
			Normalize: normalizeDate,
		},
	}
}
