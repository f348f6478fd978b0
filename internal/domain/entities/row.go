package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row is a raw source record: field name -> raw value, as produced by a row source
// (CSV file, DynamoDB table) or by a create/update payload.
type Row map[string]string

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidField = errors.New("invalid field")
)

// Immutable fields are never changed by an update.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05 MST",
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// Has reports whether the field is present in the row.
func (r Row) Has(field string) bool {
	_, ok := r[field]
	return ok
}

func (r Row) str(field string) string {
	return strings.TrimSpace(r[field])
}

func (r Row) requiredInt64(field string) (int64, error) {
	raw := r.str(field)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return ParseID(raw)
}

func (r Row) intField(field string) (int, error) {
	raw := r.str(field)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidField, field, raw)
	}
	return v, nil
}

func (r Row) money(field string) (decimal.Decimal, error) {
	raw := r.str(field)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	v, err := ParseMoney(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s=%q", ErrInvalidField, field, raw)
	}
	return v, nil
}

// timeField parses an optional timestamp; a missing value yields the zero time.
func (r Row) timeField(field string) (time.Time, error) {
	raw := r.str(field)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := ParseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%q", ErrInvalidField, field, raw)
	}
	return t, nil
}

// ParseID parses an integer entity id or foreign key.
func ParseID(raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id=%q", ErrInvalidField, raw)
	}
	return v, nil
}

// ParseMoney reads a monetary amount. Values without a decimal point are integer
// cents ("13635" is 136.35); values with one are currency units ("136.35").
func ParseMoney(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, ".") {
		return decimal.NewFromString(raw)
	}
	cents, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(cents, -2), nil
}

// FormatMoney renders an amount as integer cents, the inverse of ParseMoney.
func FormatMoney(v decimal.Decimal) string {
	return v.Shift(2).Round(0).String()
}

// ParseTime accepts the timestamp layouts found in source data. The written
// offset is kept so the calendar date stays the one in the source.
func ParseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// DateKey is the calendar-date component of a timestamp as written, used for
// date equality.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDate compares only the calendar date component, ignoring time of day.
func SameDate(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// FoldKey normalizes a text attribute for case-insensitive lookups.
func FoldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IDKey normalizes an integer attribute for index lookups.
func IDKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Stamps holds the bookkeeping timestamps shared by every entity.
type Stamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func stampsFromRow(row Row) (Stamps, error) {
	created, err := row.timeField(FieldCreatedAt)
	if err != nil {
		return Stamps{}, err
	}
	updated, err := row.timeField(FieldUpdatedAt)
	if err != nil {
		return Stamps{}, err
	}
	return Stamps{CreatedAt: created, UpdatedAt: updated}, nil
}
