package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "13635", want: "136.35"},
		{raw: "1200", want: "12"},
		{raw: "12.5", want: "12.5"},
		{raw: " 0 ", want: "0"},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%s -> %s", tc.raw, got)
	}

	_, err := ParseMoney("abc")
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "13635", FormatMoney(decimal.RequireFromString("136.35")))
	assert.Equal(t, "1200", FormatMoney(decimal.NewFromInt(12)))
}

func TestParseTime(t *testing.T) {
	for _, raw := range []string{
		"2012-03-27 14:54:09 UTC",
		"2012-03-27T14:54:09Z",
		"2012-03-27 14:54:09",
	} {
		got, err := ParseTime(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, time.Date(2012, 3, 27, 14, 54, 9, 0, time.UTC), got, raw)
	}

	day, err := ParseTime("2009-02-07")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, day.Weekday())

	_, err = ParseTime("yesterday")
	assert.Error(t, err)
}

func TestSameDateIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2012, 3, 27, 0, 0, 1, 0, time.UTC)
	b := time.Date(2012, 3, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2012, 3, 28, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(b, c))
}

func TestItemFromRow(t *testing.T) {
	it, err := ItemFromRow(Row{
		"id":          "263395237",
		"name":        "510+ RealPush Icon Set",
		"description": "You&#39;ve got a total socialmedia iconset!",
		"unit_price":  "1200",
		"merchant_id": "12334141",
		"created_at":  "2016-01-11 09:34:06 UTC",
		"updated_at":  "2007-06-04 21:35:10 UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(263395237), it.ID)
	assert.Equal(t, int64(12334141), it.MerchantID)
	assert.True(t, it.UnitPrice.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 2016, it.CreatedAt.Year())
}

func TestFromRowRejectsMalformedRows(t *testing.T) {
	_, err := MerchantFromRow(Row{"name": "no id"})
	assert.True(t, errors.Is(err, ErrMissingField))

	_, err = InvoiceFromRow(Row{"id": "1", "customer_id": "1", "merchant_id": "2", "status": "lost"})
	assert.True(t, errors.Is(err, ErrInvalidField))

	_, err = TransactionFromRow(Row{"id": "1", "invoice_id": "1", "result": "maybe"})
	assert.True(t, errors.Is(err, ErrInvalidField))

	_, err = InvoiceItemFromRow(Row{"id": "1", "item_id": "1", "invoice_id": "1", "quantity": "-2", "unit_price": "100"})
	assert.True(t, errors.Is(err, ErrInvalidField))
}

func TestInvoiceItemPossibleRevenue(t *testing.T) {
	ii, err := InvoiceItemFromRow(Row{
		"id": "1", "item_id": "263519844", "invoice_id": "1", "quantity": "5", "unit_price": "13635",
	})
	require.NoError(t, err)
	assert.True(t, ii.PossibleRevenue().Equal(decimal.RequireFromString("681.75")))
}

func TestPatchOnlyTouchesSuppliedFields(t *testing.T) {
	created := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	it := Item{ID: 7, Name: "Pen", Description: "Blue", UnitPrice: decimal.NewFromInt(3), MerchantID: 1,
		Stamps: Stamps{CreatedAt: created, UpdatedAt: created}}

	patched, err := it.Patch(Row{"unit_price": "450", "id": "99", "created_at": "2020-01-01"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), patched.ID)
	assert.Equal(t, "Pen", patched.Name)
	assert.Equal(t, created, patched.CreatedAt)
	assert.True(t, patched.UnitPrice.Equal(decimal.RequireFromString("4.5")))

	_, err = it.Patch(Row{"unit_price": "free"})
	assert.Error(t, err)

	inv := Invoice{ID: 1, Status: InvoiceStatusPending}
	inv, err = inv.Patch(Row{"status": "Shipped"})
	require.NoError(t, err)
	assert.Equal(t, InvoiceStatusShipped, inv.Status)
}

func TestDateKeyUsesTheWrittenOffset(t *testing.T) {
	late, err := ParseTime("2012-03-27 21:30:00 -0700")
	require.NoError(t, err)
	assert.Equal(t, "2012-03-27", DateKey(late))
	assert.Equal(t, time.Tuesday, late.Weekday())

	utc, err := ParseTime("2012-03-27 08:00:00 UTC")
	require.NoError(t, err)
	assert.True(t, SameDate(late, utc))
}
