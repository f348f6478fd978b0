package datasource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sales_engine/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	data := "id,name,created_at,updated_at\n" +
		"12334105,Shopin1901,2010-12-10,2011-12-04\n" +
		"12334112,\"Candisart, Inc\",2009-05-30,2010-08-29\n"

	rows, err := ParseCSV(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Shopin1901", rows[0]["name"])
	assert.Equal(t, "Candisart, Inc", rows[1]["name"])
	assert.Equal(t, "2009-05-30", rows[1]["created_at"])
}

func TestParseCSV_Empty(t *testing.T) {
	rows, err := ParseCSV(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCSV_BadQuote(t *testing.T) {
	_, err := ParseCSV(context.Background(), strings.NewReader("id,name\n1,\"broken\n"))
	assert.Error(t, err)
}

func TestCSVSource_Rows(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.csv"),
		[]byte("\ufeffid,name,unit_price,merchant_id\n263395237,Icon Set,1200,12334141\n"), 0o600))

	src := NewCSVSource(dir)
	rows, err := src.Rows(context.Background(), entities.KindItems)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "263395237", rows[0]["id"])
	assert.Equal(t, "1200", rows[0]["unit_price"])

	_, err = src.Rows(context.Background(), entities.KindMerchants)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

type fakeScanner struct {
	pages  map[string][]*dynamodb.ScanOutput
	calls  int
	tables []string
	err    error
}

func (f *fakeScanner) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	table := aws.ToString(in.TableName)
	f.tables = append(f.tables, table)
	page := 0
	if in.ExclusiveStartKey != nil {
		page = 1
	}
	f.calls++
	pages := f.pages[table]
	if page >= len(pages) {
		return &dynamodb.ScanOutput{}, nil
	}
	return pages[page], nil
}

func TestDynamoDBSource_Rows(t *testing.T) {
	scanner := &fakeScanner{pages: map[string][]*dynamodb.ScanOutput{
		"sales_invoice_items": {
			{
				Items: []map[string]types.AttributeValue{{
					"id":         &types.AttributeValueMemberN{Value: "1"},
					"item_id":    &types.AttributeValueMemberN{Value: "263519844"},
					"quantity":   &types.AttributeValueMemberN{Value: "5"},
					"unit_price": &types.AttributeValueMemberS{Value: "13635"},
					"note":       &types.AttributeValueMemberNULL{Value: true},
				}},
				LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberN{Value: "1"}},
			},
			{
				Items: []map[string]types.AttributeValue{{
					"id":         &types.AttributeValueMemberN{Value: "2"},
					"item_id":    &types.AttributeValueMemberN{Value: "263454779"},
					"quantity":   &types.AttributeValueMemberN{Value: "9"},
					"unit_price": &types.AttributeValueMemberS{Value: "23324"},
				}},
			},
		},
	}}

	src := NewDynamoDBSource(scanner, "sales_")
	rows, err := src.Rows(context.Background(), entities.KindInvoiceItems)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, scanner.calls)
	assert.Equal(t, entities.Row{"id": "1", "item_id": "263519844", "quantity": "5", "unit_price": "13635"}, rows[0])
	assert.Equal(t, "9", rows[1]["quantity"])
}

func TestDynamoDBSource_ScanError(t *testing.T) {
	src := NewDynamoDBSource(&fakeScanner{err: errors.New("throttled")}, "sales_")
	_, err := src.Rows(context.Background(), entities.KindMerchants)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sales_merchants")
}

type mapSource map[entities.Kind][]entities.Row

func (m mapSource) Rows(_ context.Context, kind entities.Kind) ([]entities.Row, error) {
	rows, ok := m[kind]
	if !ok {
		return nil, errors.New("no such collection")
	}
	return rows, nil
}

func TestLoadDataset(t *testing.T) {
	src := mapSource{}
	for _, kind := range entities.Kinds {
		src[kind] = []entities.Row{{"id": "1"}}
	}

	ds, err := LoadDataset(context.Background(), src, nil, nil)
	require.NoError(t, err)
	assert.Len(t, ds, len(entities.Kinds))

	delete(src, entities.KindTransactions)
	_, err = LoadDataset(context.Background(), src, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load transactions")
}

func TestDynamoDBSource_MoneyFollowsCentsConvention(t *testing.T) {
	item := func(id, merchantID string, price types.AttributeValue) map[string]types.AttributeValue {
		return map[string]types.AttributeValue{
			"id":          &types.AttributeValueMemberN{Value: id},
			"name":        &types.AttributeValueMemberS{Value: "Pen"},
			"merchant_id": &types.AttributeValueMemberN{Value: merchantID},
			"unit_price":  price,
		}
	}
	scanner := &fakeScanner{pages: map[string][]*dynamodb.ScanOutput{
		"sales_items": {{Items: []map[string]types.AttributeValue{
			item("1", "7", &types.AttributeValueMemberN{Value: "1099"}),
			item("2", "7", &types.AttributeValueMemberN{Value: "10"}),
			item("3", "7", &types.AttributeValueMemberS{Value: "10.00"}),
			item("4", "7", &types.AttributeValueMemberN{Value: "10.5"}),
		}}},
	}}

	rows, err := NewDynamoDBSource(scanner, "sales_").Rows(context.Background(), entities.KindItems)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	want := []string{"10.99", "0.10", "10.00", "10.50"}
	for i, row := range rows {
		it, err := entities.ItemFromRow(row)
		require.NoError(t, err)
		assert.Equal(t, want[i], it.UnitPrice.StringFixed(2), row["unit_price"])
	}
}
