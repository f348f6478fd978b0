package datasource

import (
	"context"
	"fmt"

	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDBSource scans one table per collection, named <prefix><kind>
// (sales_merchants, sales_invoice_items, ...). Every attribute is read back
// as its textual value so rows decode exactly like CSV rows.
//
// Money follows the CSV convention: a value without a decimal point is integer
// cents. A unit_price stored as the Number 10 loads as 0.10. Whole currency
// amounts must be stored as a String with a decimal point ("10.00"), because
// DynamoDB drops trailing zeros from Numbers.
type DynamoDBSource struct {
	ddb    dynamodb.ScanAPIClient
	prefix string
}

var _ interfaces.IRowSource = (*DynamoDBSource)(nil)

func NewDynamoDBSource(ddb dynamodb.ScanAPIClient, tablePrefix string) *DynamoDBSource {
	return &DynamoDBSource{ddb: ddb, prefix: tablePrefix}
}

func (s *DynamoDBSource) TableName(kind entities.Kind) string {
	return s.prefix + string(kind)
}

func (s *DynamoDBSource) Rows(ctx context.Context, kind entities.Kind) ([]entities.Row, error) {
	table := s.TableName(kind)
	paginator := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	})

	rows := []entities.Row{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		for _, item := range page.Items {
			row, err := rowFromItem(item)
			if err != nil {
				return nil, fmt.Errorf("scan %s: %w", table, err)
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func rowFromItem(item map[string]types.AttributeValue) (entities.Row, error) {
	var values map[string]interface{}
	err := attributevalue.UnmarshalMapWithOptions(item, &values, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return nil, err
	}

	row := make(entities.Row, len(values))
	for k, v := range values {
		if v == nil {
			continue
		}
		row[k] = fmt.Sprint(v)
	}
	return row, nil
}
