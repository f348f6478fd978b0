package repository

import (
	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var itemSchema = Schema[entities.Item]{
	Kind:   entities.KindItems,
	Decode: entities.ItemFromRow,
	Indexes: append([]Index[entities.Item]{
		textIndex("name", func(i entities.Item) string { return i.Name }),
		textIndex("description", func(i entities.Item) string { return i.Description }),
		{
			Attribute: "unit_price",
			Key:       func(i entities.Item) string { return moneyKey(i.UnitPrice) },
			Normalize: normalizeMoney,
		},
		idIndex("merchant_id", func(i entities.Item) int64 { return i.MerchantID }),
	}, stampIndexes[entities.Item]()...),
}

type ItemRepository struct {
	*indexedStore[entities.Item]
}

var _ interfaces.IItemRepository = (*ItemRepository)(nil)

func NewItemRepository(rows []entities.Row, clk clock.Clock) (*ItemRepository, error) {
	store, err := newIndexedStore(itemSchema, rows, clk)
	if err != nil {
		return nil, err
	}
	return &ItemRepository{indexedStore: store}, nil
}

func (r *ItemRepository) FindByName(name string) (entities.Item, bool) {
	return r.FindBy("name", name)
}

func (r *ItemRepository) FindAllWithDescription(fragment string) []entities.Item {
	return r.filter(func(i entities.Item) bool { return containsFold(i.Description, fragment) })
}

func (r *ItemRepository) FindAllByPrice(price decimal.Decimal) []entities.Item {
	return r.findAllByKey("unit_price", moneyKey(price))
}

// FindAllByPriceInRange is inclusive at both ends.
func (r *ItemRepository) FindAllByPriceInRange(low, high decimal.Decimal) []entities.Item {
	return r.filter(func(i entities.Item) bool {
		return i.UnitPrice.GreaterThanOrEqual(low) && i.UnitPrice.LessThanOrEqual(high)
	})
}

func (r *ItemRepository) FindAllByMerchantID(merchantID int64) []entities.Item {
	return r.findAllByKey("merchant_id", entities.IDKey(merchantID))
}
