package repository

import (
	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

var merchantSchema = Schema[entities.Merchant]{
	Kind:   entities.KindMerchants,
	Decode: entities.MerchantFromRow,
	Indexes: append([]Index[entities.Merchant]{
		textIndex("name", func(m entities.Merchant) string { return m.Name }),
	}, stampIndexes[entities.Merchant]()...),
}

// MerchantRepository holds the merchants of a snapshot.
type MerchantRepository struct {
	*indexedStore[entities.Merchant]
}

var _ interfaces.IMerchantRepository = (*MerchantRepository)(nil)

func NewMerchantRepository(rows []entities.Row, clk clock.Clock) (*MerchantRepository, error) {
	store, err := newIndexedStore(merchantSchema, rows, clk)
	if err != nil {
		return nil, err
	}
	return &MerchantRepository{indexedStore: store}, nil
}

// FindByName matches the whole name, case-insensitively.
func (r *MerchantRepository) FindByName(name string) (entities.Merchant, bool) {
	return r.FindBy("name", name)
}

func (r *MerchantRepository) FindAllByName(name string) []entities.Merchant {
	return r.FindAllBy("name", name)
}

// FindAllByNameFragment matches any merchant whose name contains fragment.
func (r *MerchantRepository) FindAllByNameFragment(fragment string) []entities.Merchant {
	return r.filter(func(m entities.Merchant) bool { return containsFold(m.Name, fragment) })
}
