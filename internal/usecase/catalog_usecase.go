package usecase

import (
	"errors"
	"fmt"

	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

var (
	ErrMerchantNotFound  = errors.New("merchant not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidAttributes = errors.New("invalid attributes")
)

// ICatalogUseCase maintains merchants and items. Ids and created_at are
// assigned by the repositories; supplied values for them are ignored.

type ICatalogUseCase interface {
	GetMerchant(id int64) (entities.Merchant, error)
	CreateMerchant(attrs entities.Row) (entities.Merchant, error)
	UpdateMerchant(id int64, attrs entities.Row) (entities.Merchant, error)
	DeleteMerchant(id int64) error
	SearchMerchants(fragment string) []entities.Merchant

	GetItem(id int64) (entities.Item, error)
	CreateItem(attrs entities.Row) (entities.Item, error)
	UpdateItem(id int64, attrs entities.Row) (entities.Item, error)
	DeleteItem(id int64) error
	SearchItems(fragment string) []entities.Item
}

type CatalogUseCase struct {
	merchants interfaces.IMerchantRepository
	items     interfaces.IItemRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(merchants interfaces.IMerchantRepository, items interfaces.IItemRepository) *CatalogUseCase {
	return &CatalogUseCase{merchants: merchants, items: items}
}

func (u *CatalogUseCase) GetMerchant(id int64) (entities.Merchant, error) {
	if id <= 0 {
		return entities.Merchant{}, ErrInvalidID
	}
	m, ok := u.merchants.FindByID(id)
	if !ok {
		return entities.Merchant{}, ErrMerchantNotFound
	}
	return m, nil
}

func (u *CatalogUseCase) CreateMerchant(attrs entities.Row) (entities.Merchant, error) {
	m, err := u.merchants.Create(attrs)
	if err != nil {
		return entities.Merchant{}, fmt.Errorf("%w: %v", ErrInvalidAttributes, err)
	}
	return m, nil
}

func (u *CatalogUseCase) UpdateMerchant(id int64, attrs entities.Row) (entities.Merchant, error) {
	if id <= 0 {
		return entities.Merchant{}, ErrInvalidID
	}
	m, found, err := u.merchants.Update(id, attrs)
	if !found {
		return entities.Merchant{}, ErrMerchantNotFound
	}
	if err != nil {
		return entities.Merchant{}, fmt.Errorf("%w: %v", ErrInvalidAttributes, err)
	}
	return m, nil
}

func (u *CatalogUseCase) DeleteMerchant(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !u.merchants.Delete(id) {
		return ErrMerchantNotFound
	}
	return nil
}

// SearchMerchants matches a case-insensitive name fragment.
func (u *CatalogUseCase) SearchMerchants(fragment string) []entities.Merchant {
	return u.merchants.FindAllByNameFragment(fragment)
}

func (u *CatalogUseCase) GetItem(id int64) (entities.Item, error) {
	if id <= 0 {
		return entities.Item{}, ErrInvalidID
	}
	it, ok := u.items.FindByID(id)
	if !ok {
		return entities.Item{}, ErrItemNotFound
	}
	return it, nil
}

func (u *CatalogUseCase) CreateItem(attrs entities.Row) (entities.Item, error) {
	it, err := u.items.Create(attrs)
	if err != nil {
		return entities.Item{}, fmt.Errorf("%w: %v", ErrInvalidAttributes, err)
	}
	return it, nil
}

func (u *CatalogUseCase) UpdateItem(id int64, attrs entities.Row) (entities.Item, error) {
	if id <= 0 {
		return entities.Item{}, ErrInvalidID
	}
	it, found, err := u.items.Update(id, attrs)
	if !found {
		return entities.Item{}, ErrItemNotFound
	}
	if err != nil {
		return entities.Item{}, fmt.Errorf("%w: %v", ErrInvalidAttributes, err)
	}
	return it, nil
}

func (u *CatalogUseCase) DeleteItem(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if !u.items.Delete(id) {
		return ErrItemNotFound
	}
	return nil
}

// SearchItems matches a case-insensitive description fragment.
func (u *CatalogUseCase) SearchItems(fragment string) []entities.Item {
	return u.items.FindAllWithDescription(fragment)
}
