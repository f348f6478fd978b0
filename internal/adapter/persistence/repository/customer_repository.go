package repository

import (
	"sales_engine/internal/clock"
	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

var customerSchema = Schema[entities.Customer]{
	Kind:   entities.KindCustomers,
	Decode: entities.CustomerFromRow,
	Indexes: append([]Index[entities.Customer]{
		textIndex("first_name", func(c entities.Customer) string { return c.FirstName }),
		textIndex("last_name", func(c entities.Customer) string { return c.LastName }),
	}, stampIndexes[entities.Customer]()...),
}

type CustomerRepository struct {
	*indexedStore[entities.Customer]
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(rows []entities.Row, clk clock.Clock) (*CustomerRepository, error) {
	store, err := newIndexedStore(customerSchema, rows, clk)
	if err != nil {
		return nil, err
	}
	return &CustomerRepository{indexedStore: store}, nil
}

func (r *CustomerRepository) FindAllByFirstName(name string) []entities.Customer {
	return r.FindAllBy("first_name", name)
}

func (r *CustomerRepository) FindAllByLastName(name string) []entities.Customer {
	return r.FindAllBy("last_name", name)
}

func (r *CustomerRepository) FindAllByFirstNameFragment(fragment string) []entities.Customer {
	return r.filter(func(c entities.Customer) bool { return containsFold(c.FirstName, fragment) })
}

func (r *CustomerRepository) FindAllByLastNameFragment(fragment string) []entities.Customer {
	return r.filter(func(c entities.Customer) bool { return containsFold(c.LastName, fragment) })
}
