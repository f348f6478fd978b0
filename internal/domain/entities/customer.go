package entities

// Customer places invoices with merchants.
type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Stamps
}

func CustomerFromRow(row Row) (Customer, error) {
	id, err := row.requiredInt64(FieldID)
	if err != nil {
		return Customer{}, err
	}
	stamps, err := stampsFromRow(row)
	if err != nil {
		return Customer{}, err
	}
	return Customer{
		ID:        id,
		FirstName: row.str("first_name"),
		LastName:  row.str("last_name"),
		Stamps:    stamps,
	}, nil
}

func (c Customer) GetID() int64      { return c.ID }
func (c Customer) GetStamps() Stamps { return c.Stamps }

func (c Customer) WithID(id int64) Customer {
	c.ID = id
	return c
}

func (c Customer) WithStamps(s Stamps) Customer {
	c.Stamps = s
	return c
}

func (c Customer) Patch(row Row) (Customer, error) {
	if row.Has("first_name") {
		c.FirstName = row.str("first_name")
	}
	if row.Has("last_name") {
		c.LastName = row.str("last_name")
	}
	return c, nil
}
