package entities

// Merchant sells items and issues invoices.
type Merchant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Stamps
}

func MerchantFromRow(row Row) (Merchant, error) {
	id, err := row.requiredInt64(FieldID)
	if err != nil {
		return Merchant{}, err
	}
	stamps, err := stampsFromRow(row)
	if err != nil {
		return Merchant{}, err
	}
	return Merchant{ID: id, Name: row.str("name"), Stamps: stamps}, nil
}

func (m Merchant) GetID() int64      { return m.ID }
func (m Merchant) GetStamps() Stamps { return m.Stamps }

func (m Merchant) WithID(id int64) Merchant {
	m.ID = id
	return m
}

func (m Merchant) WithStamps(s Stamps) Merchant {
	m.Stamps = s
	return m
}

func (m Merchant) Patch(row Row) (Merchant, error) {
	if row.Has("name") {
		m.Name = row.str("name")
	}
	return m, nil
}
