package entities

// Record is implemented by every entity value held in an indexed repository.
// Entities are immutable values: every "mutation" returns an updated copy.
type Record[T any] interface {
	GetID() int64
	GetStamps() Stamps
	WithID(id int64) T
	WithStamps(s Stamps) T
	// Patch applies the fields present in row, ignoring id and created_at.
	Patch(row Row) (T, error)
}
