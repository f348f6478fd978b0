package interfaces

import (
	"context"

	"sales_engine/internal/domain/entities"
)

// IRowSource produces raw rows for one collection at load time.

type IRowSource interface {
	Rows(ctx context.Context, kind entities.Kind) ([]entities.Row, error)
}
