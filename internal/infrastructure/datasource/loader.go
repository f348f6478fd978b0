package datasource

import (
	"context"
	"fmt"

	"sales_engine/internal/domain/entities"
	"sales_engine/internal/infrastructure/metrics"
	"sales_engine/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LoadDataset reads every collection from src. It fails on the first
// collection that cannot be read.
func LoadDataset(ctx context.Context, src interfaces.IRowSource, log *zap.Logger, m *metrics.Metrics) (entities.Dataset, error) {
	if log == nil {
		log = zap.NewNop()
	}

	ds := make(entities.Dataset, len(entities.Kinds))
	for _, kind := range entities.Kinds {
		rows, err := src.Rows(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", kind, err)
		}
		ds[kind] = rows
		m.ObserveRowsLoaded(kind, len(rows))
		log.Info("rows loaded", zap.String("entity", string(kind)), zap.Int("rows", len(rows)))
	}
	return ds, nil
}
