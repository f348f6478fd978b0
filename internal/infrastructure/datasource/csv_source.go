package datasource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sales_engine/internal/domain/entities"
	"sales_engine/internal/usecase/interfaces"
)

// CSVSource reads one <kind>.csv file per collection from a directory. The
// first line of every file names the fields.
type CSVSource struct {
	dir string
}

var _ interfaces.IRowSource = (*CSVSource)(nil)

func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

func (s *CSVSource) Rows(ctx context.Context, kind entities.Kind) ([]entities.Row, error) {
	path := filepath.Join(s.dir, string(kind)+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ParseCSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ParseCSV turns a header line plus records into rows keyed by header name.
func ParseCSV(ctx context.Context, r io.Reader) ([]entities.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []entities.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := []entities.Row{}
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row := make(entities.Row, len(headers))
		for i, val := range record {
			if i >= len(headers) {
				break
			}
			row[headers[i]] = val
		}
		rows = append(rows, row)
	}
	return rows, nil
}
