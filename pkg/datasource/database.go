package datasource

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// RowReader is the slice of the store the database connector needs.
type RowReader interface {
	GetDataset(id int64) (*api.Dataset, *contract.Error)
	GetRows(datasetID int64) ([]*api.Row, *contract.Error)
}

// Database serves datasets whose rows were entered directly into the store.
// A read returns the dataset's current content, so simulate/execute against
// it are effectively re-loads.
type Database struct {
	rows RowReader
}

func NewDatabase(rows RowReader) *Database {
	return &Database{rows: rows}
}

func (d *Database) Name() string {
	return "Internal database"
}

func (d *Database) Template() []api.TemplateField {
	return []api.TemplateField{
		{ID: "dataset", Name: "Dataset", Placeholder: "dataset id"},
	}
}

func (d *Database) ReadData(_ context.Context, options map[string]string) (*api.ReadResult, error) {
	datasetID, err := strconv.ParseInt(options["dataset"], 10, 64)
	if err != nil {
		return nil, contract.NewErrorWith(
			contract.ErrorCodeInvalidParameterValue,
			fmt.Sprintf("invalid dataset id %q", options["dataset"]),
			err,
		)
	}

	dataset, cErr := d.rows.GetDataset(datasetID)
	if cErr != nil {
		return nil, cErr
	}

	rows, cErr := d.rows.GetRows(datasetID)
	if cErr != nil {
		return nil, cErr
	}

	result := &api.ReadResult{
		Header: []string{dataset.Dimension1, dataset.Dimension2, dataset.Value},
		Rows:   make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		result.Rows = append(result.Rows, []string{row.Dimension1, row.Dimension2, row.Value})
	}

	return result, nil
}
