package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/datasource"
	"github.com/cubestats/analytics/pkg/store"
)

// DataService manages dataloads and runs them against the datasource
// registry.
type DataService struct {
	store    store.AnalyticsStore
	registry *datasource.Registry
	logger   *logrus.Logger
}

func NewDataService(logger *logrus.Logger, analyticsStore store.AnalyticsStore, registry *datasource.Registry) *DataService {
	return &DataService{
		store:    analyticsStore,
		registry: registry,
		logger:   logger,
	}
}

// Index returns the dataset's dataloads together with the datasource
// catalog, which the sidebar needs to render selectors and option forms.
func (d *DataService) Index(datasetID int64) (*api.DataloadIndex, *contract.Error) {
	dataloads, cErr := d.store.ListDataloads(datasetID)
	if cErr != nil {
		return nil, cErr
	}

	return &api.DataloadIndex{
		Dataloads:   dataloads,
		Datasources: d.registry.ListAll(),
		Templates:   d.registry.ListTemplates(),
	}, nil
}

func (d *DataService) Create(userID string, input *api.CreateDataloadRequest) (*api.Dataload, *contract.Error) {
	name, ok := d.registry.Name(input.DatasourceID)
	if !ok {
		return nil, contract.NewError(
			contract.ErrorCodeResourceDoesNotExist,
			fmt.Sprintf("no datasource with id=%s exists", input.DatasourceID),
		)
	}

	return d.store.CreateDataload(userID, input.DatasetID, input.DatasourceID, name)
}

func (d *DataService) Update(id int64, input *api.UpdateDataloadRequest) (*api.Dataload, *contract.Error) {
	if input.Option != "" && !json.Valid([]byte(input.Option)) {
		return nil, contract.NewError(
			contract.ErrorCodeInvalidParameterValue,
			"option must be a JSON object of template field values",
		)
	}

	return d.store.UpdateDataload(id, input.Name, input.Schedule, input.Option)
}

func (d *DataService) Delete(id int64) *contract.Error {
	return d.store.DeleteDataload(id)
}

// Simulate runs the dataload's datasource read and returns the raw result
// without touching the dataset.
func (d *DataService) Simulate(ctx context.Context, dataloadID int64) (*api.ReadResult, *contract.Error) {
	dataload, cErr := d.store.GetDataload(dataloadID)
	if cErr != nil {
		return nil, cErr
	}

	options, cErr := parseOptions(dataload.Option)
	if cErr != nil {
		return nil, cErr
	}

	return d.registry.Read(ctx, dataload.Datasource, options)
}

// Execute runs the read and upserts the rows into the dataset. A failing
// read is reported through the result's error code, not as a request error.
// Two concurrent executions of the same dataload are not serialized here;
// the store transaction is the only protection.
func (d *DataService) Execute(ctx context.Context, dataloadID int64) (*api.ExecuteResult, *contract.Error) {
	dataload, cErr := d.store.GetDataload(dataloadID)
	if cErr != nil {
		return nil, cErr
	}

	options, cErr := parseOptions(dataload.Option)
	if cErr != nil {
		return nil, cErr
	}

	result, cErr := d.registry.Read(ctx, dataload.Datasource, options)
	if cErr != nil {
		d.logger.WithError(cErr).Warnf("dataload %d: datasource read failed", dataloadID)

		return &api.ExecuteResult{Error: 1, Message: cErr.Message}, nil
	}

	inserted, updated, cErr := d.store.UpsertRows(dataload.DatasetID, result.Rows)
	if cErr != nil {
		return nil, cErr
	}

	if err := d.store.RecordActivity(dataload.DatasetID, dataload.UserID, api.ActivityDataAdded); err != nil {
		d.logger.WithError(err).Warn("failed to record dataload activity")
	}

	return &api.ExecuteResult{Error: 0, Insert: inserted, Update: updated}, nil
}

func parseOptions(option string) (map[string]string, *contract.Error) {
	options := make(map[string]string)
	if option == "" {
		return options, nil
	}

	if err := json.Unmarshal([]byte(option), &options); err != nil {
		return nil, contract.NewErrorWith(
			contract.ErrorCodeInvalidParameterValue,
			"stored dataload options are not a valid field mapping",
			err,
		)
	}

	return options, nil
}
