package service

import (
	"github.com/sirupsen/logrus"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/store"
)

// DatasetService manages the datasets themselves and their stored rows.
type DatasetService struct {
	store  store.AnalyticsStore
	logger *logrus.Logger
}

func NewDatasetService(logger *logrus.Logger, analyticsStore store.AnalyticsStore) *DatasetService {
	return &DatasetService{
		store:  analyticsStore,
		logger: logger,
	}
}

func (d *DatasetService) Create(userID string, input *api.CreateDatasetRequest) (*api.Dataset, *contract.Error) {
	return d.store.CreateDataset(userID, input)
}

func (d *DatasetService) Get(id int64) (*api.Dataset, *contract.Error) {
	return d.store.GetDataset(id)
}

func (d *DatasetService) List(userID string) ([]*api.Dataset, *contract.Error) {
	return d.store.ListDatasets(userID)
}

func (d *DatasetService) Update(id int64, input *api.UpdateDatasetRequest) (*api.Dataset, *contract.Error) {
	return d.store.UpdateDataset(id, input)
}

// Delete removes the dataset and cascades shares, thresholds, dataloads and
// rows.
func (d *DatasetService) Delete(id int64) *contract.Error {
	return d.store.DeleteDataset(id)
}

func (d *DatasetService) GetRows(datasetID int64) ([]*api.Row, *contract.Error) {
	return d.store.GetRows(datasetID)
}

func (d *DatasetService) ListActivities(datasetID int64) ([]*api.Activity, *contract.Error) {
	return d.store.ListActivities(datasetID)
}
