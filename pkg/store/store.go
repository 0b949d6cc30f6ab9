package store

import (
	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// AnalyticsStore is the persistence contract of the service. List methods
// return empty slices, never errors, when nothing matches; deletes are
// idempotent.
type AnalyticsStore interface {
	// Datasets
	CreateDataset(userID string, input *api.CreateDatasetRequest) (*api.Dataset, *contract.Error)
	GetDataset(id int64) (*api.Dataset, *contract.Error)
	ListDatasets(userID string) ([]*api.Dataset, *contract.Error)
	UpdateDataset(id int64, input *api.UpdateDatasetRequest) (*api.Dataset, *contract.Error)
	// DeleteDataset cascades shares, thresholds, dataloads and rows.
	DeleteDataset(id int64) *contract.Error

	// Rows
	GetRows(datasetID int64) ([]*api.Row, *contract.Error)
	// UpsertRows inserts or updates rows keyed on (dimension1, dimension2)
	// and reports how many went each way.
	UpsertRows(datasetID int64, rows [][]string) (inserted, updated int64, err *contract.Error)

	// Shares
	CreateShare(datasetID int64, shareType int, target string, token *string) (*api.Share, *contract.Error)
	GetShares(datasetID int64) ([]*api.Share, *contract.Error)
	GetDatasetByToken(token string) (*api.Dataset, *contract.Error)
	GetDatasetsByUser(uid string) ([]*api.Dataset, *contract.Error)
	GetDatasetsByGroup(group string) ([]*api.Dataset, *contract.Error)
	UpdateSharePassword(shareID int64, passwordHash *string) *contract.Error
	DeleteShare(shareID int64) *contract.Error
	DeleteSharesByDataset(datasetID int64) *contract.Error

	// Thresholds
	CreateThreshold(userID string, datasetID int64, dimension1, option, value string, severity int) (*api.Threshold, *contract.Error)
	ListThresholds(datasetID int64) ([]*api.Threshold, *contract.Error)
	DeleteThreshold(id int64) *contract.Error

	// Dataloads
	CreateDataload(userID string, datasetID int64, datasourceID, name string) (*api.Dataload, *contract.Error)
	GetDataload(id int64) (*api.Dataload, *contract.Error)
	ListDataloads(datasetID int64) ([]*api.Dataload, *contract.Error)
	UpdateDataload(id int64, name, schedule, option string) (*api.Dataload, *contract.Error)
	DeleteDataload(id int64) *contract.Error

	// Users and groups
	GetUser(uid string) (*api.User, *contract.Error)
	GetUserGroups(uid string) ([]string, *contract.Error)

	// Activity
	RecordActivity(datasetID int64, userID, activityType string) *contract.Error
	ListActivities(datasetID int64) ([]*api.Activity, *contract.Error)
}
