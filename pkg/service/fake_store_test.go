package service

import (
	"fmt"
	"time"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
)

// fakeStore is an in-memory AnalyticsStore for service tests.
type fakeStore struct {
	nextID     int64
	datasets   map[int64]*api.Dataset
	rows       map[int64][]*api.Row
	shares     map[int64]*api.Share
	passwords  map[int64]*string
	thresholds map[int64]*api.Threshold
	dataloads  map[int64]*api.Dataload
	users      map[string]*api.User
	groups     map[string][]string
	activities []*api.Activity
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		datasets:   make(map[int64]*api.Dataset),
		rows:       make(map[int64][]*api.Row),
		shares:     make(map[int64]*api.Share),
		passwords:  make(map[int64]*string),
		thresholds: make(map[int64]*api.Threshold),
		dataloads:  make(map[int64]*api.Dataload),
		users:      make(map[string]*api.User),
		groups:     make(map[string][]string),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) CreateDataset(userID string, input *api.CreateDatasetRequest) (*api.Dataset, *contract.Error) {
	dataset := &api.Dataset{
		ID:         f.id(),
		UserID:     userID,
		Name:       input.Name,
		Type:       input.Type,
		Dimension1: "Column 1",
		Dimension2: "Column 2",
		Value:      "Column 3",
		Created:    time.Now().Unix(),
	}
	f.datasets[dataset.ID] = dataset

	return dataset, nil
}

func (f *fakeStore) GetDataset(id int64) (*api.Dataset, *contract.Error) {
	dataset, ok := f.datasets[id]
	if !ok {
		return nil, contract.NewError(contract.ErrorCodeResourceDoesNotExist, fmt.Sprintf("dataset %d not found", id))
	}

	return dataset, nil
}

func (f *fakeStore) ListDatasets(userID string) ([]*api.Dataset, *contract.Error) {
	result := make([]*api.Dataset, 0)
	for _, dataset := range f.datasets {
		if dataset.UserID == userID {
			result = append(result, dataset)
		}
	}

	return result, nil
}

func (f *fakeStore) UpdateDataset(id int64, input *api.UpdateDatasetRequest) (*api.Dataset, *contract.Error) {
	dataset, cErr := f.GetDataset(id)
	if cErr != nil {
		return nil, cErr
	}
	dataset.Name = input.Name

	return dataset, nil
}

func (f *fakeStore) DeleteDataset(id int64) *contract.Error {
	delete(f.datasets, id)
	return nil
}

func (f *fakeStore) GetRows(datasetID int64) ([]*api.Row, *contract.Error) {
	return f.rows[datasetID], nil
}

func (f *fakeStore) UpsertRows(datasetID int64, rows [][]string) (int64, int64, *contract.Error) {
	var inserted, updated int64

	for _, raw := range rows {
		if len(raw) == 0 {
			continue
		}

		row := &api.Row{DatasetID: datasetID, Value: raw[len(raw)-1]}
		if len(raw) > 1 {
			row.Dimension1 = raw[0]
		}
		if len(raw) > 2 {
			row.Dimension2 = raw[1]
		}

		var existing *api.Row
		for _, candidate := range f.rows[datasetID] {
			if candidate.Dimension1 == row.Dimension1 && candidate.Dimension2 == row.Dimension2 {
				existing = candidate
				break
			}
		}

		if existing != nil {
			existing.Value = row.Value
			updated++
			continue
		}

		row.ID = f.id()
		f.rows[datasetID] = append(f.rows[datasetID], row)
		inserted++
	}

	return inserted, updated, nil
}

func (f *fakeStore) CreateShare(datasetID int64, shareType int, target string, token *string) (*api.Share, *contract.Error) {
	share := &api.Share{
		ID:        f.id(),
		DatasetID: datasetID,
		Type:      shareType,
		UIDOwner:  target,
	}
	if token != nil {
		share.Token = *token
	}
	f.shares[share.ID] = share

	return share, nil
}

func (f *fakeStore) GetShares(datasetID int64) ([]*api.Share, *contract.Error) {
	result := make([]*api.Share, 0)
	for _, share := range f.shares {
		if share.DatasetID == datasetID {
			result = append(result, share)
		}
	}

	return result, nil
}

func (f *fakeStore) GetDatasetByToken(token string) (*api.Dataset, *contract.Error) {
	for _, share := range f.shares {
		if share.Type == api.ShareTypeLink && share.Token == token {
			return f.GetDataset(share.DatasetID)
		}
	}

	return nil, contract.NewError(contract.ErrorCodeResourceDoesNotExist, "no share with this token")
}

func (f *fakeStore) datasetsSharedWith(shareType int, target string) []*api.Dataset {
	result := make([]*api.Dataset, 0)
	for _, share := range f.shares {
		if share.Type != shareType || share.UIDOwner != target {
			continue
		}
		if dataset, ok := f.datasets[share.DatasetID]; ok {
			result = append(result, dataset)
		}
	}

	return result
}

func (f *fakeStore) GetDatasetsByUser(uid string) ([]*api.Dataset, *contract.Error) {
	return f.datasetsSharedWith(api.ShareTypeUser, uid), nil
}

func (f *fakeStore) GetDatasetsByGroup(group string) ([]*api.Dataset, *contract.Error) {
	return f.datasetsSharedWith(api.ShareTypeGroup, group), nil
}

func (f *fakeStore) UpdateSharePassword(shareID int64, passwordHash *string) *contract.Error {
	share, ok := f.shares[shareID]
	if !ok {
		return contract.NewError(contract.ErrorCodeResourceDoesNotExist, fmt.Sprintf("share %d not found", shareID))
	}
	f.passwords[shareID] = passwordHash
	share.Pass = passwordHash != nil

	return nil
}

func (f *fakeStore) DeleteShare(shareID int64) *contract.Error {
	delete(f.shares, shareID)
	return nil
}

func (f *fakeStore) DeleteSharesByDataset(datasetID int64) *contract.Error {
	for id, share := range f.shares {
		if share.DatasetID == datasetID {
			delete(f.shares, id)
		}
	}

	return nil
}

func (f *fakeStore) CreateThreshold(
	userID string, datasetID int64, dimension1, option, value string, severity int,
) (*api.Threshold, *contract.Error) {
	threshold := &api.Threshold{
		ID:         f.id(),
		DatasetID:  datasetID,
		UserID:     userID,
		Dimension1: dimension1,
		Option:     option,
		Value:      value,
		Severity:   severity,
	}
	f.thresholds[threshold.ID] = threshold

	return threshold, nil
}

func (f *fakeStore) ListThresholds(datasetID int64) ([]*api.Threshold, *contract.Error) {
	result := make([]*api.Threshold, 0)
	for _, threshold := range f.thresholds {
		if threshold.DatasetID == datasetID {
			result = append(result, threshold)
		}
	}

	return result, nil
}

func (f *fakeStore) DeleteThreshold(id int64) *contract.Error {
	delete(f.thresholds, id)
	return nil
}

func (f *fakeStore) CreateDataload(userID string, datasetID int64, datasourceID, name string) (*api.Dataload, *contract.Error) {
	dataload := &api.Dataload{
		ID:         f.id(),
		UserID:     userID,
		DatasetID:  datasetID,
		Datasource: datasourceID,
		Name:       name,
		Option:     "{}",
	}
	f.dataloads[dataload.ID] = dataload

	return dataload, nil
}

func (f *fakeStore) GetDataload(id int64) (*api.Dataload, *contract.Error) {
	dataload, ok := f.dataloads[id]
	if !ok {
		return nil, contract.NewError(contract.ErrorCodeResourceDoesNotExist, fmt.Sprintf("dataload %d not found", id))
	}

	return dataload, nil
}

func (f *fakeStore) ListDataloads(datasetID int64) ([]*api.Dataload, *contract.Error) {
	result := make([]*api.Dataload, 0)
	for _, dataload := range f.dataloads {
		if dataload.DatasetID == datasetID {
			result = append(result, dataload)
		}
	}

	return result, nil
}

func (f *fakeStore) UpdateDataload(id int64, name, schedule, option string) (*api.Dataload, *contract.Error) {
	dataload, cErr := f.GetDataload(id)
	if cErr != nil {
		return nil, cErr
	}
	dataload.Name = name
	dataload.Schedule = schedule
	if option != "" {
		dataload.Option = option
	}

	return dataload, nil
}

func (f *fakeStore) DeleteDataload(id int64) *contract.Error {
	delete(f.dataloads, id)
	return nil
}

func (f *fakeStore) GetUser(uid string) (*api.User, *contract.Error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, contract.NewError(contract.ErrorCodeResourceDoesNotExist, fmt.Sprintf("user %q not found", uid))
	}

	return user, nil
}

func (f *fakeStore) GetUserGroups(uid string) ([]string, *contract.Error) {
	return f.groups[uid], nil
}

func (f *fakeStore) RecordActivity(datasetID int64, userID, activityType string) *contract.Error {
	f.activities = append(f.activities, &api.Activity{
		ID:        f.id(),
		DatasetID: datasetID,
		UserID:    userID,
		Type:      activityType,
	})

	return nil
}

func (f *fakeStore) ListActivities(datasetID int64) ([]*api.Activity, *contract.Error) {
	result := make([]*api.Activity, 0)
	for _, activity := range f.activities {
		if activity.DatasetID == datasetID {
			result = append(result, activity)
		}
	}

	return result, nil
}
