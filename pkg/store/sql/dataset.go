package sql

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/store/sql/model"
)

func (s *Store) CreateDataset(userID string, input *api.CreateDatasetRequest) (*api.Dataset, *contract.Error) {
	now := time.Now().Unix()
	dataset := model.Dataset{
		UserID:      userID,
		Name:        input.Name,
		Type:        input.Type,
		Dimension1:  "Column 1",
		Dimension2:  "Column 2",
		Value:       "Column 3",
		Created:     now,
		LastUpdated: now,
	}

	if err := s.db.Create(&dataset).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to create dataset", err)
	}

	return dataset.ToAPI(), nil
}

func (s *Store) GetDataset(id int64) (*api.Dataset, *contract.Error) {
	var dataset model.Dataset
	if err := s.db.First(&dataset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.NewError(
				contract.ErrorCodeResourceDoesNotExist,
				fmt.Sprintf("no dataset with id=%d exists", id),
			)
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get dataset", err)
	}

	return dataset.ToAPI(), nil
}

func (s *Store) ListDatasets(userID string) ([]*api.Dataset, *contract.Error) {
	var datasets []model.Dataset
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&datasets).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list datasets", err)
	}

	result := make([]*api.Dataset, 0, len(datasets))
	for _, dataset := range datasets {
		result = append(result, dataset.ToAPI())
	}

	return result, nil
}

func (s *Store) UpdateDataset(id int64, input *api.UpdateDatasetRequest) (*api.Dataset, *contract.Error) {
	update := s.db.Model(&model.Dataset{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         input.Name,
			"dimension1":   input.Dimension1,
			"dimension2":   input.Dimension2,
			"value":        input.Value,
			"last_updated": time.Now().Unix(),
		})
	if update.Error != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to update dataset", update.Error)
	}
	if update.RowsAffected == 0 {
		return nil, contract.NewError(
			contract.ErrorCodeResourceDoesNotExist,
			fmt.Sprintf("no dataset with id=%d exists", id),
		)
	}

	return s.GetDataset(id)
}

// DeleteDataset removes the dataset and everything hanging off it.
func (s *Store) DeleteDataset(id int64) *contract.Error {
	if err := s.db.Transaction(func(transaction *gorm.DB) error {
		for _, cascade := range []interface{}{
			&model.Share{}, &model.Threshold{}, &model.Dataload{}, &model.Row{}, &model.Activity{},
		} {
			if err := transaction.Where("dataset_id = ?", id).Delete(cascade).Error; err != nil {
				return fmt.Errorf("failed to cascade dataset delete: %w", err)
			}
		}

		if err := transaction.Delete(&model.Dataset{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete dataset: %w", err)
		}

		return nil
	}); err != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to delete dataset", err)
	}

	return nil
}

func (s *Store) GetRows(datasetID int64) ([]*api.Row, *contract.Error) {
	var rows []model.Row
	if err := s.db.Where("dataset_id = ?", datasetID).
		Order("dimension1, dimension2").
		Find(&rows).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list rows", err)
	}

	result := make([]*api.Row, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.ToAPI())
	}

	return result, nil
}

// UpsertRows writes raw datasource rows into the dataset. Rows are keyed on
// (dimension1, dimension2); the last column is the value, a missing middle
// column is stored empty. Concurrent calls for the same dataset are not
// serialized beyond this transaction.
func (s *Store) UpsertRows(datasetID int64, rows [][]string) (int64, int64, *contract.Error) {
	var inserted, updated int64

	if err := s.db.Transaction(func(transaction *gorm.DB) error {
		now := time.Now().Unix()

		for _, raw := range rows {
			if len(raw) == 0 {
				continue
			}

			row := model.Row{
				DatasetID: datasetID,
				Value:     raw[len(raw)-1],
				Timestamp: now,
			}
			if len(raw) > 1 {
				row.Dimension1 = raw[0]
			}
			if len(raw) > 2 {
				row.Dimension2 = raw[1]
			}

			update := transaction.Model(&model.Row{}).
				Where("dataset_id = ? AND dimension1 = ? AND dimension2 = ?",
					datasetID, row.Dimension1, row.Dimension2).
				Updates(map[string]interface{}{"value": row.Value, "timestamp": now})
			if update.Error != nil {
				return fmt.Errorf("failed to update row: %w", update.Error)
			}

			if update.RowsAffected > 0 {
				updated += update.RowsAffected
				continue
			}

			if err := transaction.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert row: %w", err)
			}
			inserted++
		}

		return transaction.Model(&model.Dataset{}).
			Where("id = ?", datasetID).
			UpdateColumn("last_updated", now).Error
	}); err != nil {
		return 0, 0, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to upsert rows", err)
	}

	return inserted, updated, nil
}
