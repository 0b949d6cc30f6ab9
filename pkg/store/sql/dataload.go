package sql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/store/sql/model"
)

func (s *Store) CreateDataload(
	userID string, datasetID int64, datasourceID, name string,
) (*api.Dataload, *contract.Error) {
	dataload := model.Dataload{
		UserID:     userID,
		DatasetID:  datasetID,
		Datasource: datasourceID,
		Name:       name,
		Option:     "{}",
	}

	if err := s.db.Create(&dataload).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to create dataload", err)
	}

	return dataload.ToAPI(), nil
}

func (s *Store) GetDataload(id int64) (*api.Dataload, *contract.Error) {
	var dataload model.Dataload
	if err := s.db.First(&dataload, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.NewError(
				contract.ErrorCodeResourceDoesNotExist,
				fmt.Sprintf("no dataload with id=%d exists", id),
			)
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get dataload", err)
	}

	return dataload.ToAPI(), nil
}

func (s *Store) ListDataloads(datasetID int64) ([]*api.Dataload, *contract.Error) {
	var dataloads []model.Dataload
	if err := s.db.Where("dataset_id = ?", datasetID).Order("id").Find(&dataloads).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list dataloads", err)
	}

	result := make([]*api.Dataload, 0, len(dataloads))
	for _, dataload := range dataloads {
		result = append(result, dataload.ToAPI())
	}

	return result, nil
}

func (s *Store) UpdateDataload(id int64, name, schedule, option string) (*api.Dataload, *contract.Error) {
	update := s.db.Model(&model.Dataload{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":     name,
			"schedule": schedule,
			"option":   option,
		})
	if update.Error != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to update dataload", update.Error)
	}
	if update.RowsAffected == 0 {
		return nil, contract.NewError(
			contract.ErrorCodeResourceDoesNotExist,
			fmt.Sprintf("no dataload with id=%d exists", id),
		)
	}

	return s.GetDataload(id)
}

func (s *Store) DeleteDataload(id int64) *contract.Error {
	if err := s.db.Delete(&model.Dataload{}, id).Error; err != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to delete dataload", err)
	}

	return nil
}
