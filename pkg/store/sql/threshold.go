package sql

import (
	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/store/sql/model"
)

func (s *Store) CreateThreshold(
	userID string, datasetID int64, dimension1, option, value string, severity int,
) (*api.Threshold, *contract.Error) {
	threshold := model.Threshold{
		DatasetID:  datasetID,
		UserID:     userID,
		Dimension1: dimension1,
		Option:     option,
		Value:      value,
		Severity:   severity,
	}

	if err := s.db.Create(&threshold).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to create threshold", err)
	}

	return threshold.ToAPI(), nil
}

func (s *Store) ListThresholds(datasetID int64) ([]*api.Threshold, *contract.Error) {
	var thresholds []model.Threshold
	if err := s.db.Where("dataset_id = ?", datasetID).Order("id").Find(&thresholds).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list thresholds", err)
	}

	result := make([]*api.Threshold, 0, len(thresholds))
	for _, threshold := range thresholds {
		result = append(result, threshold.ToAPI())
	}

	return result, nil
}

func (s *Store) DeleteThreshold(id int64) *contract.Error {
	if err := s.db.Delete(&model.Threshold{}, id).Error; err != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to delete threshold", err)
	}

	return nil
}
