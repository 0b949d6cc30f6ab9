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

func (s *Store) GetUser(uid string) (*api.User, *contract.Error) {
	var user model.User
	if err := s.db.Where("uid = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.NewError(
				contract.ErrorCodeResourceDoesNotExist,
				fmt.Sprintf("no user with uid=%s exists", uid),
			)
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to get user", err)
	}

	return user.ToAPI(), nil
}

func (s *Store) GetUserGroups(uid string) ([]string, *contract.Error) {
	var groups []string
	if err := s.db.Model(&model.GroupMember{}).
		Where("user_id = ?", uid).
		Order("group_id").
		Pluck("group_id", &groups).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list user groups", err)
	}

	return groups, nil
}

func (s *Store) RecordActivity(datasetID int64, userID, activityType string) *contract.Error {
	activity := model.Activity{
		DatasetID: datasetID,
		UserID:    userID,
		Type:      activityType,
		Timestamp: time.Now().Unix(),
	}

	if err := s.db.Create(&activity).Error; err != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to record activity", err)
	}

	return nil
}

func (s *Store) ListActivities(datasetID int64) ([]*api.Activity, *contract.Error) {
	var activities []model.Activity
	if err := s.db.Where("dataset_id = ?", datasetID).Order("id desc").Find(&activities).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list activities", err)
	}

	result := make([]*api.Activity, 0, len(activities))
	for _, activity := range activities {
		result = append(result, activity.ToAPI())
	}

	return result, nil
}
