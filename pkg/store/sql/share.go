package sql

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/contract"
	"github.com/cubestats/analytics/pkg/store/sql/model"
	"github.com/cubestats/analytics/pkg/utils"
)

func (s *Store) CreateShare(
	datasetID int64, shareType int, target string, token *string,
) (*api.Share, *contract.Error) {
	share := model.Share{
		DatasetID: datasetID,
		Type:      shareType,
		Token:     token,
	}
	if target != "" {
		share.UIDOwner = utils.PtrTo(target)
	}

	if err := s.db.Create(&share).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, contract.NewError(contract.ErrorCodeResourceAlreadyExists, "share token already exists")
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to create share", err)
	}

	return share.ToAPI(), nil
}

func (s *Store) GetShares(datasetID int64) ([]*api.Share, *contract.Error) {
	var shares []model.Share
	if err := s.db.Where("dataset_id = ?", datasetID).Order("id").Find(&shares).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list shares", err)
	}

	result := make([]*api.Share, 0, len(shares))
	for _, share := range shares {
		result = append(result, share.ToAPI())
	}

	return result, nil
}

func (s *Store) GetDatasetByToken(token string) (*api.Dataset, *contract.Error) {
	var share model.Share
	if err := s.db.Where("token = ?", token).First(&share).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contract.NewError(contract.ErrorCodeResourceDoesNotExist, "no share with this token exists")
		}

		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to resolve token", err)
	}

	return s.GetDataset(share.DatasetID)
}

func (s *Store) GetDatasetsByUser(uid string) ([]*api.Dataset, *contract.Error) {
	return s.datasetsSharedWith(api.ShareTypeUser, uid)
}

func (s *Store) GetDatasetsByGroup(group string) ([]*api.Dataset, *contract.Error) {
	return s.datasetsSharedWith(api.ShareTypeGroup, group)
}

func (s *Store) datasetsSharedWith(shareType int, target string) ([]*api.Dataset, *contract.Error) {
	var datasets []model.Dataset
	if err := s.db.
		Joins("JOIN shares ON shares.dataset_id = datasets.id").
		Where("shares.type = ? AND shares.uid_owner = ?", shareType, target).
		Order("shares.id").
		Find(&datasets).Error; err != nil {
		return nil, contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to list shared datasets", err)
	}

	result := make([]*api.Dataset, 0, len(datasets))
	for _, dataset := range datasets {
		result = append(result, dataset.ToAPI())
	}

	return result, nil
}

func (s *Store) UpdateSharePassword(shareID int64, passwordHash *string) *contract.Error {
	update := s.db.Model(&model.Share{}).
		Where("id = ?", shareID).
		Update("password", passwordHash)
	if update.Error != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to update share", update.Error)
	}
	if update.RowsAffected == 0 {
		return contract.NewError(
			contract.ErrorCodeResourceDoesNotExist,
			fmt.Sprintf("no share with id=%d exists", shareID),
		)
	}

	return nil
}

func (s *Store) DeleteShare(shareID int64) *contract.Error {
	if err := s.db.Delete(&model.Share{}, shareID).Error; err != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to delete share", err)
	}

	return nil
}

func (s *Store) DeleteSharesByDataset(datasetID int64) *contract.Error {
	if err := s.db.Where("dataset_id = ?", datasetID).Delete(&model.Share{}).Error; err != nil {
		return contract.NewErrorWith(contract.ErrorCodeInternalError, "failed to delete dataset shares", err)
	}

	return nil
}
