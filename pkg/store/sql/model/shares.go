package model

import (
	"github.com/cubestats/analytics/pkg/api"
	"github.com/cubestats/analytics/pkg/utils"
)

// Share mapped from table <shares>. Password carries the bcrypt hash of the
// viewer password and must never leave the store unredacted.
type Share struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement:true"`
	DatasetID int64   `gorm:"column:dataset_id;not null;index"`
	Type      int     `gorm:"column:type;not null"`
	UIDOwner  *string `gorm:"column:uid_owner"`
	Token     *string `gorm:"column:token;uniqueIndex"`
	Password  *string `gorm:"column:password"`
}

func (s Share) ToAPI() *api.Share {
	share := &api.Share{
		ID:        s.ID,
		DatasetID: s.DatasetID,
		Type:      s.Type,
		Pass:      utils.IsNotNilOrEmptyString(s.Password),
	}
	if s.UIDOwner != nil {
		share.UIDOwner = *s.UIDOwner
	}
	if s.Token != nil {
		share.Token = *s.Token
	}

	return share
}
