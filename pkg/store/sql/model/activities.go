package model

import "github.com/cubestats/analytics/pkg/api"

// Activity mapped from table <activities>.
type Activity struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement:true"`
	DatasetID int64  `gorm:"column:dataset_id;not null;index"`
	UserID    string `gorm:"column:user_id"`
	Type      string `gorm:"column:type;not null"`
	Timestamp int64  `gorm:"column:timestamp"`
}

func (a Activity) ToAPI() *api.Activity {
	return &api.Activity{
		ID:        a.ID,
		DatasetID: a.DatasetID,
		UserID:    a.UserID,
		Type:      a.Type,
		Timestamp: a.Timestamp,
	}
}
