package model

import "github.com/cubestats/analytics/pkg/api"

// Threshold mapped from table <thresholds>.
type Threshold struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement:true"`
	DatasetID  int64  `gorm:"column:dataset_id;not null;index"`
	UserID     string `gorm:"column:user_id"`
	Dimension1 string `gorm:"column:dimension1"`
	Option     string `gorm:"column:option"`
	Value      string `gorm:"column:value"`
	Severity   int    `gorm:"column:severity"`
}

func (t Threshold) ToAPI() *api.Threshold {
	return &api.Threshold{
		ID:         t.ID,
		DatasetID:  t.DatasetID,
		UserID:     t.UserID,
		Dimension1: t.Dimension1,
		Option:     t.Option,
		Value:      t.Value,
		Severity:   t.Severity,
	}
}
