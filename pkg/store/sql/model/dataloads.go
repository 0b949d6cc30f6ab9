package model

import "github.com/cubestats/analytics/pkg/api"

// Dataload mapped from table <dataloads>. Option holds the serialized
// field-id to value mapping entered against the datasource template.
type Dataload struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement:true"`
	UserID     string `gorm:"column:user_id"`
	DatasetID  int64  `gorm:"column:dataset_id;not null;index"`
	Datasource string `gorm:"column:datasource;not null"`
	Name       string `gorm:"column:name"`
	Schedule   string `gorm:"column:schedule"`
	Option     string `gorm:"column:option"`
}

func (d Dataload) ToAPI() *api.Dataload {
	return &api.Dataload{
		ID:         d.ID,
		UserID:     d.UserID,
		DatasetID:  d.DatasetID,
		Datasource: d.Datasource,
		Name:       d.Name,
		Schedule:   d.Schedule,
		Option:     d.Option,
	}
}
