package model

import "github.com/cubestats/analytics/pkg/api"

// Dataset mapped from table <datasets>.
type Dataset struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement:true"`
	UserID      string `gorm:"column:user_id;not null;index"`
	Name        string `gorm:"column:name;not null"`
	Type        int    `gorm:"column:type"`
	Dimension1  string `gorm:"column:dimension1"`
	Dimension2  string `gorm:"column:dimension2"`
	Value       string `gorm:"column:value"`
	Created     int64  `gorm:"column:created"`
	LastUpdated int64  `gorm:"column:last_updated"`
}

func (d Dataset) ToAPI() *api.Dataset {
	return &api.Dataset{
		ID:          d.ID,
		UserID:      d.UserID,
		Name:        d.Name,
		Type:        d.Type,
		Dimension1:  d.Dimension1,
		Dimension2:  d.Dimension2,
		Value:       d.Value,
		Created:     d.Created,
		LastUpdated: d.LastUpdated,
	}
}
