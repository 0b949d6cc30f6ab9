package model

import "github.com/cubestats/analytics/pkg/api"

// Row mapped from table <dataset_rows>. One fact of a dataset; the pair of
// dimensions identifies the row within its dataset for upserts.
type Row struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement:true"`
	DatasetID  int64  `gorm:"column:dataset_id;not null;index:idx_rows_dims"`
	Dimension1 string `gorm:"column:dimension1;index:idx_rows_dims"`
	Dimension2 string `gorm:"column:dimension2;index:idx_rows_dims"`
	Value      string `gorm:"column:value"`
	Timestamp  int64  `gorm:"column:timestamp"`
}

func (Row) TableName() string {
	return "dataset_rows"
}

func (r Row) ToAPI() *api.Row {
	return &api.Row{
		ID:         r.ID,
		DatasetID:  r.DatasetID,
		Dimension1: r.Dimension1,
		Dimension2: r.Dimension2,
		Value:      r.Value,
		Timestamp:  r.Timestamp,
	}
}
