package model

import "github.com/cubestats/analytics/pkg/api"

// User mapped from table <users>.
type User struct {
	UID         string `gorm:"column:uid;primaryKey"`
	DisplayName string `gorm:"column:display_name"`
}

func (u User) ToAPI() *api.User {
	return &api.User{
		UID:         u.UID,
		DisplayName: u.DisplayName,
	}
}

// GroupMember mapped from table <group_members>.
type GroupMember struct {
	GroupID string `gorm:"column:group_id;primaryKey"`
	UserID  string `gorm:"column:user_id;primaryKey"`
}
