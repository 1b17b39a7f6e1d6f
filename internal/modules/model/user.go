package model

import "time"

// User exists in the schema but no route touches it; there is no auth
// flow.
type User struct {
	Id        int       `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"column:username;type:varchar(100);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password;type:varchar(200);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP"`
}

func (User) TableName() string {
	return "users"
}
