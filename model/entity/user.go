package entity

import "time"

type User struct {
	UserID       uint      `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(128);not null"`
	Email        string    `gorm:"column:email;type:varchar(128);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null"`
	IsAdmin      bool      `gorm:"column:is_admin;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
