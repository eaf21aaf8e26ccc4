package model

import "time"

// UserModel represents self-service signups. Passwords are bcrypt hashes.
type UserModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"column:username;size:255;not null" json:"username"`
	Email     string    `gorm:"column:email;size:255;unique;not null" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName sets the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}
