package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps the users table.
type UserModel struct {
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName      string    `gorm:"column:user_name;size:50;not null" json:"user_name"`
	UserEmail     string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword  string    `gorm:"column:user_password;not null" json:"-"`
	UserGoogleID  *string   `gorm:"column:user_google_id;size:255;unique" json:"-"`
	UserRole      string    `gorm:"column:user_role;type:varchar(20);not null;default:'USER'" json:"user_role"`
	UserIsActive  bool      `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
