package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactive           = errors.New("account is inactive")
)

type Role string

const (
	RoleCitizen      Role = "CITIZEN"
	RoleZoningStaff  Role = "ZONING_STAFF"
	RoleZoningAdmin  Role = "ZONING_ADMIN"
	RoleHousingStaff Role = "HOUSING_STAFF"
	RoleHousingAdmin Role = "HOUSING_ADMIN"
)

func (r Role) Staff() bool { return r != RoleCitizen }

type User struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	UserID       string         `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id"`
	Email        string         `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email"`
	PasswordHash string         `gorm:"column:password_hash;size:100;not null"`
	FullName     string         `gorm:"column:full_name;size:255;not null"`
	Role         Role           `gorm:"column:role;type:enum('CITIZEN','ZONING_STAFF','ZONING_ADMIN','HOUSING_STAFF','HOUSING_ADMIN');default:'CITIZEN'"`
	IsActive     bool           `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string { return "users" }

// Actor is the authenticated identity threaded through usecases.
type Actor struct {
	ID     uint64
	UserID string
	Role   Role
}
