package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"column:name;type:varchar(255);not null"`
	Email        string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	Password     string     `gorm:"column:password;type:text;not null"`
	Role         string     `gorm:"column:role;type:varchar(20);not null;default:'employee'"`
	EmployeeCode string     `gorm:"column:employee_code;type:varchar(20);uniqueIndex"`
	Department   string     `gorm:"column:department;type:varchar(100)"`
	ManagerID    *uuid.UUID `gorm:"column:manager_id;type:uuid;index"`
	IsActive     bool       `gorm:"column:is_active;default:true"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}
