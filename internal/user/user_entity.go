package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the directory view of the users table; registration and
// credentials live in the auth package.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(100)"`
	Email        string     `gorm:"type:varchar(255)"`
	Role         string     `gorm:"type:varchar(20)"`
	EmployeeCode string     `gorm:"column:employee_code;type:varchar(20)"`
	Department   string     `gorm:"type:varchar(100)"`
	ManagerID    *uuid.UUID `gorm:"type:uuid"`
	IsActive     bool       `gorm:"column:is_active"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
