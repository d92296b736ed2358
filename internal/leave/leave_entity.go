package leave

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCancelled = "cancelled"
)

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType    string    `gorm:"type:varchar(20);not null"`
	StartDate    time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate      time.Time `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	NumberOfDays float64   `gorm:"type:numeric(5,1);not null;default:1"`
	Reason       string    `gorm:"type:varchar(500);not null"`

	Status          string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_leaves_status_applied"`
	AppliedAt       time.Time  `gorm:"not null;index:idx_leaves_status_applied"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectionReason *string `gorm:"type:varchar(500)"`

	Employee *Employee `gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`
}

func (Leave) TableName() string {
	return "leaves"
}

// Employee is a read-only projection of the users table, preloaded for
// display names and the assigned-manager check.
type Employee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"type:varchar(100)"`
	Email      string     `gorm:"type:varchar(255)"`
	Department string     `gorm:"type:varchar(100)"`
	ManagerID  *uuid.UUID `gorm:"type:uuid"`
}

func (Employee) TableName() string {
	return "users"
}

// NumberOfDays is the inclusive day count of [start, end]: a single-day
// leave counts as 1.
func NumberOfDays(start, end time.Time) float64 {
	diff := math.Abs(end.Sub(start).Hours() / 24)
	return math.Ceil(diff) + 1
}
