package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// MonthlyLeaveRow is one exported line: an approved leave joined with the
// employee it belongs to.
type MonthlyLeaveRow struct {
	EmployeeName  string
	EmployeeEmail string
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	Reason        string
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	FindApprovedInRange(ctx context.Context, from, to time.Time) ([]MonthlyLeaveRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindApprovedInRange(ctx context.Context, from, to time.Time) ([]MonthlyLeaveRow, error) {
	var rows []MonthlyLeaveRow
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select(
			"users.name AS employee_name",
			"users.email AS employee_email",
			"leaves.leave_type",
			"leaves.start_date",
			"leaves.end_date",
			"leaves.reason",
		).
		Joins("JOIN users ON users.id = leaves.employee_id").
		Where("leaves.status = ?", "approved").
		Where("leaves.deleted_at IS NULL").
		Where("leaves.start_date <= ? AND leaves.end_date >= ?", to, from).
		Order("leaves.start_date ASC").
		Scan(&rows).Error
	return rows, err
}
