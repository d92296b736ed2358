package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	FindByEmployee(ctx context.Context, employeeID string, filter ListLeavesFilter) ([]Leave, error)
	FindPendingByManager(ctx context.Context, managerID string) ([]Leave, error)
	HasOverlap(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	FindEmployee(ctx context.Context, id string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(l).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, filter ListLeavesFilter) ([]Leave, error) {
	db := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID)

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.LeaveType != "" {
		db = db.Where("leave_type = ?", filter.LeaveType)
	}
	if filter.StartDate != "" {
		db = db.Where("start_date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		db = db.Where("start_date <= ?", filter.EndDate)
	}

	var leaves []Leave
	err := db.Order("applied_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindPendingByManager(ctx context.Context, managerID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Joins("JOIN users ON users.id = leaves.employee_id").
		Where("users.manager_id = ?", managerID).
		Where("users.deleted_at IS NULL").
		Where("leaves.status = ?", StatusPending).
		Order("leaves.applied_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) HasOverlap(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status IN ?", []string{StatusPending, StatusApproved}).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindEmployee(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		First(&e, "id = ?", id).Error
	return &e, err
}
