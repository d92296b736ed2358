package leavebalance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]Balance, error)
	FindEntry(ctx context.Context, employeeID string, year int, leaveType string) (*Balance, error)
	CreateAll(ctx context.Context, entries []Balance) error
	Update(ctx context.Context, entry *Balance) error
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

func (r *repository) FindByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]Balance, error) {
	var entries []Balance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("leave_type ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindEntry(ctx context.Context, employeeID string, year int, leaveType string) (*Balance, error) {
	var entry Balance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		First(&entry, "leave_type = ?", leaveType).Error
	return &entry, err
}

func (r *repository) CreateAll(ctx context.Context, entries []Balance) error {
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *repository) Update(ctx context.Context, entry *Balance) error {
	return r.db.WithContext(ctx).Save(entry).Error
}
