package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context, filter ListUsersFilter) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindActiveOptions(ctx context.Context) ([]User, error)
	UpdateManager(ctx context.Context, id string, managerID *uuid.UUID) error
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

func (r *repository) FindAll(ctx context.Context, filter ListUsersFilter) ([]User, error) {
	db := r.db.WithContext(ctx)
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}
	if filter.Department != "" {
		db = db.Where("department = ?", filter.Department)
	}

	var users []User
	err := db.Order("employee_code ASC").Find(&users).Error
	return users, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindActiveOptions(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Select("id", "name", "employee_code", "role").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) UpdateManager(ctx context.Context, id string, managerID *uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("manager_id", managerID).Error
}
