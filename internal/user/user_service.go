package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	usererrors "github.com/Ishani018/alms-ishani/internal/user/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	optionsCacheKey = "users:options"
	optionsCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter ListUsersFilter) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Options(ctx context.Context) ([]UserOption, error)
	AssignManager(ctx context.Context, userID string, req AssignManagerRequest) (UserResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) List(ctx context.Context, filter ListUsersFilter) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(users), nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

// Options serves the picker list from Redis when warm; cold reads are
// deduplicated through singleflight.
func (s *service) Options(ctx context.Context) ([]UserOption, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, optionsCacheKey).Result()
		if err == nil {
			var opts []UserOption
			if err := json.Unmarshal([]byte(cached), &opts); err == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.sf.Do(optionsCacheKey, func() (interface{}, error) {
		users, err := s.repo.FindActiveOptions(ctx)
		if err != nil {
			return nil, err
		}
		opts := mapToOptions(users)

		if s.rdb != nil {
			if payload, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, optionsCacheKey, payload, optionsCacheTTL)
			}
		}
		return opts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]UserOption), nil
}

func (s *service) AssignManager(ctx context.Context, userID string, req AssignManagerRequest) (UserResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	var managerUUID *uuid.UUID
	if req.ManagerID != nil {
		parsed, err := uuid.Parse(*req.ManagerID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidUserID
		}
		if parsed.String() == userID {
			return UserResponse{}, usererrors.ErrSelfManager
		}
		managerUUID = &parsed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assign manager begin tx failed", zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	target, err := qtx.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	if managerUUID != nil {
		manager, err := qtx.FindByID(ctx, managerUUID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return UserResponse{}, usererrors.ErrManagerNotFound
			}
			return UserResponse{}, err
		}
		if manager.Role != "manager" && manager.Role != "hr" && manager.Role != "admin" {
			return UserResponse{}, usererrors.ErrManagerRoleInvalid
		}
	}

	if err := qtx.UpdateManager(ctx, userID, managerUUID); err != nil {
		s.logger.Error("assign manager persist failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return UserResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("assign manager commit failed", zap.Error(err))
		return UserResponse{}, err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, optionsCacheKey).Err(); err != nil {
			s.logger.Warn("invalidate user options cache failed", zap.Error(err))
		}
	}

	target.ManagerID = managerUUID
	s.logger.Info("assign manager success",
		zap.String("user_id", userID),
		zap.Any("manager_id", req.ManagerID),
	)
	return mapToResponse(*target), nil
}
