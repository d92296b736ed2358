package auth

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	autherrors "github.com/Ishani018/alms-ishani/internal/auth/errors"
	"github.com/Ishani018/alms-ishani/internal/events"
	"github.com/Ishani018/alms-ishani/internal/messaging/kafka"
	"github.com/Ishani018/alms-ishani/internal/middleware"
	"github.com/Ishani018/alms-ishani/internal/shared/contextutil"
	"github.com/Ishani018/alms-ishani/internal/shared/counter"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 7 * 24 * time.Hour

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (UserResponse, error)
	ResolveActive(ctx context.Context, userID string) (middleware.ActiveUser, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}
	if !ValidRole(role) {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}

	var managerID *uuid.UUID
	if req.ManagerID != "" {
		id, err := uuid.Parse(req.ManagerID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrInvalidUserID
		}
		managerID = &id
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
	if err != nil {
		s.logger.Error("register generate employee code failed", zap.Error(err))
		return AuthResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("register begin tx failed", zap.Error(err))
		return AuthResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	user := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Password:     string(hashed),
		Role:         role,
		EmployeeCode: fmt.Sprintf("EMP-%04d", nextVal),
		Department:   req.Department,
		ManagerID:    managerID,
		IsActive:     true,
	}

	if err := qtx.Create(ctx, user); err != nil {
		s.logger.Warn("register persist failed", zap.String("email", req.Email), zap.Error(err))
		return AuthResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.UserRegisteredEvent{
			EventType:  "user.registered",
			UserID:     user.ID.String(),
			Email:      user.Email,
			Role:       user.Role,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return AuthResponse{}, err
		}
		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     rid,
			AggregateType: "user",
			AggregateID:   user.ID.String(),
			EventType:     event.EventType,
			Topic:         events.UserRegisteredTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("register outbox persist failed", zap.Error(err))
			return AuthResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("register commit failed", zap.Error(err))
		return AuthResponse{}, err
	}

	token, err := s.generateToken(user.ID.String(), user.Role, tokenTTL)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("register success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)

	return AuthResponse{User: mapToUserResponse(*user), Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return AuthResponse{}, autherrors.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("login touch last_login failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}

	token, err := s.generateToken(user.ID.String(), user.Role, tokenTTL)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))

	return AuthResponse{User: mapToUserResponse(*user), Token: token}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return UserResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, autherrors.ErrUserNotFound
	}

	return mapToUserResponse(*user), nil
}

// ResolveActive backs the auth middleware: a valid token must still map to an
// active, non-deleted user.
func (s *service) ResolveActive(ctx context.Context, userID string) (middleware.ActiveUser, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return middleware.ActiveUser{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return middleware.ActiveUser{}, autherrors.ErrUserInactive
	}
	if !user.IsActive {
		return middleware.ActiveUser{}, autherrors.ErrUserInactive
	}

	active := middleware.ActiveUser{
		ID:   user.ID.String(),
		Role: user.Role,
	}
	if user.ManagerID != nil {
		active.ManagerID = user.ManagerID.String()
	}
	return active, nil
}

func (s *service) generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func mapToUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:           u.ID.String(),
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		EmployeeCode: u.EmployeeCode,
		Department:   u.Department,
		IsActive:     u.IsActive,
	}
	if u.ManagerID != nil {
		v := u.ManagerID.String()
		resp.ManagerID = &v
	}
	return resp
}
