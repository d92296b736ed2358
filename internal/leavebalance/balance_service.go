package leavebalance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	leavebalanceerrors "github.com/Ishani018/alms-ishani/internal/leavebalance/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	// GetOrCreate returns the (employee, year) ledger, materializing the
	// default entitlements when no record exists yet.
	GetOrCreate(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
	// Initialize eagerly seeds the ledger; safe to call twice.
	Initialize(ctx context.Context, employeeID string, year int) error
}

type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{repo: repo, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetOrCreate(ctx context.Context, employeeID string, year int) (BalanceResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if year < 2000 || year > 2200 {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidYear
	}

	// Singleflight keeps concurrent first-touch requests from racing each
	// other into the unique index.
	sfKey := fmt.Sprintf("balances:%s:%d", employeeID, year)
	v, err, _ := s.sf.Do(sfKey, func() (interface{}, error) {
		entries, err := s.repo.FindByEmployeeAndYear(ctx, employeeID, year)
		if err != nil {
			return nil, err
		}
		if len(entries) > 0 {
			return entries, nil
		}

		defaults := DefaultEntries(employeeUUID, year)
		if err := s.repo.CreateAll(ctx, defaults); err != nil {
			if !isUniqueBalanceViolation(err) {
				s.logger.Error("create default balance failed",
					zap.String("employee_id", employeeID),
					zap.Int("year", year),
					zap.Error(err),
				)
				return nil, err
			}
			// Another request or the registration consumer won the race.
			return s.repo.FindByEmployeeAndYear(ctx, employeeID, year)
		}

		s.logger.Info("default leave balance created",
			zap.String("employee_id", employeeID),
			zap.Int("year", year),
		)
		return defaults, nil
	})
	if err != nil {
		return BalanceResponse{}, err
	}

	return mapToResponse(employeeID, year, v.([]Balance)), nil
}

func (s *service) Initialize(ctx context.Context, employeeID string, year int) error {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return leavebalanceerrors.ErrInvalidEmployeeID
	}

	entries, err := s.repo.FindByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return nil
	}

	if err := s.repo.CreateAll(ctx, DefaultEntries(employeeUUID, year)); err != nil {
		if isUniqueBalanceViolation(err) {
			return nil
		}
		return err
	}

	s.logger.Info("leave balance initialized",
		zap.String("employee_id", employeeID),
		zap.Int("year", year),
	)
	return nil
}

// CurrentYear is the default ledger year when a request does not name one.
func CurrentYear() int {
	return time.Now().UTC().Year()
}

func isUniqueBalanceViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_balance_employee_year_type"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_balance_employee_year_type")
}
