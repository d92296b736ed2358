package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Ishani018/alms-ishani/internal/events"
	leaveerrors "github.com/Ishani018/alms-ishani/internal/leave/errors"
	"github.com/Ishani018/alms-ishani/internal/leavebalance"
	"github.com/Ishani018/alms-ishani/internal/messaging/kafka"
	"github.com/Ishani018/alms-ishani/internal/shared/apperror"
	"github.com/Ishani018/alms-ishani/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetLeaves(ctx context.Context, employeeID string, filter ListLeavesFilter) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actorID, role, id string) (LeaveResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	PendingApprovals(ctx context.Context, managerID string) ([]LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id, rejectionReason string) (LeaveResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	balances leavebalance.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, balances leavebalance.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, balances: balances, logger: l}
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	balances leavebalance.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	svc := NewService(db, repo, balances, logger...).(*service)
	svc.outbox = outboxRepo
	return svc
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("employee_id", employeeID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	days := NumberOfDays(startDate, endDate)

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return LeaveResponse{}, apperror.RequiredField("reason")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qbx := s.balances.WithTx(tx)

	overlap, err := qtx.HasOverlap(ctx, employeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	entry, err := s.ensureBalanceEntry(ctx, qbx, employeeUUID, startDate.Year(), req.LeaveType)
	if err != nil {
		return LeaveResponse{}, err
	}
	if entry.Available < days {
		s.logger.Warn("create leave insufficient balance",
			zap.String("employee_id", employeeID),
			zap.String("leave_type", req.LeaveType),
			zap.Float64("available", entry.Available),
			zap.Float64("requested", days),
		)
		return LeaveResponse{}, leaveerrors.InsufficientBalance(entry.Available)
	}

	l := &Leave{
		ID:           uuid.New(),
		EmployeeID:   employeeUUID,
		LeaveType:    req.LeaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		NumberOfDays: days,
		Reason:       reason,
		Status:       StatusPending,
		AppliedAt:    time.Now().UTC(),
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	entry.Apply(leavebalance.ActionAddPending, days)
	if err := qbx.Update(ctx, entry); err != nil {
		s.logger.Error("create leave balance update failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Float64("number_of_days", days),
	)

	return mapToResponse(*l), nil
}

// ensureBalanceEntry fetches the (employee, year, type) counter row,
// seeding the default entitlements on first touch so the sufficiency
// check never runs against a missing ledger.
func (s *service) ensureBalanceEntry(
	ctx context.Context,
	balances leavebalance.Repository,
	employeeID uuid.UUID,
	year int,
	leaveType string,
) (*leavebalance.Balance, error) {
	entry, err := balances.FindEntry(ctx, employeeID.String(), year, leaveType)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("find balance entry failed", zap.Error(err))
		return nil, err
	}

	if err := balances.CreateAll(ctx, leavebalance.DefaultEntries(employeeID, year)); err != nil {
		// A concurrent request may have seeded the same year already.
		if !isDuplicateKey(err) {
			s.logger.Error("seed default balance failed",
				zap.String("employee_id", employeeID.String()),
				zap.Int("year", year),
				zap.Error(err),
			)
			return nil, err
		}
	}
	return balances.FindEntry(ctx, employeeID.String(), year, leaveType)
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *service) GetLeaves(ctx context.Context, employeeID string, filter ListLeavesFilter) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	leaves, err := s.repo.FindByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, actorID, role, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if l.EmployeeID.String() != actorID && !isReviewerRole(role) {
		return LeaveResponse{}, leaveerrors.ErrAccessDenied
	}
	return mapToResponse(*l), nil
}

func isReviewerRole(role string) bool {
	return role == "manager" || role == "hr" || role == "admin"
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("update leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotOwnUpdate
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrOnlyPendingUpdatable
	}

	datesChanged := req.StartDate != nil || req.EndDate != nil
	startDate := l.StartDate
	endDate := l.EndDate
	if req.StartDate != nil {
		startDate, err = parseDate(*req.StartDate)
		if err != nil {
			return LeaveResponse{}, err
		}
	}
	if req.EndDate != nil {
		endDate, err = parseDate(*req.EndDate)
		if err != nil {
			return LeaveResponse{}, err
		}
	}
	if endDate.Before(startDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	if datesChanged {
		overlap, err := qtx.HasOverlap(ctx, l.EmployeeID.String(), startDate, endDate, &id)
		if err != nil {
			return LeaveResponse{}, err
		}
		if overlap {
			return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
		}
		l.StartDate = startDate
		l.EndDate = endDate
		l.NumberOfDays = NumberOfDays(startDate, endDate)
	}
	if req.Reason != nil {
		reason := strings.TrimSpace(*req.Reason)
		if reason == "" {
			return LeaveResponse{}, apperror.RequiredField("reason")
		}
		l.Reason = reason
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("update leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("update leave success", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qbx := s.balances.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotOwnCancel
	}
	if l.Status == StatusCancelled {
		return LeaveResponse{}, leaveerrors.ErrAlreadyCancelled
	}
	if l.Status == StatusApproved && !l.StartDate.After(time.Now().UTC()) {
		return LeaveResponse{}, leaveerrors.ErrCancelAfterStart
	}

	// Only a pending cancellation returns the reserved days; cancelling an
	// approved-but-not-started leave leaves used untouched.
	if l.Status == StatusPending {
		if err := s.applyLedger(ctx, qbx, l, leavebalance.ActionCancel); err != nil {
			return LeaveResponse{}, err
		}
	}

	l.Status = StatusCancelled
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("cancel leave success", zap.String("leave_id", id))

	return mapToResponse(*l), nil
}

func (s *service) PendingApprovals(ctx context.Context, managerID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(managerID); err != nil {
		return nil, leaveerrors.ErrInvalidActorID
	}
	leaves, err := s.repo.FindPendingByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	return s.decide(ctx, actorID, id, StatusApproved, nil)
}

func (s *service) Reject(ctx context.Context, actorID, id, rejectionReason string) (LeaveResponse, error) {
	reason := strings.TrimSpace(rejectionReason)
	if reason == "" {
		return LeaveResponse{}, apperror.RequiredField("rejection_reason")
	}
	return s.decide(ctx, actorID, id, StatusRejected, &reason)
}

func (s *service) decide(ctx context.Context, actorID, id, targetStatus string, rejectionReason *string) (LeaveResponse, error) {
	s.logger.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
		zap.String("target_status", targetStatus),
	)

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qbx := s.balances.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		if targetStatus == StatusApproved {
			return LeaveResponse{}, leaveerrors.ErrOnlyPendingApprovable
		}
		return LeaveResponse{}, leaveerrors.ErrOnlyPendingRejectable
	}

	employee := l.Employee
	if employee == nil {
		employee, err = qtx.FindEmployee(ctx, l.EmployeeID.String())
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("decide leave find employee failed", zap.String("leave_id", id), zap.Error(err))
				return LeaveResponse{}, err
			}
			employee = nil
		}
	}

	// When the employee has an assigned manager, only that manager may
	// decide; without one, any reviewer role passes the route gate.
	if employee != nil && employee.ManagerID != nil && *employee.ManagerID != actorUUID {
		s.logger.Warn("decide leave by non-assigned manager",
			zap.String("leave_id", id),
			zap.String("actor_id", actorID),
			zap.String("assigned_manager_id", employee.ManagerID.String()),
		)
		if targetStatus == StatusApproved {
			return LeaveResponse{}, leaveerrors.ErrNotAssignedApprover
		}
		return LeaveResponse{}, leaveerrors.ErrNotAssignedRejecter
	}

	ledgerAction := leavebalance.ActionApprove
	if targetStatus == StatusRejected {
		ledgerAction = leavebalance.ActionReject
	}
	if err := s.applyLedger(ctx, qbx, l, ledgerAction); err != nil {
		return LeaveResponse{}, err
	}

	now := time.Now().UTC()
	l.Status = targetStatus
	l.ApprovedBy = &actorUUID
	l.ApprovedAt = &now
	l.RejectionReason = rejectionReason

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if s.outbox != nil {
		event := events.LeaveDecisionEvent{
			EventType:    "leave.decision",
			LeaveID:      l.ID.String(),
			EmployeeID:   l.EmployeeID.String(),
			LeaveType:    l.LeaveType,
			Status:       targetStatus,
			NumberOfDays: l.NumberOfDays,
			DecidedBy:    actorID,
			OccurredAt:   now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return LeaveResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "leave",
			AggregateID:   l.ID.String(),
			EventType:     event.EventType,
			Topic:         events.LeaveDecisionTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("decide leave outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", targetStatus),
		zap.String("decided_by", actorID),
	)

	return mapToResponse(*l), nil
}

// applyLedger runs one counter transition for the leave, skipping silently
// when no ledger row exists for that (employee, year, type).
func (s *service) applyLedger(ctx context.Context, balances leavebalance.Repository, l *Leave, action string) error {
	entry, err := balances.FindEntry(ctx, l.EmployeeID.String(), l.StartDate.Year(), l.LeaveType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("find balance entry failed",
			zap.String("leave_id", l.ID.String()),
			zap.Error(err),
		)
		return err
	}
	entry.Apply(action, l.NumberOfDays)
	return balances.Update(ctx, entry)
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		EmployeeID:   l.EmployeeID.String(),
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		NumberOfDays: l.NumberOfDays,
		Reason:       l.Reason,
		Status:       l.Status,
		AppliedAt:    l.AppliedAt.Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.Name
		resp.EmployeeEmail = l.Employee.Email
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.ApprovedAt != nil {
		v := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &v
	}
	resp.RejectionReason = l.RejectionReason
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
