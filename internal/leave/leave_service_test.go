package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Ishani018/alms-ishani/internal/leave"
	leaveerrors "github.com/Ishani018/alms-ishani/internal/leave/errors"
	leaveMock "github.com/Ishani018/alms-ishani/internal/leave/mock"
	"github.com/Ishani018/alms-ishani/internal/leavebalance"
	balanceMock "github.com/Ishani018/alms-ishani/internal/leavebalance/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type leaveServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  leave.Service
	repo     *leaveMock.MockRepository
	balances *balanceMock.MockRepository
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	repo := leaveMock.NewMockRepository(ctrl)
	balances := balanceMock.NewMockRepository(ctrl)

	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	balances.EXPECT().WithTx(gomock.Any()).Return(balances).AnyTimes()

	return &leaveServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  leave.NewService(db, repo, balances),
		repo:     repo,
		balances: balances,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func sickEntry(employeeID uuid.UUID, available float64) *leavebalance.Balance {
	return &leavebalance.Balance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Year:       2026,
		LeaveType:  leavebalance.TypeSick,
		Total:      12,
		Used:       12 - available,
		Available:  available,
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	req := leave.CreateLeaveRequest{
		LeaveType: "sick",
		StartDate: "2026-03-02",
		EndDate:   "2026-03-04",
		Reason:    "flu",
	}

	t.Run("success - three day leave reserves pending balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		entry := sickEntry(employeeID, 12)

		deps.repo.EXPECT().
			HasOverlap(ctx, employeeID.String(), gomock.Any(), gomock.Any(), nil).
			Return(false, nil)
		deps.balances.EXPECT().
			FindEntry(ctx, employeeID.String(), 2026, "sick").
			Return(entry, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, l *leave.Leave) error {
				assert.Equal(t, leave.StatusPending, l.Status)
				assert.Equal(t, 3.0, l.NumberOfDays)
				assert.Equal(t, employeeID, l.EmployeeID)
				return nil
			})
		deps.balances.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b *leavebalance.Balance) error {
				assert.Equal(t, 3.0, b.Pending)
				assert.Equal(t, 9.0, b.Available)
				return nil
			})

		resp, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, 3.0, resp.NumberOfDays)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("success - missing ledger is seeded before the sufficiency check", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			HasOverlap(ctx, employeeID.String(), gomock.Any(), gomock.Any(), nil).
			Return(false, nil)
		gomock.InOrder(
			deps.balances.EXPECT().
				FindEntry(ctx, employeeID.String(), 2026, "sick").
				Return(nil, gorm.ErrRecordNotFound),
			deps.balances.EXPECT().
				CreateAll(ctx, gomock.Len(7)).
				Return(nil),
			deps.balances.EXPECT().
				FindEntry(ctx, employeeID.String(), 2026, "sick").
				Return(sickEntry(employeeID, 12), nil),
		)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.balances.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.NoError(t, err)
	})

	t.Run("success - losing the seeding race re-reads the winner's row", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			HasOverlap(ctx, employeeID.String(), gomock.Any(), gomock.Any(), nil).
			Return(false, nil)
		gomock.InOrder(
			deps.balances.EXPECT().
				FindEntry(ctx, employeeID.String(), 2026, "sick").
				Return(nil, gorm.ErrRecordNotFound),
			deps.balances.EXPECT().
				CreateAll(ctx, gomock.Len(7)).
				Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_balance_employee_year_type"}),
			deps.balances.EXPECT().
				FindEntry(ctx, employeeID.String(), 2026, "sick").
				Return(sickEntry(employeeID, 12), nil),
		)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.balances.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.NoError(t, err)
	})

	t.Run("negative - overlapping request is rejected", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			HasOverlap(ctx, employeeID.String(), gomock.Any(), gomock.Any(), nil).
			Return(true, nil)

		_, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("negative - insufficient balance leaves nothing persisted", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			HasOverlap(ctx, employeeID.String(), gomock.Any(), gomock.Any(), nil).
			Return(false, nil)
		deps.balances.EXPECT().
			FindEntry(ctx, employeeID.String(), 2026, "sick").
			Return(sickEntry(employeeID, 2), nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		deps.balances.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, employeeID.String(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient leave balance. Available: 2 days")
	})

	t.Run("negative - end date before start date", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		bad := req
		bad.StartDate = "2026-03-04"
		bad.EndDate = "2026-03-02"

		_, err := deps.service.Create(ctx, employeeID.String(), bad)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("negative - malformed date", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		bad := req
		bad.StartDate = "02-03-2026"

		_, err := deps.service.Create(ctx, employeeID.String(), bad)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("negative - whitespace-only reason leaves nothing persisted", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		bad := req
		bad.Reason = "   "

		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		deps.balances.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.Create(ctx, employeeID.String(), bad)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reason is required")
	})
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	leaveID := uuid.New()

	stored := &leave.Leave{
		ID:         leaveID,
		EmployeeID: ownerID,
		LeaveType:  "casual",
		Status:     leave.StatusPending,
	}

	t.Run("success - owner reads their own leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(stored, nil)

		resp, err := deps.service.GetByID(ctx, ownerID.String(), "employee", leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, leaveID.String(), resp.ID)
	})

	t.Run("success - manager reads another employee's leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(stored, nil)

		_, err := deps.service.GetByID(ctx, uuid.New().String(), "manager", leaveID.String())

		assert.NoError(t, err)
	})

	t.Run("negative - employee cannot read someone else's leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(stored, nil)

		_, err := deps.service.GetByID(ctx, uuid.New().String(), "employee", leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrAccessDenied)
	})

	t.Run("negative - unknown leave id", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, ownerID.String(), "employee", leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	leaveID := uuid.New()

	pendingLeave := func() *leave.Leave {
		return &leave.Leave{
			ID:           leaveID,
			EmployeeID:   ownerID,
			LeaveType:    "casual",
			StartDate:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			NumberOfDays: 3,
			Reason:       "errands",
			Status:       leave.StatusPending,
		}
	}

	t.Run("success - new dates re-run the overlap check and recompute days", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		newStart := "2026-03-09"
		newEnd := "2026-03-13"

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pendingLeave(), nil)
		deps.repo.EXPECT().
			HasOverlap(ctx, ownerID.String(), gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).
			Return(false, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, l *leave.Leave) error {
				assert.Equal(t, 5.0, l.NumberOfDays)
				return nil
			})

		resp, err := deps.service.Update(ctx, ownerID.String(), leaveID.String(), leave.UpdateLeaveRequest{
			StartDate: &newStart,
			EndDate:   &newEnd,
		})

		assert.NoError(t, err)
		assert.Equal(t, 5.0, resp.NumberOfDays)
	})

	t.Run("success - reason-only update skips the overlap check", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		reason := "family visit"
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pendingLeave(), nil)
		deps.repo.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Update(ctx, ownerID.String(), leaveID.String(), leave.UpdateLeaveRequest{Reason: &reason})

		assert.NoError(t, err)
		assert.Equal(t, reason, resp.Reason)
		assert.Equal(t, 3.0, resp.NumberOfDays)
	})

	t.Run("negative - only the owner may update", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pendingLeave(), nil)

		_, err := deps.service.Update(ctx, uuid.New().String(), leaveID.String(), leave.UpdateLeaveRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrNotOwnUpdate)
	})

	t.Run("negative - only pending leaves can be updated", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		approved := pendingLeave()
		approved.Status = leave.StatusApproved
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(approved, nil)

		_, err := deps.service.Update(ctx, ownerID.String(), leaveID.String(), leave.UpdateLeaveRequest{})

		assert.ErrorIs(t, err, leaveerrors.ErrOnlyPendingUpdatable)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	leaveID := uuid.New()

	storedLeave := func(status string, start time.Time) *leave.Leave {
		return &leave.Leave{
			ID:           leaveID,
			EmployeeID:   ownerID,
			LeaveType:    "sick",
			StartDate:    start,
			EndDate:      start.AddDate(0, 0, 2),
			NumberOfDays: 3,
			Status:       status,
		}
	}

	future := time.Now().UTC().AddDate(0, 0, 30)

	t.Run("success - pending cancel returns the reserved days", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		l := storedLeave(leave.StatusPending, future)
		entry := sickEntry(ownerID, 9)
		entry.Used = 0
		entry.Pending = 3
		entry.Year = future.Year()

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(l, nil)
		deps.balances.EXPECT().
			FindEntry(ctx, ownerID.String(), future.Year(), "sick").
			Return(entry, nil)
		deps.balances.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b *leavebalance.Balance) error {
				assert.Equal(t, 0.0, b.Pending)
				assert.Equal(t, 12.0, b.Available)
				return nil
			})
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Cancel(ctx, ownerID.String(), leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("success - approved future leave cancels without touching the ledger", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(storedLeave(leave.StatusApproved, future), nil)
		deps.balances.EXPECT().FindEntry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Cancel(ctx, ownerID.String(), leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("negative - approved leave that already started", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		past := time.Now().UTC().AddDate(0, 0, -2)
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(storedLeave(leave.StatusApproved, past), nil)

		_, err := deps.service.Cancel(ctx, ownerID.String(), leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrCancelAfterStart)
	})

	t.Run("negative - already cancelled", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(storedLeave(leave.StatusCancelled, future), nil)

		_, err := deps.service.Cancel(ctx, ownerID.String(), leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyCancelled)
	})

	t.Run("negative - only the owner may cancel", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(storedLeave(leave.StatusPending, future), nil)

		_, err := deps.service.Cancel(ctx, uuid.New().String(), leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotOwnCancel)
	})
}

func TestLeaveService_ApproveReject(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	managerID := uuid.New()
	leaveID := uuid.New()

	pendingLeave := func(assignedManager *uuid.UUID) *leave.Leave {
		return &leave.Leave{
			ID:           leaveID,
			EmployeeID:   employeeID,
			LeaveType:    "sick",
			StartDate:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			NumberOfDays: 3,
			Status:       leave.StatusPending,
			Employee: &leave.Employee{
				ID:        employeeID,
				Name:      "Asha Rao",
				Email:     "asha@example.com",
				ManagerID: assignedManager,
			},
		}
	}

	t.Run("success - assigned manager approves and pending moves to used", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		entry := sickEntry(employeeID, 9)
		entry.Used = 0
		entry.Pending = 3

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pendingLeave(&managerID), nil)
		deps.balances.EXPECT().
			FindEntry(ctx, employeeID.String(), 2026, "sick").
			Return(entry, nil)
		deps.balances.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b *leavebalance.Balance) error {
				assert.Equal(t, 0.0, b.Pending)
				assert.Equal(t, 3.0, b.Used)
				assert.Equal(t, 9.0, b.Available)
				return nil
			})
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, l *leave.Leave) error {
				assert.Equal(t, leave.StatusApproved, l.Status)
				assert.NotNil(t, l.ApprovedBy)
				assert.Equal(t, managerID, *l.ApprovedBy)
				assert.NotNil(t, l.ApprovedAt)
				return nil
			})

		resp, err := deps.service.Approve(ctx, managerID.String(), leaveID.String())

		assert.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)
	})

	t.Run("success - any reviewer may act when no manager is assigned", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		entry := sickEntry(employeeID, 9)
		entry.Pending = 3

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pendingLeave(nil), nil)
		deps.balances.EXPECT().FindEntry(ctx, employeeID.String(), 2026, "sick").Return(entry, nil)
		deps.balances.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Approve(ctx, uuid.New().String(), leaveID.String())

		assert.NoError(t, err)
	})

	t.Run("success - reject restores available and records the reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		entry := sickEntry(employeeID, 9)
		entry.Used = 0
		entry.Pending = 3

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pendingLeave(&managerID), nil)
		deps.balances.EXPECT().FindEntry(ctx, employeeID.String(), 2026, "sick").Return(entry, nil)
		deps.balances.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b *leavebalance.Balance) error {
				assert.Equal(t, 0.0, b.Pending)
				assert.Equal(t, 12.0, b.Available)
				assert.Equal(t, 0.0, b.Used)
				return nil
			})
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Reject(ctx, managerID.String(), leaveID.String(), "staffing shortage")

		assert.NoError(t, err)
		assert.Equal(t, "rejected", resp.Status)
		assert.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "staffing shortage", *resp.RejectionReason)
	})

	t.Run("negative - non-assigned manager cannot approve", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(pendingLeave(&managerID), nil)

		_, err := deps.service.Approve(ctx, uuid.New().String(), leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotAssignedApprover)
	})

	t.Run("negative - assigned manager is looked up when the row arrives without one", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(nil)
		l.Employee = nil
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(l, nil)
		deps.repo.EXPECT().
			FindEmployee(ctx, employeeID.String()).
			Return(&leave.Employee{ID: employeeID, ManagerID: &managerID}, nil)

		_, err := deps.service.Approve(ctx, uuid.New().String(), leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotAssignedApprover)
	})

	t.Run("negative - only pending leaves can be approved", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		l := pendingLeave(&managerID)
		l.Status = leave.StatusRejected
		deps.repo.EXPECT().FindByID(ctx, leaveID.String()).Return(l, nil)

		_, err := deps.service.Approve(ctx, managerID.String(), leaveID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrOnlyPendingApprovable)
	})

	t.Run("negative - reject requires a reason", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.Reject(ctx, managerID.String(), leaveID.String(), "   ")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rejection_reason is required")
	})
}

func TestLeaveService_PendingApprovals(t *testing.T) {
	ctx := context.Background()
	managerID := uuid.New()

	t.Run("success - lists only the manager's reports", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		deps.repo.EXPECT().
			FindPendingByManager(ctx, managerID.String()).
			Return([]leave.Leave{
				{ID: uuid.New(), EmployeeID: uuid.New(), Status: leave.StatusPending, LeaveType: "annual"},
			}, nil)

		resp, err := deps.service.PendingApprovals(ctx, managerID.String())

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "pending", resp[0].Status)
	})

	t.Run("negative - malformed manager id", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		_, err := deps.service.PendingApprovals(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidActorID)
	})
}
