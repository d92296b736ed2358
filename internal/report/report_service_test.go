package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ishani018/alms-ishani/internal/report"
	reporterrors "github.com/Ishani018/alms-ishani/internal/report/errors"
	reportMock "github.com/Ishani018/alms-ishani/internal/report/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReportService_MonthlyLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("success - rows render in start-date order with the fixed header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := reportMock.NewMockRepository(ctrl)
		svc := report.NewService(repo)

		repo.EXPECT().
			FindApprovedInRange(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time) ([]report.MonthlyLeaveRow, error) {
				assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), from)
				assert.Equal(t, 2026, to.Year())
				assert.Equal(t, time.March, to.Month())
				assert.Equal(t, 31, to.Day())
				return []report.MonthlyLeaveRow{
					{
						EmployeeName:  "Asha Rao",
						EmployeeEmail: "asha@example.com",
						LeaveType:     "sick",
						StartDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
						EndDate:       time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
						Reason:        "flu",
					},
					{
						EmployeeName:  "Dev Patel",
						EmployeeEmail: "dev@example.com",
						LeaveType:     "annual",
						StartDate:     time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
						EndDate:       time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
						Reason:        "vacation",
					},
				}, nil
			})

		out, err := svc.MonthlyLeave(ctx, 3, 2026)

		assert.NoError(t, err)
		assert.Equal(t, "Leave_Report_Mar_2026.csv", out.Filename)

		want := "Employee Name,Employee Email,Leave Type,Start Date,End Date,Reason\n" +
			"Asha Rao,asha@example.com,sick,2026-03-02,2026-03-04,flu\n" +
			"Dev Patel,dev@example.com,annual,2026-03-16,2026-03-20,vacation\n"
		assert.Equal(t, want, string(out.Content))
	})

	t.Run("success - empty month yields only the header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := reportMock.NewMockRepository(ctrl)
		svc := report.NewService(repo)

		repo.EXPECT().
			FindApprovedInRange(ctx, gomock.Any(), gomock.Any()).
			Return(nil, nil)

		out, err := svc.MonthlyLeave(ctx, 11, 2025)

		assert.NoError(t, err)
		assert.Equal(t, "Leave_Report_Nov_2025.csv", out.Filename)
		assert.Equal(t, "Employee Name,Employee Email,Leave Type,Start Date,End Date,Reason\n", string(out.Content))
	})

	t.Run("negative - month out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := report.NewService(reportMock.NewMockRepository(ctrl))

		_, err := svc.MonthlyLeave(ctx, 13, 2026)

		assert.ErrorIs(t, err, reporterrors.ErrInvalidMonth)
	})

	t.Run("negative - year out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := report.NewService(reportMock.NewMockRepository(ctrl))

		_, err := svc.MonthlyLeave(ctx, 1, 1999)

		assert.ErrorIs(t, err, reporterrors.ErrInvalidYear)
	})
}
