package leavebalance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ishani018/alms-ishani/internal/leavebalance"
	leavebalanceerrors "github.com/Ishani018/alms-ishani/internal/leavebalance/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeBalanceService struct {
	GetOrCreateFn func(ctx context.Context, employeeID string, year int) (leavebalance.BalanceResponse, error)
	InitializeFn  func(ctx context.Context, employeeID string, year int) error
}

func (f *fakeBalanceService) GetOrCreate(ctx context.Context, employeeID string, year int) (leavebalance.BalanceResponse, error) {
	return f.GetOrCreateFn(ctx, employeeID, year)
}

func (f *fakeBalanceService) Initialize(ctx context.Context, employeeID string, year int) error {
	return f.InitializeFn(ctx, employeeID, year)
}

func TestBalanceHandler_GetOwn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - defaults to the current year", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeBalanceService{
			GetOrCreateFn: func(ctx context.Context, employeeID string, year int) (leavebalance.BalanceResponse, error) {
				assert.Equal(t, userID, employeeID)
				assert.Equal(t, leavebalance.CurrentYear(), year)
				return leavebalance.BalanceResponse{EmployeeID: employeeID, Year: year}, nil
			},
		}

		h := leavebalance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/balances", nil)
		c.Set("user_id", userID)

		h.GetOwn(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
	})

	t.Run("success - explicit year query", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeBalanceService{
			GetOrCreateFn: func(ctx context.Context, employeeID string, year int) (leavebalance.BalanceResponse, error) {
				assert.Equal(t, 2025, year)
				return leavebalance.BalanceResponse{EmployeeID: employeeID, Year: year}, nil
			},
		}

		h := leavebalance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/balances?year=2025", nil)
		c.Set("user_id", userID)

		h.GetOwn(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative - non-numeric year", func(t *testing.T) {
		h := leavebalance.NewHandler(&fakeBalanceService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/balances?year=twenty", nil)
		c.Set("user_id", uuid.New().String())

		h.GetOwn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"INVALID_INPUT"`)
	})

	t.Run("negative - service error maps to envelope", func(t *testing.T) {
		svc := &fakeBalanceService{
			GetOrCreateFn: func(ctx context.Context, employeeID string, year int) (leavebalance.BalanceResponse, error) {
				return leavebalance.BalanceResponse{}, leavebalanceerrors.ErrInvalidYear
			},
		}

		h := leavebalance.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/balances?year=2026", nil)
		c.Set("user_id", uuid.New().String())

		h.GetOwn(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	})
}
