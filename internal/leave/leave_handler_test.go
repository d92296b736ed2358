package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ishani018/alms-ishani/internal/leave"
	leaveerrors "github.com/Ishani018/alms-ishani/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	CreateFn           func(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	GetLeavesFn        func(ctx context.Context, employeeID string, filter leave.ListLeavesFilter) ([]leave.LeaveResponse, error)
	GetByIDFn          func(ctx context.Context, actorID, role, id string) (leave.LeaveResponse, error)
	UpdateFn           func(ctx context.Context, actorID, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error)
	CancelFn           func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
	PendingApprovalsFn func(ctx context.Context, managerID string) ([]leave.LeaveResponse, error)
	ApproveFn          func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error)
	RejectFn           func(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.CreateFn(ctx, employeeID, req)
}
func (f *fakeLeaveService) GetLeaves(ctx context.Context, employeeID string, filter leave.ListLeavesFilter) ([]leave.LeaveResponse, error) {
	return f.GetLeavesFn(ctx, employeeID, filter)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, actorID, role, id string) (leave.LeaveResponse, error) {
	return f.GetByIDFn(ctx, actorID, role, id)
}
func (f *fakeLeaveService) Update(ctx context.Context, actorID, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	return f.UpdateFn(ctx, actorID, id, req)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.CancelFn(ctx, actorID, id)
}
func (f *fakeLeaveService) PendingApprovals(ctx context.Context, managerID string) ([]leave.LeaveResponse, error) {
	return f.PendingApprovalsFn(ctx, managerID)
}
func (f *fakeLeaveService) Approve(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
	return f.ApproveFn(ctx, actorID, id)
}
func (f *fakeLeaveService) Reject(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error) {
	return f.RejectFn(ctx, actorID, id, rejectionReason)
}

func TestLeaveHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeLeaveService{
			CreateFn: func(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, userID, employeeID)
				assert.Equal(t, "sick", req.LeaveType)
				return leave.LeaveResponse{ID: uuid.New().String(), Status: "pending", NumberOfDays: 3}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"leave_type":"sick","start_date":"2026-03-02","end_date":"2026-03-04","reason":"flu"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", userID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
	})

	t.Run("negative - unknown leave type fails binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"leave_type":"sabbatical","start_date":"2026-03-02","end_date":"2026-03-04","reason":"x"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative - overlap maps to conflict code", func(t *testing.T) {
		svc := &fakeLeaveService{
			CreateFn: func(ctx context.Context, employeeID string, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"leave_type":"sick","start_date":"2026-03-02","end_date":"2026-03-04","reason":"flu"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - filters are bound from the query string", func(t *testing.T) {
		userID := uuid.New().String()
		svc := &fakeLeaveService{
			GetLeavesFn: func(ctx context.Context, employeeID string, filter leave.ListLeavesFilter) ([]leave.LeaveResponse, error) {
				assert.Equal(t, "pending", filter.Status)
				assert.Equal(t, "sick", filter.LeaveType)
				return []leave.LeaveResponse{{ID: uuid.New().String(), Status: "pending"}}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves?status=pending&leave_type=sick", nil)
		c.Set("user_id", userID)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("negative - invalid status filter fails binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves?status=archived", nil)
		c.Set("user_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative - malformed start_date filter fails binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves?start_date=03-2026", nil)
		c.Set("user_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("negative - access denied surfaces as 403", func(t *testing.T) {
		svc := &fakeLeaveService{
			GetByIDFn: func(ctx context.Context, actorID, role, id string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrAccessDenied
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/leaves/abc", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())
		c.Set("role", "employee")

		h.GetByID(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestLeaveHandler_Reject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			RejectFn: func(ctx context.Context, actorID, id, rejectionReason string) (leave.LeaveResponse, error) {
				assert.Equal(t, "staffing shortage", rejectionReason)
				return leave.LeaveResponse{ID: id, Status: "rejected"}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"rejection_reason":"staffing shortage"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/leaves/x/reject", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative - missing reason fails binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/leaves/x/reject", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			CancelFn: func(ctx context.Context, actorID, id string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{ID: id, Status: "cancelled"}, nil
			},
		}

		h := leave.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/leaves/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Set("user_id", uuid.New().String())

		h.Cancel(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"cancelled"`)
	})
}
