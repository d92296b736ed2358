package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ishani018/alms-ishani/internal/auth"
	autherrors "github.com/Ishani018/alms-ishani/internal/auth/errors"
	"github.com/Ishani018/alms-ishani/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	RegisterFn      func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)
	LoginFn         func(ctx context.Context, email, password string) (auth.AuthResponse, error)
	GetMeFn         func(ctx context.Context, userID string) (auth.UserResponse, error)
	ResolveActiveFn func(ctx context.Context, userID string) (middleware.ActiveUser, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeAuthService) Login(ctx context.Context, email, password string) (auth.AuthResponse, error) {
	return f.LoginFn(ctx, email, password)
}
func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (auth.UserResponse, error) {
	return f.GetMeFn(ctx, userID)
}
func (f *fakeAuthService) ResolveActive(ctx context.Context, userID string) (middleware.ActiveUser, error) {
	return f.ResolveActiveFn(ctx, userID)
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				assert.Equal(t, "asha@example.com", req.Email)
				return auth.AuthResponse{
					User:  auth.UserResponse{ID: uuid.New().String(), Email: req.Email, Role: "employee"},
					Token: "signed-token",
				}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Asha Rao","email":"asha@example.com","password":"secret123"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("negative - short password fails binding", func(t *testing.T) {
		h := auth.NewHandler(&fakeAuthService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Asha Rao","email":"asha@example.com","password":"abc"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "password")
	})

	t.Run("negative - duplicate email", func(t *testing.T) {
		svc := &fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"name":"Asha Rao","email":"asha@example.com","password":"secret123"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Register(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "User with this email already exists")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (auth.AuthResponse, error) {
				assert.Equal(t, "asha@example.com", email)
				assert.Equal(t, "secret123", password)
				return auth.AuthResponse{
					User:  auth.UserResponse{ID: uuid.New().String(), Email: email},
					Token: "signed-token",
				}, nil
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"asha@example.com","password":"secret123"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "signed-token")
	})

	t.Run("negative - bad credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(ctx context.Context, email, password string) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		}

		h := auth.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"email":"asha@example.com","password":"wrong"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid credentials")
	})
}

func TestAuthHandler_GetMe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New().String()
	svc := &fakeAuthService{
		GetMeFn: func(ctx context.Context, id string) (auth.UserResponse, error) {
			assert.Equal(t, userID, id)
			return auth.UserResponse{ID: id, Email: "asha@example.com"}, nil
		},
	}

	h := auth.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	c.Set("user_id", userID)

	h.GetMe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asha@example.com")
}
