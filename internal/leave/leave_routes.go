package leave

import (
	"github.com/Ishani018/alms-ishani/internal/auth"
	"github.com/Ishani018/alms-ishani/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	resolver middleware.UserResolver,
	rdb *redis.Client,
) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware(resolver))
	{
		leaves.POST("",
			middleware.RateLimitByUser(rate.Limit(1), 10),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetByID)
		leaves.PUT("/:id", handler.Update)
		leaves.DELETE("/:id", handler.Cancel)

		leaves.GET("/approvals/pending",
			middleware.RequireRoles(auth.RoleManager, auth.RoleHR, auth.RoleAdmin),
			handler.PendingApprovals,
		)
		leaves.POST("/:id/approve",
			middleware.RequireRoles(auth.RoleManager, auth.RoleHR, auth.RoleAdmin),
			handler.Approve,
		)
		leaves.POST("/:id/reject",
			middleware.RequireRoles(auth.RoleManager, auth.RoleHR, auth.RoleAdmin),
			handler.Reject,
		)
	}
}
