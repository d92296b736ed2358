package report

import (
	"github.com/Ishani018/alms-ishani/internal/auth"
	"github.com/Ishani018/alms-ishani/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, resolver middleware.UserResolver) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(resolver))
	reports.Use(middleware.RequireRoles(auth.RoleHR, auth.RoleAdmin))
	{
		reports.GET("/monthly-leave", handler.MonthlyLeave)
	}
}
