package employee

import (
	"github.com/gin-gonic/gin"

	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer rbac.Service) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.POST("", rbac.Authorize(enforcer, "employee", "create"), handler.Create)
		employees.GET("", rbac.Authorize(enforcer, "employee", "read"), handler.GetAll)
		employees.GET("/managers", rbac.Authorize(enforcer, "employee", "read"), handler.GetManagers)
		employees.GET("/:id", rbac.Authorize(enforcer, "employee", "read"), handler.GetByID)
		employees.PUT("/:id", rbac.Authorize(enforcer, "employee", "update"), handler.Update)
		employees.POST("/:id/face", rbac.Authorize(enforcer, "employee", "update"), handler.EnrollFace)
		employees.DELETE("/:id", rbac.Authorize(enforcer, "employee", "delete"), handler.Delete)
	}
}
