package attendance

import (
	"github.com/gin-gonic/gin"

	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer rbac.Service) {
	group := r.Group("/attendance")
	group.Use(middleware.AuthMiddleware())
	{
		group.POST("/punch-in", rbac.Authorize(enforcer, "attendance", "punch"), middleware.RequireEmployee(), handler.PunchIn)
		group.POST("/punch-out", rbac.Authorize(enforcer, "attendance", "punch"), middleware.RequireEmployee(), handler.PunchOut)
		group.POST("/breaks", rbac.Authorize(enforcer, "attendance", "punch"), middleware.RequireEmployee(), handler.AddBreak)
		group.GET("/me", rbac.Authorize(enforcer, "attendance", "read"), middleware.RequireEmployee(), handler.GetMy)
		group.GET("", rbac.Authorize(enforcer, "attendance", "read"), handler.GetAll)
	}
}
