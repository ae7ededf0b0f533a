package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer rbac.Service, rdb *redis.Client) {
	group := r.Group("/payrolls")
	group.Use(middleware.AuthMiddleware())
	{
		// Batch generation walks every active employee; one run per
		// second per user is plenty.
		group.POST("/generate",
			rbac.Authorize(enforcer, "payroll", "generate"),
			middleware.RateLimitByUser(rate.Limit(1), 3),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		group.GET("", rbac.Authorize(enforcer, "payroll", "read"), handler.GetAll)
		group.GET("/:id", rbac.Authorize(enforcer, "payroll", "read"), handler.GetByID)
		group.GET("/:id/payslip", rbac.Authorize(enforcer, "payroll", "read"), handler.Payslip)
	}
}
