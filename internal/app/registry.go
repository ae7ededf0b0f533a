package app

import (
	"database/sql"

	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/employee"
	"go-hrms/internal/facerec"
	"go-hrms/internal/invoice"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/notification"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/config"
	"go-hrms/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
) error {
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	invoiceRepo := invoice.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Infrastructure ---
	enforcer, err := rbac.NewService()
	if err != nil {
		return err
	}
	extractor := facerec.NewHTTPExtractor(cfg.FaceAPIURL)
	mailer := notification.NewMailer(cfg)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(employeeRepo, extractor)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo, extractor, cfg.FaceThreshold)
	leaveService := leave.NewService(leaveRepo, employeeRepo, attendanceService)
	payrollService := payroll.NewService(payrollRepo, outboxRepo, payroll.Config{
		FallbackBasicPay:   cfg.FallbackBasicPay,
		DefaultLeavePolicy: cfg.LeavePolicy,
	})
	invoiceService := invoice.NewService(invoiceRepo, counterRepo, mailer)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	invoiceHandler := invoice.NewHandler(invoiceService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		attendance.RegisterRoutes(api, attendanceHandler, enforcer)
		leave.RegisterRoutes(api, leaveHandler, enforcer)
		payroll.RegisterRoutes(api, payrollHandler, enforcer, rdb)
		invoice.RegisterRoutes(api, invoiceHandler, enforcer)
	}

	return nil
}
