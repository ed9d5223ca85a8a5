package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"learnhub/backend/config"
	"learnhub/backend/internal/api/handler"
	"learnhub/backend/internal/api/middleware"
	"learnhub/backend/internal/model"
	"learnhub/backend/pkg/jwt"
	"learnhub/backend/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup 装配路由与中间件
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.JWTAuth(jwtMgr, rdb)

	v1 := r.Group("/api/v1")
	{
		authGroup := v1.Group("/auth")
		{
			// 登录与重置接口单独限流，防止撞库
			loginLimit := middleware.RateLimit(rdb, logger, 10, time.Minute)
			authGroup.POST("/login", loginLimit, h.Auth.Login)
			authGroup.POST("/forgot-password", loginLimit, h.Auth.ForgotPassword)
			// 登出不强制认证：无 Token 也清 Cookie 并成功返回
			authGroup.POST("/logout", middleware.OptionalJWTAuth(jwtMgr), h.Auth.Logout)
			authGroup.GET("/me", auth, h.Auth.Me)
		}

		v1.GET("/users", h.User.List)
		v1.POST("/users", h.User.Create)
		v1.GET("/instructors/available", h.User.AvailableInstructors)

		v1.GET("/courses", h.Course.List)
		v1.POST("/courses", h.Course.Create)
		v1.DELETE("/modules/:id", h.Course.DeleteModule)
		v1.POST("/modules/:id/complete", auth, h.Course.CompleteModule)

		v1.GET("/enrollments/student", h.Enrollment.ListByStudent)

		v1.GET("/instructors/sessions", h.Session.ListByInstructor)
		v1.GET("/instructors/sessions/ics", h.Session.InstructorCalendar)
		v1.GET("/sessions/student", h.Session.ListByStudent)

		v1.POST("/appointments/book", auth, h.Appointment.Book)

		payments := v1.Group("/payments", auth)
		{
			payments.POST("/intent", h.Payment.CreateIntent)
			payments.GET("/:id", h.Payment.Confirm)
		}

		export := v1.Group("/export", auth, middleware.RoleAuth(model.RoleAdmin, model.RoleInstructor))
		{
			export.GET("/enrollments", h.Export.Enrollments)
		}
	}

	return r
}
