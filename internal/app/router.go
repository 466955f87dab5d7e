package app

import (
	"course_platform_backend/docs"
	"course_platform_backend/internal/config"
	"course_platform_backend/internal/middleware"
	"course_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerUserRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		// Catalog is browsable without an account.
		public.GET("/courses", c.course.GetCourses)
		public.GET("/courses/:id", c.course.GetCourse)
		public.GET("/courses/:id/lessons", c.course.GetCourseLessons)
		public.GET("/lessons/:lessonId/quiz", c.quiz.GetLessonQuiz)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/users/:id", c.user.GetUser)
	rg.PUT("/users/:id", c.user.UpdateUser)

	rg.GET("/users/:id/enrollments", c.enrollment.GetUserEnrollments)
	rg.POST("/enrollments", c.enrollment.CreateEnrollment)
	rg.GET("/enrollments/check/:userId/:courseId", c.enrollment.CheckEnrollment)
	rg.POST("/enrollments/complete", c.enrollment.CompleteEnrollment)

	rg.POST("/progress/lesson", c.progress.UpdateLessonProgress)
	rg.GET("/progress/course/:userId/:courseId", c.progress.GetCourseProgress)

	rg.POST("/quiz/submit", c.quiz.SubmitQuiz)

	rg.GET("/users/:id/certificates", c.certificate.GetUserCertificates)
	rg.POST("/certificates", c.certificate.CreateCertificate)
}
