package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/registrar/internal/app/controllers"
	"github.com/yigit/registrar/internal/middleware"
)

// Handlers groups everything SetupRouter mounts.
type Handlers struct {
	Auth           *controllers.AuthController
	College        *controllers.CollegeController
	Program        *controllers.ProgramController
	Student        *controllers.StudentController
	User           *controllers.UserController
	Health         *controllers.HealthController
	AuthMiddleware *middleware.AuthMiddleware
	// AuthLimiter throttles signup and login; nil disables it.
	AuthLimiter *middleware.RateLimiter
	// Metrics serves /metrics when set.
	Metrics gin.HandlerFunc
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		router.GET("/metrics", h.Metrics)
	}

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", h.Health.Health)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		limited := auth.Group("")
		if h.AuthLimiter != nil {
			limited.Use(h.AuthLimiter.Middleware())
		}
		limited.POST("/signup", h.Auth.Signup)
		limited.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/ping", h.AuthMiddleware.JWTAuth(), h.Auth.Ping)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(h.AuthMiddleware.JWTAuth())

	colleges := authenticated.Group("/colleges")
	{
		colleges.GET("", h.College.ListColleges)
		colleges.POST("", h.College.CreateCollege)
		colleges.POST("/create", h.College.CreateCollege)
		colleges.GET("/dropdown", h.College.CollegeDropdown)
		colleges.GET("/total", h.College.CountColleges)
		colleges.GET("/:key", h.College.GetCollege)
		colleges.PUT("/:key", h.College.UpdateCollege)
		colleges.DELETE("/:key", h.College.DeleteCollege)
	}

	programs := authenticated.Group("/programs")
	{
		programs.GET("", h.Program.ListPrograms)
		programs.POST("", h.Program.CreateProgram)
		programs.POST("/create", h.Program.CreateProgram)
		programs.GET("/dropdown", h.Program.ProgramDropdown)
		programs.GET("/total", h.Program.CountPrograms)
		programs.GET("/:key", h.Program.GetProgram)
		programs.PUT("/:key", h.Program.UpdateProgram)
		programs.DELETE("/:key", h.Program.DeleteProgram)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", h.Student.ListStudents)
		students.POST("", h.Student.CreateStudent)
		students.POST("/create", h.Student.CreateStudent)
		students.GET("/total", h.Student.CountStudents)
		students.GET("/count-by-program", h.Student.CountByProgram)
		students.GET("/count-by-gender", h.Student.CountByGender)
		students.GET("/:key", h.Student.GetStudent)
		students.PUT("/:key", h.Student.UpdateStudent)
		students.DELETE("/:key", h.Student.DeleteStudent)
	}

	users := authenticated.Group("/users")
	{
		users.GET("", h.User.ListUsers)
		users.POST("", h.User.CreateUser)
		users.GET("/:id", h.User.GetUser)
		users.PUT("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
	}
}
