// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"medicore/handlers"
	"medicore/middleware"
	"medicore/models"
	"medicore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.DELETE("/revoke", hb.RevokeHandler)
		api.PUT("/password", hb.UpdatePasswordHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRoles(models.RoleAdmin), hb.CreateUserHandler)
		api.GET("", middleware.RequireRoles(models.RoleAdmin), hb.ListUsersHandler)
		api.GET("/:id", hb.GetUserByIDHandler)
		api.PUT("/:id", hb.UpdateUserHandler)
		api.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.DeleteUserHandler)
	}
}

// RegisterDepartmentRoutes registers department endpoints. Reads are
// open to any authenticated account; mutations are admin-only.
func RegisterDepartmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/departments")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", hb.ListDepartmentsHandler)
		api.GET("/:id", hb.GetDepartmentHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CreateDepartmentHandler)
		admin.PUT("/:id", hb.UpdateDepartmentHandler)
		admin.DELETE("/:id", hb.DeleteDepartmentHandler)
	}
}

// RegisterDoctorRoutes registers the doctor directory and weekly
// schedule endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		// Public directory so patients can browse before signing in.
		api.GET("", hb.ListDoctorsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.GET("/:id/schedule", hb.GetScheduleHandler)
		protected.PUT("/:id/schedule", middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin), hb.SetScheduleHandler)
	}
}

// RegisterAvailabilityRoutes registers the slot computation endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("/doctor/:id", hb.DoctorAvailabilityHandler)
		api.GET("/department/:id", hb.DepartmentAvailabilityHandler)
	}
}

// RegisterAppointmentRoutes registers the booking lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRoles(models.RolePatient), hb.BookAppointmentHandler)
		api.GET("", hb.ListMyAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.DELETE("/:id", hb.CancelAppointmentHandler)
		api.PUT("/:id/complete", middleware.RequireRoles(models.RoleDoctor), hb.CompleteAppointmentHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.GET("/doctor/:id", hb.ListByDoctorHandler)
		admin.GET("/patient/:id", hb.ListByPatientHandler)
	}
}

// RegisterAssignmentRoutes registers doctor-patient link endpoints.
func RegisterAssignmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assignments")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRoles(models.RoleAdmin), hb.AssignHandler)
		api.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.UnassignHandler)
		api.GET("/patients", middleware.RequireRoles(models.RoleDoctor), hb.MyPatientsHandler)
		api.GET("/doctors", middleware.RequireRoles(models.RolePatient), hb.MyDoctorsHandler)
	}
}

// RegisterDiagnosisRoutes registers clinical record endpoints.
func RegisterDiagnosisRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/diagnoses")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRoles(models.RoleDoctor), hb.CreateDiagnosisHandler)
		api.PUT("/:id", middleware.RequireRoles(models.RoleDoctor), hb.UpdateDiagnosisHandler)
		api.GET("", hb.ListMyDiagnosesHandler)
		api.GET("/:id", hb.GetDiagnosisHandler)
		api.GET("/patient/:id", middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin), hb.ListPatientDiagnosesHandler)
	}
}

// RegisterBillingRoutes registers charge endpoints.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/charges")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("", middleware.RequireRoles(models.RolePatient), hb.ListMyChargesHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.POST("", hb.CreateChargeHandler)
		admin.PUT("/:id/pay", hb.MarkPaidHandler)
		admin.PUT("/:id/void", hb.VoidChargeHandler)
		admin.GET("/all", hb.ListAllChargesHandler)
	}
}

// RegisterHealthRoute registers the liveness endpoint with the latest
// dependency snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and
// cross-cutting middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDepartmentRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAssignmentRoutes(r, hb)
	RegisterDiagnosisRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterHealthRoute(r)
}
