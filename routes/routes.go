package routes

import (
	"time"

	"turfadmin/handlers"
	"turfadmin/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	ah := hb.AdminHandler
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", ah.LoginHandler)

		// Protected routes (require an admin token)
		protected := adminGroup.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware(hb.TokenVerifier, hb.AdminSubject))

		protected.GET("/dashboard", ah.DashboardHandler)

		protected.GET("/appointments", ah.ListAppointmentsHandler)
		protected.POST("/cancel-appointment", ah.CancelAppointmentHandler)
		protected.POST("/confirm-appointment", ah.ConfirmAppointmentHandler)
		protected.POST("/change-appointment-status", ah.ChangeAppointmentStatusHandler)
		protected.DELETE("/delete-appointment", ah.DeleteAppointmentHandler)

		protected.POST("/add-doctor", ah.AddDoctorHandler)
		protected.GET("/all-doctors", ah.ListDoctorsHandler)
		protected.POST("/change-availability", ah.ChangeAvailabilityHandler)
		protected.PUT("/edit-turf/:id", ah.EditDoctorHandler)
		protected.DELETE("/delete-turf/:id", ah.DeleteDoctorHandler)

		protected.GET("/users", ah.ListUsersHandler)
		protected.POST("/users", ah.CreateUserHandler)
		protected.PUT("/users/:id", ah.UpdateUserHandler)
		protected.DELETE("/users/:id", ah.DeleteUserHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "atoken"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterAdminRoutes(r, hb)
}
