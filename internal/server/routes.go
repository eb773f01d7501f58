package routes

import (
	"finanzas-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/logout", middleware.AuthMiddleware(), middleware.Logout)

	router.POST("/request-reset-password", middleware.RequestResetPassword)
	router.POST("/reset-password", middleware.ResetPassword)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/users", middleware.UpdateUser)
		protected.DELETE("/users", middleware.DeleteUser)

		protected.GET("/balance", middleware.GetBalance)
		protected.POST("/balance", middleware.CreateBalance)
		protected.PUT("/balance", middleware.UpdateBalance)

		protected.GET("/expenses", middleware.GetExpenses)
		protected.POST("/expenses", middleware.CreateExpense)
		protected.PUT("/expenses/:id", middleware.UpdateExpense)
		protected.DELETE("/expenses/:id", middleware.DeleteExpense)

		protected.GET("/investments", middleware.GetInvestments)
		protected.POST("/investments", middleware.CreateInvestment)
		protected.PUT("/investments/:id", middleware.UpdateInvestment)
		protected.DELETE("/investments/:id", middleware.DeleteInvestment)
		protected.POST("/investments/refresh", middleware.RefreshInvestments)

		protected.GET("/investment-types", middleware.GetInvestmentTypes)
		protected.GET("/integrations/crypto", middleware.CryptoIntegration)
		protected.GET("/dashboard", middleware.GetDashboard)
	}

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("/users", middleware.GetUsers)
		admin.GET("/users/:id", middleware.GetUser)
		admin.GET("/users/email/:email", middleware.GetUserByEmail)
		admin.DELETE("/users/:id", middleware.DeleteUserByAdmin)

		admin.POST("/investment-types", middleware.CreateInvestmentType)
		admin.PUT("/investment-types/:id", middleware.UpdateInvestmentType)
		admin.DELETE("/investment-types/:id", middleware.DeleteInvestmentType)
	}
}
