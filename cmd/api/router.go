package api

import (
	"net/http"

	authDelivery "around-backend/internal/auth/delivery"
	authUsecase "around-backend/internal/auth/usecase"
	usersDelivery "around-backend/internal/users/delivery"
	usersUsecase "around-backend/internal/users/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc usersUsecase.UserUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	userHandler := usersDelivery.NewUserHandler(userUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	r.POST("/signup", authHandler.Register)
	r.POST("/signin", authHandler.Login)

	// User routes (protected)
	users := r.Group("/users")
	users.Use(authDelivery.AuthMiddleware(authUc))
	{
		users.GET("", userHandler.GetUsers)
		users.GET("/me", userHandler.GetProfile)
		users.PATCH("/me", userHandler.UpdateProfile)
		users.PATCH("/me/avatar", userHandler.UpdateAvatar)
	}
}
