package api

import (
	authUsecase "around-backend/internal/auth/usecase"
	usersUsecase "around-backend/internal/users/usecase"
	"around-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	userUsecase usersUsecase.UserUsecase
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, userUc usersUsecase.UserUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		userUsecase: userUc,
		config:      cfg,
	}
}

// Start runs the HTTP server on the given address.
func (h *Handler) Start(addr string) error {
	r := gin.Default()
	SetupRoutes(r, h.authUsecase, h.userUsecase)
	return r.Run(addr)
}
