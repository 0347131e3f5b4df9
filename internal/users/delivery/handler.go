package delivery

import (
	"net/http"

	authdelivery "around-backend/internal/auth/delivery"
	usersdto "around-backend/internal/users/dto"
	"around-backend/internal/users/usecase"
	"around-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userUsecase.GetUsers(c.Request.Context())
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUsecase.GetProfile(c.Request.Context(), c.GetString(authdelivery.ContextUserID))
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req usersdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.KindValidation, "data validation failed", err))
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), c.GetString(authdelivery.ContextUserID), &req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateAvatar handles PATCH /users/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var req usersdto.UpdateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, apperr.Wrap(apperr.KindValidation, "data validation failed", err))
		return
	}

	user, err := h.userUsecase.UpdateAvatar(c.Request.Context(), c.GetString(authdelivery.ContextUserID), &req)
	if err != nil {
		apperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
