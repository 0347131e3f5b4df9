package dto

type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	About string `json:"about" binding:"required"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}
