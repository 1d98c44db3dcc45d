package dto

import "vidtube/domain/model"

type RegisterRequest struct {
	FullName string `form:"fullName" json:"fullName" binding:"required,min=3,max=60"`
	Email    string `form:"email"    json:"email"    binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=8,max=72"`
}

// RegisterInput is a validated registration with its uploaded files saved
// locally. CoverImagePath may be empty.
type RegisterInput struct {
	FullName       string
	Email          string
	Password       string
	AvatarPath     string
	CoverImagePath string
}

type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User         model.User `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=72,nefield=OldPassword"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName" binding:"required,min=3,max=60"`
}
