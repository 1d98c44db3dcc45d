package http

import (
	"net/http"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/interfaces/middleware"
	"vidtube/usecase"

	"github.com/gin-gonic/gin"
)

type IUserHandler interface {
	Register(c *gin.Context) error
	Login(c *gin.Context) error
	Logout(c *gin.Context) error
	RefreshToken(c *gin.Context) error
	CurrentUser(c *gin.Context) error
	ChangePassword(c *gin.Context) error
	UpdateAccount(c *gin.Context) error
	UpdateAvatar(c *gin.Context) error
	UpdateCoverImage(c *gin.Context) error
	ChannelProfile(c *gin.Context) error
	WatchHistory(c *gin.Context) error
}

type UserHandler struct {
	userUsecase usecase.IUserUsecase
	cookies     CookieConfig
	uploadDir   string
}

func NewUserHandler(userUsecase usecase.IUserUsecase, cookies CookieConfig, uploadDir string) IUserHandler {
	return &UserHandler{userUsecase: userUsecase, cookies: cookies, uploadDir: uploadDir}
}

func (h *UserHandler) Register(c *gin.Context) error {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		return bindError(err)
	}

	files := newUploads(h.uploadDir)
	defer files.cleanup()
	avatar, err := files.save(c, "avatar")
	if err != nil {
		return err
	}
	cover, err := files.save(c, "coverImage")
	if err != nil {
		return err
	}

	user, err := h.userUsecase.Register(c.Request.Context(), dto.RegisterInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		AvatarPath:     avatar,
		CoverImagePath: cover,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, user, "User registered successfully")
}

func (h *UserHandler) Login(c *gin.Context) error {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}

	res, err := h.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		return err
	}
	h.cookies.set(c, tokenPair(res.AccessToken, res.RefreshToken))
	return respond(c, http.StatusOK, res, "User logged in successfully")
}

func (h *UserHandler) Logout(c *gin.Context) error {
	if err := h.userUsecase.Logout(c.Request.Context(), middleware.CurrentUserID(c)); err != nil {
		return err
	}
	h.cookies.clear(c)
	return respond(c, http.StatusOK, gin.H{}, "User logged out")
}

// RefreshToken takes the refresh token from its cookie, a Bearer header or
// the JSON body, in that order.
func (h *UserHandler) RefreshToken(c *gin.Context) error {
	token := middleware.TokenFromRequest(c, RefreshTokenCookie)
	if token == "" {
		var req dto.RefreshTokenRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	pair, err := h.userUsecase.RefreshToken(c.Request.Context(), token)
	if err != nil {
		return err
	}
	h.cookies.set(c, pair)
	return respond(c, http.StatusOK, pair, "Access token refreshed")
}

func (h *UserHandler) CurrentUser(c *gin.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperror.Unauthorized("Unauthorized request")
	}
	return respond(c, http.StatusOK, user, "Current user fetched successfully")
}

func (h *UserHandler) ChangePassword(c *gin.Context) error {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	if err := h.userUsecase.ChangePassword(c.Request.Context(), middleware.CurrentUserID(c), req); err != nil {
		return err
	}
	return respond(c, http.StatusOK, gin.H{}, "Password changed successfully")
}

func (h *UserHandler) UpdateAccount(c *gin.Context) error {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return bindError(err)
	}
	user, err := h.userUsecase.UpdateAccount(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user, "Account details updated successfully")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) error {
	files := newUploads(h.uploadDir)
	defer files.cleanup()
	path, err := files.save(c, "avatar")
	if err != nil {
		return err
	}
	if path == "" {
		return apperror.BadRequest("Avatar file is missing")
	}

	user, err := h.userUsecase.UpdateAvatar(c.Request.Context(), middleware.CurrentUserID(c), path)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user, "Avatar updated successfully")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) error {
	files := newUploads(h.uploadDir)
	defer files.cleanup()
	path, err := files.save(c, "coverImage")
	if err != nil {
		return err
	}
	if path == "" {
		return apperror.BadRequest("Cover image file is missing")
	}

	user, err := h.userUsecase.UpdateCoverImage(c.Request.Context(), middleware.CurrentUserID(c), path)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user, "Cover image updated successfully")
}

func (h *UserHandler) ChannelProfile(c *gin.Context) error {
	profile, err := h.userUsecase.ChannelProfile(c.Request.Context(), c.Param("userName"), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, profile, "User channel fetched successfully")
}

func (h *UserHandler) WatchHistory(c *gin.Context) error {
	history, err := h.userUsecase.WatchHistory(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, history, "Watch history fetched successfully")
}
