package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/infrastructure/logger"
	"vidtube/infrastructure/security"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	FolderAvatars     = "avatars"
	FolderCoverImages = "cover-images"
)

type IUserUsecase interface {
	Register(ctx context.Context, input dto.RegisterInput) (model.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context, userID bson.ObjectID) error
	RefreshToken(ctx context.Context, token string) (model.TokenPair, error)
	ChangePassword(ctx context.Context, userID bson.ObjectID, req dto.ChangePasswordRequest) error
	UpdateAccount(ctx context.Context, userID bson.ObjectID, req dto.UpdateAccountRequest) (model.User, error)
	UpdateAvatar(ctx context.Context, userID bson.ObjectID, localPath string) (model.User, error)
	UpdateCoverImage(ctx context.Context, userID bson.ObjectID, localPath string) (model.User, error)
	ChannelProfile(ctx context.Context, userName string, viewerID bson.ObjectID) (model.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.VideoDetail, error)
}

type UserUsecase struct {
	users  repository.IUser
	media  repository.IMediaStorage
	hasher security.IPasswordHasher
	tokens security.ITokenManager
	issuer ITokenIssuer
	events repository.IEventPublisher
}

func NewUserUsecase(
	users repository.IUser,
	media repository.IMediaStorage,
	hasher security.IPasswordHasher,
	tokens security.ITokenManager,
	events repository.IEventPublisher,
) IUserUsecase {
	return &UserUsecase{
		users:  users,
		media:  media,
		hasher: hasher,
		tokens: tokens,
		issuer: NewTokenIssuer(tokens, users),
		events: events,
	}
}

// UserNameFromEmail derives the handle from the local part of an email.
func UserNameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	return strings.ToLower(local)
}

func (u *UserUsecase) Register(ctx context.Context, input dto.RegisterInput) (model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	userName := UserNameFromEmail(email)
	if userName == "" {
		return model.User{}, apperror.Validation([]apperror.FieldError{{Field: "email", Message: "must be a valid email"}})
	}

	exists, err := u.users.ExistsByEmailOrUserName(ctx, email, userName)
	if err != nil {
		return model.User{}, apperror.Internal(err)
	}
	if exists {
		return model.User{}, apperror.Conflict("Email or username already exists.")
	}
	if input.AvatarPath == "" {
		return model.User{}, apperror.BadRequest("Avatar file is required")
	}

	avatar, err := u.media.Upload(ctx, input.AvatarPath, FolderAvatars)
	if err != nil {
		return model.User{}, apperror.Internal(err)
	}
	var cover *model.Asset
	if input.CoverImagePath != "" {
		uploaded, err := u.media.Upload(ctx, input.CoverImagePath, FolderCoverImages)
		if err != nil {
			discard(ctx, u.media, avatar)
			return model.User{}, apperror.Internal(err)
		}
		cover = &uploaded
	}
	uploaded := []model.Asset{avatar}
	if cover != nil {
		uploaded = append(uploaded, *cover)
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		discard(ctx, u.media, uploaded...)
		return model.User{}, apperror.Internal(err)
	}

	user := model.User{
		UserName:   userName,
		Email:      email,
		FullName:   strings.TrimSpace(input.FullName),
		Avatar:     avatar,
		CoverImage: cover,
		Password:   hash,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		discard(ctx, u.media, uploaded...)
		if errors.Is(err, repository.ErrDuplicate) {
			return model.User{}, apperror.Conflict("Email or username already exists.")
		}
		return model.User{}, apperror.Internal(err)
	}

	publish(ctx, u.events, model.EventUserRegistered, user.ID, bson.ObjectID{}, user.ID)
	user.Password = ""
	return user, nil
}

func (u *UserUsecase) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	user, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return dto.LoginResponse{}, notFoundOr(err, "User not found")
	}
	if !u.hasher.Compare(user.Password, req.Password) {
		return dto.LoginResponse{}, apperror.Unauthorized("Invalid credentials")
	}

	pair, err := u.issuer.Issue(ctx, user)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	user.Password = ""
	user.RefreshToken = ""
	return dto.LoginResponse{User: user, AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil
}

func (u *UserUsecase) Logout(ctx context.Context, userID bson.ObjectID) error {
	err := u.users.UnsetRefreshToken(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return apperror.Internal(err)
	}
	return nil
}

// RefreshToken exchanges the stored refresh token for a new pair. A token
// that was already rotated out no longer matches and is refused.
func (u *UserUsecase) RefreshToken(ctx context.Context, token string) (model.TokenPair, error) {
	if token == "" {
		return model.TokenPair{}, apperror.Unauthorized("Unauthorized request")
	}
	claims, err := u.tokens.ParseRefresh(token)
	if err != nil {
		return model.TokenPair{}, apperror.Unauthorized("Invalid refresh token")
	}
	userID, err := bson.ObjectIDFromHex(claims.ID)
	if err != nil {
		return model.TokenPair{}, apperror.Unauthorized("Invalid refresh token")
	}

	user, err := u.users.GetByIDWithSecrets(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.TokenPair{}, apperror.Unauthorized("Invalid refresh token")
		}
		return model.TokenPair{}, apperror.Internal(err)
	}
	if user.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(user.RefreshToken), []byte(token)) != 1 {
		logger.GetLogger().WithField("user_id", userID.Hex()).Warn("Refresh token reuse or mismatch")
		return model.TokenPair{}, apperror.Unauthorized("Refresh token is expired or used")
	}

	return u.issuer.Issue(ctx, user)
}

func (u *UserUsecase) ChangePassword(ctx context.Context, userID bson.ObjectID, req dto.ChangePasswordRequest) error {
	user, err := u.users.GetByIDWithSecrets(ctx, userID)
	if err != nil {
		return notFoundOr(err, "User not found")
	}
	if !u.hasher.Compare(user.Password, req.OldPassword) {
		return apperror.Unauthorized("Invalid old password")
	}
	hash, err := u.hasher.Hash(req.NewPassword)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.users.UpdatePassword(ctx, userID, hash); err != nil {
		return notFoundOr(err, "User not found")
	}
	return nil
}

func (u *UserUsecase) UpdateAccount(ctx context.Context, userID bson.ObjectID, req dto.UpdateAccountRequest) (model.User, error) {
	user, err := u.users.UpdateFullName(ctx, userID, strings.TrimSpace(req.FullName))
	if err != nil {
		return model.User{}, notFoundOr(err, "User not found")
	}
	return user, nil
}

func (u *UserUsecase) UpdateAvatar(ctx context.Context, userID bson.ObjectID, localPath string) (model.User, error) {
	return u.replaceImage(ctx, userID, localPath, FolderAvatars,
		func(user model.User) *model.Asset { return &user.Avatar },
		u.users.UpdateAvatar,
	)
}

func (u *UserUsecase) UpdateCoverImage(ctx context.Context, userID bson.ObjectID, localPath string) (model.User, error) {
	return u.replaceImage(ctx, userID, localPath, FolderCoverImages,
		func(user model.User) *model.Asset { return user.CoverImage },
		u.users.UpdateCoverImage,
	)
}

// replaceImage uploads the new file, stores it and only then drops the
// previous asset from the media store.
func (u *UserUsecase) replaceImage(
	ctx context.Context,
	userID bson.ObjectID,
	localPath, folder string,
	current func(model.User) *model.Asset,
	save func(context.Context, bson.ObjectID, model.Asset) (model.User, error),
) (model.User, error) {
	if localPath == "" {
		return model.User{}, apperror.BadRequest("Image file is required")
	}
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, notFoundOr(err, "User not found")
	}
	previous := current(user)

	asset, err := u.media.Upload(ctx, localPath, folder)
	if err != nil {
		return model.User{}, apperror.Internal(err)
	}
	updated, err := save(ctx, userID, asset)
	if err != nil {
		discard(ctx, u.media, asset)
		return model.User{}, notFoundOr(err, "User not found")
	}

	if !previous.IsZero() {
		discard(ctx, u.media, *previous)
	}
	return updated, nil
}

func (u *UserUsecase) ChannelProfile(ctx context.Context, userName string, viewerID bson.ObjectID) (model.ChannelProfile, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return model.ChannelProfile{}, apperror.BadRequest("Username is missing")
	}
	profile, err := u.users.GetChannelProfile(ctx, userName, viewerID)
	if err != nil {
		return model.ChannelProfile{}, notFoundOr(err, "Channel does not exist")
	}
	return profile, nil
}

func (u *UserUsecase) WatchHistory(ctx context.Context, userID bson.ObjectID) ([]model.VideoDetail, error) {
	history, err := u.users.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	return history, nil
}
