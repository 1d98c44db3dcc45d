package usecase

import (
	"context"
	"strings"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ICommunityPostUsecase interface {
	Create(ctx context.Context, userID bson.ObjectID, req dto.CommunityPostRequest) (model.CommunityPost, error)
	ListByUser(ctx context.Context, ownerID string) ([]model.PostDetail, error)
	Update(ctx context.Context, userID bson.ObjectID, postID string, req dto.CommunityPostRequest) (model.CommunityPost, error)
	Delete(ctx context.Context, userID bson.ObjectID, postID string) error
}

type CommunityPostUsecase struct {
	posts repository.ICommunityPost
	users repository.IUser
}

func NewCommunityPostUsecase(posts repository.ICommunityPost, users repository.IUser) ICommunityPostUsecase {
	return &CommunityPostUsecase{posts: posts, users: users}
}

func postContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", apperror.Validation([]apperror.FieldError{{Field: "content", Message: "is required"}})
	}
	return content, nil
}

func (u *CommunityPostUsecase) Create(ctx context.Context, userID bson.ObjectID, req dto.CommunityPostRequest) (model.CommunityPost, error) {
	content, err := postContent(req.Content)
	if err != nil {
		return model.CommunityPost{}, err
	}
	post := model.CommunityPost{Content: content, Owner: userID}
	if err := u.posts.Create(ctx, &post); err != nil {
		return model.CommunityPost{}, apperror.Internal(err)
	}
	return post, nil
}

func (u *CommunityPostUsecase) ListByUser(ctx context.Context, ownerID string) ([]model.PostDetail, error) {
	id, err := parseID(ownerID, "userId")
	if err != nil {
		return nil, err
	}
	if _, err := u.users.GetByID(ctx, id); err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	posts, err := u.posts.ListByOwner(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return nonNil(posts), nil
}

func (u *CommunityPostUsecase) owned(ctx context.Context, userID bson.ObjectID, postID string) (model.CommunityPost, error) {
	id, err := parseID(postID, "postId")
	if err != nil {
		return model.CommunityPost{}, err
	}
	post, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return model.CommunityPost{}, notFoundOr(err, "Post not found")
	}
	if !CanModifyPost(userID, post) {
		return model.CommunityPost{}, apperror.Forbidden("You are not allowed to modify this post")
	}
	return post, nil
}

func (u *CommunityPostUsecase) Update(ctx context.Context, userID bson.ObjectID, postID string, req dto.CommunityPostRequest) (model.CommunityPost, error) {
	content, err := postContent(req.Content)
	if err != nil {
		return model.CommunityPost{}, err
	}
	post, err := u.owned(ctx, userID, postID)
	if err != nil {
		return model.CommunityPost{}, err
	}
	updated, err := u.posts.UpdateContent(ctx, post.ID, content)
	if err != nil {
		return model.CommunityPost{}, notFoundOr(err, "Post not found")
	}
	return updated, nil
}

func (u *CommunityPostUsecase) Delete(ctx context.Context, userID bson.ObjectID, postID string) error {
	post, err := u.owned(ctx, userID, postID)
	if err != nil {
		return err
	}
	if err := u.posts.Delete(ctx, post.ID); err != nil {
		return notFoundOr(err, "Post not found")
	}
	return nil
}
