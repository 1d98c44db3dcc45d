package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"vidtube/domain/apperror"
	"vidtube/domain/model"
	"vidtube/domain/repository"
	"vidtube/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type likeFixture struct {
	likes    *MockLikeRepository
	videos   *MockVideoRepository
	comments *MockCommentRepository
	posts    *MockCommunityPostRepository
	events   *MockEventPublisher
	uc       usecase.ILikeUsecase
}

func newLikeFixture() *likeFixture {
	f := &likeFixture{
		likes:    new(MockLikeRepository),
		videos:   new(MockVideoRepository),
		comments: new(MockCommentRepository),
		posts:    new(MockCommunityPostRepository),
		events:   new(MockEventPublisher),
	}
	f.uc = usecase.NewLikeUsecase(f.likes, f.videos, f.comments, f.posts, f.events)
	return f
}

func TestLikeUsecase_ToggleTwiceEndsUnliked(t *testing.T) {
	f := newLikeFixture()
	userID := bson.NewObjectID()
	video := model.Video{ID: bson.NewObjectID(), Owner: bson.NewObjectID(), IsPublished: true}
	target := model.LikeTarget{Kind: model.LikeVideo, ID: video.ID}

	f.videos.On("GetByID", mock.Anything, video.ID).Return(video, nil).Twice()
	f.likes.On("Remove", mock.Anything, target, userID).Return(false, nil).Once()
	f.likes.On("Create", mock.Anything, mock.AnythingOfType("*model.Like")).Return(nil).Once()
	f.events.On("Publish", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
		return e.Type == model.EventLikeCreated && e.TargetUserID == video.Owner.Hex()
	})).Return(nil).Once()

	first, err := f.uc.Toggle(context.Background(), userID, model.LikeVideo, video.ID.Hex())
	require.NoError(t, err)
	assert.True(t, first.Liked)
	require.NotNil(t, first.Like)
	require.NotNil(t, first.Like.Video)
	assert.Equal(t, video.ID, *first.Like.Video)
	assert.Equal(t, userID, first.Like.LikedBy)

	f.likes.On("Remove", mock.Anything, target, userID).Return(true, nil).Once()

	second, err := f.uc.Toggle(context.Background(), userID, model.LikeVideo, video.ID.Hex())
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.Nil(t, second.Like)

	f.likes.AssertExpectations(t)
	f.events.AssertExpectations(t)
}

func TestLikeUsecase_ToggleConcurrentDuplicate(t *testing.T) {
	f := newLikeFixture()
	userID := bson.NewObjectID()
	comment := model.Comment{ID: bson.NewObjectID(), Owner: bson.NewObjectID()}
	target := model.LikeTarget{Kind: model.LikeComment, ID: comment.ID}
	existing := model.NewLike(target, userID)
	existing.ID = bson.NewObjectID()

	f.comments.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()
	f.likes.On("Remove", mock.Anything, target, userID).Return(false, nil).Once()
	f.likes.On("Create", mock.Anything, mock.AnythingOfType("*model.Like")).Return(repository.ErrDuplicate).Once()
	f.likes.On("Find", mock.Anything, target, userID).Return(existing, nil).Once()

	got, err := f.uc.Toggle(context.Background(), userID, model.LikeComment, comment.ID.Hex())
	require.NoError(t, err)
	assert.True(t, got.Liked)
	assert.Equal(t, existing.ID, got.Like.ID)
	f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestLikeUsecase_ToggleRejects(t *testing.T) {
	userID := bson.NewObjectID()

	t.Run("unpublished video of someone else", func(t *testing.T) {
		f := newLikeFixture()
		video := model.Video{ID: bson.NewObjectID(), Owner: bson.NewObjectID()}
		f.videos.On("GetByID", mock.Anything, video.ID).Return(video, nil).Once()

		_, err := f.uc.Toggle(context.Background(), userID, model.LikeVideo, video.ID.Hex())
		assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))
	})

	t.Run("missing post", func(t *testing.T) {
		f := newLikeFixture()
		id := bson.NewObjectID()
		f.posts.On("GetByID", mock.Anything, id).Return(model.CommunityPost{}, repository.ErrNotFound).Once()

		_, err := f.uc.Toggle(context.Background(), userID, model.LikeCommunityPost, id.Hex())
		assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newLikeFixture()
		_, err := f.uc.Toggle(context.Background(), userID, model.LikeComment, "not-an-id")
		appErr := apperror.From(err)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		require.Len(t, appErr.Errors, 1)
		assert.Equal(t, "commentId", appErr.Errors[0].Field)
	})
}

func TestLikeUsecase_Likes(t *testing.T) {
	f := newLikeFixture()
	post := model.CommunityPost{ID: bson.NewObjectID(), Owner: bson.NewObjectID()}
	target := model.LikeTarget{Kind: model.LikeCommunityPost, ID: post.ID}
	f.posts.On("GetByID", mock.Anything, post.ID).Return(post, nil).Once()
	f.likes.On("Summary", mock.Anything, target).Return(model.LikeSummary{}, nil).Once()

	summary, err := f.uc.Likes(context.Background(), bson.NewObjectID(), model.LikeCommunityPost, post.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.LikesCount)
	assert.NotNil(t, summary.LikedBy)
}

func TestLikeUsecase_LikedVideos(t *testing.T) {
	f := newLikeFixture()
	userID := bson.NewObjectID()
	f.likes.On("LikedVideos", mock.Anything, userID).Return([]model.LikedVideo(nil), nil).Once()

	videos, err := f.uc.LikedVideos(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}
