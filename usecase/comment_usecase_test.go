package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"vidtube/domain/apperror"
	"vidtube/domain/dto"
	"vidtube/domain/model"
	"vidtube/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCommentUsecase_Delete(t *testing.T) {
	author := bson.NewObjectID()
	videoOwner := bson.NewObjectID()
	stranger := bson.NewObjectID()
	video := model.Video{ID: bson.NewObjectID(), Owner: videoOwner, IsPublished: true}
	comment := model.Comment{ID: bson.NewObjectID(), Video: video.ID, Owner: author, Content: "nice"}

	tests := []struct {
		name       string
		userID     bson.ObjectID
		wantStatus int
	}{
		{name: "author", userID: author},
		{name: "video owner", userID: videoOwner},
		{name: "stranger", userID: stranger, wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments := new(MockCommentRepository)
			videos := new(MockVideoRepository)
			uc := usecase.NewCommentUsecase(comments, videos, nil)

			comments.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Once()
			videos.On("GetByID", mock.Anything, video.ID).Return(video, nil).Maybe()
			if tt.wantStatus == 0 {
				comments.On("Delete", mock.Anything, comment.ID).Return(nil).Once()
			}

			err := uc.Delete(context.Background(), tt.userID, comment.ID.Hex())
			if tt.wantStatus == 0 {
				require.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantStatus, apperror.StatusOf(err))
				comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
			comments.AssertExpectations(t)
		})
	}
}

func TestCommentUsecase_Update(t *testing.T) {
	comments := new(MockCommentRepository)
	uc := usecase.NewCommentUsecase(comments, new(MockVideoRepository), nil)
	author := bson.NewObjectID()
	comment := model.Comment{ID: bson.NewObjectID(), Owner: author}

	comments.On("GetByID", mock.Anything, comment.ID).Return(comment, nil).Twice()

	_, err := uc.Update(context.Background(), bson.NewObjectID(), comment.ID.Hex(), dto.CommentRequest{Content: "edit"})
	assert.Equal(t, http.StatusForbidden, apperror.StatusOf(err))

	edited := comment
	edited.Content = "edit"
	comments.On("UpdateContent", mock.Anything, comment.ID, "edit").Return(edited, nil).Once()

	got, err := uc.Update(context.Background(), author, comment.ID.Hex(), dto.CommentRequest{Content: "  edit "})
	require.NoError(t, err)
	assert.Equal(t, "edit", got.Content)
	comments.AssertExpectations(t)
}

func TestCommentUsecase_Add(t *testing.T) {
	comments := new(MockCommentRepository)
	videos := new(MockVideoRepository)
	events := new(MockEventPublisher)
	uc := usecase.NewCommentUsecase(comments, videos, events)
	userID := bson.NewObjectID()
	video := model.Video{ID: bson.NewObjectID(), Owner: bson.NewObjectID(), IsPublished: true}

	videos.On("GetByID", mock.Anything, video.ID).Return(video, nil).Once()
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.Video == video.ID && c.Owner == userID && c.Content == "first!"
	})).Return(nil).Once()
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
		return e.Type == model.EventCommentCreated && e.TargetUserID == video.Owner.Hex()
	})).Return(nil).Once()

	_, err := uc.Add(context.Background(), userID, video.ID.Hex(), dto.CommentRequest{Content: "first!"})
	require.NoError(t, err)

	_, err = uc.Add(context.Background(), userID, video.ID.Hex(), dto.CommentRequest{Content: "   "})
	assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))

	comments.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCommentUsecase_List(t *testing.T) {
	comments := new(MockCommentRepository)
	videos := new(MockVideoRepository)
	uc := usecase.NewCommentUsecase(comments, videos, nil)
	video := model.Video{ID: bson.NewObjectID(), Owner: bson.NewObjectID(), IsPublished: true}
	page := model.NewPage([]model.CommentDetail{}, 0, 2, 5)

	videos.On("GetByID", mock.Anything, video.ID).Return(video, nil).Once()
	comments.On("ListByVideo", mock.Anything, video.ID, 2, 5).Return(page, nil).Once()

	got, err := uc.List(context.Background(), bson.ObjectID{}, video.ID.Hex(), dto.PaginationRequest{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Page)
}
