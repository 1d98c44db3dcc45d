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

func TestSubscriptionUsecase_Toggle(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	users := new(MockUserRepository)
	events := new(MockEventPublisher)
	uc := usecase.NewSubscriptionUsecase(subs, users, events)

	me := bson.NewObjectID()
	channel := model.User{ID: bson.NewObjectID(), UserName: "chan"}
	users.On("GetByID", mock.Anything, channel.ID).Return(channel, nil)

	subs.On("Remove", mock.Anything, me, channel.ID).Return(false, nil).Once()
	subs.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Subscription) bool {
		return s.Subscriber == me && s.Channel == channel.ID
	})).Return(nil).Once()
	events.On("Publish", mock.Anything, mock.MatchedBy(func(e model.Event) bool {
		return e.Type == model.EventSubscriptionCreated && e.TargetUserID == channel.ID.Hex()
	})).Return(nil).Once()

	got, err := uc.Toggle(context.Background(), me, channel.ID.Hex())
	require.NoError(t, err)
	assert.True(t, got.Subscribed)

	subs.On("Remove", mock.Anything, me, channel.ID).Return(true, nil).Once()
	got, err = uc.Toggle(context.Background(), me, channel.ID.Hex())
	require.NoError(t, err)
	assert.False(t, got.Subscribed)

	subs.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSubscriptionUsecase_ToggleSelf(t *testing.T) {
	users := new(MockUserRepository)
	uc := usecase.NewSubscriptionUsecase(new(MockSubscriptionRepository), users, nil)
	me := model.User{ID: bson.NewObjectID()}
	users.On("GetByID", mock.Anything, me.ID).Return(me, nil).Once()

	_, err := uc.Toggle(context.Background(), me.ID, me.ID.Hex())
	assert.Equal(t, http.StatusBadRequest, apperror.StatusOf(err))
}

func TestSubscriptionUsecase_Subscribers(t *testing.T) {
	subs := new(MockSubscriptionRepository)
	users := new(MockUserRepository)
	uc := usecase.NewSubscriptionUsecase(subs, users, nil)
	missing := bson.NewObjectID()
	users.On("GetByID", mock.Anything, missing).Return(model.User{}, repository.ErrNotFound).Once()

	_, err := uc.Subscribers(context.Background(), missing.Hex())
	assert.Equal(t, http.StatusNotFound, apperror.StatusOf(err))

	channel := model.User{ID: bson.NewObjectID()}
	users.On("GetByID", mock.Anything, channel.ID).Return(channel, nil).Once()
	subs.On("Subscribers", mock.Anything, channel.ID).Return([]model.UserSummary{{UserName: "fan"}}, nil).Once()

	fans, err := uc.Subscribers(context.Background(), channel.ID.Hex())
	require.NoError(t, err)
	require.Len(t, fans, 1)
	assert.Equal(t, "fan", fans[0].UserName)
}
