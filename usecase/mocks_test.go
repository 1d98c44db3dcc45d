package usecase_test

import (
	"context"

	"vidtube/domain/model"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDWithSecrets(ctx context.Context, id bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmailOrUserName(ctx context.Context, email, userName string) (bool, error) {
	args := m.Called(ctx, email, userName)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	args := m.Called(ctx, id, token)
	return args.Error(0)
}

func (m *MockUserRepository) UnsetRefreshToken(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateFullName(ctx context.Context, id bson.ObjectID, fullName string) (model.User, error) {
	args := m.Called(ctx, id, fullName)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, avatar model.Asset) (model.User, error) {
	args := m.Called(ctx, id, avatar)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, cover model.Asset) (model.User, error) {
	args := m.Called(ctx, id, cover)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) AddToWatchHistory(ctx context.Context, id, videoID bson.ObjectID) error {
	args := m.Called(ctx, id, videoID)
	return args.Error(0)
}

func (m *MockUserRepository) GetChannelProfile(ctx context.Context, userName string, viewerID bson.ObjectID) (model.ChannelProfile, error) {
	args := m.Called(ctx, userName, viewerID)
	return args.Get(0).(model.ChannelProfile), args.Error(1)
}

func (m *MockUserRepository) GetWatchHistory(ctx context.Context, id bson.ObjectID) ([]model.VideoDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]model.VideoDetail), args.Error(1)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetDetail(ctx context.Context, id bson.ObjectID) (model.VideoDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.VideoDetail), args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, query model.VideoQuery) (model.Page[model.VideoDetail], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(model.Page[model.VideoDetail]), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id bson.ObjectID, update model.VideoUpdate) (model.Video, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error) {
	args := m.Called(ctx, id, published)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, videoID bson.ObjectID, page, limit int) (model.Page[model.CommentDetail], error) {
	args := m.Called(ctx, videoID, page, limit)
	return args.Get(0).(model.Page[model.CommentDetail]), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommunityPostRepository struct {
	mock.Mock
}

func (m *MockCommunityPostRepository) Create(ctx context.Context, post *model.CommunityPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockCommunityPostRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.CommunityPost, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CommunityPost), args.Error(1)
}

func (m *MockCommunityPostRepository) ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]model.PostDetail, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.PostDetail), args.Error(1)
}

func (m *MockCommunityPostRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.CommunityPost, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.CommunityPost), args.Error(1)
}

func (m *MockCommunityPostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Remove(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (bool, error) {
	args := m.Called(ctx, target, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Find(ctx context.Context, target model.LikeTarget, userID bson.ObjectID) (model.Like, error) {
	args := m.Called(ctx, target, userID)
	return args.Get(0).(model.Like), args.Error(1)
}

func (m *MockLikeRepository) LikedVideos(ctx context.Context, userID bson.ObjectID) ([]model.LikedVideo, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.LikedVideo), args.Error(1)
}

func (m *MockLikeRepository) Summary(ctx context.Context, target model.LikeTarget) (model.LikeSummary, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(model.LikeSummary), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Remove(ctx context.Context, subscriberID, channelID bson.ObjectID) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) Subscribers(ctx context.Context, channelID bson.ObjectID) ([]model.UserSummary, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).([]model.UserSummary), args.Error(1)
}

func (m *MockSubscriptionRepository) SubscribedChannels(ctx context.Context, subscriberID bson.ObjectID) ([]model.UserSummary, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).([]model.UserSummary), args.Error(1)
}

type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, localPath, folder string) (model.Asset, error) {
	args := m.Called(ctx, localPath, folder)
	return args.Get(0).(model.Asset), args.Error(1)
}

func (m *MockMediaStorage) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
