package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUploader struct {
	mock.Mock
	body []byte
}

func (m *MockUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	m.body, _ = io.ReadAll(input.Body)
	args := m.Called(aws.ToString(input.Bucket), aws.ToString(input.Key), aws.ToString(input.ContentType))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manager.UploadOutput), args.Error(1)
}

type MockObjectAPI struct {
	mock.Mock
}

func (m *MockObjectAPI) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func TestS3Storage_Upload(t *testing.T) {
	local := filepath.Join(t.TempDir(), "Avatar.PNG")
	require.NoError(t, os.WriteFile(local, []byte("png-bytes"), 0o600))

	uploader := new(MockUploader)
	uploader.On("Upload", "media", "avatars/fixed-id.png", "image/png").Return(&manager.UploadOutput{}, nil).Once()

	store := newS3Storage(new(MockObjectAPI), uploader, "media", "https://cdn.example.com")
	store.newID = func() string { return "fixed-id" }

	asset, err := store.Upload(context.Background(), local, "/avatars/")
	require.NoError(t, err)

	assert.Equal(t, "avatars/fixed-id.png", asset.PublicID)
	assert.Equal(t, "https://cdn.example.com/avatars/fixed-id.png", asset.URL)
	assert.Equal(t, "png-bytes", string(uploader.body))
	uploader.AssertExpectations(t)
}

func TestS3Storage_UploadErrors(t *testing.T) {
	store := newS3Storage(new(MockObjectAPI), new(MockUploader), "media", "https://cdn.example.com")

	_, err := store.Upload(context.Background(), "", "avatars")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = store.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.png"), "avatars")
	assert.Error(t, err)

	local := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(local, []byte("mp4"), 0o600))
	failing := new(MockUploader)
	failing.On("Upload", "media", mock.Anything, "video/mp4").Return(nil, assert.AnError).Once()
	store.uploader = failing

	_, err = store.Upload(context.Background(), local, "videos")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestS3Storage_Delete(t *testing.T) {
	objects := new(MockObjectAPI)
	objects.On("DeleteObject", "media", "avatars/old.png").Return(nil).Once()
	store := newS3Storage(objects, new(MockUploader), "media", "")

	require.NoError(t, store.Delete(context.Background(), "avatars/old.png"))
	require.NoError(t, store.Delete(context.Background(), ""))
	objects.AssertExpectations(t)
}
