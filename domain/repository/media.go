package repository

import (
	"context"

	"vidtube/domain/model"
)

// IMediaStorage uploads local files to the object store under folder.
type IMediaStorage interface {
	Upload(ctx context.Context, localPath, folder string) (model.Asset, error)
	Delete(ctx context.Context, publicID string) error
}
