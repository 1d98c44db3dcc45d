package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"vidtube/domain/apperror"
	"vidtube/infrastructure/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploads saves multipart files under dir and removes them once the
// request is done with them.
type uploads struct {
	dir   string
	paths []string
}

func newUploads(dir string) *uploads {
	return &uploads{dir: dir}
}

// save stores the file sent as field and returns its local path, or "" when
// the request carries no such file.
func (u *uploads) save(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", apperror.BadRequest("Invalid " + field + " upload")
	}
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", apperror.Internal(err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	dst := filepath.Join(u.dir, uuid.NewString()+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", apperror.Internal(err)
	}
	u.paths = append(u.paths, dst)
	return dst, nil
}

func (u *uploads) cleanup() {
	utils.RemoveFiles(u.paths...)
}
