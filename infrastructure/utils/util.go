package utils

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"vidtube/infrastructure/logger"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// RemoveFiles deletes local temp files, ignoring empty and missing paths.
func RemoveFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.GetLogger().WithField("error", err).WithField("path", p).Warn("Error while removing temp file")
		}
	}
}
