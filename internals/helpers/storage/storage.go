// Package storage is the upload facade used by controllers. Records only
// ever hold the returned public URL as a plain string.
package storage

import (
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

type BlobService interface {
	// UploadImage re-encodes the image to WebP before storing.
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	// UploadAny stores the file as-is.
	UploadAny(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// NewBlobServiceFromEnv picks the backend: Aliyun OSS when OSS_* is
// configured, local disk otherwise.
func NewBlobServiceFromEnv(prefix string) (BlobService, error) {
	if strings.TrimSpace(os.Getenv("OSS_ENDPOINT")) != "" {
		return NewOSSBlobServiceFromEnv(prefix)
	}
	return NewLocalBlobService(prefix)
}

// GetImageFile pulls a multipart image from the common field names used by
// the dashboard forms. Returns nil when no file was sent.
func GetImageFile(form *multipart.Form) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, field := range []string{"image", "thumbnail", "file", "logo", "cover"} {
		if fhs := form.File[field]; len(fhs) > 0 && fhs[0] != nil {
			return fhs[0]
		}
	}
	return nil
}

var imageExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".webp": {}, ".gif": {},
}

func IsImageFilename(name string) bool {
	_, ok := imageExts[strings.ToLower(filepath.Ext(name))]
	return ok
}
