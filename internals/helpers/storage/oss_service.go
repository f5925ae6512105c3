package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

const maxUploadSize = int64(5 * 1024 * 1024)

// OSSBlobService stores blobs in an Aliyun OSS bucket.
type OSSBlobService struct {
	bucket     *oss.Bucket
	bucketName string
	endpoint   string
	prefix     string // e.g. "uploads/"
}

func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, errors.New("OSS env incomplete (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	return &OSSBlobService{
		bucket:     bucket,
		bucketName: bucketName,
		endpoint:   endpoint,
		prefix:     strings.TrimPrefix(prefix, "/"),
	}, nil
}

func (s *OSSBlobService) objectKey(dir, filename string) string {
	name := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString()[:8], strings.ToLower(path.Ext(filename)))
	return path.Join(s.prefix, strings.Trim(dir, "/"), name)
}

func (s *OSSBlobService) publicURL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, s.endpoint, key)
}

// keyFromPublicURL is the inverse of publicURL.
func (s *OSSBlobService) keyFromPublicURL(publicURL string) (string, bool) {
	base := fmt.Sprintf("https://%s.%s/", s.bucketName, s.endpoint)
	if !strings.HasPrefix(publicURL, base) {
		return "", false
	}
	return strings.TrimPrefix(publicURL, base), true
}

func (s *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", errors.New("file missing")
	}
	if fh.Size > maxUploadSize {
		return "", errors.New("file exceeds 5MB limit")
	}
	if !IsImageFilename(fh.Filename) {
		return "", errors.New("unsupported image type")
	}

	data, err := convertToWebP(fh)
	if err != nil {
		return "", err
	}

	key := s.objectKey(dir, strings.TrimSuffix(fh.Filename, path.Ext(fh.Filename))+".webp")
	if err := s.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType("image/webp")); err != nil {
		return "", err
	}
	return s.publicURL(key), nil
}

func (s *OSSBlobService) UploadAny(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", errors.New("file missing")
	}
	if fh.Size > maxUploadSize {
		return "", errors.New("file exceeds 5MB limit")
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := s.objectKey(dir, fh.Filename)
	if err := s.bucket.PutObject(key, f); err != nil {
		return "", err
	}
	return s.publicURL(key), nil
}

func (s *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, ok := s.keyFromPublicURL(publicURL)
	if !ok {
		return errors.New("URL does not belong to this bucket")
	}
	return s.bucket.DeleteObject(key)
}
