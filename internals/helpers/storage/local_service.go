package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalBlobService stores blobs under UPLOADS_DIR and serves them from
// the /uploads/ URL path.
type LocalBlobService struct {
	baseDir string
	prefix  string
}

func NewLocalBlobService(prefix string) (*LocalBlobService, error) {
	baseDir := strings.TrimSpace(os.Getenv("UPLOADS_DIR"))
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, err
	}
	return &LocalBlobService{
		baseDir: baseDir,
		prefix:  strings.Trim(prefix, "/"),
	}, nil
}

func (s *LocalBlobService) relPath(dir, filename string) string {
	name := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString()[:8], strings.ToLower(path.Ext(filename)))
	return path.Join(s.prefix, strings.Trim(dir, "/"), name)
}

func (s *LocalBlobService) publicURL(rel string) string {
	return "/uploads/" + rel
}

func (s *LocalBlobService) write(rel string, data []byte) error {
	full := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (s *LocalBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
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

	rel := s.relPath(dir, strings.TrimSuffix(fh.Filename, path.Ext(fh.Filename))+".webp")
	if err := s.write(rel, data); err != nil {
		return "", err
	}
	return s.publicURL(rel), nil
}

func (s *LocalBlobService) UploadAny(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
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

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	rel := s.relPath(dir, fh.Filename)
	if err := s.write(rel, data); err != nil {
		return "", err
	}
	return s.publicURL(rel), nil
}

func (s *LocalBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	rel, ok := strings.CutPrefix(publicURL, "/uploads/")
	if !ok {
		return errors.New("URL is not a local upload")
	}
	// refuse path escapes
	clean := path.Clean(rel)
	if strings.HasPrefix(clean, "..") {
		return errors.New("invalid upload path")
	}
	return os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(clean)))
}
