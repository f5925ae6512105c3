package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOSSKeyURLRoundTrip(t *testing.T) {
	s := &OSSBlobService{
		bucketName: "community-assets",
		endpoint:   "oss-ap-southeast-1.aliyuncs.com",
		prefix:     "uploads",
	}

	key := s.objectKey("events", "poster.PNG")
	assert.True(t, strings.HasPrefix(key, "uploads/events/"), "key %q", key)
	assert.True(t, strings.HasSuffix(key, ".png"), "key %q", key)

	url := s.publicURL(key)
	assert.Equal(t, "https://community-assets.oss-ap-southeast-1.aliyuncs.com/"+key, url)

	back, ok := s.keyFromPublicURL(url)
	assert.True(t, ok)
	assert.Equal(t, key, back)

	_, ok = s.keyFromPublicURL("https://other-bucket.oss-ap-southeast-1.aliyuncs.com/uploads/x.png")
	assert.False(t, ok)
}

func TestLocalRelPathAndURL(t *testing.T) {
	s := &LocalBlobService{baseDir: t.TempDir(), prefix: "uploads"}

	rel := s.relPath("sponsors", "logo.svg")
	assert.True(t, strings.HasPrefix(rel, "uploads/sponsors/"), "rel %q", rel)
	assert.True(t, strings.HasSuffix(rel, ".svg"), "rel %q", rel)
	assert.Equal(t, "/uploads/"+rel, s.publicURL(rel))
}

func TestLocalDeleteRejectsEscapes(t *testing.T) {
	s := &LocalBlobService{baseDir: t.TempDir(), prefix: "uploads"}

	err := s.DeleteByPublicURL(context.Background(), "/uploads/../etc/passwd")
	assert.Error(t, err)

	err = s.DeleteByPublicURL(context.Background(), "/elsewhere/file.png")
	assert.Error(t, err)
}

func TestIsImageFilename(t *testing.T) {
	assert.True(t, IsImageFilename("a.jpg"))
	assert.True(t, IsImageFilename("b.PNG"))
	assert.True(t, IsImageFilename("c.webp"))
	assert.False(t, IsImageFilename("d.pdf"))
	assert.False(t, IsImageFilename("noext"))
}
