package controller

import (
	helper "aicommunity_backend/internals/helpers"
	"aicommunity_backend/internals/helpers/storage"

	"github.com/gofiber/fiber/v2"
)

// MediaController serves ad-hoc uploads for the dashboard (images for
// post bodies, PDFs, slide decks). The caller gets back a public URL.
type MediaController struct {
	Blobs storage.BlobService
}

func NewMediaController(blobs storage.BlobService) *MediaController {
	return &MediaController{Blobs: blobs}
}

// Upload handles POST /api/a/media. Images are re-encoded to WebP,
// everything else is stored as-is.
func (ctrl *MediaController) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Multipart form required")
	}
	fh := storage.GetImageFile(form)
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file sent (use the 'file' field)")
	}

	var url string
	if storage.IsImageFilename(fh.Filename) {
		url, err = ctrl.Blobs.UploadImage(c.UserContext(), "media", fh)
	} else {
		url, err = ctrl.Blobs.UploadAny(c.UserContext(), "media", fh)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Upload failed: "+err.Error())
	}

	return helper.JsonCreated(c, "File uploaded", fiber.Map{"url": url})
}

// Delete handles DELETE /api/a/media. Body: {"url": "..."}.
func (ctrl *MediaController) Delete(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "url is required")
	}
	if err := ctrl.Blobs.DeleteByPublicURL(c.UserContext(), req.URL); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "File not found or not deletable")
	}
	return helper.JsonDeleted(c, "File deleted", fiber.Map{"url": req.URL})
}
