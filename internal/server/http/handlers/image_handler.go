package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/server/http/dto"
)

const maxImageSize = 10 << 20

// ImageHandler processes hosted image endpoints.
type ImageHandler struct {
	facade ImageFacade
}

// NewImageHandler creates ImageHandler instance.
func NewImageHandler(facade ImageFacade) *ImageHandler {
	return &ImageHandler{facade: facade}
}

// Upload handles POST /api/manage/images. The multipart form carries the
// binary plus the target object reference.
func (h *ImageHandler) Upload(c *gin.Context) {
	objectID := int64(queryInt(c, "object_id", 0))
	kind := model.ObjectKind(c.Query("object_kind"))
	if objectID <= 0 || kind == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		c.Status(http.StatusRequestEntityTooLarge)
		return
	}

	img, err := h.facade.UploadImage(c.Request.Context(), objectID, kind, header.Filename, file)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewImageResponse(img))
}

// List handles GET /api/images.
func (h *ImageHandler) List(c *gin.Context) {
	objectID := int64(queryInt(c, "object_id", 0))
	kind := model.ObjectKind(c.Query("object_kind"))
	if objectID <= 0 || kind == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	images, err := h.facade.Images(c.Request.Context(), objectID, kind)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.ImageResponse, 0, len(images))
	for i := range images {
		items = append(items, dto.NewImageResponse(&images[i]))
	}
	c.JSON(http.StatusOK, items)
}

// Delete handles DELETE /api/manage/images/:id.
func (h *ImageHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteImage(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
