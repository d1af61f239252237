package api

import (
	"errors"
	"io"
	"net/http"

	resdto "dealhub/internal/handler/dto/response"
	"dealhub/internal/handler/httperr"
	"dealhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// sniffLen is how much of the body http.DetectContentType looks at.
const sniffLen = 512

type UploadHandler struct {
	cmds commands.ImageCommands
}

func NewUploadHandler(cmds commands.ImageCommands) *UploadHandler {
	return &UploadHandler{cmds: cmds}
}

// @Summary Upload a deal image
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image (jpeg, png, webp or gif)"
// @Success 201 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/uploads/images [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errMissingFile, err), "Missing required field: file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable upload", nil)
		return
	}
	defer f.Close()

	// trust the bytes, not the client's header
	head := make([]byte, sniffLen)
	n, _ := f.Read(head)
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Unreadable upload", nil)
		return
	}

	uploaded, err := h.cmds.Upload(c.Request.Context(), commands.ImageUpload{
		Filename:    fh.Filename,
		ContentType: http.DetectContentType(head[:n]),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		if errors.Is(err, commands.ErrStorageDisabled) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Image storage is not configured", nil)
			return
		}
		abortWithUseCaseError(c, err, "Image upload failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.OK(resdto.UploadResponse{Key: uploaded.Key, URL: uploaded.URL}))
}
