package commands

import (
	"context"
	"io"
	"path"
	"strings"

	"dealhub/internal/pkg/errs"

	"github.com/google/uuid"
)

const imageKeyPrefix = "deals/"

var (
	ErrStorageDisabled      = errs.New("image storage is not configured")
	ErrUnsupportedImageType = errs.Mark(errs.New("image must be jpeg, png, webp or gif"), errs.ErrDomainValidation)
	ErrImageTooLarge        = errs.Mark(errs.New("image exceeds the upload size limit"), errs.ErrDomainValidation)
	ErrEmptyImage           = errs.Mark(errs.New("image file is empty"), errs.ErrDomainValidation)
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type ImageStore interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type UploadedImage struct {
	Key string
	URL string
}

type ImageCommands interface {
	Upload(ctx context.Context, in ImageUpload) (*UploadedImage, error)
}

type imageUseCaseImpl struct {
	store    ImageStore
	maxBytes int64
}

// NewImageUseCase accepts a nil store; uploads then fail with ErrStorageDisabled.
func NewImageUseCase(store ImageStore, maxBytes int64) ImageCommands {
	return &imageUseCaseImpl{store: store, maxBytes: maxBytes}
}

func (uc *imageUseCaseImpl) Upload(ctx context.Context, in ImageUpload) (*UploadedImage, error) {
	if uc.store == nil {
		return nil, ErrStorageDisabled
	}
	if in.Size <= 0 {
		return nil, ErrEmptyImage
	}
	if uc.maxBytes > 0 && in.Size > uc.maxBytes {
		return nil, ErrImageTooLarge
	}
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(in.ContentType, ";")[0]))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedImageType
	}
	// keep a recognised extension from the client, e.g. .jpeg
	if own := strings.ToLower(path.Ext(in.Filename)); own == ".jpeg" && ext == ".jpg" {
		ext = own
	}

	key := imageKeyPrefix + uuid.NewString() + ext
	url, err := uc.store.Put(ctx, key, in.Body, in.Size, contentType)
	if err != nil {
		return nil, errs.Wrap(err, "store image")
	}
	return &UploadedImage{Key: key, URL: url}, nil
}
