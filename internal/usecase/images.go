package usecase

import (
	"context"
	"io"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

// HostedImage is the external host's answer to an upload.
type HostedImage struct {
	URL      string
	RemoteID string
}

// ImageHost is the external service storing image binaries.
type ImageHost interface {
	Upload(ctx context.Context, filename string, body io.Reader) (*HostedImage, error)
	Delete(ctx context.Context, remoteID string) error
}

// ImageUseCase attaches hosted images to catalog objects. Binaries live on the
// external host; only URL and remote id are stored locally.
type ImageUseCase struct {
	images repository.ImageRepository
	host   ImageHost
}

// NewImageUseCase constructs ImageUseCase.
func NewImageUseCase(images repository.ImageRepository, host ImageHost) *ImageUseCase {
	return &ImageUseCase{images: images, host: host}
}

// Upload pushes the binary to the host and records its metadata.
func (u *ImageUseCase) Upload(ctx context.Context, objectID int64, kind model.ObjectKind, filename string, body io.Reader) (*model.Image, error) {
	hosted, err := u.host.Upload(ctx, filename, body)
	if err != nil {
		return nil, err
	}
	return u.images.Create(ctx, repository.NewImage{
		ObjectID:   objectID,
		ObjectKind: kind,
		URL:        hosted.URL,
		RemoteID:   hosted.RemoteID,
	})
}

// ListByObject returns images attached to one catalog object.
func (u *ImageUseCase) ListByObject(ctx context.Context, objectID int64, kind model.ObjectKind) ([]model.Image, error) {
	return u.images.ListByObject(ctx, objectID, kind)
}

// Delete removes the local row and asks the host to drop the binary. A host
// failure after the row is gone is only logged by the caller; the ledger of
// record is the database.
func (u *ImageUseCase) Delete(ctx context.Context, id int64) error {
	img, err := u.images.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.images.Delete(ctx, id); err != nil {
		return err
	}
	if img.RemoteID != "" {
		return u.host.Delete(ctx, img.RemoteID)
	}
	return nil
}
