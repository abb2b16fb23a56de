package repository

import (
	"context"

	"github.com/baspana/backend/internal/domain/model"
)

// NewReview carries the fields persisted when posting a review.
type NewReview struct {
	ComplexID  int64
	UserID     *int64
	AuthorName string
	Rating     int
	Comment    string
}

type ReviewRepository interface {
	Create(ctx context.Context, review NewReview) (*model.Review, error)
	ListByComplex(ctx context.Context, complexID int64) ([]model.Review, error)
	Delete(ctx context.Context, id int64) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, objectID int64, kind model.ObjectKind) (*model.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error)
	Remove(ctx context.Context, userID, favoriteID int64) error
}

type PromotionRepository interface {
	Create(ctx context.Context, promo *model.Promotion) (*model.Promotion, error)
	GetByID(ctx context.Context, id int64) (*model.Promotion, error)
	ListActive(ctx context.Context) ([]model.Promotion, error)
	Update(ctx context.Context, promo *model.Promotion) error
	Delete(ctx context.Context, id int64) error
}

// NewImage carries hosted-image metadata persisted after an upload.
type NewImage struct {
	ObjectID   int64
	ObjectKind model.ObjectKind
	URL        string
	RemoteID   string
}

type ImageRepository interface {
	Create(ctx context.Context, image NewImage) (*model.Image, error)
	GetByID(ctx context.Context, id int64) (*model.Image, error)
	ListByObject(ctx context.Context, objectID int64, kind model.ObjectKind) ([]model.Image, error)
	Delete(ctx context.Context, id int64) error
}
