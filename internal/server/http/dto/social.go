package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
)

// ReviewRequest describes a review payload.
type ReviewRequest struct {
	ComplexID  int64  `json:"complex_id"`
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ReviewResponse describes one review.
type ReviewResponse struct {
	ID         int64     `json:"id"`
	ComplexID  int64     `json:"complex_id"`
	UserID     *int64    `json:"user_id,omitempty"`
	AuthorName string    `json:"author_name"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteRequest describes a favorite payload.
type FavoriteRequest struct {
	ObjectID   int64  `json:"object_id"`
	ObjectKind string `json:"object_kind"`
}

// FavoriteResponse describes one saved object.
type FavoriteResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ObjectID   int64     `json:"object_id"`
	ObjectKind string    `json:"object_kind"`
	CreatedAt  time.Time `json:"created_at"`
}

// PromotionRequest describes a promotion create/update payload.
type PromotionRequest struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	ImageURL           string          `json:"image_url"`
	ComplexID          *int64          `json:"complex_id"`
	IsActive           bool            `json:"is_active"`
}

// PromotionResponse describes one promotion.
type PromotionResponse struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	PromotionRequest
}

// ImageResponse describes hosted-image metadata.
type ImageResponse struct {
	ID         int64     `json:"id"`
	ObjectID   int64     `json:"object_id"`
	ObjectKind string    `json:"object_kind"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// NewReviewResponse maps a domain review to its wire form.
func NewReviewResponse(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ComplexID:  r.ComplexID,
		UserID:     r.UserID,
		AuthorName: r.AuthorName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// NewFavoriteResponse maps a domain favorite to its wire form.
func NewFavoriteResponse(f *model.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		ObjectID:   f.ObjectID,
		ObjectKind: string(f.ObjectKind),
		CreatedAt:  f.CreatedAt,
	}
}

// ToPromotion converts the payload into a domain promotion.
func (r PromotionRequest) ToPromotion(id int64) *model.Promotion {
	return &model.Promotion{
		ID:                 id,
		Title:              r.Title,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		ImageURL:           r.ImageURL,
		ComplexID:          r.ComplexID,
		IsActive:           r.IsActive,
	}
}

// NewPromotionResponse maps a domain promotion to its wire form.
func NewPromotionResponse(p *model.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		PromotionRequest: PromotionRequest{
			Title:              p.Title,
			Description:        p.Description,
			DiscountPercentage: p.DiscountPercentage,
			StartDate:          p.StartDate,
			EndDate:            p.EndDate,
			ImageURL:           p.ImageURL,
			ComplexID:          p.ComplexID,
			IsActive:           p.IsActive,
		},
	}
}

// NewImageResponse maps domain image metadata to its wire form.
func NewImageResponse(img *model.Image) ImageResponse {
	return ImageResponse{
		ID:         img.ID,
		ObjectID:   img.ObjectID,
		ObjectKind: string(img.ObjectKind),
		URL:        img.URL,
		UploadedAt: img.UploadedAt,
	}
}
