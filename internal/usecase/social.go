package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

// ReviewUseCase manages complex reviews.
type ReviewUseCase struct {
	reviews   repository.ReviewRepository
	complexes repository.ComplexRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, complexes repository.ComplexRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, complexes: complexes}
}

// Post stores a review against an existing complex. Rating is 1 to 5.
func (u *ReviewUseCase) Post(ctx context.Context, review repository.NewReview) (*model.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domainErrors.ErrInvalidRating
	}
	if _, err := u.complexes.GetByID(ctx, review.ComplexID); err != nil {
		return nil, err
	}
	return u.reviews.Create(ctx, review)
}

// ListByComplex returns reviews for one complex, newest first.
func (u *ReviewUseCase) ListByComplex(ctx context.Context, complexID int64) ([]model.Review, error) {
	return u.reviews.ListByComplex(ctx, complexID)
}

// Delete removes a review.
func (u *ReviewUseCase) Delete(ctx context.Context, id int64) error {
	return u.reviews.Delete(ctx, id)
}

// FavoriteUseCase manages per-user saved catalog objects.
type FavoriteUseCase struct {
	favorites repository.FavoriteRepository
}

// NewFavoriteUseCase constructs FavoriteUseCase.
func NewFavoriteUseCase(favorites repository.FavoriteRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favorites: favorites}
}

// Add saves one catalog object for a user.
func (u *FavoriteUseCase) Add(ctx context.Context, userID, objectID int64, kind model.ObjectKind) (*model.Favorite, error) {
	if !validObjectKind(kind) {
		return nil, domainErrors.ErrNotFound
	}
	return u.favorites.Add(ctx, userID, objectID, kind)
}

// ListByUser returns everything a user has saved.
func (u *FavoriteUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	return u.favorites.ListByUser(ctx, userID)
}

// Remove deletes one saved object. The user id scopes the delete so one user
// cannot drop another's favorites.
func (u *FavoriteUseCase) Remove(ctx context.Context, userID, favoriteID int64) error {
	return u.favorites.Remove(ctx, userID, favoriteID)
}

// PromotionUseCase manages discount campaigns.
type PromotionUseCase struct {
	promotions repository.PromotionRepository
}

// NewPromotionUseCase constructs PromotionUseCase.
func NewPromotionUseCase(promotions repository.PromotionRepository) *PromotionUseCase {
	return &PromotionUseCase{promotions: promotions}
}

// Create stores a new promotion.
func (u *PromotionUseCase) Create(ctx context.Context, promo *model.Promotion) (*model.Promotion, error) {
	if err := validatePromotion(promo); err != nil {
		return nil, err
	}
	return u.promotions.Create(ctx, promo)
}

// Get fetches one promotion by identifier.
func (u *PromotionUseCase) Get(ctx context.Context, id int64) (*model.Promotion, error) {
	return u.promotions.GetByID(ctx, id)
}

// ListActive returns promotions that are active and within their date range.
func (u *PromotionUseCase) ListActive(ctx context.Context) ([]model.Promotion, error) {
	return u.promotions.ListActive(ctx)
}

// Update replaces a stored promotion row.
func (u *PromotionUseCase) Update(ctx context.Context, promo *model.Promotion) error {
	if err := validatePromotion(promo); err != nil {
		return err
	}
	return u.promotions.Update(ctx, promo)
}

// Delete removes a promotion.
func (u *PromotionUseCase) Delete(ctx context.Context, id int64) error {
	return u.promotions.Delete(ctx, id)
}

var maxDiscount = decimal.NewFromInt(100)

func validatePromotion(promo *model.Promotion) error {
	if promo.DiscountPercentage.IsNegative() || promo.DiscountPercentage.GreaterThan(maxDiscount) {
		return domainErrors.ErrInvalidAmount
	}
	if !promo.EndDate.IsZero() && promo.EndDate.Before(promo.StartDate) {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}

func validObjectKind(kind model.ObjectKind) bool {
	switch kind {
	case model.ObjectKindApartment, model.ObjectKindCommercial, model.ObjectKindBuilding, model.ObjectKindComplex:
		return true
	}
	return false
}
