package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/test"
	. "github.com/baspana/backend/internal/usecase"
)

func TestReviewPostValidatesRating(t *testing.T) {
	reviews := &test.ReviewRepositoryStub{}
	complexes := &test.ComplexRepositoryStub{Complexes: []model.ResidentialComplex{{ID: 1}}}
	uc := NewReviewUseCase(reviews, complexes)

	for _, rating := range []int{0, 6, -1} {
		_, err := uc.Post(context.Background(), repository.NewReview{ComplexID: 1, Rating: rating})
		if !errors.Is(err, domainErrors.ErrInvalidRating) {
			t.Fatalf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
	if len(reviews.Created) != 0 {
		t.Fatal("repository reached on invalid rating")
	}
}

func TestReviewPostRequiresExistingComplex(t *testing.T) {
	uc := NewReviewUseCase(&test.ReviewRepositoryStub{}, &test.ComplexRepositoryStub{})

	_, err := uc.Post(context.Background(), repository.NewReview{ComplexID: 99, Rating: 4})
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReviewPostStoresReview(t *testing.T) {
	reviews := &test.ReviewRepositoryStub{}
	complexes := &test.ComplexRepositoryStub{Complexes: []model.ResidentialComplex{{ID: 1}}}
	uc := NewReviewUseCase(reviews, complexes)

	review, err := uc.Post(context.Background(), repository.NewReview{ComplexID: 1, Rating: 5, Comment: "good"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if review.Rating != 5 {
		t.Fatalf("rating = %d, want 5", review.Rating)
	}
}

func TestFavoriteAddRejectsUnknownKind(t *testing.T) {
	uc := NewFavoriteUseCase(&test.FavoriteRepositoryStub{})

	if _, err := uc.Add(context.Background(), 1, 2, "Garage"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFavoriteAdd(t *testing.T) {
	uc := NewFavoriteUseCase(&test.FavoriteRepositoryStub{})

	fav, err := uc.Add(context.Background(), 1, 2, model.ObjectKindComplex)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if fav.UserID != 1 || fav.ObjectID != 2 {
		t.Fatalf("unexpected favorite: %+v", fav)
	}
}

func TestPromotionValidation(t *testing.T) {
	uc := NewPromotionUseCase(&test.PromotionRepositoryStub{})

	promo := &model.Promotion{Title: "Summer", DiscountPercentage: decimal.NewFromInt(150)}
	if _, err := uc.Create(context.Background(), promo); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("oversized discount err = %v, want ErrInvalidAmount", err)
	}

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	promo = &model.Promotion{
		Title:              "Summer",
		DiscountPercentage: decimal.NewFromInt(10),
		StartDate:          start,
		EndDate:            start.Add(-time.Hour),
	}
	if _, err := uc.Create(context.Background(), promo); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("inverted dates err = %v, want ErrInvalidAmount", err)
	}
}

func TestPromotionCreate(t *testing.T) {
	uc := NewPromotionUseCase(&test.PromotionRepositoryStub{})

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	promo, err := uc.Create(context.Background(), &model.Promotion{
		Title:              "Summer",
		DiscountPercentage: decimal.NewFromInt(10),
		StartDate:          start,
		EndDate:            start.AddDate(0, 1, 0),
		IsActive:           true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if promo.ID == 0 {
		t.Fatal("expected assigned id")
	}
}
