package handlers

import (
	"context"
	"io"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	pkgAuth "github.com/baspana/backend/internal/pkg/auth"
	"github.com/baspana/backend/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// BookingFacade encapsulates order operations exposed via HTTP.
type BookingFacade interface {
	CreateOrder(ctx context.Context, in repository.NewOrder) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error)
	Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// WalletFacade provides wallet and ledger operations.
type WalletFacade interface {
	WalletByUser(ctx context.Context, userID int64) (*model.Wallet, error)
	ApplyTransaction(ctx context.Context, req repository.TransactionRequest) (*model.Transaction, error)
	WalletBalance(ctx context.Context, walletID int64) (*model.WalletBalance, error)
	Transactions(ctx context.Context, walletID int64, txType *model.TransactionType, limit, offset int) ([]model.Transaction, int, error)
	SetWalletActive(ctx context.Context, walletID int64, active bool) error
}

// CatalogFacade provides catalog read and mutation operations.
type CatalogFacade interface {
	CreateComplex(ctx context.Context, complex *model.ResidentialComplex) (*model.ResidentialComplex, error)
	Complex(ctx context.Context, id int64) (*model.ResidentialComplex, error)
	Complexes(ctx context.Context, filter repository.ComplexFilter) ([]model.ResidentialComplex, int, error)
	UpdateComplex(ctx context.Context, complex *model.ResidentialComplex) error
	DeleteComplex(ctx context.Context, id int64) error

	CreateBuilding(ctx context.Context, building *model.Building) (*model.Building, error)
	Building(ctx context.Context, id int64) (*model.Building, error)
	Buildings(ctx context.Context, complexID int64) ([]model.Building, error)
	UpdateBuilding(ctx context.Context, building *model.Building) error
	DeleteBuilding(ctx context.Context, id int64) error

	CreateApartment(ctx context.Context, apartment *model.Apartment) (*model.Apartment, error)
	Apartment(ctx context.Context, id int64) (*model.Apartment, error)
	Apartments(ctx context.Context, filter repository.ApartmentFilter) ([]model.Apartment, int, error)
	UpdateApartment(ctx context.Context, apartment *model.Apartment) error
	DeleteApartment(ctx context.Context, id int64) error

	CreateCommercialUnit(ctx context.Context, unit *model.CommercialUnit) (*model.CommercialUnit, error)
	CommercialUnit(ctx context.Context, id int64) (*model.CommercialUnit, error)
	CommercialUnits(ctx context.Context, filter repository.CommercialFilter) ([]model.CommercialUnit, int, error)
	UpdateCommercialUnit(ctx context.Context, unit *model.CommercialUnit) error
	DeleteCommercialUnit(ctx context.Context, id int64) error
}

// ReviewFacade provides review operations.
type ReviewFacade interface {
	PostReview(ctx context.Context, review repository.NewReview) (*model.Review, error)
	Reviews(ctx context.Context, complexID int64) ([]model.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// FavoriteFacade provides favorite operations.
type FavoriteFacade interface {
	AddFavorite(ctx context.Context, userID, objectID int64, kind model.ObjectKind) (*model.Favorite, error)
	Favorites(ctx context.Context, userID int64) ([]model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID int64) error
}

// PromotionFacade provides promotion operations.
type PromotionFacade interface {
	CreatePromotion(ctx context.Context, promo *model.Promotion) (*model.Promotion, error)
	Promotion(ctx context.Context, id int64) (*model.Promotion, error)
	ActivePromotions(ctx context.Context) ([]model.Promotion, error)
	UpdatePromotion(ctx context.Context, promo *model.Promotion) error
	DeletePromotion(ctx context.Context, id int64) error
}

// ImageFacade provides hosted image operations.
type ImageFacade interface {
	UploadImage(ctx context.Context, objectID int64, kind model.ObjectKind, filename string, body io.Reader) (*model.Image, error)
	Images(ctx context.Context, objectID int64, kind model.ObjectKind) ([]model.Image, error)
	DeleteImage(ctx context.Context, id int64) error
}

// BaspanaFacade aggregates the full set of operations used across handlers.
type BaspanaFacade interface {
	AuthFacade
	BookingFacade
	WalletFacade
	CatalogFacade
	ReviewFacade
	FavoriteFacade
	PromotionFacade
	ImageFacade
}
