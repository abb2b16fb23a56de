package test

import (
	"context"
	"io"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	pkgAuth "github.com/baspana/backend/internal/pkg/auth"
	"github.com/baspana/backend/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterInput) (*model.User, string, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (pkgAuth.Claims, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.User{ID: 1, Email: in.Email, Role: model.RoleConsumer}, "token", nil
}

func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleConsumer}, "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return pkgAuth.Claims{UserID: 1, Role: string(model.RoleConsumer)}, nil
}

// BookingFacadeStub provides controllable behaviour for order endpoints.
type BookingFacadeStub struct {
	CreateOrderFn func(context.Context, repository.NewOrder) (*model.Order, error)
	OrderFn       func(context.Context, int64) (*model.Order, error)
	UpdateOrderFn func(context.Context, int64, model.OrderUpdate) (*model.Order, error)
	OrdersFn      func(context.Context, repository.OrderFilter) ([]model.Order, int, error)
	DeleteOrderFn func(context.Context, int64) error
}

func (s BookingFacadeStub) CreateOrder(ctx context.Context, in repository.NewOrder) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, in)
	}
	return &model.Order{ID: 1, UserID: in.UserID, ObjectID: in.ObjectID, ObjectKind: in.ObjectKind, Status: model.OrderStatusPending}, nil
}

func (s BookingFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, UserID: 1}, nil
}

func (s BookingFacadeStub) UpdateOrder(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, update)
	}
	return &model.Order{ID: id, UserID: 1}, nil
}

func (s BookingFacadeStub) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{{ID: 1, UserID: 1}}, 1, nil
}

func (s BookingFacadeStub) DeleteOrder(ctx context.Context, id int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

// WalletFacadeStub simulates wallet operations.
type WalletFacadeStub struct {
	WalletByUserFn    func(context.Context, int64) (*model.Wallet, error)
	ApplyFn           func(context.Context, repository.TransactionRequest) (*model.Transaction, error)
	BalanceFn         func(context.Context, int64) (*model.WalletBalance, error)
	TransactionsFn    func(context.Context, int64, *model.TransactionType, int, int) ([]model.Transaction, int, error)
	SetWalletActiveFn func(context.Context, int64, bool) error
}

func (s WalletFacadeStub) WalletByUser(ctx context.Context, userID int64) (*model.Wallet, error) {
	if s.WalletByUserFn != nil {
		return s.WalletByUserFn(ctx, userID)
	}
	return &model.Wallet{ID: 10, UserID: userID, IsActive: true}, nil
}

func (s WalletFacadeStub) ApplyTransaction(ctx context.Context, req repository.TransactionRequest) (*model.Transaction, error) {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, req)
	}
	return &model.Transaction{ID: 1, WalletID: req.WalletID, Type: req.Type, Amount: req.Amount}, nil
}

func (s WalletFacadeStub) WalletBalance(ctx context.Context, walletID int64) (*model.WalletBalance, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, walletID)
	}
	return &model.WalletBalance{WalletID: walletID, IsActive: true}, nil
}

func (s WalletFacadeStub) Transactions(ctx context.Context, walletID int64, txType *model.TransactionType, limit, offset int) ([]model.Transaction, int, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, walletID, txType, limit, offset)
	}
	return []model.Transaction{{ID: 1, WalletID: walletID}}, 1, nil
}

func (s WalletFacadeStub) SetWalletActive(ctx context.Context, walletID int64, active bool) error {
	if s.SetWalletActiveFn != nil {
		return s.SetWalletActiveFn(ctx, walletID, active)
	}
	return nil
}

// CatalogFacadeStub simulates catalog operations with repository stubs.
type CatalogFacadeStub struct {
	ComplexRepo    ComplexRepositoryStub
	BuildingRepo   BuildingRepositoryStub
	ApartmentRepo  ApartmentRepositoryStub
	CommercialRepo CommercialRepositoryStub
}

func (s *CatalogFacadeStub) CreateComplex(ctx context.Context, complex *model.ResidentialComplex) (*model.ResidentialComplex, error) {
	return s.ComplexRepo.Create(ctx, complex)
}

func (s *CatalogFacadeStub) Complex(ctx context.Context, id int64) (*model.ResidentialComplex, error) {
	return s.ComplexRepo.GetByID(ctx, id)
}

func (s *CatalogFacadeStub) Complexes(ctx context.Context, filter repository.ComplexFilter) ([]model.ResidentialComplex, int, error) {
	return s.ComplexRepo.List(ctx, filter)
}

func (s *CatalogFacadeStub) UpdateComplex(ctx context.Context, complex *model.ResidentialComplex) error {
	return s.ComplexRepo.Update(ctx, complex)
}

func (s *CatalogFacadeStub) DeleteComplex(ctx context.Context, id int64) error {
	return s.ComplexRepo.Delete(ctx, id)
}

func (s *CatalogFacadeStub) CreateBuilding(ctx context.Context, building *model.Building) (*model.Building, error) {
	return s.BuildingRepo.Create(ctx, building)
}

func (s *CatalogFacadeStub) Building(ctx context.Context, id int64) (*model.Building, error) {
	return s.BuildingRepo.GetByID(ctx, id)
}

func (s *CatalogFacadeStub) Buildings(ctx context.Context, complexID int64) ([]model.Building, error) {
	return s.BuildingRepo.ListByComplex(ctx, complexID)
}

func (s *CatalogFacadeStub) UpdateBuilding(ctx context.Context, building *model.Building) error {
	return s.BuildingRepo.Update(ctx, building)
}

func (s *CatalogFacadeStub) DeleteBuilding(ctx context.Context, id int64) error {
	return s.BuildingRepo.Delete(ctx, id)
}

func (s *CatalogFacadeStub) CreateApartment(ctx context.Context, apartment *model.Apartment) (*model.Apartment, error) {
	return s.ApartmentRepo.Create(ctx, apartment)
}

func (s *CatalogFacadeStub) Apartment(ctx context.Context, id int64) (*model.Apartment, error) {
	return s.ApartmentRepo.GetByID(ctx, id)
}

func (s *CatalogFacadeStub) Apartments(ctx context.Context, filter repository.ApartmentFilter) ([]model.Apartment, int, error) {
	return s.ApartmentRepo.List(ctx, filter)
}

func (s *CatalogFacadeStub) UpdateApartment(ctx context.Context, apartment *model.Apartment) error {
	return s.ApartmentRepo.Update(ctx, apartment)
}

func (s *CatalogFacadeStub) DeleteApartment(ctx context.Context, id int64) error {
	return s.ApartmentRepo.Delete(ctx, id)
}

func (s *CatalogFacadeStub) CreateCommercialUnit(ctx context.Context, unit *model.CommercialUnit) (*model.CommercialUnit, error) {
	return s.CommercialRepo.Create(ctx, unit)
}

func (s *CatalogFacadeStub) CommercialUnit(ctx context.Context, id int64) (*model.CommercialUnit, error) {
	return s.CommercialRepo.GetByID(ctx, id)
}

func (s *CatalogFacadeStub) CommercialUnits(ctx context.Context, filter repository.CommercialFilter) ([]model.CommercialUnit, int, error) {
	return s.CommercialRepo.List(ctx, filter)
}

func (s *CatalogFacadeStub) UpdateCommercialUnit(ctx context.Context, unit *model.CommercialUnit) error {
	return s.CommercialRepo.Update(ctx, unit)
}

func (s *CatalogFacadeStub) DeleteCommercialUnit(ctx context.Context, id int64) error {
	return s.CommercialRepo.Delete(ctx, id)
}

// ReviewFacadeStub simulates review operations.
type ReviewFacadeStub struct {
	PostReviewFn   func(context.Context, repository.NewReview) (*model.Review, error)
	ReviewsFn      func(context.Context, int64) ([]model.Review, error)
	DeleteReviewFn func(context.Context, int64) error
}

func (s ReviewFacadeStub) PostReview(ctx context.Context, review repository.NewReview) (*model.Review, error) {
	if s.PostReviewFn != nil {
		return s.PostReviewFn(ctx, review)
	}
	return &model.Review{ID: 1, ComplexID: review.ComplexID, Rating: review.Rating}, nil
}

func (s ReviewFacadeStub) Reviews(ctx context.Context, complexID int64) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx, complexID)
	}
	return []model.Review{{ID: 1, ComplexID: complexID, Rating: 5}}, nil
}

func (s ReviewFacadeStub) DeleteReview(ctx context.Context, id int64) error {
	if s.DeleteReviewFn != nil {
		return s.DeleteReviewFn(ctx, id)
	}
	return nil
}

// FavoriteFacadeStub simulates favorite operations.
type FavoriteFacadeStub struct {
	AddFavoriteFn    func(context.Context, int64, int64, model.ObjectKind) (*model.Favorite, error)
	FavoritesFn      func(context.Context, int64) ([]model.Favorite, error)
	RemoveFavoriteFn func(context.Context, int64, int64) error
}

func (s FavoriteFacadeStub) AddFavorite(ctx context.Context, userID, objectID int64, kind model.ObjectKind) (*model.Favorite, error) {
	if s.AddFavoriteFn != nil {
		return s.AddFavoriteFn(ctx, userID, objectID, kind)
	}
	return &model.Favorite{ID: 1, UserID: userID, ObjectID: objectID, ObjectKind: kind}, nil
}

func (s FavoriteFacadeStub) Favorites(ctx context.Context, userID int64) ([]model.Favorite, error) {
	if s.FavoritesFn != nil {
		return s.FavoritesFn(ctx, userID)
	}
	return []model.Favorite{{ID: 1, UserID: userID}}, nil
}

func (s FavoriteFacadeStub) RemoveFavorite(ctx context.Context, userID, favoriteID int64) error {
	if s.RemoveFavoriteFn != nil {
		return s.RemoveFavoriteFn(ctx, userID, favoriteID)
	}
	return nil
}

// PromotionFacadeStub simulates promotion operations.
type PromotionFacadeStub struct {
	CreatePromotionFn  func(context.Context, *model.Promotion) (*model.Promotion, error)
	PromotionFn        func(context.Context, int64) (*model.Promotion, error)
	ActivePromotionsFn func(context.Context) ([]model.Promotion, error)
	UpdatePromotionFn  func(context.Context, *model.Promotion) error
	DeletePromotionFn  func(context.Context, int64) error
}

func (s PromotionFacadeStub) CreatePromotion(ctx context.Context, promo *model.Promotion) (*model.Promotion, error) {
	if s.CreatePromotionFn != nil {
		return s.CreatePromotionFn(ctx, promo)
	}
	created := *promo
	created.ID = 1
	return &created, nil
}

func (s PromotionFacadeStub) Promotion(ctx context.Context, id int64) (*model.Promotion, error) {
	if s.PromotionFn != nil {
		return s.PromotionFn(ctx, id)
	}
	return &model.Promotion{ID: id}, nil
}

func (s PromotionFacadeStub) ActivePromotions(ctx context.Context) ([]model.Promotion, error) {
	if s.ActivePromotionsFn != nil {
		return s.ActivePromotionsFn(ctx)
	}
	return []model.Promotion{{ID: 1, IsActive: true}}, nil
}

func (s PromotionFacadeStub) UpdatePromotion(ctx context.Context, promo *model.Promotion) error {
	if s.UpdatePromotionFn != nil {
		return s.UpdatePromotionFn(ctx, promo)
	}
	return nil
}

func (s PromotionFacadeStub) DeletePromotion(ctx context.Context, id int64) error {
	if s.DeletePromotionFn != nil {
		return s.DeletePromotionFn(ctx, id)
	}
	return nil
}

// ImageFacadeStub simulates hosted image operations.
type ImageFacadeStub struct {
	UploadImageFn func(context.Context, int64, model.ObjectKind, string, io.Reader) (*model.Image, error)
	ImagesFn      func(context.Context, int64, model.ObjectKind) ([]model.Image, error)
	DeleteImageFn func(context.Context, int64) error
}

func (s ImageFacadeStub) UploadImage(ctx context.Context, objectID int64, kind model.ObjectKind, filename string, body io.Reader) (*model.Image, error) {
	if s.UploadImageFn != nil {
		return s.UploadImageFn(ctx, objectID, kind, filename, body)
	}
	return &model.Image{ID: 1, ObjectID: objectID, ObjectKind: kind, URL: "https://img.example/" + filename}, nil
}

func (s ImageFacadeStub) Images(ctx context.Context, objectID int64, kind model.ObjectKind) ([]model.Image, error) {
	if s.ImagesFn != nil {
		return s.ImagesFn(ctx, objectID, kind)
	}
	return []model.Image{{ID: 1, ObjectID: objectID, ObjectKind: kind}}, nil
}

func (s ImageFacadeStub) DeleteImage(ctx context.Context, id int64) error {
	if s.DeleteImageFn != nil {
		return s.DeleteImageFn(ctx, id)
	}
	return nil
}

// BaspanaFacadeStub aggregates facade stubs for HTTP layer tests.
type BaspanaFacadeStub struct {
	AuthFacadeStub
	BookingFacadeStub
	WalletFacadeStub
	CatalogFacadeStub
	ReviewFacadeStub
	FavoriteFacadeStub
	PromotionFacadeStub
	ImageFacadeStub
}
