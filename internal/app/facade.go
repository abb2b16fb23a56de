package app

import (
	"context"
	"errors"
	"io"
	"time"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	pkgAuth "github.com/baspana/backend/internal/pkg/auth"
	"github.com/baspana/backend/internal/usecase"
)

// BaspanaFacade aggregates the use cases behind one application surface used
// by the HTTP layer and the expiration sweeper.
type BaspanaFacade struct {
	auth       *usecase.AuthUseCase
	booking    *usecase.BookingUseCase
	ledger     *usecase.LedgerUseCase
	catalog    *usecase.CatalogUseCase
	reviews    *usecase.ReviewUseCase
	favorites  *usecase.FavoriteUseCase
	promotions *usecase.PromotionUseCase
	images     *usecase.ImageUseCase
}

// NewBaspanaFacade constructs the application facade.
func NewBaspanaFacade(
	auth *usecase.AuthUseCase,
	booking *usecase.BookingUseCase,
	ledger *usecase.LedgerUseCase,
	catalog *usecase.CatalogUseCase,
	reviews *usecase.ReviewUseCase,
	favorites *usecase.FavoriteUseCase,
	promotions *usecase.PromotionUseCase,
	images *usecase.ImageUseCase,
) *BaspanaFacade {
	return &BaspanaFacade{
		auth:       auth,
		booking:    booking,
		ledger:     ledger,
		catalog:    catalog,
		reviews:    reviews,
		favorites:  favorites,
		promotions: promotions,
		images:     images,
	}
}

func (f *BaspanaFacade) Register(ctx context.Context, in usecase.RegisterInput) (*model.User, string, error) {
	return f.auth.Register(ctx, in)
}

func (f *BaspanaFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *BaspanaFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *BaspanaFacade) CreateOrder(ctx context.Context, in repository.NewOrder) (*model.Order, error) {
	return f.booking.CreateOrder(ctx, in)
}

func (f *BaspanaFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.booking.GetOrder(ctx, id)
}

func (f *BaspanaFacade) UpdateOrder(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	return f.booking.UpdateOrder(ctx, id, update)
}

func (f *BaspanaFacade) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	return f.booking.ListOrders(ctx, filter)
}

func (f *BaspanaFacade) DeleteOrder(ctx context.Context, id int64) error {
	return f.booking.DeleteOrder(ctx, id)
}

func (f *BaspanaFacade) ExpireBookings(ctx context.Context, asOf time.Time) (int, error) {
	return f.booking.ExpireBookings(ctx, asOf)
}

func (f *BaspanaFacade) WalletByUser(ctx context.Context, userID int64) (*model.Wallet, error) {
	return f.ledger.WalletByUser(ctx, userID)
}

func (f *BaspanaFacade) ApplyTransaction(ctx context.Context, req repository.TransactionRequest) (*model.Transaction, error) {
	return f.ledger.Apply(ctx, req)
}

// WalletBalance returns the balance view; a missing wallet maps to an empty
// inactive view so callers render zeros instead of an error page.
func (f *BaspanaFacade) WalletBalance(ctx context.Context, walletID int64) (*model.WalletBalance, error) {
	balance, err := f.ledger.Balance(ctx, walletID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return &model.WalletBalance{WalletID: walletID}, nil
		}
		return nil, err
	}
	return balance, nil
}

func (f *BaspanaFacade) Transactions(ctx context.Context, walletID int64, txType *model.TransactionType, limit, offset int) ([]model.Transaction, int, error) {
	return f.ledger.Transactions(ctx, walletID, txType, limit, offset)
}

func (f *BaspanaFacade) SetWalletActive(ctx context.Context, walletID int64, active bool) error {
	return f.ledger.SetWalletActive(ctx, walletID, active)
}

func (f *BaspanaFacade) CreateComplex(ctx context.Context, complex *model.ResidentialComplex) (*model.ResidentialComplex, error) {
	return f.catalog.CreateComplex(ctx, complex)
}

func (f *BaspanaFacade) Complex(ctx context.Context, id int64) (*model.ResidentialComplex, error) {
	return f.catalog.GetComplex(ctx, id)
}

func (f *BaspanaFacade) Complexes(ctx context.Context, filter repository.ComplexFilter) ([]model.ResidentialComplex, int, error) {
	return f.catalog.ListComplexes(ctx, filter)
}

func (f *BaspanaFacade) UpdateComplex(ctx context.Context, complex *model.ResidentialComplex) error {
	return f.catalog.UpdateComplex(ctx, complex)
}

func (f *BaspanaFacade) DeleteComplex(ctx context.Context, id int64) error {
	return f.catalog.DeleteComplex(ctx, id)
}

func (f *BaspanaFacade) CreateBuilding(ctx context.Context, building *model.Building) (*model.Building, error) {
	return f.catalog.CreateBuilding(ctx, building)
}

func (f *BaspanaFacade) Building(ctx context.Context, id int64) (*model.Building, error) {
	return f.catalog.GetBuilding(ctx, id)
}

func (f *BaspanaFacade) Buildings(ctx context.Context, complexID int64) ([]model.Building, error) {
	return f.catalog.ListBuildings(ctx, complexID)
}

func (f *BaspanaFacade) UpdateBuilding(ctx context.Context, building *model.Building) error {
	return f.catalog.UpdateBuilding(ctx, building)
}

func (f *BaspanaFacade) DeleteBuilding(ctx context.Context, id int64) error {
	return f.catalog.DeleteBuilding(ctx, id)
}

func (f *BaspanaFacade) CreateApartment(ctx context.Context, apartment *model.Apartment) (*model.Apartment, error) {
	return f.catalog.CreateApartment(ctx, apartment)
}

func (f *BaspanaFacade) Apartment(ctx context.Context, id int64) (*model.Apartment, error) {
	return f.catalog.GetApartment(ctx, id)
}

func (f *BaspanaFacade) Apartments(ctx context.Context, filter repository.ApartmentFilter) ([]model.Apartment, int, error) {
	return f.catalog.ListApartments(ctx, filter)
}

func (f *BaspanaFacade) UpdateApartment(ctx context.Context, apartment *model.Apartment) error {
	return f.catalog.UpdateApartment(ctx, apartment)
}

func (f *BaspanaFacade) DeleteApartment(ctx context.Context, id int64) error {
	return f.catalog.DeleteApartment(ctx, id)
}

func (f *BaspanaFacade) CreateCommercialUnit(ctx context.Context, unit *model.CommercialUnit) (*model.CommercialUnit, error) {
	return f.catalog.CreateCommercialUnit(ctx, unit)
}

func (f *BaspanaFacade) CommercialUnit(ctx context.Context, id int64) (*model.CommercialUnit, error) {
	return f.catalog.GetCommercialUnit(ctx, id)
}

func (f *BaspanaFacade) CommercialUnits(ctx context.Context, filter repository.CommercialFilter) ([]model.CommercialUnit, int, error) {
	return f.catalog.ListCommercialUnits(ctx, filter)
}

func (f *BaspanaFacade) UpdateCommercialUnit(ctx context.Context, unit *model.CommercialUnit) error {
	return f.catalog.UpdateCommercialUnit(ctx, unit)
}

func (f *BaspanaFacade) DeleteCommercialUnit(ctx context.Context, id int64) error {
	return f.catalog.DeleteCommercialUnit(ctx, id)
}

func (f *BaspanaFacade) PostReview(ctx context.Context, review repository.NewReview) (*model.Review, error) {
	return f.reviews.Post(ctx, review)
}

func (f *BaspanaFacade) Reviews(ctx context.Context, complexID int64) ([]model.Review, error) {
	return f.reviews.ListByComplex(ctx, complexID)
}

func (f *BaspanaFacade) DeleteReview(ctx context.Context, id int64) error {
	return f.reviews.Delete(ctx, id)
}

func (f *BaspanaFacade) AddFavorite(ctx context.Context, userID, objectID int64, kind model.ObjectKind) (*model.Favorite, error) {
	return f.favorites.Add(ctx, userID, objectID, kind)
}

func (f *BaspanaFacade) Favorites(ctx context.Context, userID int64) ([]model.Favorite, error) {
	return f.favorites.ListByUser(ctx, userID)
}

func (f *BaspanaFacade) RemoveFavorite(ctx context.Context, userID, favoriteID int64) error {
	return f.favorites.Remove(ctx, userID, favoriteID)
}

func (f *BaspanaFacade) CreatePromotion(ctx context.Context, promo *model.Promotion) (*model.Promotion, error) {
	return f.promotions.Create(ctx, promo)
}

func (f *BaspanaFacade) Promotion(ctx context.Context, id int64) (*model.Promotion, error) {
	return f.promotions.Get(ctx, id)
}

func (f *BaspanaFacade) ActivePromotions(ctx context.Context) ([]model.Promotion, error) {
	return f.promotions.ListActive(ctx)
}

func (f *BaspanaFacade) UpdatePromotion(ctx context.Context, promo *model.Promotion) error {
	return f.promotions.Update(ctx, promo)
}

func (f *BaspanaFacade) DeletePromotion(ctx context.Context, id int64) error {
	return f.promotions.Delete(ctx, id)
}

func (f *BaspanaFacade) UploadImage(ctx context.Context, objectID int64, kind model.ObjectKind, filename string, body io.Reader) (*model.Image, error) {
	return f.images.Upload(ctx, objectID, kind, filename, body)
}

func (f *BaspanaFacade) Images(ctx context.Context, objectID int64, kind model.ObjectKind) ([]model.Image, error) {
	return f.images.ListByObject(ctx, objectID, kind)
}

func (f *BaspanaFacade) DeleteImage(ctx context.Context, id int64) error {
	return f.images.Delete(ctx, id)
}
