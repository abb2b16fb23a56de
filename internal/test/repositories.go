package test

import (
	"context"
	"time"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user repository.NewUser) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	created := &model.User{
		ID:           s.Next,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		PhoneNumber:  user.PhoneNumber,
		City:         user.City,
		Role:         user.Role,
		IsActive:     true,
	}
	s.Next++
	s.Users[user.Email] = created
	s.ByID[created.ID] = created
	return created, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateFn         func(context.Context, repository.NewOrder) (*model.Order, error)
	GetByIDFn        func(context.Context, int64) (*model.Order, error)
	UpdateFn         func(context.Context, int64, model.OrderUpdate) (*model.Order, error)
	ListFn           func(context.Context, repository.OrderFilter) ([]model.Order, int, error)
	ExpireBookingsFn func(context.Context, time.Time) (int, error)
	DeleteFn         func(context.Context, int64) error

	Created     []repository.NewOrder
	UpdateCalls []OrderUpdateCall
	Orders      []model.Order
}

// OrderUpdateCall records one Update invocation.
type OrderUpdateCall struct {
	OrderID int64
	Update  model.OrderUpdate
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	s.Created = append(s.Created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return &model.Order{
		ID:          1,
		UserID:      order.UserID,
		ObjectID:    order.ObjectID,
		ObjectKind:  order.ObjectKind,
		OrderKind:   order.OrderKind,
		TotalPrice:  order.TotalPrice,
		PaymentKind: order.PaymentKind,
		Status:      order.Status,
	}, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Update records update invocations.
func (s *OrderRepositoryStub) Update(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	s.UpdateCalls = append(s.UpdateCalls, OrderUpdateCall{OrderID: id, Update: update})
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	return &model.Order{ID: id}, nil
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Orders, len(s.Orders), nil
}

// ExpireBookings delegates to override or reports zero expirations.
func (s *OrderRepositoryStub) ExpireBookings(ctx context.Context, asOf time.Time) (int, error) {
	if s.ExpireBookingsFn != nil {
		return s.ExpireBookingsFn(ctx, asOf)
	}
	return 0, nil
}

// Delete delegates to override.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// WalletRepositoryStub lets tests control wallet data.
type WalletRepositoryStub struct {
	CreateFn      func(context.Context, int64) (*model.Wallet, error)
	GetByIDFn     func(context.Context, int64) (*model.Wallet, error)
	GetByUserIDFn func(context.Context, int64) (*model.Wallet, error)
	ApplyFn       func(context.Context, repository.TransactionRequest) (*model.Transaction, error)
	BalanceFn     func(context.Context, int64) (*model.WalletBalance, error)
	SetActiveFn   func(context.Context, int64, bool) error

	CreatedFor []int64
	Applied    []repository.TransactionRequest
}

// Create tracks wallet provisioning calls.
func (s *WalletRepositoryStub) Create(ctx context.Context, userID int64) (*model.Wallet, error) {
	s.CreatedFor = append(s.CreatedFor, userID)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID)
	}
	return &model.Wallet{ID: userID, UserID: userID, IsActive: true}, nil
}

// GetByID delegates to override or returns not found.
func (s *WalletRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Wallet, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUserID delegates to override or returns not found.
func (s *WalletRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Wallet, error) {
	if s.GetByUserIDFn != nil {
		return s.GetByUserIDFn(ctx, userID)
	}
	return nil, domainErrors.ErrNotFound
}

// Apply records ledger requests and returns configured responses.
func (s *WalletRepositoryStub) Apply(ctx context.Context, req repository.TransactionRequest) (*model.Transaction, error) {
	s.Applied = append(s.Applied, req)
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, req)
	}
	return &model.Transaction{ID: 1, WalletID: req.WalletID, Type: req.Type, Amount: req.Amount}, nil
}

// Balance delegates to override or returns not found.
func (s *WalletRepositoryStub) Balance(ctx context.Context, walletID int64) (*model.WalletBalance, error) {
	if s.BalanceFn != nil {
		return s.BalanceFn(ctx, walletID)
	}
	return nil, domainErrors.ErrNotFound
}

// SetActive delegates to override.
func (s *WalletRepositoryStub) SetActive(ctx context.Context, walletID int64, active bool) error {
	if s.SetActiveFn != nil {
		return s.SetActiveFn(ctx, walletID, active)
	}
	return nil
}

// TransactionRepositoryStub serves canned ledger history.
type TransactionRepositoryStub struct {
	ListByWalletFn func(context.Context, int64, *model.TransactionType, int, int) ([]model.Transaction, int, error)
	Transactions   []model.Transaction
}

// ListByWallet returns configured transactions.
func (s *TransactionRepositoryStub) ListByWallet(ctx context.Context, walletID int64, txType *model.TransactionType, limit, offset int) ([]model.Transaction, int, error) {
	if s.ListByWalletFn != nil {
		return s.ListByWalletFn(ctx, walletID, txType, limit, offset)
	}
	return s.Transactions, len(s.Transactions), nil
}

// ComplexRepositoryStub allows tests to customize complex behaviour.
type ComplexRepositoryStub struct {
	CreateFn  func(context.Context, *model.ResidentialComplex) (*model.ResidentialComplex, error)
	GetByIDFn func(context.Context, int64) (*model.ResidentialComplex, error)
	ListFn    func(context.Context, repository.ComplexFilter) ([]model.ResidentialComplex, int, error)
	UpdateFn  func(context.Context, *model.ResidentialComplex) error
	DeleteFn  func(context.Context, int64) error
	Complexes []model.ResidentialComplex
}

func (s *ComplexRepositoryStub) Create(ctx context.Context, complex *model.ResidentialComplex) (*model.ResidentialComplex, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, complex)
	}
	created := *complex
	created.ID = 1
	return &created, nil
}

func (s *ComplexRepositoryStub) GetByID(ctx context.Context, id int64) (*model.ResidentialComplex, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, c := range s.Complexes {
		if c.ID == id {
			complex := c
			return &complex, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ComplexRepositoryStub) List(ctx context.Context, filter repository.ComplexFilter) ([]model.ResidentialComplex, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Complexes, len(s.Complexes), nil
}

func (s *ComplexRepositoryStub) Update(ctx context.Context, complex *model.ResidentialComplex) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, complex)
	}
	return nil
}

func (s *ComplexRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// BuildingRepositoryStub allows tests to customize building behaviour.
type BuildingRepositoryStub struct {
	CreateFn        func(context.Context, *model.Building) (*model.Building, error)
	GetByIDFn       func(context.Context, int64) (*model.Building, error)
	ListByComplexFn func(context.Context, int64) ([]model.Building, error)
	UpdateFn        func(context.Context, *model.Building) error
	DeleteFn        func(context.Context, int64) error
	Buildings       []model.Building
}

func (s *BuildingRepositoryStub) Create(ctx context.Context, building *model.Building) (*model.Building, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, building)
	}
	created := *building
	created.ID = 1
	return &created, nil
}

func (s *BuildingRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Building, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *BuildingRepositoryStub) ListByComplex(ctx context.Context, complexID int64) ([]model.Building, error) {
	if s.ListByComplexFn != nil {
		return s.ListByComplexFn(ctx, complexID)
	}
	return s.Buildings, nil
}

func (s *BuildingRepositoryStub) Update(ctx context.Context, building *model.Building) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, building)
	}
	return nil
}

func (s *BuildingRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ApartmentRepositoryStub allows tests to customize apartment behaviour.
type ApartmentRepositoryStub struct {
	CreateFn   func(context.Context, *model.Apartment) (*model.Apartment, error)
	GetByIDFn  func(context.Context, int64) (*model.Apartment, error)
	ListFn     func(context.Context, repository.ApartmentFilter) ([]model.Apartment, int, error)
	UpdateFn   func(context.Context, *model.Apartment) error
	DeleteFn   func(context.Context, int64) error
	Apartments []model.Apartment
}

func (s *ApartmentRepositoryStub) Create(ctx context.Context, apartment *model.Apartment) (*model.Apartment, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, apartment)
	}
	created := *apartment
	created.ID = 1
	return &created, nil
}

func (s *ApartmentRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Apartment, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, a := range s.Apartments {
		if a.ID == id {
			apartment := a
			return &apartment, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ApartmentRepositoryStub) List(ctx context.Context, filter repository.ApartmentFilter) ([]model.Apartment, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Apartments, len(s.Apartments), nil
}

func (s *ApartmentRepositoryStub) Update(ctx context.Context, apartment *model.Apartment) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, apartment)
	}
	return nil
}

func (s *ApartmentRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// CommercialRepositoryStub allows tests to customize commercial unit behaviour.
type CommercialRepositoryStub struct {
	CreateFn  func(context.Context, *model.CommercialUnit) (*model.CommercialUnit, error)
	GetByIDFn func(context.Context, int64) (*model.CommercialUnit, error)
	ListFn    func(context.Context, repository.CommercialFilter) ([]model.CommercialUnit, int, error)
	UpdateFn  func(context.Context, *model.CommercialUnit) error
	DeleteFn  func(context.Context, int64) error
	Units     []model.CommercialUnit
}

func (s *CommercialRepositoryStub) Create(ctx context.Context, unit *model.CommercialUnit) (*model.CommercialUnit, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, unit)
	}
	created := *unit
	created.ID = 1
	return &created, nil
}

func (s *CommercialRepositoryStub) GetByID(ctx context.Context, id int64) (*model.CommercialUnit, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CommercialRepositoryStub) List(ctx context.Context, filter repository.CommercialFilter) ([]model.CommercialUnit, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Units, len(s.Units), nil
}

func (s *CommercialRepositoryStub) Update(ctx context.Context, unit *model.CommercialUnit) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, unit)
	}
	return nil
}

func (s *CommercialRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ReviewRepositoryStub serves canned reviews.
type ReviewRepositoryStub struct {
	CreateFn        func(context.Context, repository.NewReview) (*model.Review, error)
	ListByComplexFn func(context.Context, int64) ([]model.Review, error)
	DeleteFn        func(context.Context, int64) error
	Reviews         []model.Review
	Created         []repository.NewReview
}

func (s *ReviewRepositoryStub) Create(ctx context.Context, review repository.NewReview) (*model.Review, error) {
	s.Created = append(s.Created, review)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, review)
	}
	return &model.Review{ID: 1, ComplexID: review.ComplexID, Rating: review.Rating, Comment: review.Comment}, nil
}

func (s *ReviewRepositoryStub) ListByComplex(ctx context.Context, complexID int64) ([]model.Review, error) {
	if s.ListByComplexFn != nil {
		return s.ListByComplexFn(ctx, complexID)
	}
	return s.Reviews, nil
}

func (s *ReviewRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// FavoriteRepositoryStub serves canned favorites.
type FavoriteRepositoryStub struct {
	AddFn        func(context.Context, int64, int64, model.ObjectKind) (*model.Favorite, error)
	ListByUserFn func(context.Context, int64) ([]model.Favorite, error)
	RemoveFn     func(context.Context, int64, int64) error
	Favorites    []model.Favorite
}

func (s *FavoriteRepositoryStub) Add(ctx context.Context, userID, objectID int64, kind model.ObjectKind) (*model.Favorite, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, objectID, kind)
	}
	return &model.Favorite{ID: 1, UserID: userID, ObjectID: objectID, ObjectKind: kind}, nil
}

func (s *FavoriteRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	return s.Favorites, nil
}

func (s *FavoriteRepositoryStub) Remove(ctx context.Context, userID, favoriteID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, favoriteID)
	}
	return nil
}

// PromotionRepositoryStub serves canned promotions.
type PromotionRepositoryStub struct {
	CreateFn     func(context.Context, *model.Promotion) (*model.Promotion, error)
	GetByIDFn    func(context.Context, int64) (*model.Promotion, error)
	ListActiveFn func(context.Context) ([]model.Promotion, error)
	UpdateFn     func(context.Context, *model.Promotion) error
	DeleteFn     func(context.Context, int64) error
	Promotions   []model.Promotion
}

func (s *PromotionRepositoryStub) Create(ctx context.Context, promo *model.Promotion) (*model.Promotion, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, promo)
	}
	created := *promo
	created.ID = 1
	return &created, nil
}

func (s *PromotionRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Promotion, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *PromotionRepositoryStub) ListActive(ctx context.Context) ([]model.Promotion, error) {
	if s.ListActiveFn != nil {
		return s.ListActiveFn(ctx)
	}
	return s.Promotions, nil
}

func (s *PromotionRepositoryStub) Update(ctx context.Context, promo *model.Promotion) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, promo)
	}
	return nil
}

func (s *PromotionRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ImageRepositoryStub serves canned image metadata.
type ImageRepositoryStub struct {
	CreateFn       func(context.Context, repository.NewImage) (*model.Image, error)
	GetByIDFn      func(context.Context, int64) (*model.Image, error)
	ListByObjectFn func(context.Context, int64, model.ObjectKind) ([]model.Image, error)
	DeleteFn       func(context.Context, int64) error
	Images         []model.Image
	Created        []repository.NewImage
	Deleted        []int64
}

func (s *ImageRepositoryStub) Create(ctx context.Context, image repository.NewImage) (*model.Image, error) {
	s.Created = append(s.Created, image)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, image)
	}
	return &model.Image{ID: 1, ObjectID: image.ObjectID, ObjectKind: image.ObjectKind, URL: image.URL, RemoteID: image.RemoteID}, nil
}

func (s *ImageRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Image, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, img := range s.Images {
		if img.ID == id {
			image := img
			return &image, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ImageRepositoryStub) ListByObject(ctx context.Context, objectID int64, kind model.ObjectKind) ([]model.Image, error) {
	if s.ListByObjectFn != nil {
		return s.ListByObjectFn(ctx, objectID, kind)
	}
	return s.Images, nil
}

func (s *ImageRepositoryStub) Delete(ctx context.Context, id int64) error {
	s.Deleted = append(s.Deleted, id)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}
