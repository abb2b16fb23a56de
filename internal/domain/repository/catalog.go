package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
)

// ComplexFilter narrows and orders the residential complex listing.
type ComplexFilter struct {
	City           *model.City
	BuildingClass  *model.BuildingClass
	BuildingStatus *model.BuildingStatus
	Material       *model.MaterialType
	MinPrice       *decimal.Decimal
	MaxPrice       *decimal.Decimal
	SortBy         string
	SortDesc       bool
	Limit          int
	Offset         int
}

type ComplexRepository interface {
	Create(ctx context.Context, complex *model.ResidentialComplex) (*model.ResidentialComplex, error)
	GetByID(ctx context.Context, id int64) (*model.ResidentialComplex, error)
	List(ctx context.Context, filter ComplexFilter) ([]model.ResidentialComplex, int, error)
	Update(ctx context.Context, complex *model.ResidentialComplex) error
	Delete(ctx context.Context, id int64) error
}

type BuildingRepository interface {
	Create(ctx context.Context, building *model.Building) (*model.Building, error)
	GetByID(ctx context.Context, id int64) (*model.Building, error)
	ListByComplex(ctx context.Context, complexID int64) ([]model.Building, error)
	Update(ctx context.Context, building *model.Building) error
	Delete(ctx context.Context, id int64) error
}

// ApartmentFilter narrows and orders the apartment listing.
type ApartmentFilter struct {
	BuildingID    *int64
	Status        *model.PropertyStatus
	ApartmentType *model.ApartmentType
	MinFloor      *int
	MaxFloor      *int
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	SortBy        string
	SortDesc      bool
	Limit         int
	Offset        int
}

type ApartmentRepository interface {
	Create(ctx context.Context, apartment *model.Apartment) (*model.Apartment, error)
	GetByID(ctx context.Context, id int64) (*model.Apartment, error)
	List(ctx context.Context, filter ApartmentFilter) ([]model.Apartment, int, error)
	Update(ctx context.Context, apartment *model.Apartment) error
	Delete(ctx context.Context, id int64) error
}

// CommercialFilter narrows and orders the commercial unit listing.
type CommercialFilter struct {
	BuildingID *int64
	Status     *model.PropertyStatus
	MinFloor   *int
	MaxFloor   *int
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     string
	SortDesc   bool
	Limit      int
	Offset     int
}

type CommercialUnitRepository interface {
	Create(ctx context.Context, unit *model.CommercialUnit) (*model.CommercialUnit, error)
	GetByID(ctx context.Context, id int64) (*model.CommercialUnit, error)
	List(ctx context.Context, filter CommercialFilter) ([]model.CommercialUnit, int, error)
	Update(ctx context.Context, unit *model.CommercialUnit) error
	Delete(ctx context.Context, id int64) error
}
