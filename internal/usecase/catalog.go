package usecase

import (
	"context"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

// CatalogUseCase exposes the property catalog: residential complexes, their
// buildings and the bookable units inside them.
type CatalogUseCase struct {
	complexes   repository.ComplexRepository
	buildings   repository.BuildingRepository
	apartments  repository.ApartmentRepository
	commercials repository.CommercialUnitRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(
	complexes repository.ComplexRepository,
	buildings repository.BuildingRepository,
	apartments repository.ApartmentRepository,
	commercials repository.CommercialUnitRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		complexes:   complexes,
		buildings:   buildings,
		apartments:  apartments,
		commercials: commercials,
	}
}

// CreateComplex stores a new residential complex.
func (u *CatalogUseCase) CreateComplex(ctx context.Context, complex *model.ResidentialComplex) (*model.ResidentialComplex, error) {
	return u.complexes.Create(ctx, complex)
}

// GetComplex fetches one complex by identifier.
func (u *CatalogUseCase) GetComplex(ctx context.Context, id int64) (*model.ResidentialComplex, error) {
	return u.complexes.GetByID(ctx, id)
}

// ListComplexes returns complexes matching the filter with the total count.
func (u *CatalogUseCase) ListComplexes(ctx context.Context, filter repository.ComplexFilter) ([]model.ResidentialComplex, int, error) {
	return u.complexes.List(ctx, filter)
}

// UpdateComplex replaces a stored complex row.
func (u *CatalogUseCase) UpdateComplex(ctx context.Context, complex *model.ResidentialComplex) error {
	return u.complexes.Update(ctx, complex)
}

// DeleteComplex removes a complex.
func (u *CatalogUseCase) DeleteComplex(ctx context.Context, id int64) error {
	return u.complexes.Delete(ctx, id)
}

// CreateBuilding stores a new building block.
func (u *CatalogUseCase) CreateBuilding(ctx context.Context, building *model.Building) (*model.Building, error) {
	return u.buildings.Create(ctx, building)
}

// GetBuilding fetches one building by identifier.
func (u *CatalogUseCase) GetBuilding(ctx context.Context, id int64) (*model.Building, error) {
	return u.buildings.GetByID(ctx, id)
}

// ListBuildings returns every building block of a complex.
func (u *CatalogUseCase) ListBuildings(ctx context.Context, complexID int64) ([]model.Building, error) {
	return u.buildings.ListByComplex(ctx, complexID)
}

// UpdateBuilding replaces a stored building row.
func (u *CatalogUseCase) UpdateBuilding(ctx context.Context, building *model.Building) error {
	return u.buildings.Update(ctx, building)
}

// DeleteBuilding removes a building.
func (u *CatalogUseCase) DeleteBuilding(ctx context.Context, id int64) error {
	return u.buildings.Delete(ctx, id)
}

// CreateApartment stores a new apartment. New units start free unless a
// status is set explicitly.
func (u *CatalogUseCase) CreateApartment(ctx context.Context, apartment *model.Apartment) (*model.Apartment, error) {
	if apartment.Status == "" {
		apartment.Status = model.PropertyStatusFree
	}
	return u.apartments.Create(ctx, apartment)
}

// GetApartment fetches one apartment by identifier.
func (u *CatalogUseCase) GetApartment(ctx context.Context, id int64) (*model.Apartment, error) {
	return u.apartments.GetByID(ctx, id)
}

// ListApartments returns apartments matching the filter with the total count.
func (u *CatalogUseCase) ListApartments(ctx context.Context, filter repository.ApartmentFilter) ([]model.Apartment, int, error) {
	return u.apartments.List(ctx, filter)
}

// UpdateApartment replaces a stored apartment row.
func (u *CatalogUseCase) UpdateApartment(ctx context.Context, apartment *model.Apartment) error {
	return u.apartments.Update(ctx, apartment)
}

// DeleteApartment removes an apartment.
func (u *CatalogUseCase) DeleteApartment(ctx context.Context, id int64) error {
	return u.apartments.Delete(ctx, id)
}

// CreateCommercialUnit stores a new commercial unit.
func (u *CatalogUseCase) CreateCommercialUnit(ctx context.Context, unit *model.CommercialUnit) (*model.CommercialUnit, error) {
	if unit.Status == "" {
		unit.Status = model.PropertyStatusFree
	}
	return u.commercials.Create(ctx, unit)
}

// GetCommercialUnit fetches one commercial unit by identifier.
func (u *CatalogUseCase) GetCommercialUnit(ctx context.Context, id int64) (*model.CommercialUnit, error) {
	return u.commercials.GetByID(ctx, id)
}

// ListCommercialUnits returns commercial units matching the filter with the total count.
func (u *CatalogUseCase) ListCommercialUnits(ctx context.Context, filter repository.CommercialFilter) ([]model.CommercialUnit, int, error) {
	return u.commercials.List(ctx, filter)
}

// UpdateCommercialUnit replaces a stored commercial unit row.
func (u *CatalogUseCase) UpdateCommercialUnit(ctx context.Context, unit *model.CommercialUnit) error {
	return u.commercials.Update(ctx, unit)
}

// DeleteCommercialUnit removes a commercial unit.
func (u *CatalogUseCase) DeleteCommercialUnit(ctx context.Context, id int64) error {
	return u.commercials.Delete(ctx, id)
}
