package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
)

// ComplexRequest describes a residential complex create/update payload.
type ComplexRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	BlockCount      int             `json:"block_count"`
	Material        string          `json:"material"`
	City            string          `json:"city"`
	Address         string          `json:"address"`
	HasSecurity     bool            `json:"has_security"`
	BuildingClass   string          `json:"building_class"`
	BuildingStatus  string          `json:"building_status"`
	MinArea         float64         `json:"min_area"`
	MinPrice        decimal.Decimal `json:"min_price"`
	ConstructionEnd time.Time       `json:"construction_end"`
	MainImage       string          `json:"main_image"`
}

// ComplexResponse describes one residential complex.
type ComplexResponse struct {
	ID int64 `json:"id"`
	ComplexRequest
}

// ComplexListResponse carries one page of complexes.
type ComplexListResponse struct {
	Items []ComplexResponse `json:"items"`
	Total int               `json:"total"`
}

// BuildingRequest describes a building create/update payload.
type BuildingRequest struct {
	ComplexID        int64     `json:"complex_id"`
	Block            int       `json:"block"`
	Description      string    `json:"description"`
	FloorCount       int       `json:"floor_count"`
	ApartmentsCount  int       `json:"apartments_count"`
	CommercialsCount int       `json:"commercials_count"`
	GrossArea        float64   `json:"gross_area"`
	ElevatorsCount   int       `json:"elevators_count"`
	Status           string    `json:"status"`
	ConstructionEnd  time.Time `json:"construction_end"`
}

// BuildingResponse describes one building.
type BuildingResponse struct {
	ID int64 `json:"id"`
	BuildingRequest
}

// ApartmentRequest describes an apartment create/update payload.
type ApartmentRequest struct {
	BuildingID    int64           `json:"building_id"`
	Number        int             `json:"number"`
	Floor         int             `json:"floor"`
	Description   string          `json:"description"`
	ApartmentArea float64         `json:"apartment_area"`
	ApartmentType string          `json:"apartment_type"`
	HasBalcony    bool            `json:"has_balcony"`
	BathroomCount int             `json:"bathroom_count"`
	KitchenArea   float64         `json:"kitchen_area"`
	CeilingHeight float64         `json:"ceiling_height"`
	FinishingType string          `json:"finishing_type"`
	PricePerSqr   decimal.Decimal `json:"price_per_sqr"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	Orientation   string          `json:"orientation"`
	IsCorner      bool            `json:"is_corner"`
}

// ApartmentResponse describes one apartment.
type ApartmentResponse struct {
	ID int64 `json:"id"`
	ApartmentRequest
}

// ApartmentListResponse carries one page of apartments.
type ApartmentListResponse struct {
	Items []ApartmentResponse `json:"items"`
	Total int                 `json:"total"`
}

// CommercialRequest describes a commercial unit create/update payload.
type CommercialRequest struct {
	BuildingID    int64           `json:"building_id"`
	Number        int             `json:"number"`
	Floor         int             `json:"floor"`
	SpaceArea     float64         `json:"space_area"`
	CeilingHeight float64         `json:"ceiling_height"`
	FinishingType string          `json:"finishing_type"`
	PricePerSqr   decimal.Decimal `json:"price_per_sqr"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        string          `json:"status"`
	Orientation   string          `json:"orientation"`
	IsCorner      bool            `json:"is_corner"`
}

// CommercialResponse describes one commercial unit.
type CommercialResponse struct {
	ID int64 `json:"id"`
	CommercialRequest
}

// CommercialListResponse carries one page of commercial units.
type CommercialListResponse struct {
	Items []CommercialResponse `json:"items"`
	Total int                  `json:"total"`
}

// ToComplex converts the payload into a domain complex.
func (r ComplexRequest) ToComplex(id int64) *model.ResidentialComplex {
	return &model.ResidentialComplex{
		ID:              id,
		Name:            r.Name,
		Description:     r.Description,
		BlockCount:      r.BlockCount,
		Material:        model.MaterialType(r.Material),
		City:            model.City(r.City),
		Address:         r.Address,
		HasSecurity:     r.HasSecurity,
		BuildingClass:   model.BuildingClass(r.BuildingClass),
		BuildingStatus:  model.BuildingStatus(r.BuildingStatus),
		MinArea:         r.MinArea,
		MinPrice:        r.MinPrice,
		ConstructionEnd: r.ConstructionEnd,
		MainImage:       r.MainImage,
	}
}

// NewComplexResponse maps a domain complex to its wire form.
func NewComplexResponse(c *model.ResidentialComplex) ComplexResponse {
	return ComplexResponse{
		ID: c.ID,
		ComplexRequest: ComplexRequest{
			Name:            c.Name,
			Description:     c.Description,
			BlockCount:      c.BlockCount,
			Material:        string(c.Material),
			City:            string(c.City),
			Address:         c.Address,
			HasSecurity:     c.HasSecurity,
			BuildingClass:   string(c.BuildingClass),
			BuildingStatus:  string(c.BuildingStatus),
			MinArea:         c.MinArea,
			MinPrice:        c.MinPrice,
			ConstructionEnd: c.ConstructionEnd,
			MainImage:       c.MainImage,
		},
	}
}

// ToBuilding converts the payload into a domain building.
func (r BuildingRequest) ToBuilding(id int64) *model.Building {
	return &model.Building{
		ID:               id,
		ComplexID:        r.ComplexID,
		Block:            r.Block,
		Description:      r.Description,
		FloorCount:       r.FloorCount,
		ApartmentsCount:  r.ApartmentsCount,
		CommercialsCount: r.CommercialsCount,
		GrossArea:        r.GrossArea,
		ElevatorsCount:   r.ElevatorsCount,
		Status:           model.BuildingStatus(r.Status),
		ConstructionEnd:  r.ConstructionEnd,
	}
}

// NewBuildingResponse maps a domain building to its wire form.
func NewBuildingResponse(b *model.Building) BuildingResponse {
	return BuildingResponse{
		ID: b.ID,
		BuildingRequest: BuildingRequest{
			ComplexID:        b.ComplexID,
			Block:            b.Block,
			Description:      b.Description,
			FloorCount:       b.FloorCount,
			ApartmentsCount:  b.ApartmentsCount,
			CommercialsCount: b.CommercialsCount,
			GrossArea:        b.GrossArea,
			ElevatorsCount:   b.ElevatorsCount,
			Status:           string(b.Status),
			ConstructionEnd:  b.ConstructionEnd,
		},
	}
}

// ToApartment converts the payload into a domain apartment.
func (r ApartmentRequest) ToApartment(id int64) *model.Apartment {
	return &model.Apartment{
		ID:            id,
		BuildingID:    r.BuildingID,
		Number:        r.Number,
		Floor:         r.Floor,
		Description:   r.Description,
		ApartmentArea: r.ApartmentArea,
		ApartmentType: model.ApartmentType(r.ApartmentType),
		HasBalcony:    r.HasBalcony,
		BathroomCount: r.BathroomCount,
		KitchenArea:   r.KitchenArea,
		CeilingHeight: r.CeilingHeight,
		FinishingType: model.FinishingType(r.FinishingType),
		PricePerSqr:   r.PricePerSqr,
		TotalPrice:    r.TotalPrice,
		Status:        model.PropertyStatus(r.Status),
		Orientation:   model.Direction(r.Orientation),
		IsCorner:      r.IsCorner,
	}
}

// NewApartmentResponse maps a domain apartment to its wire form.
func NewApartmentResponse(a *model.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ID: a.ID,
		ApartmentRequest: ApartmentRequest{
			BuildingID:    a.BuildingID,
			Number:        a.Number,
			Floor:         a.Floor,
			Description:   a.Description,
			ApartmentArea: a.ApartmentArea,
			ApartmentType: string(a.ApartmentType),
			HasBalcony:    a.HasBalcony,
			BathroomCount: a.BathroomCount,
			KitchenArea:   a.KitchenArea,
			CeilingHeight: a.CeilingHeight,
			FinishingType: string(a.FinishingType),
			PricePerSqr:   a.PricePerSqr,
			TotalPrice:    a.TotalPrice,
			Status:        string(a.Status),
			Orientation:   string(a.Orientation),
			IsCorner:      a.IsCorner,
		},
	}
}

// ToCommercialUnit converts the payload into a domain commercial unit.
func (r CommercialRequest) ToCommercialUnit(id int64) *model.CommercialUnit {
	return &model.CommercialUnit{
		ID:            id,
		BuildingID:    r.BuildingID,
		Number:        r.Number,
		Floor:         r.Floor,
		SpaceArea:     r.SpaceArea,
		CeilingHeight: r.CeilingHeight,
		FinishingType: model.FinishingType(r.FinishingType),
		PricePerSqr:   r.PricePerSqr,
		TotalPrice:    r.TotalPrice,
		Status:        model.PropertyStatus(r.Status),
		Orientation:   model.Direction(r.Orientation),
		IsCorner:      r.IsCorner,
	}
}

// NewCommercialResponse maps a domain commercial unit to its wire form.
func NewCommercialResponse(u *model.CommercialUnit) CommercialResponse {
	return CommercialResponse{
		ID: u.ID,
		CommercialRequest: CommercialRequest{
			BuildingID:    u.BuildingID,
			Number:        u.Number,
			Floor:         u.Floor,
			SpaceArea:     u.SpaceArea,
			CeilingHeight: u.CeilingHeight,
			FinishingType: string(u.FinishingType),
			PricePerSqr:   u.PricePerSqr,
			TotalPrice:    u.TotalPrice,
			Status:        string(u.Status),
			Orientation:   string(u.Orientation),
			IsCorner:      u.IsCorner,
		},
	}
}
