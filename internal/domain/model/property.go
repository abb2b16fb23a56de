package model

import "github.com/shopspring/decimal"

// ObjectKind discriminates which catalog entity a polymorphic reference points at.
type ObjectKind string

const (
	ObjectKindApartment  ObjectKind = "Apartment"
	ObjectKindCommercial ObjectKind = "Commercial"
	ObjectKindBuilding   ObjectKind = "Building"
	ObjectKindComplex    ObjectKind = "Residential complex"
)

// Bookable reports whether an object of this kind can be targeted by an order.
func (k ObjectKind) Bookable() bool {
	return k == ObjectKindApartment || k == ObjectKindCommercial
}

// PropertyStatus describes sale availability of an apartment or commercial unit.
type PropertyStatus string

const (
	PropertyStatusFree   PropertyStatus = "Free"
	PropertyStatusBooked PropertyStatus = "Booked"
	PropertyStatusSold   PropertyStatus = "Sold"
)

// PropertyRef identifies one bookable unit together with its current status.
type PropertyRef struct {
	ID     int64
	Kind   ObjectKind
	Status PropertyStatus
}

type ApartmentType string

const (
	ApartmentTypeStudio       ApartmentType = "Studio"
	ApartmentTypeOneBedroom   ApartmentType = "One Bedroom"
	ApartmentTypeTwoBedroom   ApartmentType = "Two Bedroom"
	ApartmentTypeThreeBedroom ApartmentType = "Three Bedroom"
	ApartmentTypePenthouse    ApartmentType = "Penthouse"
)

type FinishingType string

const (
	FinishingBlackBox FinishingType = "Black Box"
	FinishingWhiteBox FinishingType = "White Box"
	FinishingFinished FinishingType = "Finished"
	FinishingTurnkey  FinishingType = "Turnkey"
)

type Direction string

const (
	DirectionNorth     Direction = "North"
	DirectionSouth     Direction = "South"
	DirectionEast      Direction = "East"
	DirectionWest      Direction = "West"
	DirectionNorthEast Direction = "North east"
	DirectionSouthEast Direction = "South east"
	DirectionNorthWest Direction = "North west"
	DirectionSouthWest Direction = "South west"
)

// Apartment is a residential unit inside a building.
type Apartment struct {
	ID            int64
	BuildingID    int64
	Number        int
	Floor         int
	Description   string
	ApartmentArea float64
	ApartmentType ApartmentType
	HasBalcony    bool
	BathroomCount int
	KitchenArea   float64
	CeilingHeight float64
	FinishingType FinishingType
	PricePerSqr   decimal.Decimal
	TotalPrice    decimal.Decimal
	Status        PropertyStatus
	Orientation   Direction
	IsCorner      bool
}

// CommercialUnit is a commercial space inside a building.
type CommercialUnit struct {
	ID            int64
	BuildingID    int64
	Number        int
	Floor         int
	SpaceArea     float64
	CeilingHeight float64
	FinishingType FinishingType
	PricePerSqr   decimal.Decimal
	TotalPrice    decimal.Decimal
	Status        PropertyStatus
	Orientation   Direction
	IsCorner      bool
}
