package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type City string

const (
	CityAlmaty    City = "Almaty"
	CityAstana    City = "Astana"
	CityShymkent  City = "Shymkent"
	CityKaraganda City = "Karaganda"
	CityAktobe    City = "Aktobe"
	CityTaraz     City = "Taraz"
	CityPavlodar  City = "Pavlodar"
	CityAtyrau    City = "Atyrau"
	CityTurkistan City = "Turkistan"
)

type BuildingStatus string

const (
	BuildingStatusProject           BuildingStatus = "Project"
	BuildingStatusUnderConstruction BuildingStatus = "Under Construction"
	BuildingStatusCompleted         BuildingStatus = "Completed"
)

type BuildingClass string

const (
	BuildingClassEconomic BuildingClass = "Economic"
	BuildingClassComfort  BuildingClass = "Comfort"
	BuildingClassBusiness BuildingClass = "Business"
	BuildingClassLuxury   BuildingClass = "Luxury"
)

type MaterialType string

const (
	MaterialBrick    MaterialType = "Brick"
	MaterialMonolith MaterialType = "Monolith"
	MaterialPanel    MaterialType = "Panel"
	MaterialBlock    MaterialType = "Block"
	MaterialMixed    MaterialType = "Mixed"
)

// ResidentialComplex is the top-level catalog entity grouping buildings.
type ResidentialComplex struct {
	ID             int64
	Name           string
	Description    string
	BlockCount     int
	Material       MaterialType
	City           City
	Address        string
	HasSecurity    bool
	BuildingClass  BuildingClass
	BuildingStatus BuildingStatus
	MinArea        float64
	MinPrice       decimal.Decimal
	ConstructionEnd time.Time
	MainImage      string
}

// Building is one block of a residential complex.
type Building struct {
	ID               int64
	ComplexID        int64
	Block            int
	Description      string
	FloorCount       int
	ApartmentsCount  int
	CommercialsCount int
	GrossArea        float64
	ElevatorsCount   int
	Status           BuildingStatus
	ConstructionEnd  time.Time
}
