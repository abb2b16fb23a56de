package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
	"github.com/baspana/backend/internal/server/http/dto"
)

// CatalogHandler processes catalog endpoints: complexes, buildings,
// apartments and commercial units.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// CreateComplex handles POST /api/manage/complexes.
func (h *CatalogHandler) CreateComplex(c *gin.Context) {
	var req dto.ComplexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	complex, err := h.facade.CreateComplex(c.Request.Context(), req.ToComplex(0))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewComplexResponse(complex))
}

// GetComplex handles GET /api/complexes/:id.
func (h *CatalogHandler) GetComplex(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	complex, err := h.facade.Complex(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewComplexResponse(complex))
}

// ListComplexes handles GET /api/complexes.
func (h *CatalogHandler) ListComplexes(c *gin.Context) {
	filter := repository.ComplexFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_desc") == "true",
		Limit:    queryInt(c, "limit", 0),
		Offset:   queryInt(c, "offset", 0),
	}
	if raw := c.Query("city"); raw != "" {
		city := model.City(raw)
		filter.City = &city
	}
	if raw := c.Query("building_class"); raw != "" {
		class := model.BuildingClass(raw)
		filter.BuildingClass = &class
	}
	if raw := c.Query("building_status"); raw != "" {
		status := model.BuildingStatus(raw)
		filter.BuildingStatus = &status
	}
	if raw := c.Query("material"); raw != "" {
		material := model.MaterialType(raw)
		filter.Material = &material
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &v
		}
	}

	complexes, total, err := h.facade.Complexes(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.ComplexResponse, 0, len(complexes))
	for i := range complexes {
		items = append(items, dto.NewComplexResponse(&complexes[i]))
	}
	c.JSON(http.StatusOK, dto.ComplexListResponse{Items: items, Total: total})
}

// UpdateComplex handles PUT /api/manage/complexes/:id.
func (h *CatalogHandler) UpdateComplex(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.ComplexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateComplex(c.Request.Context(), req.ToComplex(id)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteComplex handles DELETE /api/manage/complexes/:id.
func (h *CatalogHandler) DeleteComplex(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteComplex(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateBuilding handles POST /api/manage/buildings.
func (h *CatalogHandler) CreateBuilding(c *gin.Context) {
	var req dto.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	building, err := h.facade.CreateBuilding(c.Request.Context(), req.ToBuilding(0))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewBuildingResponse(building))
}

// GetBuilding handles GET /api/buildings/:id.
func (h *CatalogHandler) GetBuilding(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	building, err := h.facade.Building(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBuildingResponse(building))
}

// ListBuildings handles GET /api/complexes/:id/buildings.
func (h *CatalogHandler) ListBuildings(c *gin.Context) {
	complexID, ok := idParam(c, "id")
	if !ok {
		return
	}

	buildings, err := h.facade.Buildings(c.Request.Context(), complexID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.BuildingResponse, 0, len(buildings))
	for i := range buildings {
		items = append(items, dto.NewBuildingResponse(&buildings[i]))
	}
	c.JSON(http.StatusOK, items)
}

// UpdateBuilding handles PUT /api/manage/buildings/:id.
func (h *CatalogHandler) UpdateBuilding(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateBuilding(c.Request.Context(), req.ToBuilding(id)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteBuilding handles DELETE /api/manage/buildings/:id.
func (h *CatalogHandler) DeleteBuilding(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteBuilding(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateApartment handles POST /api/manage/apartments.
func (h *CatalogHandler) CreateApartment(c *gin.Context) {
	var req dto.ApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	apartment, err := h.facade.CreateApartment(c.Request.Context(), req.ToApartment(0))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewApartmentResponse(apartment))
}

// GetApartment handles GET /api/apartments/:id.
func (h *CatalogHandler) GetApartment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	apartment, err := h.facade.Apartment(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewApartmentResponse(apartment))
}

// ListApartments handles GET /api/apartments.
func (h *CatalogHandler) ListApartments(c *gin.Context) {
	filter := repository.ApartmentFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_desc") == "true",
		Limit:    queryInt(c, "limit", 0),
		Offset:   queryInt(c, "offset", 0),
	}
	if raw := c.Query("building_id"); raw != "" {
		if v := int64(queryInt(c, "building_id", 0)); v > 0 {
			filter.BuildingID = &v
		}
	}
	if raw := c.Query("status"); raw != "" {
		status := model.PropertyStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("apartment_type"); raw != "" {
		at := model.ApartmentType(raw)
		filter.ApartmentType = &at
	}
	if raw := c.Query("min_floor"); raw != "" {
		v := queryInt(c, "min_floor", 0)
		filter.MinFloor = &v
	}
	if raw := c.Query("max_floor"); raw != "" {
		v := queryInt(c, "max_floor", 0)
		filter.MaxFloor = &v
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &v
		}
	}

	apartments, total, err := h.facade.Apartments(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.ApartmentResponse, 0, len(apartments))
	for i := range apartments {
		items = append(items, dto.NewApartmentResponse(&apartments[i]))
	}
	c.JSON(http.StatusOK, dto.ApartmentListResponse{Items: items, Total: total})
}

// UpdateApartment handles PUT /api/manage/apartments/:id.
func (h *CatalogHandler) UpdateApartment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.ApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateApartment(c.Request.Context(), req.ToApartment(id)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteApartment handles DELETE /api/manage/apartments/:id.
func (h *CatalogHandler) DeleteApartment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteApartment(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCommercialUnit handles POST /api/manage/commercials.
func (h *CatalogHandler) CreateCommercialUnit(c *gin.Context) {
	var req dto.CommercialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	unit, err := h.facade.CreateCommercialUnit(c.Request.Context(), req.ToCommercialUnit(0))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCommercialResponse(unit))
}

// GetCommercialUnit handles GET /api/commercials/:id.
func (h *CatalogHandler) GetCommercialUnit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	unit, err := h.facade.CommercialUnit(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCommercialResponse(unit))
}

// ListCommercialUnits handles GET /api/commercials.
func (h *CatalogHandler) ListCommercialUnits(c *gin.Context) {
	filter := repository.CommercialFilter{
		SortBy:   c.Query("sort_by"),
		SortDesc: c.Query("sort_desc") == "true",
		Limit:    queryInt(c, "limit", 0),
		Offset:   queryInt(c, "offset", 0),
	}
	if raw := c.Query("building_id"); raw != "" {
		if v := int64(queryInt(c, "building_id", 0)); v > 0 {
			filter.BuildingID = &v
		}
	}
	if raw := c.Query("status"); raw != "" {
		status := model.PropertyStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("min_floor"); raw != "" {
		v := queryInt(c, "min_floor", 0)
		filter.MinFloor = &v
	}
	if raw := c.Query("max_floor"); raw != "" {
		v := queryInt(c, "max_floor", 0)
		filter.MaxFloor = &v
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &v
		}
	}

	units, total, err := h.facade.CommercialUnits(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]dto.CommercialResponse, 0, len(units))
	for i := range units {
		items = append(items, dto.NewCommercialResponse(&units[i]))
	}
	c.JSON(http.StatusOK, dto.CommercialListResponse{Items: items, Total: total})
}

// UpdateCommercialUnit handles PUT /api/manage/commercials/:id.
func (h *CatalogHandler) UpdateCommercialUnit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req dto.CommercialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateCommercialUnit(c.Request.Context(), req.ToCommercialUnit(id)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCommercialUnit handles DELETE /api/manage/commercials/:id.
func (h *CatalogHandler) DeleteCommercialUnit(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteCommercialUnit(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
