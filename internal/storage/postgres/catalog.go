package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

type complexRepository struct {
	storage *Storage
}

type buildingRepository struct {
	storage *Storage
}

type apartmentRepository struct {
	storage *Storage
}

type commercialRepository struct {
	storage *Storage
}

// --- ComplexRepository implementation ---

const complexColumns = `id, name, description, block_count, material, city, address, has_security, building_class, building_status, min_area, min_price, construction_end, main_image`

var complexSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"city":      "city",
	"min_price": "min_price",
	"min_area":  "min_area",
}

func (r *complexRepository) Create(ctx context.Context, c *model.ResidentialComplex) (*model.ResidentialComplex, error) {
	const query = `INSERT INTO residential_complex (name, description, block_count, material, city, address, has_security, building_class, building_status, min_area, min_price, construction_end, main_image)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
                   RETURNING id`
	created := *c
	err := r.storage.pool.QueryRow(ctx, query,
		c.Name, c.Description, c.BlockCount, c.Material, c.City, c.Address, c.HasSecurity,
		c.BuildingClass, c.BuildingStatus, c.MinArea, c.MinPrice, c.ConstructionEnd, c.MainImage,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *complexRepository) GetByID(ctx context.Context, id int64) (*model.ResidentialComplex, error) {
	const query = `SELECT ` + complexColumns + ` FROM residential_complex WHERE id=$1`
	return scanComplex(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *complexRepository) List(ctx context.Context, filter repository.ComplexFilter) ([]model.ResidentialComplex, int, error) {
	var b condBuilder
	if filter.City != nil {
		b.add("city = $%d", *filter.City)
	}
	if filter.BuildingClass != nil {
		b.add("building_class = $%d", *filter.BuildingClass)
	}
	if filter.BuildingStatus != nil {
		b.add("building_status = $%d", *filter.BuildingStatus)
	}
	if filter.Material != nil {
		b.add("material = $%d", *filter.Material)
	}
	if filter.MinPrice != nil {
		b.add("min_price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		b.add("min_price <= $%d", *filter.MaxPrice)
	}
	where := b.where()

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM residential_complex`+where, b.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order, err := orderBy(complexSortColumns, filter.SortBy, filter.SortDesc, "id")
	if err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + complexColumns + ` FROM residential_complex` + where + order + limitOffset(&b, filter.Limit, filter.Offset)

	rows, err := r.storage.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.ResidentialComplex
	for rows.Next() {
		c, err := scanComplex(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *complexRepository) Update(ctx context.Context, c *model.ResidentialComplex) error {
	const query = `UPDATE residential_complex SET name=$1, description=$2, block_count=$3, material=$4, city=$5, address=$6, has_security=$7, building_class=$8, building_status=$9, min_area=$10, min_price=$11, construction_end=$12, main_image=$13 WHERE id=$14`
	tag, err := r.storage.pool.Exec(ctx, query,
		c.Name, c.Description, c.BlockCount, c.Material, c.City, c.Address, c.HasSecurity,
		c.BuildingClass, c.BuildingStatus, c.MinArea, c.MinPrice, c.ConstructionEnd, c.MainImage, c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *complexRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.storage, `DELETE FROM residential_complex WHERE id=$1`, id)
}

func scanComplex(row pgx.Row) (*model.ResidentialComplex, error) {
	var c model.ResidentialComplex
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.BlockCount, &c.Material, &c.City, &c.Address,
		&c.HasSecurity, &c.BuildingClass, &c.BuildingStatus, &c.MinArea, &c.MinPrice, &c.ConstructionEnd, &c.MainImage)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- BuildingRepository implementation ---

const buildingColumns = `id, complex_id, block, description, floor_count, apartments_count, commercials_count, gross_area, elevators_count, status, construction_end`

func (r *buildingRepository) Create(ctx context.Context, building *model.Building) (*model.Building, error) {
	const query = `INSERT INTO building (complex_id, block, description, floor_count, apartments_count, commercials_count, gross_area, elevators_count, status, construction_end)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING id`
	created := *building
	err := r.storage.pool.QueryRow(ctx, query,
		building.ComplexID, building.Block, building.Description, building.FloorCount,
		building.ApartmentsCount, building.CommercialsCount, building.GrossArea,
		building.ElevatorsCount, building.Status, building.ConstructionEnd,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *buildingRepository) GetByID(ctx context.Context, id int64) (*model.Building, error) {
	const query = `SELECT ` + buildingColumns + ` FROM building WHERE id=$1`
	return scanBuilding(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *buildingRepository) ListByComplex(ctx context.Context, complexID int64) ([]model.Building, error) {
	const query = `SELECT ` + buildingColumns + ` FROM building WHERE complex_id=$1 ORDER BY block`
	rows, err := r.storage.pool.Query(ctx, query, complexID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Building
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *buildingRepository) Update(ctx context.Context, building *model.Building) error {
	const query = `UPDATE building SET complex_id=$1, block=$2, description=$3, floor_count=$4, apartments_count=$5, commercials_count=$6, gross_area=$7, elevators_count=$8, status=$9, construction_end=$10 WHERE id=$11`
	tag, err := r.storage.pool.Exec(ctx, query,
		building.ComplexID, building.Block, building.Description, building.FloorCount,
		building.ApartmentsCount, building.CommercialsCount, building.GrossArea,
		building.ElevatorsCount, building.Status, building.ConstructionEnd, building.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *buildingRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.storage, `DELETE FROM building WHERE id=$1`, id)
}

func scanBuilding(row pgx.Row) (*model.Building, error) {
	var b model.Building
	err := row.Scan(&b.ID, &b.ComplexID, &b.Block, &b.Description, &b.FloorCount, &b.ApartmentsCount,
		&b.CommercialsCount, &b.GrossArea, &b.ElevatorsCount, &b.Status, &b.ConstructionEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// --- ApartmentRepository implementation ---

const apartmentColumns = `id, building_id, number, floor, description, apartment_area, apartment_type, has_balcony, bathroom_count, kitchen_area, ceiling_height, finishing_type, price_per_sqr, total_price, status, orientation, is_corner`

var apartmentSortColumns = map[string]string{
	"id":             "id",
	"number":         "number",
	"floor":          "floor",
	"apartment_area": "apartment_area",
	"total_price":    "total_price",
	"status":         "status",
}

func (r *apartmentRepository) Create(ctx context.Context, apartment *model.Apartment) (*model.Apartment, error) {
	const query = `INSERT INTO apartment (building_id, number, floor, description, apartment_area, apartment_type, has_balcony, bathroom_count, kitchen_area, ceiling_height, finishing_type, price_per_sqr, total_price, status, orientation, is_corner)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
                   RETURNING id`
	created := *apartment
	if created.Status == "" {
		created.Status = model.PropertyStatusFree
	}
	err := r.storage.pool.QueryRow(ctx, query,
		apartment.BuildingID, apartment.Number, apartment.Floor, apartment.Description,
		apartment.ApartmentArea, apartment.ApartmentType, apartment.HasBalcony, apartment.BathroomCount,
		apartment.KitchenArea, apartment.CeilingHeight, apartment.FinishingType,
		apartment.PricePerSqr, apartment.TotalPrice, created.Status, apartment.Orientation, apartment.IsCorner,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *apartmentRepository) GetByID(ctx context.Context, id int64) (*model.Apartment, error) {
	const query = `SELECT ` + apartmentColumns + ` FROM apartment WHERE id=$1`
	return scanApartment(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *apartmentRepository) List(ctx context.Context, filter repository.ApartmentFilter) ([]model.Apartment, int, error) {
	var b condBuilder
	if filter.BuildingID != nil {
		b.add("building_id = $%d", *filter.BuildingID)
	}
	if filter.Status != nil {
		b.add("status = $%d", *filter.Status)
	}
	if filter.ApartmentType != nil {
		b.add("apartment_type = $%d", *filter.ApartmentType)
	}
	if filter.MinFloor != nil {
		b.add("floor >= $%d", *filter.MinFloor)
	}
	if filter.MaxFloor != nil {
		b.add("floor <= $%d", *filter.MaxFloor)
	}
	if filter.MinPrice != nil {
		b.add("total_price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		b.add("total_price <= $%d", *filter.MaxPrice)
	}
	where := b.where()

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM apartment`+where, b.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order, err := orderBy(apartmentSortColumns, filter.SortBy, filter.SortDesc, "id")
	if err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + apartmentColumns + ` FROM apartment` + where + order + limitOffset(&b, filter.Limit, filter.Offset)

	rows, err := r.storage.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *apartmentRepository) Update(ctx context.Context, apartment *model.Apartment) error {
	const query = `UPDATE apartment SET building_id=$1, number=$2, floor=$3, description=$4, apartment_area=$5, apartment_type=$6, has_balcony=$7, bathroom_count=$8, kitchen_area=$9, ceiling_height=$10, finishing_type=$11, price_per_sqr=$12, total_price=$13, status=$14, orientation=$15, is_corner=$16 WHERE id=$17`
	tag, err := r.storage.pool.Exec(ctx, query,
		apartment.BuildingID, apartment.Number, apartment.Floor, apartment.Description,
		apartment.ApartmentArea, apartment.ApartmentType, apartment.HasBalcony, apartment.BathroomCount,
		apartment.KitchenArea, apartment.CeilingHeight, apartment.FinishingType,
		apartment.PricePerSqr, apartment.TotalPrice, apartment.Status, apartment.Orientation,
		apartment.IsCorner, apartment.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *apartmentRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.storage, `DELETE FROM apartment WHERE id=$1`, id)
}

func scanApartment(row pgx.Row) (*model.Apartment, error) {
	var a model.Apartment
	err := row.Scan(&a.ID, &a.BuildingID, &a.Number, &a.Floor, &a.Description, &a.ApartmentArea,
		&a.ApartmentType, &a.HasBalcony, &a.BathroomCount, &a.KitchenArea, &a.CeilingHeight,
		&a.FinishingType, &a.PricePerSqr, &a.TotalPrice, &a.Status, &a.Orientation, &a.IsCorner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- CommercialUnitRepository implementation ---

const commercialColumns = `id, building_id, number, floor, space_area, ceiling_height, finishing_type, price_per_sqr, total_price, status, orientation, is_corner`

var commercialSortColumns = map[string]string{
	"id":          "id",
	"number":      "number",
	"floor":       "floor",
	"space_area":  "space_area",
	"total_price": "total_price",
	"status":      "status",
}

func (r *commercialRepository) Create(ctx context.Context, unit *model.CommercialUnit) (*model.CommercialUnit, error) {
	const query = `INSERT INTO commercial_unit (building_id, number, floor, space_area, ceiling_height, finishing_type, price_per_sqr, total_price, status, orientation, is_corner)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                   RETURNING id`
	created := *unit
	if created.Status == "" {
		created.Status = model.PropertyStatusFree
	}
	err := r.storage.pool.QueryRow(ctx, query,
		unit.BuildingID, unit.Number, unit.Floor, unit.SpaceArea, unit.CeilingHeight,
		unit.FinishingType, unit.PricePerSqr, unit.TotalPrice, created.Status,
		unit.Orientation, unit.IsCorner,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *commercialRepository) GetByID(ctx context.Context, id int64) (*model.CommercialUnit, error) {
	const query = `SELECT ` + commercialColumns + ` FROM commercial_unit WHERE id=$1`
	return scanCommercial(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *commercialRepository) List(ctx context.Context, filter repository.CommercialFilter) ([]model.CommercialUnit, int, error) {
	var b condBuilder
	if filter.BuildingID != nil {
		b.add("building_id = $%d", *filter.BuildingID)
	}
	if filter.Status != nil {
		b.add("status = $%d", *filter.Status)
	}
	if filter.MinFloor != nil {
		b.add("floor >= $%d", *filter.MinFloor)
	}
	if filter.MaxFloor != nil {
		b.add("floor <= $%d", *filter.MaxFloor)
	}
	if filter.MinPrice != nil {
		b.add("total_price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		b.add("total_price <= $%d", *filter.MaxPrice)
	}
	where := b.where()

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM commercial_unit`+where, b.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order, err := orderBy(commercialSortColumns, filter.SortBy, filter.SortDesc, "id")
	if err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + commercialColumns + ` FROM commercial_unit` + where + order + limitOffset(&b, filter.Limit, filter.Offset)

	rows, err := r.storage.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.CommercialUnit
	for rows.Next() {
		u, err := scanCommercial(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *commercialRepository) Update(ctx context.Context, unit *model.CommercialUnit) error {
	const query = `UPDATE commercial_unit SET building_id=$1, number=$2, floor=$3, space_area=$4, ceiling_height=$5, finishing_type=$6, price_per_sqr=$7, total_price=$8, status=$9, orientation=$10, is_corner=$11 WHERE id=$12`
	tag, err := r.storage.pool.Exec(ctx, query,
		unit.BuildingID, unit.Number, unit.Floor, unit.SpaceArea, unit.CeilingHeight,
		unit.FinishingType, unit.PricePerSqr, unit.TotalPrice, unit.Status,
		unit.Orientation, unit.IsCorner, unit.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *commercialRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.storage, `DELETE FROM commercial_unit WHERE id=$1`, id)
}

func scanCommercial(row pgx.Row) (*model.CommercialUnit, error) {
	var u model.CommercialUnit
	err := row.Scan(&u.ID, &u.BuildingID, &u.Number, &u.Floor, &u.SpaceArea, &u.CeilingHeight,
		&u.FinishingType, &u.PricePerSqr, &u.TotalPrice, &u.Status, &u.Orientation, &u.IsCorner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func execDelete(ctx context.Context, s *Storage, query string, id int64) error {
	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
