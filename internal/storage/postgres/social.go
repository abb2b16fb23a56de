package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

type reviewRepository struct {
	storage *Storage
}

type favoriteRepository struct {
	storage *Storage
}

type promotionRepository struct {
	storage *Storage
}

type imageRepository struct {
	storage *Storage
}

// --- ReviewRepository implementation ---

func (r *reviewRepository) Create(ctx context.Context, review repository.NewReview) (*model.Review, error) {
	const query = `INSERT INTO review (complex_id, user_id, author_name, rating, comment)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	created := model.Review{
		ComplexID:  review.ComplexID,
		UserID:     review.UserID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Comment:    review.Comment,
	}
	err := r.storage.pool.QueryRow(ctx, query,
		review.ComplexID, review.UserID, review.AuthorName, review.Rating, review.Comment,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *reviewRepository) ListByComplex(ctx context.Context, complexID int64) ([]model.Review, error) {
	const query = `SELECT id, complex_id, user_id, author_name, rating, comment, created_at
                   FROM review WHERE complex_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, complexID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.ComplexID, &rv.UserID, &rv.AuthorName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.storage, `DELETE FROM review WHERE id=$1`, id)
}

// --- FavoriteRepository implementation ---

func (r *favoriteRepository) Add(ctx context.Context, userID, objectID int64, kind model.ObjectKind) (*model.Favorite, error) {
	const query = `INSERT INTO favorites (user_id, object_id, object_kind)
                   VALUES ($1, $2, $3)
                   RETURNING id, created_at`
	fav := model.Favorite{UserID: userID, ObjectID: objectID, ObjectKind: kind}
	err := r.storage.pool.QueryRow(ctx, query, userID, objectID, kind).Scan(&fav.ID, &fav.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.Favorite, error) {
	const query = `SELECT id, user_id, object_id, object_kind, created_at
                   FROM favorites WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ObjectID, &f.ObjectKind, &f.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Remove is scoped by owner so one user cannot delete another's favorite.
func (r *favoriteRepository) Remove(ctx context.Context, userID, favoriteID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM favorites WHERE id=$1 AND user_id=$2`, favoriteID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- PromotionRepository implementation ---

const promotionColumns = `id, title, description, discount_percentage, start_date, end_date, image_url, complex_id, is_active, created_at`

func (r *promotionRepository) Create(ctx context.Context, promo *model.Promotion) (*model.Promotion, error) {
	const query = `INSERT INTO promotions (title, description, discount_percentage, start_date, end_date, image_url, complex_id, is_active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at`
	created := *promo
	err := r.storage.pool.QueryRow(ctx, query,
		promo.Title, promo.Description, promo.DiscountPercentage, promo.StartDate, promo.EndDate,
		promo.ImageURL, promo.ComplexID, promo.IsActive,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *promotionRepository) GetByID(ctx context.Context, id int64) (*model.Promotion, error) {
	const query = `SELECT ` + promotionColumns + ` FROM promotions WHERE id=$1`
	return scanPromotion(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *promotionRepository) ListActive(ctx context.Context) ([]model.Promotion, error) {
	const query = `SELECT ` + promotionColumns + ` FROM promotions
                   WHERE is_active AND start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE
                   ORDER BY start_date DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *promotionRepository) Update(ctx context.Context, promo *model.Promotion) error {
	const query = `UPDATE promotions SET title=$1, description=$2, discount_percentage=$3, start_date=$4, end_date=$5, image_url=$6, complex_id=$7, is_active=$8 WHERE id=$9`
	tag, err := r.storage.pool.Exec(ctx, query,
		promo.Title, promo.Description, promo.DiscountPercentage, promo.StartDate, promo.EndDate,
		promo.ImageURL, promo.ComplexID, promo.IsActive, promo.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *promotionRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.storage, `DELETE FROM promotions WHERE id=$1`, id)
}

func scanPromotion(row pgx.Row) (*model.Promotion, error) {
	var p model.Promotion
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.DiscountPercentage, &p.StartDate, &p.EndDate,
		&p.ImageURL, &p.ComplexID, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// --- ImageRepository implementation ---

func (r *imageRepository) Create(ctx context.Context, image repository.NewImage) (*model.Image, error) {
	const query = `INSERT INTO image (object_id, object_kind, url, remote_id)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, uploaded_at`
	created := model.Image{
		ObjectID:   image.ObjectID,
		ObjectKind: image.ObjectKind,
		URL:        image.URL,
		RemoteID:   image.RemoteID,
	}
	err := r.storage.pool.QueryRow(ctx, query, image.ObjectID, image.ObjectKind, image.URL, image.RemoteID).
		Scan(&created.ID, &created.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *imageRepository) GetByID(ctx context.Context, id int64) (*model.Image, error) {
	const query = `SELECT id, object_id, object_kind, url, remote_id, uploaded_at FROM image WHERE id=$1`
	var img model.Image
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&img.ID, &img.ObjectID, &img.ObjectKind, &img.URL, &img.RemoteID, &img.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &img, nil
}

func (r *imageRepository) ListByObject(ctx context.Context, objectID int64, kind model.ObjectKind) ([]model.Image, error) {
	const query = `SELECT id, object_id, object_kind, url, remote_id, uploaded_at
                   FROM image WHERE object_id=$1 AND object_kind=$2 ORDER BY uploaded_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, objectID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Image
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.ObjectID, &img.ObjectKind, &img.URL, &img.RemoteID, &img.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *imageRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.storage, `DELETE FROM image WHERE id=$1`, id)
}
