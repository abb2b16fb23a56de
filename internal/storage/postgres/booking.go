package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/baspana/backend/internal/domain/errors"
	"github.com/baspana/backend/internal/domain/model"
	"github.com/baspana/backend/internal/domain/repository"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, user_id, object_id, object_kind, order_kind, total_price, order_date, payment_kind, booking_deposit, booking_expiration_date, status`

var orderSortColumns = map[string]string{
	"id":                      "id",
	"order_date":              "order_date",
	"total_price":             "total_price",
	"booking_expiration_date": "booking_expiration_date",
	"status":                  "status",
}

func propertyTable(kind model.ObjectKind) (string, error) {
	switch kind {
	case model.ObjectKindApartment:
		return "apartment", nil
	case model.ObjectKindCommercial:
		return "commercial_unit", nil
	default:
		return "", domainErrors.ErrNotFound
	}
}

// lockProperty reads the target unit's status with its row locked for the
// remainder of the transaction. Two concurrent bookings against the same unit
// serialize here.
func lockProperty(ctx context.Context, tx pgx.Tx, objectID int64, kind model.ObjectKind) (*model.PropertyRef, error) {
	table, err := propertyTable(kind)
	if err != nil {
		return nil, err
	}
	var status model.PropertyStatus
	if err := tx.QueryRow(ctx, `SELECT status FROM `+table+` WHERE id=$1 FOR UPDATE`, objectID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &model.PropertyRef{ID: objectID, Kind: kind, Status: status}, nil
}

func setPropertyStatus(ctx context.Context, tx pgx.Tx, objectID int64, kind model.ObjectKind, status model.PropertyStatus) error {
	table, err := propertyTable(kind)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE `+table+` SET status=$1 WHERE id=$2`, status, objectID)
	return err
}

func (r *orderRepository) Create(ctx context.Context, req repository.NewOrder) (*model.Order, error) {
	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := model.Order{
		UserID:                req.UserID,
		ObjectID:              req.ObjectID,
		ObjectKind:            req.ObjectKind,
		OrderKind:             req.OrderKind,
		TotalPrice:            req.TotalPrice,
		PaymentKind:           req.PaymentKind,
		BookingDeposit:        req.BookingDeposit,
		BookingExpirationDate: req.BookingExpirationDate,
		Status:                status,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		ref, err := lockProperty(ctx, tx, req.ObjectID, req.ObjectKind)
		if err != nil {
			return err
		}
		if ref.Status != model.PropertyStatusFree {
			return domainErrors.ErrPropertyUnavailable
		}

		const insert = `INSERT INTO orders (user_id, object_id, object_kind, order_kind, total_price, payment_kind, booking_deposit, booking_expiration_date, status)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                        RETURNING id, order_date`
		if err := tx.QueryRow(ctx, insert,
			req.UserID, req.ObjectID, req.ObjectKind, req.OrderKind, req.TotalPrice,
			req.PaymentKind, req.BookingDeposit, req.BookingExpirationDate, status,
		).Scan(&order.ID, &order.OrderDate); err != nil {
			return err
		}

		if propertyStatus, applies := status.PropertyStatusFor(); applies && propertyStatus != ref.Status {
			return setPropertyStatus(ctx, tx, req.ObjectID, req.ObjectKind, propertyStatus)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) Update(ctx context.Context, id int64, update model.OrderUpdate) (*model.Order, error) {
	var updated model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const sel = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		order, err := scanOrder(tx.QueryRow(ctx, sel, id))
		if err != nil {
			return err
		}
		oldStatus := order.Status

		// The target stays the stored order's property unless the payload
		// explicitly moves it; a bare status update can never be redirected.
		targetID, targetKind := order.ObjectID, order.ObjectKind
		if update.Retargets() {
			targetID, targetKind = *update.ObjectID, *update.ObjectKind
		}

		ref, err := lockProperty(ctx, tx, targetID, targetKind)
		if err != nil {
			return err
		}

		order.ObjectID, order.ObjectKind = targetID, targetKind
		if update.OrderKind != nil {
			order.OrderKind = *update.OrderKind
		}
		if update.TotalPrice != nil {
			order.TotalPrice = *update.TotalPrice
		}
		if update.PaymentKind != nil {
			order.PaymentKind = *update.PaymentKind
		}
		if update.BookingDeposit != nil {
			order.BookingDeposit = *update.BookingDeposit
		}
		if update.BookingExpirationDate != nil {
			order.BookingExpirationDate = *update.BookingExpirationDate
		}
		if update.Status != nil {
			order.Status = *update.Status
		}

		const up = `UPDATE orders SET object_id=$1, object_kind=$2, order_kind=$3, total_price=$4, payment_kind=$5, booking_deposit=$6, booking_expiration_date=$7, status=$8 WHERE id=$9`
		if _, err := tx.Exec(ctx, up,
			order.ObjectID, order.ObjectKind, order.OrderKind, order.TotalPrice,
			order.PaymentKind, order.BookingDeposit, order.BookingExpirationDate, order.Status, id,
		); err != nil {
			return err
		}

		if order.Status != oldStatus {
			if propertyStatus, applies := order.Status.PropertyStatusFor(); applies && propertyStatus != ref.Status {
				if err := setPropertyStatus(ctx, tx, targetID, targetKind, propertyStatus); err != nil {
					return err
				}
			}
		}

		updated = *order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	var b condBuilder
	if filter.UserID != nil {
		b.add("user_id = $%d", *filter.UserID)
	}
	if filter.ObjectID != nil {
		b.add("object_id = $%d", *filter.ObjectID)
	}
	if filter.ObjectKind != nil {
		b.add("object_kind = $%d", *filter.ObjectKind)
	}
	if filter.OrderKind != nil {
		b.add("order_kind = $%d", *filter.OrderKind)
	}
	if filter.Status != nil {
		b.add("status = $%d", *filter.Status)
	}
	if filter.PaymentKind != nil {
		b.add("payment_kind = $%d", *filter.PaymentKind)
	}
	if filter.MinTotalPrice != nil {
		b.add("total_price >= $%d", *filter.MinTotalPrice)
	}
	if filter.MaxTotalPrice != nil {
		b.add("total_price <= $%d", *filter.MaxTotalPrice)
	}
	if filter.FromExpiration != nil {
		b.add("booking_expiration_date >= $%d", *filter.FromExpiration)
	}
	if filter.ToExpiration != nil {
		b.add("booking_expiration_date <= $%d", *filter.ToExpiration)
	}

	where := b.where()

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, b.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order, err := orderBy(orderSortColumns, filter.SortBy, filter.SortDesc, "id")
	if err != nil {
		return nil, 0, err
	}
	query := `SELECT ` + orderColumns + ` FROM orders` + where + order + limitOffset(&b, filter.Limit, filter.Offset)

	rows, err := r.storage.pool.Query(ctx, query, b.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// ExpireBookings cancels every order whose expiration date passed and frees
// the linked unit, all in one transaction. Only Pending and Offering orders
// qualify, so back-to-back sweeps are idempotent.
func (r *orderRepository) ExpireBookings(ctx context.Context, asOf time.Time) (int, error) {
	var count int
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const sel = `SELECT id, object_id, object_kind FROM orders
                     WHERE booking_expiration_date < $1 AND status IN ('Pending', 'Offering')
                     FOR UPDATE`
		rows, err := tx.Query(ctx, sel, asOf)
		if err != nil {
			return err
		}

		type expiredOrder struct {
			id         int64
			objectID   int64
			objectKind model.ObjectKind
		}
		var expired []expiredOrder
		for rows.Next() {
			var e expiredOrder
			if err := rows.Scan(&e.id, &e.objectID, &e.objectKind); err != nil {
				rows.Close()
				return err
			}
			expired = append(expired, e)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, e := range expired {
			if _, err := tx.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, model.OrderStatusCancelled, e.id); err != nil {
				return err
			}
			// Orders referencing a since-deleted unit still expire; the
			// property update then touches zero rows.
			if e.objectKind.Bookable() {
				if err := setPropertyStatus(ctx, tx, e.objectID, e.objectKind, model.PropertyStatusFree); err != nil {
					return err
				}
			}
		}

		count = len(expired)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.ObjectID, &o.ObjectKind, &o.OrderKind, &o.TotalPrice,
		&o.OrderDate, &o.PaymentKind, &o.BookingDeposit, &o.BookingExpirationDate, &o.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}
