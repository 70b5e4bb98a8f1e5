package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sendit/internal/data/entity"
	"sendit/pkg/database"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

var orderColumns = []string{"id", "pickup_address", "delivery_address", "status", "user_id", "created_at", "updated_at"}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindAll(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, id int64, patch entity.OrderPatch) (*entity.Order, error)
	Delete(ctx context.Context, id int64) error
}

type orderRepository struct {
	db  *database.DB
	log *zap.Logger
}

func NewOrderRepository(db *database.DB, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	ts := now()

	query, args, err := r.db.Builder().
		Insert("orders").
		Columns("pickup_address", "delivery_address", "status", "user_id", "created_at", "updated_at").
		Values(order.PickupAddress, order.DeliveryAddress, order.Status, order.UserID, ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert order: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&order.ID)
	})
	if err != nil {
		r.log.Error("Failed to create order", zap.Error(err), zap.Int64("user_id", order.UserID))
		return fmt.Errorf("create order: %w", classifyError(err))
	}

	order.CreatedAt = ts
	order.UpdatedAt = ts
	return nil
}

// FindByID returns nil, nil when the row does not exist
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := r.findOne(ctx, r.db, id)
	if err != nil {
		r.log.Error("Failed to find order by ID", zap.Error(err), zap.Int64("order_id", id))
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}
	return order, nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	query, args, err := r.db.Builder().Select(orderColumns...).From("orders").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select orders: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get all orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		items = append(items, order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return items, nil
}

func (r *orderRepository) Update(ctx context.Context, id int64, patch entity.OrderPatch) (*entity.Order, error) {
	q := r.db.Builder().Update("orders")
	if patch.PickupAddress != nil {
		q = q.Set("pickup_address", *patch.PickupAddress)
	}
	if patch.DeliveryAddress != nil {
		q = q.Set("delivery_address", *patch.DeliveryAddress)
	}
	if patch.Status != nil {
		q = q.Set("status", *patch.Status)
	}
	if patch.UserID != nil {
		q = q.Set("user_id", *patch.UserID)
	}

	query, args, err := q.Set("updated_at", now()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update order: %w", err)
	}

	var updated *entity.Order
	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		if err := execAffectingOne(ctx, tx, query, args); err != nil {
			return err
		}

		var err error
		updated, err = r.findOne(ctx, tx, id)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to update order", zap.Error(err), zap.Int64("order_id", id))
		}
		return nil, fmt.Errorf("update order %d: %w", id, classifyError(err))
	}

	return updated, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder().Delete("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete order: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return execAffectingOne(ctx, tx, query, args)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to delete order", zap.Error(err), zap.Int64("order_id", id))
		}
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	r.log.Info("Order deleted", zap.Int64("order_id", id))
	return nil
}

func (r *orderRepository) findOne(ctx context.Context, db database.DBTX, id int64) (*entity.Order, error) {
	query, args, err := r.db.Builder().Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return order, err
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.PickupAddress,
		&order.DeliveryAddress,
		&order.Status,
		&order.UserID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
