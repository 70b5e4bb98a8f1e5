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

var parcelColumns = []string{"id", "description", "weight", "dimensions", "order_id", "created_at", "updated_at"}

type ParcelRepository interface {
	Create(ctx context.Context, parcel *entity.Parcel) error
	FindByID(ctx context.Context, id int64) (*entity.Parcel, error)
	FindAll(ctx context.Context) ([]*entity.Parcel, error)
	Update(ctx context.Context, id int64, patch entity.ParcelPatch) (*entity.Parcel, error)
	Delete(ctx context.Context, id int64) error
}

type parcelRepository struct {
	db  *database.DB
	log *zap.Logger
}

func NewParcelRepository(db *database.DB, log *zap.Logger) ParcelRepository {
	return &parcelRepository{
		db:  db,
		log: log.With(zap.String("repository", "parcel")),
	}
}

func (r *parcelRepository) Create(ctx context.Context, parcel *entity.Parcel) error {
	ts := now()

	query, args, err := r.db.Builder().
		Insert("parcels").
		Columns("description", "weight", "dimensions", "order_id", "created_at", "updated_at").
		Values(parcel.Description, parcel.Weight, parcel.Dimensions, parcel.OrderID, ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert parcel: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&parcel.ID)
	})
	if err != nil {
		r.log.Error("Failed to create parcel", zap.Error(err), zap.Int64("order_id", parcel.OrderID))
		return fmt.Errorf("create parcel: %w", classifyError(err))
	}

	parcel.CreatedAt = ts
	parcel.UpdatedAt = ts
	return nil
}

// FindByID returns nil, nil when the row does not exist
func (r *parcelRepository) FindByID(ctx context.Context, id int64) (*entity.Parcel, error) {
	parcel, err := r.findOne(ctx, r.db, id)
	if err != nil {
		r.log.Error("Failed to find parcel by ID", zap.Error(err), zap.Int64("parcel_id", id))
		return nil, fmt.Errorf("find parcel by ID %d: %w", id, err)
	}
	return parcel, nil
}

func (r *parcelRepository) FindAll(ctx context.Context) ([]*entity.Parcel, error) {
	query, args, err := r.db.Builder().Select(parcelColumns...).From("parcels").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select parcels: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get all parcels", zap.Error(err))
		return nil, fmt.Errorf("find all parcels: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Parcel, 0)
	for rows.Next() {
		parcel, err := scanParcel(rows)
		if err != nil {
			r.log.Error("Failed to scan parcel row", zap.Error(err))
			return nil, fmt.Errorf("scan parcel row: %w", err)
		}
		items = append(items, parcel)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate parcels rows: %w", err)
	}

	return items, nil
}

func (r *parcelRepository) Update(ctx context.Context, id int64, patch entity.ParcelPatch) (*entity.Parcel, error) {
	q := r.db.Builder().Update("parcels")
	if patch.Description != nil {
		q = q.Set("description", *patch.Description)
	}
	if patch.Weight != nil {
		q = q.Set("weight", *patch.Weight)
	}
	if patch.Dimensions != nil {
		q = q.Set("dimensions", *patch.Dimensions)
	}
	if patch.OrderID != nil {
		q = q.Set("order_id", *patch.OrderID)
	}

	query, args, err := q.Set("updated_at", now()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update parcel: %w", err)
	}

	var updated *entity.Parcel
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
			r.log.Error("Failed to update parcel", zap.Error(err), zap.Int64("parcel_id", id))
		}
		return nil, fmt.Errorf("update parcel %d: %w", id, classifyError(err))
	}

	return updated, nil
}

func (r *parcelRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder().Delete("parcels").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete parcel: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return execAffectingOne(ctx, tx, query, args)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to delete parcel", zap.Error(err), zap.Int64("parcel_id", id))
		}
		return fmt.Errorf("delete parcel %d: %w", id, err)
	}

	r.log.Info("Parcel deleted", zap.Int64("parcel_id", id))
	return nil
}

func (r *parcelRepository) findOne(ctx context.Context, db database.DBTX, id int64) (*entity.Parcel, error) {
	query, args, err := r.db.Builder().Select(parcelColumns...).From("parcels").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	parcel, err := scanParcel(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return parcel, err
}

func scanParcel(row rowScanner) (*entity.Parcel, error) {
	var parcel entity.Parcel
	err := row.Scan(
		&parcel.ID,
		&parcel.Description,
		&parcel.Weight,
		&parcel.Dimensions,
		&parcel.OrderID,
		&parcel.CreatedAt,
		&parcel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &parcel, nil
}
