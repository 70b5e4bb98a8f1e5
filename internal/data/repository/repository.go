package repository

import (
	"context"
	"time"

	"sendit/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Order    OrderRepository
	Feedback FeedbackRepository
	Parcel   ParcelRepository
	Profile  ProfileRepository
}

func NewRepository(db *database.DB, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Order:    NewOrderRepository(db, log),
		Feedback: NewFeedbackRepository(db, log),
		Parcel:   NewParcelRepository(db, log),
		Profile:  NewProfileRepository(db, log),
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// now returns the timestamp stored in created_at/updated_at columns.
// Postgres keeps microseconds, so the value is truncated to match what is read back.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// execAffectingOne runs a write and reports ErrNotFound when it touched no rows
func execAffectingOne(ctx context.Context, db database.DBTX, query string, args []any) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
