package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"sendit/internal/data/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrderRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs("1 Pickup St", "2 Drop Ave", "pending", int64(4), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	order := &entity.Order{PickupAddress: "1 Pickup St", DeliveryAddress: "2 Drop Ave", Status: "pending", UserID: 4}
	require.NoError(t, repo.Create(context.Background(), order))
	assert.Equal(t, int64(10), order.ID)
}

func TestOrderRepository_Create_ForeignKeyViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "orders_user_id_fkey"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &entity.Order{UserID: 999})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "orders_user_id_fkey")
}

func TestOrderRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(context.Background(), 8), ErrNotFound)
}

func TestFeedbackRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db, zap.NewNop())
	ts := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, rating, comments, user_id, created_at, updated_at FROM feedback ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(feedbackColumns).
			AddRow(1, 5, "fast delivery", 2, ts, ts).
			AddRow(2, 3, "ok", 3, ts, ts))

	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Rating)
	assert.Equal(t, "ok", items[1].Comments)
}

func TestFeedbackRepository_FindAll_ScanError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db, zap.NewNop())

	mock.ExpectQuery(regexp.QuoteMeta("FROM feedback")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	items, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.Nil(t, items)
}

func TestParcelRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParcelRepository(db, zap.NewNop())
	ts := time.Now().UTC()
	weight := 2.5
	dimensions := "30x20x10"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE parcels SET weight = $1, dimensions = $2, updated_at = $3 WHERE id = $4")).
		WithArgs(2.5, "30x20x10", sqlmock.AnyArg(), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM parcels WHERE id = $1")).
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows(parcelColumns).AddRow(6, "books", 2.5, "30x20x10", 1, ts, ts))
	mock.ExpectCommit()

	parcel, err := repo.Update(context.Background(), 6, entity.ParcelPatch{Weight: &weight, Dimensions: &dimensions})
	require.NoError(t, err)
	assert.Equal(t, "books", parcel.Description)
	assert.Equal(t, 2.5, parcel.Weight)
}

func TestParcelRepository_Update_InvalidOrder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParcelRepository(db, zap.NewNop())
	orderID := int64(404)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE parcels SET order_id = $1")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 6, entity.ParcelPatch{OrderID: &orderID})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestProfileRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db, zap.NewNop())
	ts := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, bio, profile_picture, created_at, updated_at FROM profiles WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(1, 9, "courier in Nairobi", "me.png", ts, ts))

	profile, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), profile.UserID)
	assert.Equal(t, "me.png", profile.ProfilePicture)
}

func TestProfileRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM profiles WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 2))
}

func TestClassifyError(t *testing.T) {
	t.Run("sqlite foreign key", func(t *testing.T) {
		err := classifyError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("postgres unique violation is passed through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
		err := classifyError(pgErr)
		assert.NotErrorIs(t, err, ErrInvalidReference)
		assert.Same(t, pgErr, err)
	})

	t.Run("unknown error", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Equal(t, plain, classifyError(plain))
	})
}
