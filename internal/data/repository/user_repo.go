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

var userColumns = []string{"id", "email", "username", "role", "password", "created_at", "updated_at"}

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db  *database.DB
	log *zap.Logger
}

func NewUserRepository(db *database.DB, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user and fills in its ID and timestamps.
// The insert runs in its own transaction, rolled back on any failure.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	ts := now()

	query, args, err := r.db.Builder().
		Insert("users").
		Columns("email", "username", "role", "password", "created_at", "updated_at").
		Values(user.Email, user.Username, user.Role, user.PasswordHash, ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&user.ID)
	})
	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
			zap.String("username", user.Username),
		)
		return fmt.Errorf("create user %s: %w", user.Email, classifyError(err))
	}

	user.CreatedAt = ts
	user.UpdatedAt = ts
	return nil
}

// FindByID returns nil, nil when no user has the given ID
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := r.findOne(ctx, r.db, sq.Eq{"id": id})
	if err != nil {
		r.log.Error("Failed to find user by ID", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("find user by ID %d: %w", id, err)
	}
	return user, nil
}

// FindByEmail returns nil, nil when the e-mail is not registered
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := r.findOne(ctx, r.db, sq.Eq{"email": email})
	if err != nil {
		r.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}
	return user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query, args, err := r.db.Builder().Select(userColumns...).From("users").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select users: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

// Update overwrites only the columns set in patch and returns the stored row.
func (r *userRepository) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	q := r.db.Builder().Update("users")
	if patch.Email != nil {
		q = q.Set("email", *patch.Email)
	}
	if patch.Username != nil {
		q = q.Set("username", *patch.Username)
	}
	if patch.Role != nil {
		q = q.Set("role", *patch.Role)
	}
	if patch.PasswordHash != nil {
		q = q.Set("password", *patch.PasswordHash)
	}

	query, args, err := q.Set("updated_at", now()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var updated *entity.User
	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		if err := execAffectingOne(ctx, tx, query, args); err != nil {
			return err
		}

		var err error
		updated, err = r.findOne(ctx, tx, sq.Eq{"id": id})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", id))
		}
		return nil, fmt.Errorf("update user %d: %w", id, classifyError(err))
	}

	return updated, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder().Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return execAffectingOne(ctx, tx, query, args)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", id))
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	r.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

func (r *userRepository) findOne(ctx context.Context, db database.DBTX, where sq.Eq) (*entity.User, error) {
	query, args, err := r.db.Builder().Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return user, err
}

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Role,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
