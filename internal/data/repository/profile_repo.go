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

var profileColumns = []string{"id", "user_id", "bio", "profile_picture", "created_at", "updated_at"}

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id int64) (*entity.Profile, error)
	FindAll(ctx context.Context) ([]*entity.Profile, error)
	Update(ctx context.Context, id int64, patch entity.ProfilePatch) (*entity.Profile, error)
	Delete(ctx context.Context, id int64) error
}

type profileRepository struct {
	db  *database.DB
	log *zap.Logger
}

func NewProfileRepository(db *database.DB, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	ts := now()

	query, args, err := r.db.Builder().
		Insert("profiles").
		Columns("user_id", "bio", "profile_picture", "created_at", "updated_at").
		Values(profile.UserID, profile.Bio, profile.ProfilePicture, ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert profile: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&profile.ID)
	})
	if err != nil {
		r.log.Error("Failed to create profile", zap.Error(err), zap.Int64("user_id", profile.UserID))
		return fmt.Errorf("create profile: %w", classifyError(err))
	}

	profile.CreatedAt = ts
	profile.UpdatedAt = ts
	return nil
}

// FindByID returns nil, nil when the row does not exist
func (r *profileRepository) FindByID(ctx context.Context, id int64) (*entity.Profile, error) {
	profile, err := r.findOne(ctx, r.db, id)
	if err != nil {
		r.log.Error("Failed to find profile by ID", zap.Error(err), zap.Int64("profile_id", id))
		return nil, fmt.Errorf("find profile by ID %d: %w", id, err)
	}
	return profile, nil
}

func (r *profileRepository) FindAll(ctx context.Context) ([]*entity.Profile, error) {
	query, args, err := r.db.Builder().Select(profileColumns...).From("profiles").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select profiles: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get all profiles", zap.Error(err))
		return nil, fmt.Errorf("find all profiles: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Profile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			r.log.Error("Failed to scan profile row", zap.Error(err))
			return nil, fmt.Errorf("scan profile row: %w", err)
		}
		items = append(items, profile)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate profiles rows: %w", err)
	}

	return items, nil
}

func (r *profileRepository) Update(ctx context.Context, id int64, patch entity.ProfilePatch) (*entity.Profile, error) {
	q := r.db.Builder().Update("profiles")
	if patch.UserID != nil {
		q = q.Set("user_id", *patch.UserID)
	}
	if patch.Bio != nil {
		q = q.Set("bio", *patch.Bio)
	}
	if patch.ProfilePicture != nil {
		q = q.Set("profile_picture", *patch.ProfilePicture)
	}

	query, args, err := q.Set("updated_at", now()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update profile: %w", err)
	}

	var updated *entity.Profile
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
			r.log.Error("Failed to update profile", zap.Error(err), zap.Int64("profile_id", id))
		}
		return nil, fmt.Errorf("update profile %d: %w", id, classifyError(err))
	}

	return updated, nil
}

func (r *profileRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder().Delete("profiles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete profile: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return execAffectingOne(ctx, tx, query, args)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to delete profile", zap.Error(err), zap.Int64("profile_id", id))
		}
		return fmt.Errorf("delete profile %d: %w", id, err)
	}

	r.log.Info("Profile deleted", zap.Int64("profile_id", id))
	return nil
}

func (r *profileRepository) findOne(ctx context.Context, db database.DBTX, id int64) (*entity.Profile, error) {
	query, args, err := r.db.Builder().Select(profileColumns...).From("profiles").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	profile, err := scanProfile(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return profile, err
}

func scanProfile(row rowScanner) (*entity.Profile, error) {
	var profile entity.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Bio,
		&profile.ProfilePicture,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
