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

var feedbackColumns = []string{"id", "rating", "comments", "user_id", "created_at", "updated_at"}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id int64) (*entity.Feedback, error)
	FindAll(ctx context.Context) ([]*entity.Feedback, error)
	Update(ctx context.Context, id int64, patch entity.FeedbackPatch) (*entity.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

type feedbackRepository struct {
	db  *database.DB
	log *zap.Logger
}

func NewFeedbackRepository(db *database.DB, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	ts := now()

	query, args, err := r.db.Builder().
		Insert("feedback").
		Columns("rating", "comments", "user_id", "created_at", "updated_at").
		Values(feedback.Rating, feedback.Comments, feedback.UserID, ts, ts).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert feedback: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&feedback.ID)
	})
	if err != nil {
		r.log.Error("Failed to create feedback", zap.Error(err), zap.Int64("user_id", feedback.UserID))
		return fmt.Errorf("create feedback: %w", classifyError(err))
	}

	feedback.CreatedAt = ts
	feedback.UpdatedAt = ts
	return nil
}

// FindByID returns nil, nil when the row does not exist
func (r *feedbackRepository) FindByID(ctx context.Context, id int64) (*entity.Feedback, error) {
	feedback, err := r.findOne(ctx, r.db, id)
	if err != nil {
		r.log.Error("Failed to find feedback by ID", zap.Error(err), zap.Int64("feedback_id", id))
		return nil, fmt.Errorf("find feedback by ID %d: %w", id, err)
	}
	return feedback, nil
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	query, args, err := r.db.Builder().Select(feedbackColumns...).From("feedback").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select feedback: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to get all feedback", zap.Error(err))
		return nil, fmt.Errorf("find all feedback: %w", err)
	}
	defer rows.Close()

	items := make([]*entity.Feedback, 0)
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			r.log.Error("Failed to scan feedback row", zap.Error(err))
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		items = append(items, feedback)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate feedback rows: %w", err)
	}

	return items, nil
}

func (r *feedbackRepository) Update(ctx context.Context, id int64, patch entity.FeedbackPatch) (*entity.Feedback, error) {
	q := r.db.Builder().Update("feedback")
	if patch.Rating != nil {
		q = q.Set("rating", *patch.Rating)
	}
	if patch.Comments != nil {
		q = q.Set("comments", *patch.Comments)
	}
	if patch.UserID != nil {
		q = q.Set("user_id", *patch.UserID)
	}

	query, args, err := q.Set("updated_at", now()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update feedback: %w", err)
	}

	var updated *entity.Feedback
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
			r.log.Error("Failed to update feedback", zap.Error(err), zap.Int64("feedback_id", id))
		}
		return nil, fmt.Errorf("update feedback %d: %w", id, classifyError(err))
	}

	return updated, nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.db.Builder().Delete("feedback").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete feedback: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx database.DBTX) error {
		return execAffectingOne(ctx, tx, query, args)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.log.Error("Failed to delete feedback", zap.Error(err), zap.Int64("feedback_id", id))
		}
		return fmt.Errorf("delete feedback %d: %w", id, err)
	}

	r.log.Info("Feedback deleted", zap.Int64("feedback_id", id))
	return nil
}

func (r *feedbackRepository) findOne(ctx context.Context, db database.DBTX, id int64) (*entity.Feedback, error) {
	query, args, err := r.db.Builder().Select(feedbackColumns...).From("feedback").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}

	feedback, err := scanFeedback(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return feedback, err
}

func scanFeedback(row rowScanner) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := row.Scan(
		&feedback.ID,
		&feedback.Rating,
		&feedback.Comments,
		&feedback.UserID,
		&feedback.CreatedAt,
		&feedback.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}
