package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tablenavi/internal/domain"
)

var _ domain.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo stores restaurant reviews in SQLite.
type ReviewRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewReviewRepo creates a new ReviewRepo.
func NewReviewRepo(writeDB, readDB *sql.DB) *ReviewRepo {
	return &ReviewRepo{writeDB: writeDB, readDB: readDB}
}

// Create inserts a review.
func (r *ReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := review.Validate(); err != nil {
		return nil, err
	}
	res, err := r.writeDB.ExecContext(ctx, `
		INSERT INTO reviews (restaurant_id, member_id, score, content)
		VALUES (?, ?, ?, ?)
	`, review.RestaurantID, review.MemberID, review.Score, review.Content)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a review by ID.
func (r *ReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var review domain.Review
	err := r.readDB.QueryRowContext(ctx, `
		SELECT id, restaurant_id, member_id, score, content, created_at, updated_at
		FROM reviews WHERE id = ?
	`, id).Scan(
		&review.ID, &review.RestaurantID, &review.MemberID,
		&review.Score, &review.Content, &review.CreatedAt, &review.UpdatedAt,
	)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &review, nil
}

// Update rewrites the score and content of an existing review.
func (r *ReviewRepo) Update(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := review.Validate(); err != nil {
		return nil, err
	}
	res, err := r.writeDB.ExecContext(ctx, `
		UPDATE reviews SET score = ?, content = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, review.Score, review.Content, review.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound("review %d not found", review.ID)
	}
	return r.GetByID(ctx, review.ID)
}

// Delete removes a review.
func (r *ReviewRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.writeDB.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound("review %d not found", id)
	}
	return nil
}

// ListForRestaurant returns reviews newest first with the total count.
func (r *ReviewRepo) ListForRestaurant(ctx context.Context, restaurantID int64, page domain.PageRequest) ([]domain.Review, int64, error) {
	var total int64
	if err := r.readDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reviews WHERE restaurant_id = ?`, restaurantID,
	).Scan(&total); err != nil {
		return nil, 0, mapDBError(err)
	}

	reviews, err := r.listReviews(ctx, `
		SELECT id, restaurant_id, member_id, score, content, created_at, updated_at
		FROM reviews
		WHERE restaurant_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, restaurantID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// ListNewest returns at most limit newest reviews, no total.
func (r *ReviewRepo) ListNewest(ctx context.Context, restaurantID int64, limit int) ([]domain.Review, error) {
	return r.listReviews(ctx, `
		SELECT id, restaurant_id, member_id, score, content, created_at, updated_at
		FROM reviews
		WHERE restaurant_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, restaurantID, limit)
}

func (r *ReviewRepo) listReviews(ctx context.Context, stmt string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.readDB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.RestaurantID, &review.MemberID,
			&review.Score, &review.Content, &review.CreatedAt, &review.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, review)
	}
	return out, rows.Err()
}
