package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tablenavi/internal/domain"
)

var _ domain.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo stores member-restaurant bookmarks in SQLite.
type FavoriteRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewFavoriteRepo creates a new FavoriteRepo.
func NewFavoriteRepo(writeDB, readDB *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{writeDB: writeDB, readDB: readDB}
}

// Store inserts the favorite unless it already exists. Favoriting an
// already-favorited restaurant is a no-op, not an error.
func (r *FavoriteRepo) Store(ctx context.Context, memberID, restaurantID int64) error {
	exists, err := r.Exists(ctx, memberID, restaurantID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	// The primary key backstops the check under concurrent submits.
	_, err = r.writeDB.ExecContext(ctx, `
		INSERT OR IGNORE INTO favorites (member_id, restaurant_id) VALUES (?, ?)
	`, memberID, restaurantID)
	return mapDBError(err)
}

// Delete removes a favorite. Removing an absent favorite is a no-op.
func (r *FavoriteRepo) Delete(ctx context.Context, memberID, restaurantID int64) error {
	_, err := r.writeDB.ExecContext(ctx,
		`DELETE FROM favorites WHERE member_id = ? AND restaurant_id = ?`,
		memberID, restaurantID)
	return mapDBError(err)
}

// Exists reports whether the member has favorited the restaurant.
func (r *FavoriteRepo) Exists(ctx context.Context, memberID, restaurantID int64) (bool, error) {
	var n int64
	err := r.readDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE member_id = ? AND restaurant_id = ?`,
		memberID, restaurantID).Scan(&n)
	if err != nil {
		return false, mapDBError(err)
	}
	return n > 0, nil
}

// ListRestaurants returns the member's favorited restaurants, most recently
// favorited first.
func (r *FavoriteRepo) ListRestaurants(ctx context.Context, memberID int64, page domain.PageRequest) ([]domain.Restaurant, int64, error) {
	var total int64
	if err := r.readDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM favorites WHERE member_id = ?`, memberID,
	).Scan(&total); err != nil {
		return nil, 0, mapDBError(err)
	}

	rows, err := r.readDB.QueryContext(ctx, `
		SELECT`+restaurantColumns+`
		FROM favorites f
		JOIN restaurants r ON r.id = f.restaurant_id
		WHERE f.member_id = ?
		ORDER BY f.created_at DESC, r.id ASC
		LIMIT ? OFFSET ?
	`, memberID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan favorite restaurant: %w", err)
		}
		out = append(out, *rest)
	}
	return out, total, rows.Err()
}
