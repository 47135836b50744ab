package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tablenavi/internal/domain"
)

var _ domain.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo stores reservations in SQLite.
type ReservationRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewReservationRepo creates a new ReservationRepo.
func NewReservationRepo(writeDB, readDB *sql.DB) *ReservationRepo {
	return &ReservationRepo{writeDB: writeDB, readDB: readDB}
}

// Create inserts a reservation. Repeat submissions are not deduplicated.
func (r *ReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	result, err := r.writeDB.ExecContext(ctx, `
		INSERT INTO reservations (restaurant_id, member_id, reserved_datetime, number_of_people)
		VALUES (?, ?, ?, ?)
	`, res.RestaurantID, res.MemberID, res.ReservedAt, res.NumberOfPeople)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a reservation by ID.
func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.readDB.QueryRowContext(ctx, `
		SELECT rs.id, rs.restaurant_id, rs.member_id, rs.reserved_datetime,
		       rs.number_of_people, rs.created_at, r.name
		FROM reservations rs
		JOIN restaurants r ON r.id = rs.restaurant_id
		WHERE rs.id = ?
	`, id).Scan(
		&res.ID, &res.RestaurantID, &res.MemberID, &res.ReservedAt,
		&res.NumberOfPeople, &res.CreatedAt, &res.RestaurantName,
	)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &res, nil
}

// Delete removes a reservation.
func (r *ReservationRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.writeDB.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound("reservation %d not found", id)
	}
	return nil
}

// ListForMember returns a member's reservations, soonest visit first.
func (r *ReservationRepo) ListForMember(ctx context.Context, memberID int64, page domain.PageRequest) ([]domain.Reservation, int64, error) {
	var total int64
	if err := r.readDB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations WHERE member_id = ?`, memberID,
	).Scan(&total); err != nil {
		return nil, 0, mapDBError(err)
	}

	rows, err := r.readDB.QueryContext(ctx, `
		SELECT rs.id, rs.restaurant_id, rs.member_id, rs.reserved_datetime,
		       rs.number_of_people, rs.created_at, r.name
		FROM reservations rs
		JOIN restaurants r ON r.id = rs.restaurant_id
		WHERE rs.member_id = ?
		ORDER BY rs.reserved_datetime ASC, rs.id ASC
		LIMIT ? OFFSET ?
	`, memberID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID, &res.RestaurantID, &res.MemberID, &res.ReservedAt,
			&res.NumberOfPeople, &res.CreatedAt, &res.RestaurantName,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, res)
	}
	return out, total, rows.Err()
}
