package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tablenavi/internal/domain"
)

var _ domain.RestaurantRepository = (*RestaurantRepo)(nil)

// RestaurantRepo stores restaurants and runs the discovery query in SQLite.
//
// Writes go through writeDB (single-connection pool); listing reads go
// through readDB.
type RestaurantRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewRestaurantRepo creates a new RestaurantRepo.
func NewRestaurantRepo(writeDB, readDB *sql.DB) *RestaurantRepo {
	return &RestaurantRepo{writeDB: writeDB, readDB: readDB}
}

const restaurantColumns = `
	r.id, r.name, r.image, r.description, r.lowest_price, r.highest_price,
	r.postal_code, r.address, r.opening_time, r.closing_time, r.seating_capacity,
	r.created_at, r.updated_at,
	(SELECT COALESCE(AVG(score), 0) FROM reviews WHERE restaurant_id = r.id) AS rating,
	(SELECT COUNT(*) FROM reviews WHERE restaurant_id = r.id) AS review_count,
	(SELECT COUNT(*) FROM reservations WHERE restaurant_id = r.id) AS reservation_count`

// Create inserts a restaurant with its category and holiday links in one
// transaction.
func (r *RestaurantRepo) Create(ctx context.Context, rest *domain.Restaurant, categoryIDs, holidayIDs []int64) (*domain.Restaurant, error) {
	if err := rest.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
		INSERT INTO restaurants (name, image, description, lowest_price, highest_price,
			postal_code, address, opening_time, closing_time, seating_capacity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rest.Name, rest.Image, rest.Description, rest.LowestPrice, rest.HighestPrice,
		rest.PostalCode, rest.Address, rest.OpeningTime, rest.ClosingTime, rest.SeatingCapacity)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	if err := syncLinks(ctx, tx, "category_restaurant", "category_id", id, categoryIDs); err != nil {
		return nil, err
	}
	if err := syncLinks(ctx, tx, "regular_holiday_restaurant", "regular_holiday_id", id, holidayIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns one restaurant with its aggregates, categories and
// regular holidays.
func (r *RestaurantRepo) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	row := r.readDB.QueryRowContext(ctx, `
		SELECT`+restaurantColumns+`
		FROM restaurants r WHERE r.id = ?
	`, id)

	rest, err := scanRestaurant(row)
	if err != nil {
		return nil, mapDBError(err)
	}

	if err := r.attachCategories(ctx, []*domain.Restaurant{rest}); err != nil {
		return nil, err
	}
	if err := r.attachHolidays(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// Update replaces the restaurant row and re-syncs its category and holiday
// links in one transaction.
func (r *RestaurantRepo) Update(ctx context.Context, rest *domain.Restaurant, categoryIDs, holidayIDs []int64) (*domain.Restaurant, error) {
	if err := rest.Validate(); err != nil {
		return nil, err
	}

	tx, err := r.writeDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `
		UPDATE restaurants
		SET name = ?, image = ?, description = ?, lowest_price = ?, highest_price = ?,
		    postal_code = ?, address = ?, opening_time = ?, closing_time = ?,
		    seating_capacity = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, rest.Name, rest.Image, rest.Description, rest.LowestPrice, rest.HighestPrice,
		rest.PostalCode, rest.Address, rest.OpeningTime, rest.ClosingTime,
		rest.SeatingCapacity, rest.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound("restaurant %d not found", rest.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM category_restaurant WHERE restaurant_id = ?`, rest.ID); err != nil {
		return nil, mapDBError(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM regular_holiday_restaurant WHERE restaurant_id = ?`, rest.ID); err != nil {
		return nil, mapDBError(err)
	}
	if err := syncLinks(ctx, tx, "category_restaurant", "category_id", rest.ID, categoryIDs); err != nil {
		return nil, err
	}
	if err := syncLinks(ctx, tx, "regular_holiday_restaurant", "regular_holiday_id", rest.ID, holidayIDs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r.GetByID(ctx, rest.ID)
}

// Delete removes a restaurant. Link rows, reviews and reservations go with
// it via ON DELETE CASCADE.
func (r *RestaurantRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.writeDB.ExecContext(ctx, `DELETE FROM restaurants WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound("restaurant %d not found", id)
	}
	return nil
}

// Search runs the full discovery query: keyword, category and price filters,
// whitelisted sort with the id tie-break, and offset pagination. The total
// is counted over the same filters.
func (r *RestaurantRepo) Search(ctx context.Context, q domain.RestaurantQuery) ([]domain.Restaurant, int64, error) {
	where, args := buildSearchFilters(q)

	var total int64
	countStmt := `SELECT COUNT(*) FROM restaurants r` + where
	if err := r.readDB.QueryRowContext(ctx, countStmt, args...).Scan(&total); err != nil {
		return nil, 0, mapDBError(err)
	}

	stmt := `SELECT` + restaurantColumns + `
		FROM restaurants r` + where + `
		ORDER BY ` + orderClause(q.Sort) + `
		LIMIT ? OFFSET ?`
	listArgs := append(append([]interface{}{}, args...), q.Page.Limit(), q.Page.Offset())

	restaurants, err := r.list(ctx, stmt, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

// ListByName is the admin listing: optional name keyword, newest first.
func (r *RestaurantRepo) ListByName(ctx context.Context, keyword string, page domain.PageRequest) ([]domain.Restaurant, int64, error) {
	where := ""
	var args []interface{}
	if keyword != "" {
		where = ` WHERE r.name LIKE ?`
		args = append(args, likePattern(keyword))
	}

	var total int64
	if err := r.readDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants r`+where, args...).Scan(&total); err != nil {
		return nil, 0, mapDBError(err)
	}

	stmt := `SELECT` + restaurantColumns + `
		FROM restaurants r` + where + `
		ORDER BY r.created_at DESC, r.id ASC
		LIMIT ? OFFSET ?`
	listArgs := append(args, page.Limit(), page.Offset())

	restaurants, err := r.list(ctx, stmt, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

// buildSearchFilters renders the WHERE clause shared by the count and the
// page query. Filters are conjunctive.
func buildSearchFilters(q domain.RestaurantQuery) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if q.Keyword != "" {
		conds = append(conds, `(r.name LIKE ? OR r.address LIKE ? OR EXISTS (
			SELECT 1 FROM category_restaurant cr
			JOIN categories c ON c.id = cr.category_id
			WHERE cr.restaurant_id = r.id AND c.name LIKE ?))`)
		p := likePattern(q.Keyword)
		args = append(args, p, p, p)
	}
	if q.CategoryID > 0 {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM category_restaurant cr
			WHERE cr.restaurant_id = r.id AND cr.category_id = ?)`)
		args = append(args, q.CategoryID)
	}
	if q.MaxPrice > 0 {
		conds = append(conds, `r.lowest_price <= ?`)
		args = append(args, q.MaxPrice)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause maps the validated sort spec to SQL. The id tie-break keeps
// page boundaries stable when the sort key has duplicates.
func orderClause(s domain.SortSpec) string {
	col := "r.created_at"
	switch s.Column {
	case domain.SortColumnLowestPrice:
		col = "r.lowest_price"
	case domain.SortColumnRating:
		col = "rating"
	case domain.SortColumnPopular:
		col = "reservation_count"
	}
	dir := "DESC"
	if s.Direction == domain.SortAsc {
		dir = "ASC"
	}
	return col + " " + dir + ", r.id ASC"
}

func likePattern(keyword string) string {
	return "%" + keyword + "%"
}

func (r *RestaurantRepo) list(ctx context.Context, stmt string, args ...interface{}) ([]domain.Restaurant, error) {
	rows, err := r.readDB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Restaurant
	var refs []*domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		refs = append(refs, &out[i])
	}
	if err := r.attachCategories(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(
		&rest.ID,
		&rest.Name,
		&rest.Image,
		&rest.Description,
		&rest.LowestPrice,
		&rest.HighestPrice,
		&rest.PostalCode,
		&rest.Address,
		&rest.OpeningTime,
		&rest.ClosingTime,
		&rest.SeatingCapacity,
		&rest.CreatedAt,
		&rest.UpdatedAt,
		&rest.Rating,
		&rest.ReviewCount,
		&rest.ReservationCount,
	)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// attachCategories loads the categories for the given restaurants in one
// query.
func (r *RestaurantRepo) attachCategories(ctx context.Context, restaurants []*domain.Restaurant) error {
	if len(restaurants) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Restaurant, len(restaurants))
	placeholders := make([]string, 0, len(restaurants))
	args := make([]interface{}, 0, len(restaurants))
	for _, rest := range restaurants {
		byID[rest.ID] = rest
		placeholders = append(placeholders, "?")
		args = append(args, rest.ID)
	}

	rows, err := r.readDB.QueryContext(ctx, `
		SELECT cr.restaurant_id, c.id, c.name, c.created_at
		FROM category_restaurant cr
		JOIN categories c ON c.id = cr.category_id
		WHERE cr.restaurant_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY c.id
	`, args...)
	if err != nil {
		return mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var restaurantID int64
		var c domain.Category
		if err := rows.Scan(&restaurantID, &c.ID, &c.Name, &c.CreatedAt); err != nil {
			return err
		}
		if rest, ok := byID[restaurantID]; ok {
			rest.Categories = append(rest.Categories, c)
		}
	}
	return rows.Err()
}

func (r *RestaurantRepo) attachHolidays(ctx context.Context, rest *domain.Restaurant) error {
	rows, err := r.readDB.QueryContext(ctx, `
		SELECT h.id, h.day
		FROM regular_holiday_restaurant rhr
		JOIN regular_holidays h ON h.id = rhr.regular_holiday_id
		WHERE rhr.restaurant_id = ?
		ORDER BY h.day_index
	`, rest.ID)
	if err != nil {
		return mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	for rows.Next() {
		var h domain.RegularHoliday
		if err := rows.Scan(&h.ID, &h.Day); err != nil {
			return err
		}
		rest.RegularHolidays = append(rest.RegularHolidays, h)
	}
	return rows.Err()
}

// syncLinks inserts link rows for a many-to-many pivot table.
func syncLinks(ctx context.Context, tx *sql.Tx, table, column string, restaurantID int64, ids []int64) error {
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO `+table+` (restaurant_id, `+column+`) VALUES (?, ?)`,
			restaurantID, id)
		if err != nil {
			return mapDBError(err)
		}
	}
	return nil
}
