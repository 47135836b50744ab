package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tablenavi/internal/domain"
)

var _ domain.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo stores cuisine categories in SQLite.
type CategoryRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(writeDB, readDB *sql.DB) *CategoryRepo {
	return &CategoryRepo{writeDB: writeDB, readDB: readDB}
}

// Create inserts a category.
func (r *CategoryRepo) Create(ctx context.Context, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrValidation("category name is required")
	}
	res, err := r.writeDB.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a category by ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &c, nil
}

// Update renames a category.
func (r *CategoryRepo) Update(ctx context.Context, id int64, name string) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrValidation("category name is required")
	}
	res, err := r.writeDB.ExecContext(ctx,
		`UPDATE categories SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, name, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound("category %d not found", id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a category. Link rows go with it via ON DELETE CASCADE.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.writeDB.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return mapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound("category %d not found", id)
	}
	return nil
}

// List returns categories matching an optional name keyword, paginated.
func (r *CategoryRepo) List(ctx context.Context, keyword string, page domain.PageRequest) ([]domain.Category, int64, error) {
	where := ""
	var args []interface{}
	if keyword != "" {
		where = ` WHERE name LIKE ?`
		args = append(args, likePattern(keyword))
	}

	var total int64
	if err := r.readDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return nil, 0, mapDBError(err)
	}

	listArgs := append(args, page.Limit(), page.Offset())
	rows, err := r.readDB.QueryContext(ctx, `
		SELECT id, name, created_at FROM categories`+where+`
		ORDER BY id LIMIT ? OFFSET ?
	`, listArgs...)
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

// ListAll returns every category, for search form dropdowns.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.readDB.QueryContext(ctx, `SELECT id, name, created_at FROM categories ORDER BY id`)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ domain.HolidayRepository = (*HolidayRepo)(nil)

// HolidayRepo reads the fixed regular-holiday catalogue.
type HolidayRepo struct {
	readDB *sql.DB
}

// NewHolidayRepo creates a new HolidayRepo.
func NewHolidayRepo(readDB *sql.DB) *HolidayRepo {
	return &HolidayRepo{readDB: readDB}
}

// ListAll returns every regular holiday in week order.
func (r *HolidayRepo) ListAll(ctx context.Context) ([]domain.RegularHoliday, error) {
	rows, err := r.readDB.QueryContext(ctx, `SELECT id, day FROM regular_holidays ORDER BY day_index`)
	if err != nil {
		return nil, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.RegularHoliday
	for rows.Next() {
		var h domain.RegularHoliday
		if err := rows.Scan(&h.ID, &h.Day); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
