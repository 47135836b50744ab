package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tablenavi/internal/domain"
)

var _ domain.MemberRepository = (*MemberRepo)(nil)

// MemberRepo stores the member credential store in SQLite.
type MemberRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewMemberRepo creates a new MemberRepo.
func NewMemberRepo(writeDB, readDB *sql.DB) *MemberRepo {
	return &MemberRepo{writeDB: writeDB, readDB: readDB}
}

const memberColumns = `id, name, kana, email, password_hash, postal_code, address,
	phone_number, birthday, occupation, created_at, updated_at`

// Create inserts a member. A duplicate email maps to a ConflictError.
func (r *MemberRepo) Create(ctx context.Context, m *domain.Member) (*domain.Member, error) {
	res, err := r.writeDB.ExecContext(ctx, `
		INSERT INTO members (name, kana, email, password_hash, postal_code, address,
			phone_number, birthday, occupation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.Name, m.Kana, m.Email, m.PasswordHash, m.PostalCode, m.Address,
		m.PhoneNumber, m.Birthday, m.Occupation)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns a member by ID.
func (r *MemberRepo) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	return r.getOne(ctx, `SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
}

// GetByEmail returns a member by email, for login.
func (r *MemberRepo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	return r.getOne(ctx, `SELECT `+memberColumns+` FROM members WHERE email = ?`, email)
}

// UpdateProfile applies a validated profile update.
func (r *MemberRepo) UpdateProfile(ctx context.Context, id int64, u domain.UpdateMemberProfile) (*domain.Member, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	res, err := r.writeDB.ExecContext(ctx, `
		UPDATE members
		SET name = ?, kana = ?, email = ?, postal_code = ?, address = ?,
		    phone_number = ?, birthday = ?, occupation = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, u.Name, u.Kana, u.Email, u.PostalCode, u.Address,
		u.PhoneNumber, u.Birthday, u.Occupation, id)
	if err != nil {
		return nil, mapDBError(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound("member %d not found", id)
	}
	return r.GetByID(ctx, id)
}

// List returns members matching an optional name/kana keyword, paginated.
// This backs the admin user listing.
func (r *MemberRepo) List(ctx context.Context, keyword string, page domain.PageRequest) ([]domain.Member, int64, error) {
	where := ""
	var args []interface{}
	if keyword != "" {
		where = ` WHERE name LIKE ? OR kana LIKE ?`
		p := likePattern(keyword)
		args = append(args, p, p)
	}

	var total int64
	if err := r.readDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM members`+where, args...).Scan(&total); err != nil {
		return nil, 0, mapDBError(err)
	}

	listArgs := append(args, page.Limit(), page.Offset())
	rows, err := r.readDB.QueryContext(ctx, `
		SELECT `+memberColumns+` FROM members`+where+`
		ORDER BY id LIMIT ? OFFSET ?
	`, listArgs...)
	if err != nil {
		return nil, 0, mapDBError(err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *m)
	}
	return out, total, rows.Err()
}

func (r *MemberRepo) getOne(ctx context.Context, stmt string, args ...interface{}) (*domain.Member, error) {
	m, err := scanMember(r.readDB.QueryRowContext(ctx, stmt, args...))
	if err != nil {
		return nil, mapDBError(err)
	}
	return m, nil
}

func scanMember(row rowScanner) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(
		&m.ID, &m.Name, &m.Kana, &m.Email, &m.PasswordHash,
		&m.PostalCode, &m.Address, &m.PhoneNumber, &m.Birthday,
		&m.Occupation, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

var _ domain.AdminRepository = (*AdminRepo)(nil)

// AdminRepo stores the administrator credential store in SQLite.
type AdminRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(writeDB, readDB *sql.DB) *AdminRepo {
	return &AdminRepo{writeDB: writeDB, readDB: readDB}
}

// Create inserts an administrator.
func (r *AdminRepo) Create(ctx context.Context, a *domain.Admin) (*domain.Admin, error) {
	res, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO admins (email, password_hash) VALUES (?, ?)`,
		a.Email, a.PasswordHash)
	if err != nil {
		return nil, mapDBError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID returns an administrator by ID.
func (r *AdminRepo) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	var a domain.Admin
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE id = ?`, id,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &a, nil
}

// GetByEmail returns an administrator by email, for login.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var a domain.Admin
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE email = ?`, email,
	).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &a, nil
}
