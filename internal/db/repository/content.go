package repository

import (
	"context"
	"database/sql"
	"errors"

	"tablenavi/internal/domain"
)

var (
	_ domain.CompanyRepository = (*CompanyRepo)(nil)
	_ domain.TermRepository    = (*TermRepo)(nil)
)

// CompanyRepo stores the single company-profile row in SQLite.
type CompanyRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(writeDB, readDB *sql.DB) *CompanyRepo {
	return &CompanyRepo{writeDB: writeDB, readDB: readDB}
}

// Get returns the company profile. There is at most one row.
func (r *CompanyRepo) Get(ctx context.Context) (*domain.Company, error) {
	var c domain.Company
	err := r.readDB.QueryRowContext(ctx, `
		SELECT id, name, postal_code, address, representative, establishment_date,
		       capital, business, number_of_employees, updated_at
		FROM companies ORDER BY id LIMIT 1
	`).Scan(
		&c.ID, &c.Name, &c.PostalCode, &c.Address, &c.Representative,
		&c.EstablishmentDate, &c.Capital, &c.Business, &c.NumberOfEmployees,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &c, nil
}

// Update replaces the company profile, inserting the row if missing.
func (r *CompanyRepo) Update(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
		_, err := r.writeDB.ExecContext(ctx, `
			INSERT INTO companies (name, postal_code, address, representative,
				establishment_date, capital, business, number_of_employees)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, c.Name, c.PostalCode, c.Address, c.Representative,
			c.EstablishmentDate, c.Capital, c.Business, c.NumberOfEmployees)
		if err != nil {
			return nil, mapDBError(err)
		}
		return r.Get(ctx)
	}

	_, err = r.writeDB.ExecContext(ctx, `
		UPDATE companies
		SET name = ?, postal_code = ?, address = ?, representative = ?,
		    establishment_date = ?, capital = ?, business = ?,
		    number_of_employees = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, c.Name, c.PostalCode, c.Address, c.Representative,
		c.EstablishmentDate, c.Capital, c.Business, c.NumberOfEmployees,
		existing.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.Get(ctx)
}

// TermRepo stores the single terms-of-service row in SQLite.
type TermRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewTermRepo creates a new TermRepo.
func NewTermRepo(writeDB, readDB *sql.DB) *TermRepo {
	return &TermRepo{writeDB: writeDB, readDB: readDB}
}

// Get returns the terms of service. There is at most one row.
func (r *TermRepo) Get(ctx context.Context) (*domain.Term, error) {
	var t domain.Term
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, content, updated_at FROM terms ORDER BY id LIMIT 1`,
	).Scan(&t.ID, &t.Content, &t.UpdatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &t, nil
}

// Update replaces the terms content, inserting the row if missing.
func (r *TermRepo) Update(ctx context.Context, content string) (*domain.Term, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) {
			return nil, err
		}
		if _, err := r.writeDB.ExecContext(ctx, `INSERT INTO terms (content) VALUES (?)`, content); err != nil {
			return nil, mapDBError(err)
		}
		return r.Get(ctx)
	}

	_, err = r.writeDB.ExecContext(ctx,
		`UPDATE terms SET content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		content, existing.ID)
	if err != nil {
		return nil, mapDBError(err)
	}
	return r.Get(ctx)
}
