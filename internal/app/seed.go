package app

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"tablenavi/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	Categories      []string `yaml:"categories"`
	RegularHolidays []struct {
		Day      string `yaml:"day"`
		DayIndex int    `yaml:"day_index"`
	} `yaml:"regular_holidays"`
	Admin struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
	Restaurants []struct {
		Name            string   `yaml:"name"`
		Description     string   `yaml:"description"`
		LowestPrice     int      `yaml:"lowest_price"`
		HighestPrice    int      `yaml:"highest_price"`
		PostalCode      string   `yaml:"postal_code"`
		Address         string   `yaml:"address"`
		OpeningTime     string   `yaml:"opening_time"`
		ClosingTime     string   `yaml:"closing_time"`
		SeatingCapacity int      `yaml:"seating_capacity"`
		Categories      []string `yaml:"categories"`
	} `yaml:"restaurants"`
	Company struct {
		Name              string `yaml:"name"`
		PostalCode        string `yaml:"postal_code"`
		Address           string `yaml:"address"`
		Representative    string `yaml:"representative"`
		EstablishmentDate string `yaml:"establishment_date"`
		Capital           string `yaml:"capital"`
		Business          string `yaml:"business"`
		NumberOfEmployees string `yaml:"number_of_employees"`
	} `yaml:"company"`
	Terms string `yaml:"terms"`
}

// seedReferenceData loads the embedded reference catalogue into an empty
// database. Idempotent: each section is skipped when rows already exist.
func seedReferenceData(
	ctx context.Context,
	writeDB *sql.DB,
	companies domain.CompanyRepository,
	terms domain.TermRepository,
	logger *slog.Logger,
) error {
	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	var categoryCount int64
	if err := writeDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&categoryCount); err != nil {
		return err
	}
	if categoryCount == 0 {
		for _, name := range data.Categories {
			if _, err := writeDB.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name); err != nil {
				return fmt.Errorf("seed category %q: %w", name, err)
			}
		}
		logger.Info("seeded categories", "count", len(data.Categories))
	}

	var holidayCount int64
	if err := writeDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM regular_holidays`).Scan(&holidayCount); err != nil {
		return err
	}
	if holidayCount == 0 {
		for _, holiday := range data.RegularHolidays {
			if _, err := writeDB.ExecContext(ctx,
				`INSERT INTO regular_holidays (day, day_index) VALUES (?, ?)`,
				holiday.Day, holiday.DayIndex,
			); err != nil {
				return fmt.Errorf("seed holiday %q: %w", holiday.Day, err)
			}
		}
		logger.Info("seeded regular holidays", "count", len(data.RegularHolidays))
	}

	var restaurantCount int64
	if err := writeDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&restaurantCount); err != nil {
		return err
	}
	if restaurantCount == 0 {
		for _, r := range data.Restaurants {
			res, err := writeDB.ExecContext(ctx,
				`INSERT INTO restaurants (name, description, lowest_price, highest_price, postal_code, address, opening_time, closing_time, seating_capacity)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				r.Name, r.Description, r.LowestPrice, r.HighestPrice,
				r.PostalCode, r.Address, r.OpeningTime, r.ClosingTime, r.SeatingCapacity,
			)
			if err != nil {
				return fmt.Errorf("seed restaurant %q: %w", r.Name, err)
			}
			restaurantID, err := res.LastInsertId()
			if err != nil {
				return err
			}
			for _, category := range r.Categories {
				if _, err := writeDB.ExecContext(ctx,
					`INSERT INTO category_restaurant (restaurant_id, category_id)
					 SELECT ?, id FROM categories WHERE name = ?`,
					restaurantID, category,
				); err != nil {
					return fmt.Errorf("seed restaurant %q category %q: %w", r.Name, category, err)
				}
			}
		}
		logger.Info("seeded sample restaurants", "count", len(data.Restaurants))
	}

	if data.Admin.Email != "" {
		var adminCount int64
		if err := writeDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&adminCount); err != nil {
			return err
		}
		if adminCount == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(data.Admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash seed admin password: %w", err)
			}
			if _, err := writeDB.ExecContext(ctx,
				`INSERT INTO admins (email, password_hash) VALUES (?, ?)`,
				data.Admin.Email, string(hash),
			); err != nil {
				return fmt.Errorf("seed admin: %w", err)
			}
			logger.Info("seeded admin account", "email", data.Admin.Email)
		}
	}

	var notFound *domain.NotFoundError
	if _, err := companies.Get(ctx); errors.As(err, &notFound) {
		if _, err := companies.Update(ctx, &domain.Company{
			Name:              data.Company.Name,
			PostalCode:        data.Company.PostalCode,
			Address:           data.Company.Address,
			Representative:    data.Company.Representative,
			EstablishmentDate: data.Company.EstablishmentDate,
			Capital:           data.Company.Capital,
			Business:          data.Company.Business,
			NumberOfEmployees: data.Company.NumberOfEmployees,
		}); err != nil {
			return fmt.Errorf("seed company: %w", err)
		}
		logger.Info("seeded company profile")
	} else if err != nil {
		return err
	}

	if _, err := terms.Get(ctx); errors.As(err, &notFound) {
		if _, err := terms.Update(ctx, data.Terms); err != nil {
			return fmt.Errorf("seed terms: %w", err)
		}
		logger.Info("seeded terms of service")
	} else if err != nil {
		return err
	}

	return nil
}
