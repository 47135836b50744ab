// Package app wires repositories, services, and the access engine into a
// runnable application.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"tablenavi/internal/billing"
	"tablenavi/internal/config"
	"tablenavi/internal/db/repository"
	"tablenavi/internal/domain"
	"tablenavi/internal/middleware"
	"tablenavi/internal/service/access"
	"tablenavi/internal/service/account"
	"tablenavi/internal/service/directory"
)

// Deps holds the external dependencies that main() must provide:
// database pools, config, and the logger.
type Deps struct {
	Cfg     *config.Config
	WriteDB *sql.DB
	ReadDB  *sql.DB
	Logger  *slog.Logger
}

// Services groups the service pointers the UI handler needs.
type Services struct {
	Directory *directory.Service
	Accounts  *account.Service
}

// App holds the fully-wired application.
type App struct {
	Services     Services
	Access       *access.Engine
	Sessions     *middleware.SessionManager
	Entitlements domain.EntitlementProvider
}

// New wires repositories and services from the provided deps and seeds
// the reference data. When no billing endpoint is configured, an
// in-memory entitlement provider stands in so development setups work
// without the external service.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg

	var entitlements domain.EntitlementProvider
	if cfg.Billing.Enabled() {
		entitlements = billing.NewHTTPProvider(cfg.Billing.BaseURL, cfg.Billing.APIKey, cfg.Billing.Timeout)
	} else {
		deps.Logger.Warn("no billing endpoint configured, using in-memory entitlements")
		entitlements = billing.NewFakeProvider()
	}

	restaurantRepo := repository.NewRestaurantRepo(deps.WriteDB, deps.ReadDB)
	categoryRepo := repository.NewCategoryRepo(deps.WriteDB, deps.ReadDB)
	holidayRepo := repository.NewHolidayRepo(deps.ReadDB)
	reviewRepo := repository.NewReviewRepo(deps.WriteDB, deps.ReadDB)
	reservationRepo := repository.NewReservationRepo(deps.WriteDB, deps.ReadDB)
	favoriteRepo := repository.NewFavoriteRepo(deps.WriteDB, deps.ReadDB)
	companyRepo := repository.NewCompanyRepo(deps.WriteDB, deps.ReadDB)
	termRepo := repository.NewTermRepo(deps.WriteDB, deps.ReadDB)
	memberRepo := repository.NewMemberRepo(deps.WriteDB, deps.ReadDB)
	adminRepo := repository.NewAdminRepo(deps.WriteDB, deps.ReadDB)

	if cfg.SeedOnStartup {
		if err := seedReferenceData(ctx, deps.WriteDB, companyRepo, termRepo, deps.Logger); err != nil {
			return nil, fmt.Errorf("seed reference data: %w", err)
		}
	}

	directorySvc := directory.NewService(
		restaurantRepo, categoryRepo, holidayRepo,
		reviewRepo, reservationRepo, favoriteRepo,
		companyRepo, termRepo,
		entitlements,
		deps.Logger.With("component", "directory"),
	)
	accountSvc := account.NewService(
		memberRepo, adminRepo, entitlements,
		deps.Logger.With("component", "account"),
	)

	sessions, err := middleware.NewSessionManager(
		cfg.Session.JWTSecret,
		cfg.Session.MemberCookieName,
		cfg.Session.AdminCookieName,
		cfg.Session.TTL,
		cfg.Session.SecureCookies,
	)
	if err != nil {
		return nil, fmt.Errorf("session manager: %w", err)
	}

	return &App{
		Services: Services{
			Directory: directorySvc,
			Accounts:  accountSvc,
		},
		Access:       access.NewEngine(entitlements, deps.Logger.With("component", "access")),
		Sessions:     sessions,
		Entitlements: entitlements,
	}, nil
}
