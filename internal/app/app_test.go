package app

import (
	"context"
	"log/slog"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"tablenavi/internal/config"
	"tablenavi/internal/db"
	"tablenavi/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			JWTSecret:        "test-secret",
			MemberCookieName: "member_session",
			AdminCookieName:  "admin_session",
			TTL:              time.Hour,
		},
		SeedOnStartup: true,
	}
}

func TestNew_WiresAndSeeds(t *testing.T) {
	writeDB, readDB := db.OpenTestSQLite(t)
	application, err := New(context.Background(), Deps{
		Cfg:     testConfig(),
		WriteDB: writeDB,
		ReadDB:  readDB,
		Logger:  slog.Default(),
	})
	require.NoError(t, err)

	categories, err := application.Services.Directory.ListCategories(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	holidays, err := application.Services.Directory.ListHolidays(context.Background())
	require.NoError(t, err)
	require.Len(t, holidays, 8)
	require.Equal(t, "Monday", holidays[0].Day)

	company, err := application.Services.Directory.GetCompany(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, company.Name)

	terms, err := application.Services.Directory.GetTerms(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, terms.Content)

	restaurants, total, err := application.Services.Directory.SearchRestaurants(context.Background(), domain.RestaurantQuery{
		Page: domain.PageRequest{Page: 1},
	})
	require.NoError(t, err)
	require.NotEmpty(t, restaurants)
	require.EqualValues(t, len(restaurants), total)

	admin, err := application.Services.Accounts.AuthenticateAdmin(context.Background(), "admin@example.com", "tablenavi-admin")
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", admin.Email)
}

func TestNew_SeedIsIdempotent(t *testing.T) {
	writeDB, readDB := db.OpenTestSQLite(t)
	deps := Deps{
		Cfg:     testConfig(),
		WriteDB: writeDB,
		ReadDB:  readDB,
		Logger:  slog.Default(),
	}

	first, err := New(context.Background(), deps)
	require.NoError(t, err)
	categories, err := first.Services.Directory.ListCategories(context.Background())
	require.NoError(t, err)

	second, err := New(context.Background(), deps)
	require.NoError(t, err)
	again, err := second.Services.Directory.ListCategories(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(categories), len(again))
}
