package repository

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	internaldb "tablenavi/internal/db"
	"tablenavi/internal/domain"
)

// testRepos bundles every repository over one migrated test database.
type testRepos struct {
	writeDB *sql.DB
	readDB  *sql.DB

	restaurants  *RestaurantRepo
	categories   *CategoryRepo
	holidays     *HolidayRepo
	reviews      *ReviewRepo
	reservations *ReservationRepo
	favorites    *FavoriteRepo
	members      *MemberRepo
	admins       *AdminRepo
	companies    *CompanyRepo
	terms        *TermRepo
}

func setupRepos(t *testing.T) *testRepos {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	return &testRepos{
		writeDB:      writeDB,
		readDB:       readDB,
		restaurants:  NewRestaurantRepo(writeDB, readDB),
		categories:   NewCategoryRepo(writeDB, readDB),
		holidays:     NewHolidayRepo(readDB),
		reviews:      NewReviewRepo(writeDB, readDB),
		reservations: NewReservationRepo(writeDB, readDB),
		favorites:    NewFavoriteRepo(writeDB, readDB),
		members:      NewMemberRepo(writeDB, readDB),
		admins:       NewAdminRepo(writeDB, readDB),
		companies:    NewCompanyRepo(writeDB, readDB),
		terms:        NewTermRepo(writeDB, readDB),
	}
}

func seedMember(t *testing.T, repos *testRepos, email string) *domain.Member {
	t.Helper()
	m, err := repos.members.Create(context.Background(), &domain.Member{
		Name:         "Test Member",
		Kana:         "テストメンバー",
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
	})
	require.NoError(t, err)
	return m
}

func seedRestaurant(t *testing.T, repos *testRepos, name, address string, lowestPrice int, categoryIDs ...int64) *domain.Restaurant {
	t.Helper()
	r, err := repos.restaurants.Create(context.Background(), &domain.Restaurant{
		Name:            name,
		Description:     "test restaurant",
		LowestPrice:     lowestPrice,
		HighestPrice:    lowestPrice + 2000,
		PostalCode:      "1000001",
		Address:         address,
		OpeningTime:     "10:00",
		ClosingTime:     "22:00",
		SeatingCapacity: 40,
	}, categoryIDs, nil)
	require.NoError(t, err)
	return r
}

func seedReview(t *testing.T, repos *testRepos, restaurantID, memberID int64, score int) *domain.Review {
	t.Helper()
	rv, err := repos.reviews.Create(context.Background(), &domain.Review{
		RestaurantID: restaurantID,
		MemberID:     memberID,
		Score:        score,
		Content:      "great food",
	})
	require.NoError(t, err)
	return rv
}

func seedReservations(t *testing.T, repos *testRepos, restaurantID, memberID int64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		req := domain.CreateReservationRequest{
			RestaurantID:   restaurantID,
			Date:           "2026-10-01",
			Time:           "18:00",
			NumberOfPeople: 2,
		}
		_, err := repos.reservations.Create(context.Background(), &domain.Reservation{
			RestaurantID:   restaurantID,
			MemberID:       memberID,
			ReservedAt:     req.ReservedAt(),
			NumberOfPeople: req.NumberOfPeople,
		})
		require.NoError(t, err)
	}
}

func seedCategory(t *testing.T, repos *testRepos, name string) *domain.Category {
	t.Helper()
	c, err := repos.categories.Create(context.Background(), name)
	require.NoError(t, err)
	return c
}
