package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenavi/internal/domain"
)

func names(restaurants []domain.Restaurant) []string {
	out := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, r.Name)
	}
	return out
}

func TestRestaurantRepo_CRUD(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	sushi := seedCategory(t, repos, "Sushi")

	r, err := repos.restaurants.Create(ctx, &domain.Restaurant{
		Name:            "Ginza Sushi",
		Description:     "counter sushi",
		LowestPrice:     5000,
		HighestPrice:    12000,
		PostalCode:      "1040061",
		Address:         "Tokyo, Chuo, Ginza 1-1",
		OpeningTime:     "11:00",
		ClosingTime:     "22:00",
		SeatingCapacity: 12,
	}, []int64{sushi.ID}, nil)
	require.NoError(t, err)
	assert.NotZero(t, r.ID)
	require.Len(t, r.Categories, 1)
	assert.Equal(t, "Sushi", r.Categories[0].Name)

	r.Name = "Ginza Sushi Honten"
	updated, err := repos.restaurants.Update(ctx, r, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Ginza Sushi Honten", updated.Name)
	assert.Empty(t, updated.Categories, "update re-syncs category links")

	require.NoError(t, repos.restaurants.Delete(ctx, r.ID))

	_, err = repos.restaurants.GetByID(ctx, r.ID)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRestaurantRepo_Create_InvalidPriceRange(t *testing.T) {
	repos := setupRepos(t)

	_, err := repos.restaurants.Create(context.Background(), &domain.Restaurant{
		Name:         "Broken",
		Description:  "invalid",
		LowestPrice:  3000,
		HighestPrice: 1000,
		PostalCode:   "1000001",
		Address:      "x",
		OpeningTime:  "10:00",
		ClosingTime:  "20:00",
	}, nil, nil)
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestRestaurantRepo_Search_KeywordMatchesNameAddressCategory(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	ramen := seedCategory(t, repos, "Ramen")
	seedRestaurant(t, repos, "Menya Taro", "Osaka, Namba", 800, ramen.ID)
	seedRestaurant(t, repos, "Ramen Ichiban", "Kyoto, Gion", 900)
	seedRestaurant(t, repos, "Bistro Sud", "Ramen Street 5", 2000)
	seedRestaurant(t, repos, "Trattoria Nord", "Tokyo, Ueno", 1500)

	got, total, err := repos.restaurants.Search(ctx, domain.RestaurantQuery{
		Keyword: "ramen",
		Sort:    domain.DefaultSort(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	// Name, address and category-name matches all count; matching is
	// case-insensitive substring.
	assert.ElementsMatch(t, []string{"Menya Taro", "Ramen Ichiban", "Bistro Sud"}, names(got))
}

func TestRestaurantRepo_Search_FiltersAreConjunctive(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	ramen := seedCategory(t, repos, "Ramen")
	cafe := seedCategory(t, repos, "Cafe")
	seedRestaurant(t, repos, "Menya Taro", "Osaka", 800, ramen.ID)
	seedRestaurant(t, repos, "Menya Jiro", "Osaka", 2500, ramen.ID)
	seedRestaurant(t, repos, "Menya Cafe", "Osaka", 700, cafe.ID)

	got, total, err := repos.restaurants.Search(ctx, domain.RestaurantQuery{
		Keyword:    "menya",
		CategoryID: ramen.ID,
		MaxPrice:   1000,
		Sort:       domain.DefaultSort(),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Menya Taro", got[0].Name)
}

func TestRestaurantRepo_Search_MaxPriceUsesLowestPrice(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	seedRestaurant(t, repos, "Cheap Eats", "A", 500)
	seedRestaurant(t, repos, "Exactly", "B", 1000)
	seedRestaurant(t, repos, "Pricey", "C", 1001)

	got, total, err := repos.restaurants.Search(ctx, domain.RestaurantQuery{
		MaxPrice: 1000,
		Sort:     domain.SortSpec{Column: domain.SortColumnLowestPrice, Direction: domain.SortAsc},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []string{"Cheap Eats", "Exactly"}, names(got))
}

func TestRestaurantRepo_Search_SortByRating(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	m := seedMember(t, repos, "rater@example.com")
	low := seedRestaurant(t, repos, "Low Rated", "A", 1000)
	high := seedRestaurant(t, repos, "High Rated", "B", 1000)
	unrated := seedRestaurant(t, repos, "Unrated", "C", 1000)

	seedReview(t, repos, low.ID, m.ID, 2)
	seedReview(t, repos, low.ID, m.ID, 3)
	seedReview(t, repos, high.ID, m.ID, 5)
	seedReview(t, repos, high.ID, m.ID, 4)

	got, _, err := repos.restaurants.Search(ctx, domain.RestaurantQuery{
		Sort: domain.SortSpec{Column: domain.SortColumnRating, Direction: domain.SortDesc},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"High Rated", "Low Rated", "Unrated"}, names(got))
	assert.InDelta(t, 4.5, got[0].Rating, 0.001)
	assert.InDelta(t, 2.5, got[1].Rating, 0.001)
	assert.Zero(t, got[2].Rating, "no reviews means rating 0")
	assert.EqualValues(t, 2, got[0].ReviewCount)

	_ = unrated
}

func TestRestaurantRepo_Search_SortByPopularity(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	m := seedMember(t, repos, "booker@example.com")
	quiet := seedRestaurant(t, repos, "Quiet", "A", 1000)
	busy := seedRestaurant(t, repos, "Busy", "B", 1000)
	seedRestaurant(t, repos, "Empty", "C", 1000)

	seedReservations(t, repos, quiet.ID, m.ID, 1)
	seedReservations(t, repos, busy.ID, m.ID, 3)

	got, _, err := repos.restaurants.Search(ctx, domain.RestaurantQuery{
		Sort: domain.SortSpec{Column: domain.SortColumnPopular, Direction: domain.SortDesc},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Busy", "Quiet", "Empty"}, names(got))
	assert.EqualValues(t, 3, got[0].ReservationCount)
}

func TestRestaurantRepo_Search_TieBreakByID(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	// Identical lowest_price: order must fall back to id ascending.
	a := seedRestaurant(t, repos, "First", "A", 1000)
	b := seedRestaurant(t, repos, "Second", "B", 1000)
	c := seedRestaurant(t, repos, "Third", "C", 1000)
	require.Less(t, a.ID, b.ID)
	require.Less(t, b.ID, c.ID)

	got, _, err := repos.restaurants.Search(ctx, domain.RestaurantQuery{
		Sort: domain.SortSpec{Column: domain.SortColumnLowestPrice, Direction: domain.SortDesc},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"First", "Second", "Third"}, names(got))
}

func TestRestaurantRepo_Search_Pagination(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		seedRestaurant(t, repos, "Shop", "Addr", 1000+i)
	}

	page1, total, err := repos.restaurants.Search(ctx, domain.RestaurantQuery{
		Sort: domain.SortSpec{Column: domain.SortColumnLowestPrice, Direction: domain.SortAsc},
		Page: domain.PageRequest{Page: 1},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 20, total)
	assert.Len(t, page1, domain.RestaurantPageSize)

	page2, total2, err := repos.restaurants.Search(ctx, domain.RestaurantQuery{
		Sort: domain.SortSpec{Column: domain.SortColumnLowestPrice, Direction: domain.SortAsc},
		Page: domain.PageRequest{Page: 2},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 20, total2, "total is independent of the page")
	assert.Len(t, page2, 5)
	assert.Equal(t, 1015, page2[0].LowestPrice)
}

func TestRestaurantRepo_ListByName(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	seedRestaurant(t, repos, "Sakura Dining", "A", 1000)
	seedRestaurant(t, repos, "Sakura Cafe", "B", 1000)
	seedRestaurant(t, repos, "Momiji", "C", 1000)

	got, total, err := repos.restaurants.ListByName(ctx, "sakura", domain.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.ElementsMatch(t, []string{"Sakura Dining", "Sakura Cafe"}, names(got))
}
