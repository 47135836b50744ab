package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenavi/internal/domain"
)

func TestReviewRepo_CRUD(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	m := seedMember(t, repos, "reviewer@example.com")
	r := seedRestaurant(t, repos, "Bistro", "Addr", 1000)

	rv, err := repos.reviews.Create(ctx, &domain.Review{
		RestaurantID: r.ID,
		MemberID:     m.ID,
		Score:        4,
		Content:      "solid lunch set",
	})
	require.NoError(t, err)
	assert.NotZero(t, rv.ID)
	assert.Equal(t, m.ID, rv.CreatedBy())

	rv.Score = 5
	rv.Content = "even better at dinner"
	updated, err := repos.reviews.Update(ctx, rv)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Score)

	require.NoError(t, repos.reviews.Delete(ctx, rv.ID))

	_, err = repos.reviews.GetByID(ctx, rv.ID)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestReviewRepo_Create_ScoreOutOfRange(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	m := seedMember(t, repos, "reviewer@example.com")
	r := seedRestaurant(t, repos, "Bistro", "Addr", 1000)

	for _, score := range []int{0, 6, -1} {
		_, err := repos.reviews.Create(ctx, &domain.Review{
			RestaurantID: r.ID,
			MemberID:     m.ID,
			Score:        score,
			Content:      "x",
		})
		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation, "score %d", score)
	}
}

func TestReviewRepo_ListForRestaurant_NewestFirst(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	m := seedMember(t, repos, "reviewer@example.com")
	r := seedRestaurant(t, repos, "Bistro", "Addr", 1000)
	other := seedRestaurant(t, repos, "Other", "Addr", 1000)

	var ids []int64
	for i := 1; i <= 7; i++ {
		rv := seedReview(t, repos, r.ID, m.ID, 1+i%5)
		ids = append(ids, rv.ID)
	}
	seedReview(t, repos, other.ID, m.ID, 3)

	got, total, err := repos.reviews.ListForRestaurant(ctx, r.ID, domain.PageRequest{Page: 1, PerPage: domain.ReviewPageSize})
	require.NoError(t, err)
	assert.EqualValues(t, 7, total, "total excludes other restaurants")
	require.Len(t, got, domain.ReviewPageSize)
	// Inserted within the same second, so newest-first resolves by id.
	assert.Equal(t, ids[len(ids)-1], got[0].ID)

	page2, _, err := repos.reviews.ListForRestaurant(ctx, r.ID, domain.PageRequest{Page: 2, PerPage: domain.ReviewPageSize})
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestReviewRepo_ListNewest_CapsAtLimit(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	m := seedMember(t, repos, "reviewer@example.com")
	r := seedRestaurant(t, repos, "Bistro", "Addr", 1000)
	for i := 0; i < 5; i++ {
		seedReview(t, repos, r.ID, m.ID, 4)
	}

	got, err := repos.reviews.ListNewest(ctx, r.ID, domain.ReviewPreviewSize)
	require.NoError(t, err)
	assert.Len(t, got, domain.ReviewPreviewSize)
}
