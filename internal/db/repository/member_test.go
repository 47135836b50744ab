package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenavi/internal/domain"
)

func TestMemberRepo_CreateAndGetByEmail(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	m := seedMember(t, repos, "taro@example.com")

	found, err := repos.members.GetByEmail(ctx, "taro@example.com")
	require.NoError(t, err)
	assert.Equal(t, m.ID, found.ID)
	assert.Equal(t, m.PasswordHash, found.PasswordHash)
}

func TestMemberRepo_DuplicateEmailConflicts(t *testing.T) {
	repos := setupRepos(t)

	seedMember(t, repos, "dup@example.com")
	_, err := repos.members.Create(context.Background(), &domain.Member{
		Name:         "Other",
		Kana:         "アザー",
		Email:        "dup@example.com",
		PasswordHash: "x",
	})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestMemberRepo_UpdateProfile(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	m := seedMember(t, repos, "taro@example.com")

	updated, err := repos.members.UpdateProfile(ctx, m.ID, domain.UpdateMemberProfile{
		Name:        "Taro Yamada",
		Kana:        "ヤマダタロウ",
		Email:       "taro@example.com",
		PostalCode:  "1234567",
		Address:     "Tokyo",
		PhoneNumber: "09012345678",
		Birthday:    "19900101",
	})
	require.NoError(t, err)
	assert.Equal(t, "Taro Yamada", updated.Name)
	assert.Equal(t, "1234567", updated.PostalCode)
}

func TestMemberRepo_UpdateProfile_RejectsBadPostalCode(t *testing.T) {
	repos := setupRepos(t)

	m := seedMember(t, repos, "taro@example.com")
	_, err := repos.members.UpdateProfile(context.Background(), m.ID, domain.UpdateMemberProfile{
		Name:        "Taro",
		Kana:        "タロウ",
		Email:       "taro@example.com",
		PostalCode:  "12-34",
		Address:     "Tokyo",
		PhoneNumber: "09012345678",
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestMemberRepo_List_KeywordMatchesNameOrKana(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	_, err := repos.members.Create(ctx, &domain.Member{
		Name: "Hanako Sato", Kana: "サトウハナコ", Email: "h@example.com", PasswordHash: "x",
	})
	require.NoError(t, err)
	_, err = repos.members.Create(ctx, &domain.Member{
		Name: "Jiro Tanaka", Kana: "タナカジロウ", Email: "j@example.com", PasswordHash: "x",
	})
	require.NoError(t, err)

	got, total, err := repos.members.List(ctx, "hanako", domain.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Hanako Sato", got[0].Name)
}

func TestAdminRepo_CreateAndGetByEmail(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	a, err := repos.admins.Create(ctx, &domain.Admin{
		Email:        "admin@example.com",
		PasswordHash: "$2a$10$notarealhash",
	})
	require.NoError(t, err)

	found, err := repos.admins.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, a.ID, found.ID)

	_, err = repos.admins.GetByEmail(ctx, "nobody@example.com")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCompanyRepo_UpdateInsertsThenUpdates(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	_, err := repos.companies.Get(ctx)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	c, err := repos.companies.Update(ctx, &domain.Company{
		Name: "TableNavi Inc.", PostalCode: "1000001", Address: "Tokyo",
		Representative: "Y. Suzuki", EstablishmentDate: "2015-04-01",
		Capital: "10,000,000", Business: "Restaurant directory",
		NumberOfEmployees: "25",
	})
	require.NoError(t, err)

	c.Address = "Osaka"
	updated, err := repos.companies.Update(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "Osaka", updated.Address)
	assert.Equal(t, c.ID, updated.ID, "update keeps the single row")
}

func TestTermRepo_UpdateInsertsThenUpdates(t *testing.T) {
	repos := setupRepos(t)
	ctx := context.Background()

	first, err := repos.terms.Update(ctx, "terms v1")
	require.NoError(t, err)

	second, err := repos.terms.Update(ctx, "terms v2")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "terms v2", second.Content)
}
