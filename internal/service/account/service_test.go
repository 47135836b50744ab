package account

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenavi/internal/billing"
	internaldb "tablenavi/internal/db"
	"tablenavi/internal/db/repository"
	"tablenavi/internal/domain"
)

func setupService(t *testing.T) (*Service, *billing.FakeProvider) {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	provider := billing.NewFakeProvider()
	svc := NewService(
		repository.NewMemberRepo(writeDB, readDB),
		repository.NewAdminRepo(writeDB, readDB),
		provider,
		nil,
	)
	return svc, provider
}

func TestRegisterAndAuthenticateMember(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	m, err := svc.RegisterMember(ctx, RegisterMemberRequest{
		Name:     "Taro",
		Kana:     "タロウ",
		Email:    "taro@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", m.PasswordHash, "password must be stored hashed")

	got, err := svc.AuthenticateMember(ctx, "taro@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
}

func TestAuthenticateMember_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.RegisterMember(ctx, RegisterMemberRequest{
		Name: "Taro", Kana: "タロウ", Email: "taro@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, errWrongPass := svc.AuthenticateMember(ctx, "taro@example.com", "bogus")
	_, errNoUser := svc.AuthenticateMember(ctx, "nobody@example.com", "bogus")

	var denied *domain.AccessDeniedError
	require.ErrorAs(t, errWrongPass, &denied)
	require.ErrorAs(t, errNoUser, &denied)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestRegisterMember_ShortPassword(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.RegisterMember(context.Background(), RegisterMemberRequest{
		Name: "Taro", Kana: "タロウ", Email: "taro@example.com", Password: "short",
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestRegisterMember_DuplicateEmail(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	req := RegisterMemberRequest{Name: "Taro", Kana: "タロウ", Email: "taro@example.com", Password: "correct horse"}
	_, err := svc.RegisterMember(ctx, req)
	require.NoError(t, err)

	_, err = svc.RegisterMember(ctx, req)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestAdminCredentialsAreSeparateFromMembers(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.RegisterMember(ctx, RegisterMemberRequest{
		Name: "Taro", Kana: "タロウ", Email: "same@example.com", Password: "member pass",
	})
	require.NoError(t, err)
	_, err = svc.CreateAdmin(ctx, "same@example.com", "admin password")
	require.NoError(t, err)

	// Member credentials never authenticate against the admin guard.
	_, err = svc.AuthenticateAdmin(ctx, "same@example.com", "member pass")
	var denied *domain.AccessDeniedError
	require.ErrorAs(t, err, &denied)

	a, err := svc.AuthenticateAdmin(ctx, "same@example.com", "admin password")
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
}

func TestSubscriptionLifecycle(t *testing.T) {
	svc, provider := setupService(t)
	ctx := context.Background()

	m, err := svc.RegisterMember(ctx, RegisterMemberRequest{
		Name: "Taro", Kana: "タロウ", Email: "taro@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Subscribe(ctx, m.ID, "pm_123"))
	active, err := provider.HasActiveSubscription(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, svc.Unsubscribe(ctx, m.ID))
	active, err = provider.HasActiveSubscription(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSubscribe_RequiresPaymentMethod(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.Subscribe(context.Background(), 1, "  ")
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
}
