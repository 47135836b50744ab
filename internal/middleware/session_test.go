package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablenavi/internal/domain"
)

func newTestSessions(t *testing.T) *SessionManager {
	t.Helper()
	m, err := NewSessionManager("test-secret", "member_session", "admin_session", time.Hour, false)
	require.NoError(t, err)
	return m
}

// runAuthenticated performs a request through Authenticate with the given
// cookies and returns the principal the handler observed.
func runAuthenticated(t *testing.T, m *SessionManager, cookies []*http.Cookie) domain.Principal {
	t.Helper()
	var got domain.Principal
	h := m.Authenticate(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = domain.PrincipalFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func loginCookie(t *testing.T, m *SessionManager, login func(http.ResponseWriter) error) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, login(rec))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestAuthenticate_NoCookiesYieldsGuest(t *testing.T) {
	m := newTestSessions(t)
	p := runAuthenticated(t, m, nil)
	assert.True(t, p.IsGuest())
}

func TestAuthenticate_MemberCookie(t *testing.T) {
	m := newTestSessions(t)
	c := loginCookie(t, m, func(w http.ResponseWriter) error { return m.LoginMember(w, 7) })

	p := runAuthenticated(t, m, []*http.Cookie{c})
	assert.True(t, p.IsMember())
	assert.EqualValues(t, 7, p.ID)
}

func TestAuthenticate_AdminCookie(t *testing.T) {
	m := newTestSessions(t)
	c := loginCookie(t, m, func(w http.ResponseWriter) error { return m.LoginAdmin(w, 3) })

	p := runAuthenticated(t, m, []*http.Cookie{c})
	assert.True(t, p.IsAdmin())
	assert.EqualValues(t, 3, p.ID)
}

func TestAuthenticate_AdminWinsWhenBothCookiesValid(t *testing.T) {
	m := newTestSessions(t)
	member := loginCookie(t, m, func(w http.ResponseWriter) error { return m.LoginMember(w, 7) })
	admin := loginCookie(t, m, func(w http.ResponseWriter) error { return m.LoginAdmin(w, 3) })

	p := runAuthenticated(t, m, []*http.Cookie{member, admin})
	assert.True(t, p.IsAdmin())
	assert.EqualValues(t, 3, p.ID)
}

func TestAuthenticate_TokenGuardIsBinding(t *testing.T) {
	m := newTestSessions(t)
	// A member token placed in the admin cookie must not authenticate as
	// an admin session.
	member := loginCookie(t, m, func(w http.ResponseWriter) error { return m.LoginMember(w, 7) })
	forged := &http.Cookie{Name: "admin_session", Value: member.Value}

	p := runAuthenticated(t, m, []*http.Cookie{forged})
	assert.True(t, p.IsGuest())
}

func TestAuthenticate_TamperedTokenYieldsGuest(t *testing.T) {
	m := newTestSessions(t)
	c := loginCookie(t, m, func(w http.ResponseWriter) error { return m.LoginMember(w, 7) })
	c.Value += "x"

	p := runAuthenticated(t, m, []*http.Cookie{c})
	assert.True(t, p.IsGuest())
}

func TestAuthenticate_ForeignSecretRejected(t *testing.T) {
	m := newTestSessions(t)
	other, err := NewSessionManager("other-secret", "member_session", "admin_session", time.Hour, false)
	require.NoError(t, err)
	c := loginCookie(t, other, func(w http.ResponseWriter) error { return other.LoginMember(w, 7) })

	p := runAuthenticated(t, m, []*http.Cookie{c})
	assert.True(t, p.IsGuest())
}

func TestAuthenticate_ExpiredTokenYieldsGuest(t *testing.T) {
	short, err := NewSessionManager("test-secret", "member_session", "admin_session", time.Nanosecond, false)
	require.NoError(t, err)
	c := loginCookie(t, short, func(w http.ResponseWriter) error { return short.LoginMember(w, 7) })
	time.Sleep(10 * time.Millisecond)

	p := runAuthenticated(t, short, []*http.Cookie{c})
	assert.True(t, p.IsGuest())
}

func TestNewSessionManager_RejectsSharedCookieName(t *testing.T) {
	_, err := NewSessionManager("s", "session", "session", time.Hour, false)
	require.Error(t, err)
}

func TestLogoutClearsCookie(t *testing.T) {
	m := newTestSessions(t)
	rec := httptest.NewRecorder()
	m.LogoutMember(rec)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "member_session", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
