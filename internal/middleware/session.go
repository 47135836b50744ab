// Package middleware provides HTTP middleware: cookie session guards,
// request IDs and rate limiting.
package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tablenavi/internal/domain"
)

// Guard claim values inside session tokens.
const (
	guardClaimMember = "member"
	guardClaimAdmin  = "admin"
)

const tokenIssuer = "tablenavi"

// SessionManager issues and verifies the two cookie session guards. Each
// guard has its own cookie; a token minted for one guard never validates
// as the other because the guard name is a signed claim.
type SessionManager struct {
	secret       []byte
	memberCookie string
	adminCookie  string
	ttl          time.Duration
	secure       bool
}

// NewSessionManager creates a SessionManager.
func NewSessionManager(secret, memberCookie, adminCookie string, ttl time.Duration, secure bool) (*SessionManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if memberCookie == "" || adminCookie == "" || memberCookie == adminCookie {
		return nil, fmt.Errorf("member and admin session cookies must be distinct and non-empty")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{
		secret:       []byte(secret),
		memberCookie: memberCookie,
		adminCookie:  adminCookie,
		ttl:          ttl,
		secure:       secure,
	}, nil
}

type sessionClaims struct {
	Guard string `json:"guard"`
	jwt.RegisteredClaims
}

func (m *SessionManager) issue(guard string, id int64) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Guard: guard,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(id, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// parse verifies a session token for one guard and returns the subject ID.
func (m *SessionManager) parse(tokenString, guard string) (int64, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return 0, fmt.Errorf("token verification failed: %w", err)
	}
	claims, ok := tok.Claims.(*sessionClaims)
	if !ok {
		return 0, fmt.Errorf("unsupported claim type %T", tok.Claims)
	}
	if claims.Guard != guard {
		return 0, fmt.Errorf("token guard %q does not match %q", claims.Guard, guard)
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	return id, nil
}

// LoginMember sets the member session cookie.
func (m *SessionManager) LoginMember(w http.ResponseWriter, memberID int64) error {
	token, err := m.issue(guardClaimMember, memberID)
	if err != nil {
		return err
	}
	m.setCookie(w, m.memberCookie, token)
	return nil
}

// LoginAdmin sets the admin session cookie.
func (m *SessionManager) LoginAdmin(w http.ResponseWriter, adminID int64) error {
	token, err := m.issue(guardClaimAdmin, adminID)
	if err != nil {
		return err
	}
	m.setCookie(w, m.adminCookie, token)
	return nil
}

// LogoutMember clears the member session cookie.
func (m *SessionManager) LogoutMember(w http.ResponseWriter) {
	m.clearCookie(w, m.memberCookie)
}

// LogoutAdmin clears the admin session cookie.
func (m *SessionManager) LogoutAdmin(w http.ResponseWriter) {
	m.clearCookie(w, m.adminCookie)
}

func (m *SessionManager) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionManager) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authenticate resolves the request principal from the session cookies and
// stores it in the context. Requests proceed regardless of the outcome;
// the access engine turns a guest principal into a redirect where needed.
//
// When both guard cookies hold valid tokens, the admin session wins.
func (m *SessionManager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := domain.GuestPrincipal()

		if c, err := r.Cookie(m.memberCookie); err == nil {
			if id, err := m.parse(c.Value, guardClaimMember); err == nil {
				principal = domain.MemberPrincipal(id)
			}
		}
		if c, err := r.Cookie(m.adminCookie); err == nil {
			if id, err := m.parse(c.Value, guardClaimAdmin); err == nil {
				principal = domain.AdminPrincipal(id)
			}
		}

		ctx := domain.WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
