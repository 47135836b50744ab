// Package account implements registration, credential verification for
// both session guards, member profiles and the subscription lifecycle.
package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tablenavi/internal/domain"
)

// Service owns the two credential stores and the billing orchestration.
type Service struct {
	members      domain.MemberRepository
	admins       domain.AdminRepository
	entitlements domain.EntitlementProvider
	logger       *slog.Logger
}

// NewService creates an account Service.
func NewService(members domain.MemberRepository, admins domain.AdminRepository, entitlements domain.EntitlementProvider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{members: members, admins: admins, entitlements: entitlements, logger: logger}
}

// RegisterMemberRequest holds the sign-up form.
type RegisterMemberRequest struct {
	Name     string
	Kana     string
	Email    string
	Password string
}

// Validate checks the sign-up form.
func (r *RegisterMemberRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.ErrValidation("name is required")
	}
	if strings.TrimSpace(r.Kana) == "" {
		return domain.ErrValidation("kana is required")
	}
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		return domain.ErrValidation("a valid email address is required")
	}
	if len(r.Password) < 8 {
		return domain.ErrValidation("password must be at least 8 characters")
	}
	return nil
}

// RegisterMember creates a member account. A duplicate email surfaces as a
// ConflictError from the repository.
func (s *Service) RegisterMember(ctx context.Context, req RegisterMemberRequest) (*domain.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	m, err := s.members.Create(ctx, &domain.Member{
		Name:         req.Name,
		Kana:         req.Kana,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("member registered", "member_id", m.ID)
	return m, nil
}

// AuthenticateMember verifies member credentials. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *Service) AuthenticateMember(ctx context.Context, email, password string) (*domain.Member, error) {
	m, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.ErrAccessDenied("invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrAccessDenied("invalid email or password")
	}
	return m, nil
}

// AuthenticateAdmin verifies administrator credentials against the admin
// credential store.
func (s *Service) AuthenticateAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	a, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.ErrAccessDenied("invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrAccessDenied("invalid email or password")
	}
	return a, nil
}

// CreateAdmin provisions an administrator account. Used by the control CLI.
func (s *Service) CreateAdmin(ctx context.Context, email, password string) (*domain.Admin, error) {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return nil, domain.ErrValidation("a valid email address is required")
	}
	if len(password) < 8 {
		return nil, domain.ErrValidation("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.admins.Create(ctx, &domain.Admin{Email: email, PasswordHash: string(hash)})
}

// GetMember loads one member.
func (s *Service) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	return s.members.GetByID(ctx, id)
}

// UpdateProfile applies a profile update to the member's own account.
func (s *Service) UpdateProfile(ctx context.Context, memberID int64, u domain.UpdateMemberProfile) (*domain.Member, error) {
	return s.members.UpdateProfile(ctx, memberID, u)
}

// ListMembers is the admin user listing.
func (s *Service) ListMembers(ctx context.Context, keyword string, page domain.PageRequest) ([]domain.Member, int64, error) {
	return s.members.List(ctx, keyword, page)
}

// Subscribe starts a paid subscription for the member.
func (s *Service) Subscribe(ctx context.Context, memberID int64, paymentMethod string) error {
	if strings.TrimSpace(paymentMethod) == "" {
		return domain.ErrValidation("payment method is required")
	}
	if err := s.entitlements.CreateSubscription(ctx, memberID, paymentMethod); err != nil {
		return err
	}
	s.logger.Info("subscription created", "member_id", memberID)
	return nil
}

// UpdatePaymentMethod swaps the member's default payment method.
func (s *Service) UpdatePaymentMethod(ctx context.Context, memberID int64, paymentMethod string) error {
	if strings.TrimSpace(paymentMethod) == "" {
		return domain.ErrValidation("payment method is required")
	}
	return s.entitlements.UpdatePaymentMethod(ctx, memberID, paymentMethod)
}

// Unsubscribe cancels the member's subscription. The entitlement change is
// visible on the next request; nothing is cached locally.
func (s *Service) Unsubscribe(ctx context.Context, memberID int64) error {
	if err := s.entitlements.CancelSubscription(ctx, memberID); err != nil {
		return err
	}
	s.logger.Info("subscription canceled", "member_id", memberID)
	return nil
}
