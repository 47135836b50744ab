// Package directory implements restaurant discovery and member engagement:
// the search query builder, review tiering, favorites and reservations.
package directory

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"tablenavi/internal/domain"
)

// Service coordinates catalogue reads and engagement writes over the
// repositories.
type Service struct {
	restaurants  domain.RestaurantRepository
	categories   domain.CategoryRepository
	holidays     domain.HolidayRepository
	reviews      domain.ReviewRepository
	reservations domain.ReservationRepository
	favorites    domain.FavoriteRepository
	companies    domain.CompanyRepository
	terms        domain.TermRepository
	entitlements domain.EntitlementProvider
	logger       *slog.Logger
}

// NewService creates a directory Service.
func NewService(
	restaurants domain.RestaurantRepository,
	categories domain.CategoryRepository,
	holidays domain.HolidayRepository,
	reviews domain.ReviewRepository,
	reservations domain.ReservationRepository,
	favorites domain.FavoriteRepository,
	companies domain.CompanyRepository,
	terms domain.TermRepository,
	entitlements domain.EntitlementProvider,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		restaurants:  restaurants,
		categories:   categories,
		holidays:     holidays,
		reviews:      reviews,
		reservations: reservations,
		favorites:    favorites,
		companies:    companies,
		terms:        terms,
		entitlements: entitlements,
		logger:       logger,
	}
}

// SearchInput carries raw, untrusted request values for the restaurant
// listing.
type SearchInput struct {
	Keyword    string
	CategoryID string
	MaxPrice   string
	SortToken  string
	Page       string
}

// BuildRestaurantQuery turns raw request values into a deterministic
// query specification. Unparseable numbers and unknown sort tokens fall
// back to their defaults rather than erroring: the listing never fails on
// bad query strings.
func BuildRestaurantQuery(in SearchInput) domain.RestaurantQuery {
	q := domain.RestaurantQuery{
		Keyword: strings.TrimSpace(in.Keyword),
		Sort:    domain.ParseSortToken(in.SortToken),
		Page:    domain.PageRequest{Page: 1, PerPage: domain.RestaurantPageSize},
	}
	if id, err := strconv.ParseInt(in.CategoryID, 10, 64); err == nil && id > 0 {
		q.CategoryID = id
	}
	if price, err := strconv.Atoi(in.MaxPrice); err == nil && price > 0 {
		q.MaxPrice = price
	}
	if page, err := strconv.Atoi(in.Page); err == nil && page > 1 {
		q.Page.Page = page
	}
	return q
}

// SearchRestaurants runs the discovery query.
func (s *Service) SearchRestaurants(ctx context.Context, q domain.RestaurantQuery) ([]domain.Restaurant, int64, error) {
	return s.restaurants.Search(ctx, q)
}

// GetRestaurant loads one restaurant with aggregates and associations.
func (s *Service) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	return s.restaurants.GetByID(ctx, id)
}

// ListCategories returns every category, for the search form.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListAll(ctx)
}

// ListHolidays returns the regular-holiday catalogue.
func (s *Service) ListHolidays(ctx context.Context) ([]domain.RegularHoliday, error) {
	return s.holidays.ListAll(ctx)
}

// GetCompany loads the company profile for the about page.
func (s *Service) GetCompany(ctx context.Context) (*domain.Company, error) {
	return s.companies.Get(ctx)
}

// UpdateCompany replaces the company profile.
func (s *Service) UpdateCompany(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	return s.companies.Update(ctx, c)
}

// GetTerms loads the terms of service.
func (s *Service) GetTerms(ctx context.Context) (*domain.Term, error) {
	return s.terms.Get(ctx)
}

// UpdateTerms replaces the terms content.
func (s *Service) UpdateTerms(ctx context.Context, content string) (*domain.Term, error) {
	return s.terms.Update(ctx, content)
}

// ListReviews applies the tiered review listing rule. Subscribed members
// get a paginated page with the total; everyone else gets the newest
// preview slice, marked truncated, with no total disclosed.
//
// A billing failure propagates as an EntitlementUnknownError; the tier is
// never guessed.
func (s *Service) ListReviews(ctx context.Context, restaurantID, memberID int64, page domain.PageRequest) (*domain.ReviewPage, error) {
	subscribed, err := s.entitlements.HasActiveSubscription(ctx, memberID)
	if err != nil {
		return nil, domain.ErrEntitlementUnknown("subscription state unavailable for member %d: %v", memberID, err)
	}

	if !subscribed {
		reviews, err := s.reviews.ListNewest(ctx, restaurantID, domain.ReviewPreviewSize)
		if err != nil {
			return nil, err
		}
		return &domain.ReviewPage{Reviews: reviews, Truncated: true}, nil
	}

	if page.PerPage <= 0 {
		page.PerPage = domain.ReviewPageSize
	}
	reviews, total, err := s.reviews.ListForRestaurant(ctx, restaurantID, page)
	if err != nil {
		return nil, err
	}
	return &domain.ReviewPage{Reviews: reviews, Total: total}, nil
}

// GetReview loads one review.
func (s *Service) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	return s.reviews.GetByID(ctx, id)
}

// CreateReview stores a member's review of a restaurant.
func (s *Service) CreateReview(ctx context.Context, restaurantID, memberID int64, score int, content string) (*domain.Review, error) {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}
	return s.reviews.Create(ctx, &domain.Review{
		RestaurantID: restaurantID,
		MemberID:     memberID,
		Score:        score,
		Content:      content,
	})
}

// UpdateReview rewrites a review's score and content. Ownership is decided
// upstream by the access engine.
func (s *Service) UpdateReview(ctx context.Context, review *domain.Review, score int, content string) (*domain.Review, error) {
	review.Score = score
	review.Content = content
	return s.reviews.Update(ctx, review)
}

// DeleteReview removes a review.
func (s *Service) DeleteReview(ctx context.Context, id int64) error {
	return s.reviews.Delete(ctx, id)
}

// Favorite bookmarks a restaurant for a member. Repeats are no-ops.
func (s *Service) Favorite(ctx context.Context, memberID, restaurantID int64) error {
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return err
	}
	return s.favorites.Store(ctx, memberID, restaurantID)
}

// Unfavorite removes a bookmark.
func (s *Service) Unfavorite(ctx context.Context, memberID, restaurantID int64) error {
	return s.favorites.Delete(ctx, memberID, restaurantID)
}

// IsFavorite reports whether the member has bookmarked the restaurant.
func (s *Service) IsFavorite(ctx context.Context, memberID, restaurantID int64) (bool, error) {
	return s.favorites.Exists(ctx, memberID, restaurantID)
}

// ListFavorites returns the member's bookmarked restaurants.
func (s *Service) ListFavorites(ctx context.Context, memberID int64, page domain.PageRequest) ([]domain.Restaurant, int64, error) {
	return s.favorites.ListRestaurants(ctx, memberID, page)
}

// CreateReservation books a table. Repeat submissions each create a row;
// the restaurant handles overbooking offline.
func (s *Service) CreateReservation(ctx context.Context, memberID int64, req domain.CreateReservationRequest) (*domain.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.restaurants.GetByID(ctx, req.RestaurantID); err != nil {
		return nil, err
	}
	return s.reservations.Create(ctx, &domain.Reservation{
		RestaurantID:   req.RestaurantID,
		MemberID:       memberID,
		ReservedAt:     req.ReservedAt(),
		NumberOfPeople: req.NumberOfPeople,
	})
}

// GetReservation loads one reservation.
func (s *Service) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// CancelReservation deletes a reservation. Ownership is decided upstream.
func (s *Service) CancelReservation(ctx context.Context, id int64) error {
	return s.reservations.Delete(ctx, id)
}

// ListReservations returns the member's reservations.
func (s *Service) ListReservations(ctx context.Context, memberID int64, page domain.PageRequest) ([]domain.Reservation, int64, error) {
	return s.reservations.ListForMember(ctx, memberID, page)
}
