package domain

import "context"

// EntitlementProvider is the external billing collaborator. Subscription
// state lives entirely on the provider side; this core only reads it.
// Implementations must return an EntitlementUnknownError (wrapped) when the
// provider cannot be reached, never a silent default.
type EntitlementProvider interface {
	HasActiveSubscription(ctx context.Context, memberID int64) (bool, error)
	CreateSubscription(ctx context.Context, memberID int64, paymentMethod string) error
	UpdatePaymentMethod(ctx context.Context, memberID int64, paymentMethod string) error
	CancelSubscription(ctx context.Context, memberID int64) error
}

// RestaurantRepository persists restaurants and runs the discovery query.
type RestaurantRepository interface {
	Create(ctx context.Context, r *Restaurant, categoryIDs, holidayIDs []int64) (*Restaurant, error)
	GetByID(ctx context.Context, id int64) (*Restaurant, error)
	Update(ctx context.Context, r *Restaurant, categoryIDs, holidayIDs []int64) (*Restaurant, error)
	Delete(ctx context.Context, id int64) error

	// Search executes the full filter+sort+paginate specification in one
	// pass, including the rating and popularity aggregates.
	Search(ctx context.Context, q RestaurantQuery) ([]Restaurant, int64, error)

	// ListByName is the admin listing: optional name keyword, paginated.
	ListByName(ctx context.Context, keyword string, page PageRequest) ([]Restaurant, int64, error)
}

// CategoryRepository persists cuisine categories.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Update(ctx context.Context, id int64, name string) (*Category, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, keyword string, page PageRequest) ([]Category, int64, error)
	ListAll(ctx context.Context) ([]Category, error)
}

// HolidayRepository reads the fixed regular-holiday catalogue.
type HolidayRepository interface {
	ListAll(ctx context.Context) ([]RegularHoliday, error)
}

// ReviewRepository persists reviews and serves the tiered listing reads.
type ReviewRepository interface {
	Create(ctx context.Context, r *Review) (*Review, error)
	GetByID(ctx context.Context, id int64) (*Review, error)
	Update(ctx context.Context, r *Review) (*Review, error)
	Delete(ctx context.Context, id int64) error

	// ListForRestaurant returns reviews newest first with the total count.
	ListForRestaurant(ctx context.Context, restaurantID int64, page PageRequest) ([]Review, int64, error)
	// ListNewest returns at most limit newest reviews, no total.
	ListNewest(ctx context.Context, restaurantID int64, limit int) ([]Review, error)
}

// ReservationRepository persists reservations.
type ReservationRepository interface {
	Create(ctx context.Context, r *Reservation) (*Reservation, error)
	GetByID(ctx context.Context, id int64) (*Reservation, error)
	Delete(ctx context.Context, id int64) error
	ListForMember(ctx context.Context, memberID int64, page PageRequest) ([]Reservation, int64, error)
}

// FavoriteRepository persists member-restaurant bookmarks.
type FavoriteRepository interface {
	// Store inserts the favorite unless it already exists.
	Store(ctx context.Context, memberID, restaurantID int64) error
	Delete(ctx context.Context, memberID, restaurantID int64) error
	Exists(ctx context.Context, memberID, restaurantID int64) (bool, error)
	// ListRestaurants returns favorited restaurants, most recently
	// favorited first.
	ListRestaurants(ctx context.Context, memberID int64, page PageRequest) ([]Restaurant, int64, error)
}

// MemberRepository persists the member credential store.
type MemberRepository interface {
	Create(ctx context.Context, m *Member) (*Member, error)
	GetByID(ctx context.Context, id int64) (*Member, error)
	GetByEmail(ctx context.Context, email string) (*Member, error)
	UpdateProfile(ctx context.Context, id int64, u UpdateMemberProfile) (*Member, error)
	List(ctx context.Context, keyword string, page PageRequest) ([]Member, int64, error)
}

// AdminRepository persists the administrator credential store.
type AdminRepository interface {
	Create(ctx context.Context, a *Admin) (*Admin, error)
	GetByID(ctx context.Context, id int64) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

// CompanyRepository reads and updates the single company-profile row.
type CompanyRepository interface {
	Get(ctx context.Context) (*Company, error)
	Update(ctx context.Context, c *Company) (*Company, error)
}

// TermRepository reads and updates the single terms row.
type TermRepository interface {
	Get(ctx context.Context) (*Term, error)
	Update(ctx context.Context, content string) (*Term, error)
}
