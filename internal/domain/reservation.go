package domain

import "time"

// Reservation is a member's booking at a restaurant.
type Reservation struct {
	ID             int64
	ReservedAt     time.Time
	NumberOfPeople int
	RestaurantID   int64
	MemberID       int64
	CreatedAt      time.Time

	// RestaurantName is populated by list queries for display.
	RestaurantName string
}

// CreatedBy implements OwnedResource.
func (r *Reservation) CreatedBy() int64 { return r.MemberID }

// CreateReservationRequest holds parameters for creating a reservation.
type CreateReservationRequest struct {
	RestaurantID   int64
	Date           string // "2006-01-02"
	Time           string // "15:04"
	NumberOfPeople int
}

// Validate checks the reservation request. Double submission is not
// deduplicated; each valid request creates a row.
func (r *CreateReservationRequest) Validate() error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return ErrValidation("reservation date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return ErrValidation("reservation time must be HH:MM")
	}
	if r.NumberOfPeople < 1 || r.NumberOfPeople > 50 {
		return ErrValidation("number of people must be between 1 and 50")
	}
	return nil
}

// ReservedAt combines the validated date and time fields.
func (r *CreateReservationRequest) ReservedAt() time.Time {
	t, _ := time.Parse("2006-01-02 15:04", r.Date+" "+r.Time)
	return t
}

// Favorite links a member to a bookmarked restaurant. Insertion is
// idempotent: storing an existing favorite leaves a single row.
type Favorite struct {
	MemberID     int64
	RestaurantID int64
	CreatedAt    time.Time
}
