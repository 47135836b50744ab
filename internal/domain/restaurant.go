package domain

import (
	"strings"
	"time"
)

// Restaurant is a directory entry. Rating and the reservation count are
// derived aggregates; they are populated by list queries and never stored.
type Restaurant struct {
	ID              int64
	Name            string
	Image           string
	Description     string
	LowestPrice     int
	HighestPrice    int
	PostalCode      string
	Address         string
	OpeningTime     string // "HH:MM", always before ClosingTime
	ClosingTime     string // "HH:MM", no overnight wraparound
	SeatingCapacity int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Derived fields, populated by aggregate queries.
	Rating           float64
	ReviewCount      int64
	ReservationCount int64

	// Associations, populated on demand.
	Categories      []Category
	RegularHolidays []RegularHoliday
}

// Validate checks the restaurant's own invariants.
func (r *Restaurant) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrValidation("restaurant name is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrValidation("restaurant description is required")
	}
	if r.LowestPrice < 0 || r.HighestPrice < 0 {
		return ErrValidation("prices must not be negative")
	}
	if r.LowestPrice > r.HighestPrice {
		return ErrValidation("lowest price must not exceed highest price")
	}
	if !validTimeOfDay(r.OpeningTime) || !validTimeOfDay(r.ClosingTime) {
		return ErrValidation("opening and closing times must be HH:MM")
	}
	if r.OpeningTime >= r.ClosingTime {
		return ErrValidation("opening time must be before closing time")
	}
	if r.SeatingCapacity < 0 {
		return ErrValidation("seating capacity must not be negative")
	}
	return nil
}

// validTimeOfDay reports whether s is a zero-padded "HH:MM" clock value.
// Lexicographic comparison of such values matches chronological order.
func validTimeOfDay(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	t, err := time.Parse("15:04", s)
	return err == nil && t.Format("15:04") == s
}

// Category is a cuisine or genre label, many-to-many with restaurants.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// RegularHoliday is a recurring closed day, many-to-many with restaurants.
type RegularHoliday struct {
	ID  int64
	Day string // e.g. "Monday"
}
