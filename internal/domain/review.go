package domain

import (
	"strings"
	"time"
)

// Review is a member-authored restaurant review. Score feeds the derived
// restaurant rating.
type Review struct {
	ID           int64
	Score        int // 1..5
	Content      string
	RestaurantID int64
	MemberID     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreatedBy implements OwnedResource.
func (r *Review) CreatedBy() int64 { return r.MemberID }

// Validate checks score range and content presence.
func (r *Review) Validate() error {
	if r.Score < 1 || r.Score > 5 {
		return ErrValidation("score must be between 1 and 5")
	}
	if strings.TrimSpace(r.Content) == "" {
		return ErrValidation("review content is required")
	}
	return nil
}

// ReviewPage is the output of the tiered reviews.index rule. For
// non-subscribed members only the newest preview slice is returned and
// Truncated is set, with no count of what was withheld.
type ReviewPage struct {
	Reviews   []Review
	Total     int64 // 0 when Truncated; totals are not disclosed to the free tier
	Truncated bool  // true when the preview cap was applied
}
