package directory

import (
	"context"

	"tablenavi/internal/domain"
)

// Administration of the catalogue. These methods sit behind admin-only
// actions; the service itself does no permission checking.

// RestaurantInput carries the editable fields of a restaurant plus its
// category and holiday links.
type RestaurantInput struct {
	Name            string
	Image           string
	Description     string
	LowestPrice     int
	HighestPrice    int
	PostalCode      string
	Address         string
	OpeningTime     string
	ClosingTime     string
	SeatingCapacity int
	CategoryIDs     []int64
	HolidayIDs      []int64
}

func (in RestaurantInput) entity() *domain.Restaurant {
	return &domain.Restaurant{
		Name:            in.Name,
		Image:           in.Image,
		Description:     in.Description,
		LowestPrice:     in.LowestPrice,
		HighestPrice:    in.HighestPrice,
		PostalCode:      in.PostalCode,
		Address:         in.Address,
		OpeningTime:     in.OpeningTime,
		ClosingTime:     in.ClosingTime,
		SeatingCapacity: in.SeatingCapacity,
	}
}

// CreateRestaurant adds a restaurant with its links.
func (s *Service) CreateRestaurant(ctx context.Context, in RestaurantInput) (*domain.Restaurant, error) {
	return s.restaurants.Create(ctx, in.entity(), in.CategoryIDs, in.HolidayIDs)
}

// UpdateRestaurant replaces a restaurant and re-syncs its links.
func (s *Service) UpdateRestaurant(ctx context.Context, id int64, in RestaurantInput) (*domain.Restaurant, error) {
	rest := in.entity()
	rest.ID = id
	return s.restaurants.Update(ctx, rest, in.CategoryIDs, in.HolidayIDs)
}

// DeleteRestaurant removes a restaurant and everything hanging off it.
func (s *Service) DeleteRestaurant(ctx context.Context, id int64) error {
	return s.restaurants.Delete(ctx, id)
}

// ListRestaurantsByName is the admin listing with an optional name filter.
func (s *Service) ListRestaurantsByName(ctx context.Context, keyword string, page domain.PageRequest) ([]domain.Restaurant, int64, error) {
	return s.restaurants.ListByName(ctx, keyword, page)
}

// CreateCategory adds a category.
func (s *Service) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	return s.categories.Create(ctx, name)
}

// UpdateCategory renames a category.
func (s *Service) UpdateCategory(ctx context.Context, id int64, name string) (*domain.Category, error) {
	return s.categories.Update(ctx, id, name)
}

// DeleteCategory removes a category.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.categories.Delete(ctx, id)
}

// SearchCategories returns categories matching an optional keyword,
// paginated, for the admin listing.
func (s *Service) SearchCategories(ctx context.Context, keyword string, page domain.PageRequest) ([]domain.Category, int64, error) {
	return s.categories.List(ctx, keyword, page)
}
