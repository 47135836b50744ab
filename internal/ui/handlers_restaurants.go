package ui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tablenavi/internal/service/access"
	"tablenavi/internal/service/directory"
)

func restaurantIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "restaurantID"), 10, 64)
}

func (h *Handler) RestaurantsIndex(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionRestaurantIndex, nil) {
		return
	}
	input := directory.SearchInput{
		Keyword:    r.URL.Query().Get("keyword"),
		CategoryID: r.URL.Query().Get("category_id"),
		MaxPrice:   r.URL.Query().Get("max_price"),
		SortToken:  r.URL.Query().Get("sort"),
		Page:       r.URL.Query().Get("page"),
	}
	query := directory.BuildRestaurantQuery(input)
	restaurants, total, err := h.Directory.SearchRestaurants(r.Context(), query)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	categories, err := h.Directory.ListCategories(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, restaurantsIndexPage(
		principalFromRequest(r),
		h.popFlash(w, r),
		restaurants,
		categories,
		input,
		query,
		total,
	))
}

func (h *Handler) RestaurantsShow(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionRestaurantShow, nil) {
		return
	}
	id, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	restaurant, err := h.Directory.GetRestaurant(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}

	principal := principalFromRequest(r)
	favorited := false
	if principal.IsMember() {
		favorited, err = h.Directory.IsFavorite(r.Context(), principal.ID, id)
		if err != nil {
			h.renderServiceError(w, r, err)
			return
		}
	}
	renderHTML(w, http.StatusOK, restaurantShowPage(r, principal, h.popFlash(w, r), restaurant, favorited))
}
