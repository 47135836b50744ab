package ui

import (
	"fmt"
	"net/http"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/access"
)

func (h *Handler) FavoritesIndex(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionFavoriteIndex, nil) {
		return
	}
	principal := principalFromRequest(r)
	page := pageFromRequest(r, domain.RestaurantPageSize)
	favorites, total, err := h.Directory.ListFavorites(r.Context(), principal.ID, page)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, favoritesIndexPage(r, principal, h.popFlash(w, r), favorites, page, total))
}

func (h *Handler) FavoritesStore(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionFavoriteStore, nil) {
		return
	}
	restaurantID, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	principal := principalFromRequest(r)
	if err := h.Directory.Favorite(r.Context(), principal.ID, restaurantID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/restaurants/%d", restaurantID), http.StatusSeeOther)
}

func (h *Handler) FavoritesDelete(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionFavoriteDelete, nil) {
		return
	}
	restaurantID, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	principal := principalFromRequest(r)
	if err := h.Directory.Unfavorite(r.Context(), principal.ID, restaurantID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	redirect := fmt.Sprintf("/restaurants/%d", restaurantID)
	if r.FormValue("from") == "index" {
		redirect = access.PathFavorites
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
