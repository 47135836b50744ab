package ui

import (
	"fmt"
	"net/http"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/access"
	"tablenavi/internal/service/directory"
)

func restaurantInputFromForm(values map[string][]string) directory.RestaurantInput {
	return directory.RestaurantInput{
		Name:            formString(values, "name"),
		Image:           formString(values, "image"),
		Description:     formString(values, "description"),
		LowestPrice:     formInt(values, "lowest_price"),
		HighestPrice:    formInt(values, "highest_price"),
		PostalCode:      formString(values, "postal_code"),
		Address:         formString(values, "address"),
		OpeningTime:     formString(values, "opening_time"),
		ClosingTime:     formString(values, "closing_time"),
		SeatingCapacity: formInt(values, "seating_capacity"),
		CategoryIDs:     formInt64List(values, "category_ids"),
		HolidayIDs:      formInt64List(values, "holiday_ids"),
	}
}

func (h *Handler) AdminRestaurantsIndex(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminRestaurantIndex, nil) {
		return
	}
	keyword := r.URL.Query().Get("keyword")
	page := pageFromRequest(r, domain.RestaurantPageSize)
	restaurants, total, err := h.Directory.ListRestaurantsByName(r.Context(), keyword, page)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminRestaurantsPage(r, h.popFlash(w, r), restaurants, keyword, page, total))
}

func (h *Handler) AdminRestaurantsShow(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminRestaurantShow, nil) {
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
	renderHTML(w, http.StatusOK, adminRestaurantDetailPage(r, h.popFlash(w, r), restaurant))
}

func (h *Handler) AdminRestaurantsNew(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminRestaurantCreate, nil) {
		return
	}
	categories, err := h.Directory.ListCategories(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	holidays, err := h.Directory.ListHolidays(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminRestaurantFormPage(r, h.popFlash(w, r), nil, categories, holidays))
}

func (h *Handler) AdminRestaurantsCreate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminRestaurantStore, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	if _, err := h.Directory.CreateRestaurant(r.Context(), restaurantInputFromForm(r.Form)); err != nil {
		h.setFlash(w, err.Error())
		http.Redirect(w, r, "/admin/restaurants/create", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/restaurants", http.StatusSeeOther)
}

func (h *Handler) AdminRestaurantsEdit(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminRestaurantEdit, nil) {
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
	categories, err := h.Directory.ListCategories(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	holidays, err := h.Directory.ListHolidays(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminRestaurantFormPage(r, h.popFlash(w, r), restaurant, categories, holidays))
}

func (h *Handler) AdminRestaurantsUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminRestaurantUpdate, nil) {
		return
	}
	id, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	if _, err := h.Directory.UpdateRestaurant(r.Context(), id, restaurantInputFromForm(r.Form)); err != nil {
		h.setFlash(w, err.Error())
		http.Redirect(w, r, fmt.Sprintf("/admin/restaurants/%d/edit", id), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/restaurants", http.StatusSeeOther)
}

func (h *Handler) AdminRestaurantsDelete(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminRestaurantDelete, nil) {
		return
	}
	id, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := h.Directory.DeleteRestaurant(r.Context(), id); err != nil {
		h.setFlash(w, err.Error())
	}
	http.Redirect(w, r, "/admin/restaurants", http.StatusSeeOther)
}
