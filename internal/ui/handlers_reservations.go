package ui

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/access"
)

func (h *Handler) ReservationsIndex(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionReservationIndex, nil) {
		return
	}
	principal := principalFromRequest(r)
	page := pageFromRequest(r, domain.RestaurantPageSize)
	reservations, total, err := h.Directory.ListReservations(r.Context(), principal.ID, page)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, reservationsIndexPage(r, principal, h.popFlash(w, r), reservations, page, total))
}

func (h *Handler) ReservationsCreate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionReservationStore, nil) {
		return
	}
	restaurantID, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	principal := principalFromRequest(r)
	_, err = h.Directory.CreateReservation(r.Context(), principal.ID, domain.CreateReservationRequest{
		RestaurantID:   restaurantID,
		Date:           formString(r.Form, "date"),
		Time:           formString(r.Form, "time"),
		NumberOfPeople: formInt(r.Form, "number_of_people"),
	})
	if err != nil {
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			h.setFlash(w, validation.Error())
			http.Redirect(w, r, fmt.Sprintf("/restaurants/%d", restaurantID), http.StatusSeeOther)
			return
		}
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.PathReservations, http.StatusSeeOther)
}

func (h *Handler) ReservationsDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "reservationID"), 10, 64)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if _, ok := h.authorizeOwned(w, r, access.ActionReservationDelete, func() (domain.OwnedResource, error) {
		reservation, err := h.Directory.GetReservation(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return reservation, nil
	}); !ok {
		return
	}
	if err := h.Directory.CancelReservation(r.Context(), id); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.PathReservations, http.StatusSeeOther)
}
