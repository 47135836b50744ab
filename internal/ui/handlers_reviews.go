package ui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/access"
)

func reviewIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
}

// reviewForRequest resolves the review addressed by the URL and checks it
// belongs to the restaurant in the path. Called only after the
// authentication stages have passed.
func (h *Handler) reviewForRequest(r *http.Request, restaurantID int64) (domain.OwnedResource, error) {
	id, err := reviewIDParam(r)
	if err != nil {
		return nil, domain.ErrNotFound("review not found")
	}
	review, err := h.Directory.GetReview(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if review.RestaurantID != restaurantID {
		return nil, domain.ErrNotFound("review %d not found", id)
	}
	return review, nil
}

func (h *Handler) ReviewsIndex(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionReviewIndex, nil) {
		return
	}
	restaurantID, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	restaurant, err := h.Directory.GetRestaurant(r.Context(), restaurantID)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	principal := principalFromRequest(r)
	page := pageFromRequest(r, domain.ReviewPageSize)
	reviews, err := h.Directory.ListReviews(r.Context(), restaurantID, principal.ID, page)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, reviewsIndexPage(r, principal, h.popFlash(w, r), restaurant, reviews, page))
}

func (h *Handler) ReviewsNew(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionReviewCreate, nil) {
		return
	}
	restaurantID, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	restaurant, err := h.Directory.GetRestaurant(r.Context(), restaurantID)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, reviewFormPage(r, principalFromRequest(r), h.popFlash(w, r), restaurant, nil))
}

func (h *Handler) ReviewsCreate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionReviewStore, nil) {
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
	_, err = h.Directory.CreateReview(r.Context(), restaurantID, principal.ID,
		formInt(r.Form, "score"), formString(r.Form, "content"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.RestaurantReviewsPath(restaurantID), http.StatusSeeOther)
}

func (h *Handler) ReviewsEdit(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	resource, ok := h.authorizeOwned(w, r, access.ActionReviewEdit, func() (domain.OwnedResource, error) {
		return h.reviewForRequest(r, restaurantID)
	})
	if !ok {
		return
	}
	review := resource.(*domain.Review)
	restaurant, err := h.Directory.GetRestaurant(r.Context(), restaurantID)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, reviewFormPage(r, principalFromRequest(r), h.popFlash(w, r), restaurant, review))
}

func (h *Handler) ReviewsUpdate(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	resource, ok := h.authorizeOwned(w, r, access.ActionReviewUpdate, func() (domain.OwnedResource, error) {
		return h.reviewForRequest(r, restaurantID)
	})
	if !ok {
		return
	}
	review := resource.(*domain.Review)
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	_, err = h.Directory.UpdateReview(r.Context(), review,
		formInt(r.Form, "score"), formString(r.Form, "content"))
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.RestaurantReviewsPath(restaurantID), http.StatusSeeOther)
}

func (h *Handler) ReviewsDelete(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := restaurantIDParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	resource, ok := h.authorizeOwned(w, r, access.ActionReviewDelete, func() (domain.OwnedResource, error) {
		return h.reviewForRequest(r, restaurantID)
	})
	if !ok {
		return
	}
	review := resource.(*domain.Review)
	if err := h.Directory.DeleteReview(r.Context(), review.ID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.RestaurantReviewsPath(restaurantID), http.StatusSeeOther)
}
