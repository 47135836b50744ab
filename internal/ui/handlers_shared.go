package ui

import (
	"errors"
	"net/http"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/access"
)

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionHome, nil) {
		return
	}
	highlighted, _, err := h.Directory.SearchRestaurants(r.Context(), domain.RestaurantQuery{
		Sort: domain.SortSpec{Column: domain.SortColumnRating, Direction: domain.SortDesc},
		Page: domain.PageRequest{Page: 1, PerPage: 6},
	})
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	categories, err := h.Directory.ListCategories(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, homePage(principalFromRequest(r), h.popFlash(w, r), highlighted, categories))
}

func (h *Handler) CompanyShow(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionCompanyShow, nil) {
		return
	}
	company, err := h.Directory.GetCompany(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, companyPage(principalFromRequest(r), h.popFlash(w, r), company))
}

func (h *Handler) TermsShow(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionTermsShow, nil) {
		return
	}
	terms, err := h.Directory.GetTerms(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, termsPage(principalFromRequest(r), h.popFlash(w, r), terms))
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusNotFound, errorPage("Not Found", "The page you were looking for does not exist."))
}

func (h *Handler) renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	title := "Unexpected Error"
	message := "An unexpected error occurred while loading this page."

	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	var unknown *domain.EntitlementUnknownError
	if errors.As(err, &notFound) {
		status = http.StatusNotFound
		title = "Not Found"
		message = notFound.Error()
	} else if errors.As(err, &accessDenied) {
		status = http.StatusForbidden
		title = "Access Denied"
		message = accessDenied.Error()
	} else if errors.As(err, &validation) {
		status = http.StatusBadRequest
		title = "Invalid Request"
		message = validation.Error()
	} else if errors.As(err, &conflict) {
		status = http.StatusConflict
		title = "Conflict"
		message = conflict.Error()
	} else if errors.As(err, &unknown) {
		renderHTML(w, http.StatusServiceUnavailable, unavailablePage())
		return
	}

	renderHTML(w, status, errorPage(title, message))
}
