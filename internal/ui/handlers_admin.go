package ui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/access"
)

func (h *Handler) AdminHome(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminHome, nil) {
		return
	}
	renderHTML(w, http.StatusOK, adminHomePage(h.popFlash(w, r)))
}

func (h *Handler) AdminMembersIndex(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminMemberIndex, nil) {
		return
	}
	keyword := r.URL.Query().Get("keyword")
	page := pageFromRequest(r, domain.RestaurantPageSize)
	members, total, err := h.Accounts.ListMembers(r.Context(), keyword, page)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminMembersPage(h.popFlash(w, r), members, keyword, page, total))
}

func (h *Handler) AdminMembersShow(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminMemberShow, nil) {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "memberID"), 10, 64)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	member, err := h.Accounts.GetMember(r.Context(), id)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminMemberDetailPage(h.popFlash(w, r), member))
}

func (h *Handler) AdminCategoriesIndex(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminCategoryIndex, nil) {
		return
	}
	keyword := r.URL.Query().Get("keyword")
	page := pageFromRequest(r, domain.RestaurantPageSize)
	categories, total, err := h.Directory.SearchCategories(r.Context(), keyword, page)
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminCategoriesPage(r, h.popFlash(w, r), categories, keyword, page, total))
}

func (h *Handler) AdminCategoriesCreate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminCategoryStore, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	if _, err := h.Directory.CreateCategory(r.Context(), formString(r.Form, "name")); err != nil {
		h.setFlash(w, err.Error())
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

func (h *Handler) AdminCategoriesUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminCategoryUpdate, nil) {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	if _, err := h.Directory.UpdateCategory(r.Context(), id, formString(r.Form, "name")); err != nil {
		h.setFlash(w, err.Error())
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

func (h *Handler) AdminCategoriesDelete(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminCategoryDelete, nil) {
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := h.Directory.DeleteCategory(r.Context(), id); err != nil {
		h.setFlash(w, err.Error())
	}
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

func (h *Handler) AdminCompanyShow(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminCompanyShow, nil) {
		return
	}
	company, err := h.Directory.GetCompany(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminCompanyPage(h.popFlash(w, r), company))
}

func (h *Handler) AdminCompanyEdit(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminCompanyEdit, nil) {
		return
	}
	company, err := h.Directory.GetCompany(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminCompanyEditPage(r, h.popFlash(w, r), company))
}

func (h *Handler) AdminCompanyUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminCompanyUpdate, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	_, err := h.Directory.UpdateCompany(r.Context(), &domain.Company{
		Name:              formString(r.Form, "name"),
		PostalCode:        formString(r.Form, "postal_code"),
		Address:           formString(r.Form, "address"),
		Representative:    formString(r.Form, "representative"),
		EstablishmentDate: formString(r.Form, "establishment_date"),
		Capital:           formString(r.Form, "capital"),
		Business:          formString(r.Form, "business"),
		NumberOfEmployees: formString(r.Form, "number_of_employees"),
	})
	if err != nil {
		h.setFlash(w, err.Error())
		http.Redirect(w, r, "/admin/company/edit", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/company", http.StatusSeeOther)
}

func (h *Handler) AdminTermsShow(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminTermsShow, nil) {
		return
	}
	terms, err := h.Directory.GetTerms(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminTermsPage(h.popFlash(w, r), terms))
}

func (h *Handler) AdminTermsEdit(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminTermsEdit, nil) {
		return
	}
	terms, err := h.Directory.GetTerms(r.Context())
	if err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	renderHTML(w, http.StatusOK, adminTermsEditPage(r, h.popFlash(w, r), terms))
}

func (h *Handler) AdminTermsUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminTermsUpdate, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	if _, err := h.Directory.UpdateTerms(r.Context(), formString(r.Form, "content")); err != nil {
		h.setFlash(w, err.Error())
		http.Redirect(w, r, "/admin/terms/edit", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/terms", http.StatusSeeOther)
}
