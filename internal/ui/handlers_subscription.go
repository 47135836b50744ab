package ui

import (
	"net/http"

	"tablenavi/internal/service/access"
)

func (h *Handler) SubscriptionNew(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionSubscriptionCreate, nil) {
		return
	}
	renderHTML(w, http.StatusOK, subscriptionNewPage(r, principalFromRequest(r), h.popFlash(w, r)))
}

func (h *Handler) SubscriptionCreate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionSubscriptionStore, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	principal := principalFromRequest(r)
	if err := h.Accounts.Subscribe(r.Context(), principal.ID, formString(r.Form, "payment_method")); err != nil {
		h.setFlash(w, err.Error())
		http.Redirect(w, r, access.PathSubscriptionCreate, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, access.PathHome, http.StatusSeeOther)
}

func (h *Handler) SubscriptionEdit(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionSubscriptionEdit, nil) {
		return
	}
	renderHTML(w, http.StatusOK, subscriptionEditPage(r, principalFromRequest(r), h.popFlash(w, r)))
}

func (h *Handler) SubscriptionUpdate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionSubscriptionUpdate, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	principal := principalFromRequest(r)
	if err := h.Accounts.UpdatePaymentMethod(r.Context(), principal.ID, formString(r.Form, "payment_method")); err != nil {
		h.setFlash(w, err.Error())
		http.Redirect(w, r, access.PathSubscriptionEdit, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, access.PathMyPage, http.StatusSeeOther)
}

func (h *Handler) SubscriptionCancelPage(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionSubscriptionCancel, nil) {
		return
	}
	renderHTML(w, http.StatusOK, subscriptionCancelPage(r, principalFromRequest(r), h.popFlash(w, r)))
}

func (h *Handler) SubscriptionDelete(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionSubscriptionDelete, nil) {
		return
	}
	principal := principalFromRequest(r)
	if err := h.Accounts.Unsubscribe(r.Context(), principal.ID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.PathHome, http.StatusSeeOther)
}
