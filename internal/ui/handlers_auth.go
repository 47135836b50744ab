package ui

import (
	"net/http"

	"tablenavi/internal/service/access"
	"tablenavi/internal/service/account"
)

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionMemberRegister, nil) {
		return
	}
	renderHTML(w, http.StatusOK, registerPage(r, h.popFlash(w, r)))
}

func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionMemberRegister, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	member, err := h.Accounts.RegisterMember(r.Context(), account.RegisterMemberRequest{
		Name:     formString(r.Form, "name"),
		Kana:     formString(r.Form, "kana"),
		Email:    formString(r.Form, "email"),
		Password: formString(r.Form, "password"),
	})
	if err != nil {
		h.setFlash(w, err.Error())
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}
	if err := h.Sessions.LoginMember(w, member.ID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.PathHome, http.StatusSeeOther)
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionMemberLogin, nil) {
		return
	}
	renderHTML(w, http.StatusOK, loginPage(r, h.popFlash(w, r), false))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionMemberLogin, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	member, err := h.Accounts.AuthenticateMember(r.Context(), formString(r.Form, "email"), formString(r.Form, "password"))
	if err != nil {
		h.setFlash(w, "Invalid email or password.")
		http.Redirect(w, r, access.PathMemberLogin, http.StatusSeeOther)
		return
	}
	if err := h.Sessions.LoginMember(w, member.ID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.PathHome, http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionLogout, nil) {
		return
	}
	h.Sessions.LogoutMember(w)
	http.Redirect(w, r, access.PathHome, http.StatusSeeOther)
}

func (h *Handler) AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminLogin, nil) {
		return
	}
	renderHTML(w, http.StatusOK, loginPage(r, h.popFlash(w, r), true))
}

func (h *Handler) AdminLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminLogin, nil) {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	admin, err := h.Accounts.AuthenticateAdmin(r.Context(), formString(r.Form, "email"), formString(r.Form, "password"))
	if err != nil {
		h.setFlash(w, "Invalid email or password.")
		http.Redirect(w, r, access.PathAdminLogin, http.StatusSeeOther)
		return
	}
	if err := h.Sessions.LoginAdmin(w, admin.ID); err != nil {
		h.renderServiceError(w, r, err)
		return
	}
	http.Redirect(w, r, access.PathAdminHome, http.StatusSeeOther)
}

func (h *Handler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, access.ActionAdminLogout, nil) {
		return
	}
	h.Sessions.LogoutAdmin(w)
	http.Redirect(w, r, access.PathAdminLogin, http.StatusSeeOther)
}
