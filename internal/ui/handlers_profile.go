package ui

import (
	"net/http"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/access"
)

// loadOwnMember fetches the signed-in member for the profile pages. The
// profile routes carry no ID; ownership is checked against the loaded
// record anyway so the engine's ordering applies uniformly.
func (h *Handler) loadOwnMember(w http.ResponseWriter, r *http.Request, action domain.Action) (*domain.Member, bool) {
	resource, ok := h.authorizeOwned(w, r, action, func() (domain.OwnedResource, error) {
		member, err := h.Accounts.GetMember(r.Context(), principalFromRequest(r).ID)
		if err != nil {
			return nil, err
		}
		return member, nil
	})
	if !ok {
		return nil, false
	}
	return resource.(*domain.Member), true
}

func (h *Handler) ProfileShow(w http.ResponseWriter, r *http.Request) {
	member, ok := h.loadOwnMember(w, r, access.ActionProfileShow)
	if !ok {
		return
	}
	renderHTML(w, http.StatusOK, profilePage(principalFromRequest(r), h.popFlash(w, r), member))
}

func (h *Handler) ProfileEdit(w http.ResponseWriter, r *http.Request) {
	member, ok := h.loadOwnMember(w, r, access.ActionProfileEdit)
	if !ok {
		return
	}
	renderHTML(w, http.StatusOK, profileEditPage(r, principalFromRequest(r), h.popFlash(w, r), member))
}

func (h *Handler) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	member, ok := h.loadOwnMember(w, r, access.ActionProfileEdit)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		renderHTML(w, http.StatusBadRequest, errorPage("Invalid Request", "Unable to parse form."))
		return
	}
	_, err := h.Accounts.UpdateProfile(r.Context(), member.ID, domain.UpdateMemberProfile{
		Name:        formString(r.Form, "name"),
		Kana:        formString(r.Form, "kana"),
		Email:       formString(r.Form, "email"),
		PostalCode:  formString(r.Form, "postal_code"),
		Address:     formString(r.Form, "address"),
		PhoneNumber: formString(r.Form, "phone_number"),
		Birthday:    formString(r.Form, "birthday"),
		Occupation:  formString(r.Form, "occupation"),
	})
	if err != nil {
		h.setFlash(w, err.Error())
		http.Redirect(w, r, "/user/edit", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, access.PathMyPage, http.StatusSeeOther)
}
