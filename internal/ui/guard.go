package ui

import (
	"errors"
	"net/http"

	"tablenavi/internal/domain"
)

// authorize runs the access engine for the given action and translates
// the outcome. It returns true when the request may proceed. Denials are
// answered with a 303 to the decision's redirect target, plus a flash
// cookie when the decision carries a message. An undecidable request
// (billing unreachable) renders the 503 page; it is never treated as an
// allow or a deny.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, action domain.Action, resource domain.OwnedResource) bool {
	decision, err := h.Access.Decide(r.Context(), action, principalFromRequest(r), resource)
	if err != nil {
		var unknown *domain.EntitlementUnknownError
		if errors.As(err, &unknown) {
			renderHTML(w, http.StatusServiceUnavailable, unavailablePage())
			return false
		}
		renderHTML(w, http.StatusInternalServerError, errorPage("Unexpected Error", "An unexpected error occurred."))
		return false
	}
	if !decision.Allowed {
		if decision.Flash != "" {
			h.setFlash(w, decision.Flash)
		}
		http.Redirect(w, r, decision.Redirect, http.StatusSeeOther)
		return false
	}
	return true
}

// authorizeOwned gates an ownership-protected route in two passes around
// the resource fetch. Authentication, principal kind, and entitlement are
// decided first, so a client the action rejects is redirected before the
// lookup and cannot tell whether the ID resolves. Only then is the
// resource loaded and the ownership stage completed. The second pass
// skips the entitlement requirement it already passed, keeping one
// billing lookup per request.
func (h *Handler) authorizeOwned(w http.ResponseWriter, r *http.Request, action domain.Action, load func() (domain.OwnedResource, error)) (domain.OwnedResource, bool) {
	pre := action
	pre.RequiresOwnershipOf = domain.ResourceNone
	if !h.authorize(w, r, pre, nil) {
		return nil, false
	}

	resource, err := load()
	if err != nil {
		h.renderServiceError(w, r, err)
		return nil, false
	}

	own := action
	own.RequiresEntitlement = nil
	if !h.authorize(w, r, own, resource) {
		return nil, false
	}
	return resource, true
}
