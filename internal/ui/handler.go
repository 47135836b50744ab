package ui

import (
	"net/http"
	"strconv"

	"tablenavi/internal/domain"
	"tablenavi/internal/middleware"
	"tablenavi/internal/service/access"
	"tablenavi/internal/service/account"
	"tablenavi/internal/service/directory"

	gomponents "maragu.dev/gomponents"
)

type Handler struct {
	Directory  *directory.Service
	Accounts   *account.Service
	Access     *access.Engine
	Sessions   *middleware.SessionManager
	Production bool
}

func NewHandler(
	directorySvc *directory.Service,
	accountSvc *account.Service,
	accessEngine *access.Engine,
	sessions *middleware.SessionManager,
	production bool,
) *Handler {
	return &Handler{
		Directory:  directorySvc,
		Accounts:   accountSvc,
		Access:     accessEngine,
		Sessions:   sessions,
		Production: production,
	}
}

// pageFromRequest reads the 1-based "page" query parameter. Anything
// unparseable lands on page 1.
func pageFromRequest(r *http.Request, perPage int) domain.PageRequest {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return domain.PageRequest{Page: page, PerPage: perPage}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func principalFromRequest(r *http.Request) domain.Principal {
	return domain.PrincipalFromContext(r.Context())
}
