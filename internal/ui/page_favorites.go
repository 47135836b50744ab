package ui

import (
	"fmt"
	"net/http"
	"net/url"

	"tablenavi/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func favoritesIndexPage(
	r *http.Request,
	principal domain.Principal,
	flash string,
	favorites []domain.Restaurant,
	pageReq domain.PageRequest,
	total int64,
) Node {
	cards := make([]Node, 0, len(favorites))
	for _, restaurant := range favorites {
		cards = append(cards, Div(Class("Box p-3 mb-2"),
			H3(Class("h4"),
				A(Href(fmt.Sprintf("/restaurants/%d", restaurant.ID)), Text(restaurant.Name)),
			),
			P(Class("color-fg-muted text-small mb-1"), Text(restaurant.Address)),
			P(Class("mb-2"), Text(fmt.Sprintf("Rating %s (%d reviews)", formatRating(restaurant.Rating), restaurant.ReviewCount))),
			Form(
				Method("post"),
				Action(fmt.Sprintf("/favorites/%d/delete", restaurant.ID)),
				csrfField(r),
				Input(Type("hidden"), Name("from"), Value("index")),
				Button(Type("submit"), Class("btn btn-sm"), Text("Remove")),
			),
		))
	}
	if len(cards) == 0 {
		cards = append(cards, P(Class("color-fg-muted"), Text("You have no favorite restaurants yet.")))
	}

	return sitePage("Favorites", "favorites", principal, flash,
		Group(cards),
		paginationNav("/favorites", url.Values{}, pageReq.Number(), pageReq.TotalPages(total)),
	)
}
