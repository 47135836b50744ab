package ui

import (
	"fmt"
	"net/http"
	"net/url"

	"tablenavi/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func reservationsIndexPage(
	r *http.Request,
	principal domain.Principal,
	flash string,
	reservations []domain.Reservation,
	pageReq domain.PageRequest,
	total int64,
) Node {
	rows := make([]Node, 0, len(reservations))
	for _, reservation := range reservations {
		rows = append(rows, Tr(
			Td(Class("p-2"),
				A(Href(fmt.Sprintf("/restaurants/%d", reservation.RestaurantID)), Text(reservation.RestaurantName)),
			),
			Td(Class("p-2"), Text(formatDateTime(reservation.ReservedAt))),
			Td(Class("p-2"), Text(fmt.Sprintf("%d people", reservation.NumberOfPeople))),
			Td(Class("p-2"),
				Form(
					Method("post"),
					Action(fmt.Sprintf("/reservations/%d/delete", reservation.ID)),
					csrfField(r),
					Button(Type("submit"), Class("btn btn-sm btn-danger"), Text("Cancel")),
				),
			),
		))
	}

	var body Node
	if len(rows) == 0 {
		body = P(Class("color-fg-muted"), Text("You have no reservations."))
	} else {
		body = Div(Class("Box"),
			Table(Class("width-full"),
				THead(Tr(
					Th(Class("text-left p-2"), Text("Restaurant")),
					Th(Class("text-left p-2"), Text("Date and time")),
					Th(Class("text-left p-2"), Text("Party size")),
					Th(Class("p-2")),
				)),
				TBody(Group(rows)),
			),
		)
	}

	return sitePage("Reservations", "reservations", principal, flash,
		body,
		paginationNav("/reservations", url.Values{}, pageReq.Number(), pageReq.TotalPages(total)),
	)
}
