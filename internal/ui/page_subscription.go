package ui

import (
	"net/http"

	"tablenavi/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func subscriptionNewPage(r *http.Request, principal domain.Principal, flash string) Node {
	return sitePage("Subscribe", "user", principal, flash,
		Div(Class("Box p-3"),
			P(Text("Subscribers can reserve tables, post reviews, read every review, and save favorites.")),
			Form(
				Method("post"),
				Action("/subscription"),
				csrfField(r),
				formGroupField("Payment method", Input(Name("payment_method"), Class("form-control width-full"), Required(), Placeholder("Card token"))),
				Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Subscribe")),
			),
		),
	)
}

func subscriptionEditPage(r *http.Request, principal domain.Principal, flash string) Node {
	return sitePage("Subscription", "user", principal, flash,
		Div(Class("Box p-3 mb-3"),
			H2(Class("h4 mb-2"), Text("Update payment method")),
			Form(
				Method("post"),
				Action("/subscription/update"),
				csrfField(r),
				formGroupField("Payment method", Input(Name("payment_method"), Class("form-control width-full"), Required(), Placeholder("Card token"))),
				Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Update")),
			),
		),
		P(A(Href("/subscription/cancel"), Text("Cancel subscription"))),
	)
}

func subscriptionCancelPage(r *http.Request, principal domain.Principal, flash string) Node {
	return sitePage("Cancel subscription", "user", principal, flash,
		Div(Class("Box p-3"),
			P(Text("Cancelling ends access to reservations, reviews, and favorites. Are you sure?")),
			Form(
				Method("post"),
				Action("/subscription/delete"),
				csrfField(r),
				Button(Type("submit"), Class("btn btn-danger"), Text("Cancel subscription")),
			),
			P(Class("mt-2"), A(Href("/subscription/edit"), Text("Keep my subscription"))),
		),
	)
}
