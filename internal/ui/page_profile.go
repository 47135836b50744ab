package ui

import (
	"net/http"

	"tablenavi/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func profilePage(principal domain.Principal, flash string, member *domain.Member) Node {
	row := func(label, value string) Node {
		if value == "" {
			value = "-"
		}
		return Tr(
			Th(Attr("scope", "row"), Class("text-left p-2"), Text(label)),
			Td(Class("p-2"), Text(value)),
		)
	}
	return sitePage("My Page", "user", principal, flash,
		Div(Class("Box p-3 mb-3"),
			Table(Class("width-full"),
				TBody(
					row("Name", member.Name),
					row("Name (kana)", member.Kana),
					row("Email", member.Email),
					row("Postal code", member.PostalCode),
					row("Address", member.Address),
					row("Phone number", member.PhoneNumber),
					row("Birthday", member.Birthday),
					row("Occupation", member.Occupation),
				),
			),
		),
		Div(
			A(Href("/user/edit"), Class("btn btn-primary mr-2"), Text("Edit profile")),
			A(Href("/subscription/edit"), Class("btn"), Text("Manage subscription")),
		),
	)
}

func profileEditPage(r *http.Request, principal domain.Principal, flash string, member *domain.Member) Node {
	field := func(label, name, value string, required bool) Node {
		attrs := []Node{Name(name), Value(value), Class("form-control width-full")}
		if required {
			attrs = append(attrs, Required())
		}
		return formGroupField(label, Input(attrs...))
	}
	return sitePage("Edit profile", "user", principal, flash,
		Div(Class("Box p-3"),
			Form(
				Method("post"),
				Action("/user"),
				csrfField(r),
				field("Name", "name", member.Name, true),
				field("Name (kana)", "kana", member.Kana, true),
				field("Email", "email", member.Email, true),
				field("Postal code", "postal_code", member.PostalCode, false),
				field("Address", "address", member.Address, false),
				field("Phone number", "phone_number", member.PhoneNumber, false),
				field("Birthday (YYYYMMDD)", "birthday", member.Birthday, false),
				field("Occupation", "occupation", member.Occupation, false),
				Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Save")),
			),
		),
		P(Class("mt-3"), A(Href("/user"), Text("Back to My Page"))),
	)
}
