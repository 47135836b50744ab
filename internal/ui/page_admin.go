package ui

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tablenavi/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func adminHomePage(flash string) Node {
	card := func(title, description, href string) Node {
		return Div(Class("Box p-3 mr-3 mb-3 col-12 col-md-3"),
			H3(Class("h4"), A(Href(href), Text(title))),
			P(Class("color-fg-muted mb-0"), Text(description)),
		)
	}
	return adminPage("Dashboard", "home", flash,
		Div(Class("d-flex flex-wrap"),
			card("Restaurants", "Manage restaurant listings, categories, and holidays.", "/admin/restaurants"),
			card("Categories", "Maintain the cuisine category master.", "/admin/categories"),
			card("Members", "Look up registered members.", "/admin/users"),
			card("Company", "Edit the company profile page.", "/admin/company"),
			card("Terms", "Edit the terms of service.", "/admin/terms"),
		),
	)
}

func adminSearchForm(action, keyword string) Node {
	return Form(
		Method("get"),
		Action(action),
		Class("d-flex mb-3"),
		Input(Name("keyword"), Value(keyword), Class("form-control mr-2"), Placeholder("Search")),
		Button(Type("submit"), Class("btn"), Text("Search")),
	)
}

func adminMembersPage(flash string, members []domain.Member, keyword string, pageReq domain.PageRequest, total int64) Node {
	rows := make([]Node, 0, len(members))
	for _, member := range members {
		rows = append(rows, Tr(
			Td(Class("p-2"), Text(strconv.FormatInt(member.ID, 10))),
			Td(Class("p-2"), A(Href(fmt.Sprintf("/admin/users/%d", member.ID)), Text(member.Name))),
			Td(Class("p-2"), Text(member.Kana)),
			Td(Class("p-2"), Text(member.Email)),
		))
	}
	listQuery := url.Values{}
	if keyword != "" {
		listQuery.Set("keyword", keyword)
	}
	return adminPage("Members", "users", flash,
		adminSearchForm("/admin/users", keyword),
		P(Class("color-fg-muted"), Text(fmt.Sprintf("%d members", total))),
		Div(Class("Box"),
			Table(Class("width-full"),
				THead(Tr(
					Th(Class("text-left p-2"), Text("ID")),
					Th(Class("text-left p-2"), Text("Name")),
					Th(Class("text-left p-2"), Text("Kana")),
					Th(Class("text-left p-2"), Text("Email")),
				)),
				TBody(Group(rows)),
			),
		),
		paginationNav("/admin/users", listQuery, pageReq.Number(), pageReq.TotalPages(total)),
	)
}

func adminMemberDetailPage(flash string, member *domain.Member) Node {
	row := func(label, value string) Node {
		if value == "" {
			value = "-"
		}
		return Tr(
			Th(Attr("scope", "row"), Class("text-left p-2"), Text(label)),
			Td(Class("p-2"), Text(value)),
		)
	}
	return adminPage("Member "+member.Name, "users", flash,
		P(A(Href("/admin/users"), Text("Back to members"))),
		Div(Class("Box p-3"),
			Table(Class("width-full"),
				TBody(
					row("ID", strconv.FormatInt(member.ID, 10)),
					row("Name", member.Name),
					row("Kana", member.Kana),
					row("Email", member.Email),
					row("Postal code", member.PostalCode),
					row("Address", member.Address),
					row("Phone number", member.PhoneNumber),
					row("Birthday", member.Birthday),
					row("Occupation", member.Occupation),
					row("Registered", formatDate(member.CreatedAt)),
				),
			),
		),
	)
}

func adminCategoriesPage(r *http.Request, flash string, categories []domain.Category, keyword string, pageReq domain.PageRequest, total int64) Node {
	rows := make([]Node, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, Tr(
			Td(Class("p-2"), Text(strconv.FormatInt(category.ID, 10))),
			Td(Class("p-2"),
				Form(
					Method("post"),
					Action(fmt.Sprintf("/admin/categories/%d/update", category.ID)),
					Class("d-flex"),
					csrfField(r),
					Input(Name("name"), Value(category.Name), Class("form-control mr-2"), Required()),
					Button(Type("submit"), Class("btn btn-sm"), Text("Rename")),
				),
			),
			Td(Class("p-2"),
				Form(
					Method("post"),
					Action(fmt.Sprintf("/admin/categories/%d/delete", category.ID)),
					csrfField(r),
					Button(Type("submit"), Class("btn btn-sm btn-danger"), Text("Delete")),
				),
			),
		))
	}
	listQuery := url.Values{}
	if keyword != "" {
		listQuery.Set("keyword", keyword)
	}
	return adminPage("Categories", "categories", flash,
		adminSearchForm("/admin/categories", keyword),
		Div(Class("Box p-3 mb-3"),
			Form(
				Method("post"),
				Action("/admin/categories"),
				Class("d-flex"),
				csrfField(r),
				Input(Name("name"), Class("form-control mr-2"), Placeholder("New category"), Required()),
				Button(Type("submit"), Class("btn btn-primary"), Text("Add")),
			),
		),
		Div(Class("Box"),
			Table(Class("width-full"),
				THead(Tr(
					Th(Class("text-left p-2"), Text("ID")),
					Th(Class("text-left p-2"), Text("Name")),
					Th(Class("p-2")),
				)),
				TBody(Group(rows)),
			),
		),
		paginationNav("/admin/categories", listQuery, pageReq.Number(), pageReq.TotalPages(total)),
	)
}

func adminCompanyPage(flash string, company *domain.Company) Node {
	row := func(label, value string) Node {
		return Tr(
			Th(Attr("scope", "row"), Class("text-left p-2"), Text(label)),
			Td(Class("p-2"), Text(value)),
		)
	}
	return adminPage("Company", "company", flash,
		P(A(Href("/admin/company/edit"), Class("btn btn-primary"), Text("Edit"))),
		Div(Class("Box p-3"),
			Table(Class("width-full"),
				TBody(
					row("Name", company.Name),
					row("Postal code", company.PostalCode),
					row("Address", company.Address),
					row("Representative", company.Representative),
					row("Established", company.EstablishmentDate),
					row("Capital", company.Capital),
					row("Business", company.Business),
					row("Employees", company.NumberOfEmployees),
				),
			),
		),
	)
}

func adminCompanyEditPage(r *http.Request, flash string, company *domain.Company) Node {
	field := func(label, name, value string) Node {
		return formGroupField(label, Input(Name(name), Value(value), Class("form-control width-full"), Required()))
	}
	return adminPage("Edit company", "company", flash,
		Div(Class("Box p-3"),
			Form(
				Method("post"),
				Action("/admin/company"),
				csrfField(r),
				field("Name", "name", company.Name),
				field("Postal code", "postal_code", company.PostalCode),
				field("Address", "address", company.Address),
				field("Representative", "representative", company.Representative),
				field("Established", "establishment_date", company.EstablishmentDate),
				field("Capital", "capital", company.Capital),
				field("Business", "business", company.Business),
				field("Employees", "number_of_employees", company.NumberOfEmployees),
				Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Save")),
			),
		),
	)
}

func adminTermsPage(flash string, terms *domain.Term) Node {
	return adminPage("Terms of Service", "terms", flash,
		P(A(Href("/admin/terms/edit"), Class("btn btn-primary"), Text("Edit"))),
		Div(Class("Box p-3"),
			P(StyleAttr("white-space: pre-wrap"), Text(terms.Content)),
		),
	)
}

func adminTermsEditPage(r *http.Request, flash string, terms *domain.Term) Node {
	return adminPage("Edit terms", "terms", flash,
		Div(Class("Box p-3"),
			Form(
				Method("post"),
				Action("/admin/terms"),
				csrfField(r),
				formGroupField("Content", Textarea(Name("content"), Class("form-control width-full"), Rows("15"), Required(), Text(terms.Content))),
				Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Save")),
			),
		),
	)
}
