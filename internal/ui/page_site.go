package ui

import (
	"fmt"

	"tablenavi/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func homePage(principal domain.Principal, flash string, highlighted []domain.Restaurant, categories []domain.Category) Node {
	cards := make([]Node, 0, len(highlighted))
	for _, restaurant := range highlighted {
		cards = append(cards, restaurantCard(restaurant))
	}
	categoryLinks := make([]Node, 0, len(categories))
	for _, category := range categories {
		categoryLinks = append(categoryLinks, A(
			Href(fmt.Sprintf("/restaurants?category_id=%d", category.ID)),
			Class("Label mr-2 mb-2"),
			Text(category.Name),
		))
	}
	return sitePage("Find your table", "home", principal, flash,
		P(Class("color-fg-muted"), Text("Search restaurants, read reviews, and reserve a table.")),
		Div(Class("mb-4"),
			A(Href("/restaurants"), Class("btn btn-primary"), Text("Browse restaurants")),
		),
		H2(Class("h3 mb-2"), Text("Top rated")),
		Div(Class("d-flex flex-wrap gutter"), Group(cards)),
		H2(Class("h3 mt-4 mb-2"), Text("Browse by category")),
		Div(Class("d-flex flex-wrap"), Group(categoryLinks)),
	)
}

func restaurantCard(restaurant domain.Restaurant) Node {
	return Div(
		Class("Box p-3 mr-3 mb-3 col-12 col-md-3"),
		H3(Class("h4"),
			A(Href(fmt.Sprintf("/restaurants/%d", restaurant.ID)), Text(restaurant.Name)),
		),
		P(Class("color-fg-muted text-small mb-1"), Text(restaurant.Address)),
		P(Class("mb-1"), Text(fmt.Sprintf("Rating %s (%d reviews)", formatRating(restaurant.Rating), restaurant.ReviewCount))),
		P(Class("mb-0"), Text(fmt.Sprintf("From %s", formatYen(restaurant.LowestPrice)))),
	)
}

func companyPage(principal domain.Principal, flash string, company *domain.Company) Node {
	row := func(label, value string) Node {
		return Tr(
			Th(Attr("scope", "row"), Class("text-left p-2"), Text(label)),
			Td(Class("p-2"), Text(value)),
		)
	}
	return sitePage("Company", "company", principal, flash,
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

func termsPage(principal domain.Principal, flash string, terms *domain.Term) Node {
	return sitePage("Terms of Service", "terms", principal, flash,
		Div(Class("Box p-3"),
			P(StyleAttr("white-space: pre-wrap"), Text(terms.Content)),
		),
	)
}
