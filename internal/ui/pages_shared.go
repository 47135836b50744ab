package ui

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"tablenavi/internal/domain"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
}

var siteNavItems = []navItem{
	{Label: "Home", Href: "/", Key: "home"},
	{Label: "Restaurants", Href: "/restaurants", Key: "restaurants"},
	{Label: "Company", Href: "/company", Key: "company"},
	{Label: "Terms", Href: "/terms", Key: "terms"},
}

var memberNavItems = []navItem{
	{Label: "My Page", Href: "/user", Key: "user"},
	{Label: "Reservations", Href: "/reservations", Key: "reservations"},
	{Label: "Favorites", Href: "/favorites", Key: "favorites"},
}

var adminNavItems = []navItem{
	{Label: "Dashboard", Href: "/admin", Key: "home"},
	{Label: "Restaurants", Href: "/admin/restaurants", Key: "restaurants"},
	{Label: "Categories", Href: "/admin/categories", Key: "categories"},
	{Label: "Members", Href: "/admin/users", Key: "users"},
	{Label: "Company", Href: "/admin/company", Key: "company"},
	{Label: "Terms", Href: "/admin/terms", Key: "terms"},
}

func pageHead(title string) Node {
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		TitleEl(Text(title+" | TableNavi")),
		Link(Rel("icon"), Href("data:,")),
		Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
		Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), Attr("crossorigin", "")),
		Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),
		Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/@primer/css@22.1.0/dist/primer.min.css")),
	)
}

func navLinks(items []navItem, active string) Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		className := "Header-link mr-3"
		if item.Key == active {
			className += " text-bold"
		}
		nodes = append(nodes, A(Href(item.Href), Class(className), Text(item.Label)))
	}
	return Group(nodes)
}

// sitePage is the shared member-facing layout. The header adapts to the
// principal: guests get login and sign-up links, members get their pages
// and a logout form.
func sitePage(title, active string, principal domain.Principal, flash string, body ...Node) Node {
	var account []Node
	switch {
	case principal.IsMember():
		account = append(account,
			navLinks(memberNavItems, active),
			Form(
				Method("post"),
				Action("/logout"),
				Class("d-inline"),
				Button(Type("submit"), Class("btn-link Header-link"), Text("Log out")),
			),
		)
	case principal.IsAdmin():
		account = append(account, A(Href("/admin"), Class("Header-link"), Text("Admin dashboard")))
	default:
		account = append(account,
			A(Href("/login"), Class("Header-link mr-3"), Text("Log in")),
			A(Href("/register"), Class("Header-link"), Text("Sign up")),
		)
	}

	content := []Node{}
	if flash != "" {
		content = append(content, Div(Class("flash flash-error mb-3"), Text(flash)))
	}
	content = append(content, body...)

	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Header(
				Class("Header"),
				Div(Class("Header-item"), A(Href("/"), Class("Header-link f4"), Strong(Text("TableNavi")))),
				Div(Class("Header-item Header-item--full"), navLinks(siteNavItems, active)),
				Div(Class("Header-item"), Group(account)),
			),
			Main(
				Class("container-lg p-4"),
				H1(Class("h2 mb-3"), Text(title)),
				Group(content),
			),
		),
	)
}

// adminPage is the administrator layout.
func adminPage(title, active string, flash string, body ...Node) Node {
	content := []Node{}
	if flash != "" {
		content = append(content, Div(Class("flash flash-error mb-3"), Text(flash)))
	}
	content = append(content, body...)

	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Header(
				Class("Header"),
				Div(Class("Header-item"), A(Href("/admin"), Class("Header-link f4"), Strong(Text("TableNavi Admin")))),
				Div(Class("Header-item Header-item--full"), navLinks(adminNavItems, active)),
				Div(Class("Header-item"),
					Form(
						Method("post"),
						Action("/admin/logout"),
						Class("d-inline"),
						Button(Type("submit"), Class("btn-link Header-link"), Text("Log out")),
					),
				),
			),
			Main(
				Class("container-lg p-4"),
				H1(Class("h2 mb-3"), Text(title)),
				Group(content),
			),
		),
	)
}

func errorPage(title, message string) Node {
	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Main(
				Class("container-md p-4"),
				H1(Class("h2"), Text(title)),
				P(Text(message)),
				P(A(Href("/"), Text("Back to home"))),
			),
		),
	)
}

// unavailablePage is rendered when an access decision cannot be made.
func unavailablePage() Node {
	return HTML(
		Lang("en"),
		pageHead("Service Unavailable"),
		Body(
			Main(
				Class("container-md p-4"),
				H1(Class("h2"), Text("Service Unavailable")),
				P(Text("We could not verify your subscription right now. Please try again in a moment.")),
				P(A(Href("/"), Text("Back to home"))),
			),
		),
	)
}

// paginationNav renders previous/next links preserving the other query
// parameters.
func paginationNav(basePath string, query url.Values, page, totalPages int) Node {
	if totalPages <= 1 {
		return Group(nil)
	}
	pageLink := func(n int, label string) Node {
		q := url.Values{}
		for k, vs := range query {
			if k == "page" {
				continue
			}
			q[k] = vs
		}
		q.Set("page", strconv.Itoa(n))
		return A(Href(basePath+"?"+q.Encode()), Class("BtnGroup-item btn"), Text(label))
	}
	items := []Node{}
	if page > 1 {
		items = append(items, pageLink(page-1, "Previous"))
	}
	items = append(items, Span(Class("BtnGroup-item btn btn-disabled"), Text(fmt.Sprintf("Page %d of %d", page, totalPages))))
	if page < totalPages {
		items = append(items, pageLink(page+1, "Next"))
	}
	return Nav(Class("BtnGroup mt-3"), Group(items))
}

func formatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}

func formatYen(amount int) string {
	return fmt.Sprintf("%d yen", amount)
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("2006-01-02")
}

func formatDateTime(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Format("2006-01-02 15:04")
}
