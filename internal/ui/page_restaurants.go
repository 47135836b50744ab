package ui

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/directory"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var sortOptions = []struct {
	Token string
	Label string
}{
	{Token: "created_at desc", Label: "Newest"},
	{Token: "lowest_price asc", Label: "Price (low to high)"},
	{Token: "rating desc", Label: "Rating"},
	{Token: "popular desc", Label: "Most reserved"},
}

func restaurantsIndexPage(
	principal domain.Principal,
	flash string,
	restaurants []domain.Restaurant,
	categories []domain.Category,
	input directory.SearchInput,
	query domain.RestaurantQuery,
	total int64,
) Node {
	categoryOptions := []Node{Option(Value(""), Text("All categories"))}
	for _, category := range categories {
		opt := Option(Value(strconv.FormatInt(category.ID, 10)), Text(category.Name))
		if input.CategoryID == strconv.FormatInt(category.ID, 10) {
			opt = Option(Value(strconv.FormatInt(category.ID, 10)), Selected(), Text(category.Name))
		}
		categoryOptions = append(categoryOptions, opt)
	}

	sortNodes := make([]Node, 0, len(sortOptions))
	active := query.Sort.Token()
	for _, option := range sortOptions {
		if option.Token == active {
			sortNodes = append(sortNodes, Option(Value(option.Token), Selected(), Text(option.Label)))
			continue
		}
		sortNodes = append(sortNodes, Option(Value(option.Token), Text(option.Label)))
	}

	rows := make([]Node, 0, len(restaurants))
	for _, restaurant := range restaurants {
		rows = append(rows, restaurantCard(restaurant))
	}
	if len(rows) == 0 {
		rows = append(rows, P(Class("color-fg-muted"), Text("No restaurants matched your search.")))
	}

	listQuery := url.Values{}
	if input.Keyword != "" {
		listQuery.Set("keyword", input.Keyword)
	}
	if input.CategoryID != "" {
		listQuery.Set("category_id", input.CategoryID)
	}
	if input.MaxPrice != "" {
		listQuery.Set("max_price", input.MaxPrice)
	}
	if input.SortToken != "" {
		listQuery.Set("sort", input.SortToken)
	}

	return sitePage("Restaurants", "restaurants", principal, flash,
		Form(
			Method("get"),
			Action("/restaurants"),
			Class("Box p-3 mb-3 d-flex flex-wrap flex-items-end"),
			Div(Class("mr-3"),
				Label(Class("d-block text-small"), Text("Keyword")),
				Input(Name("keyword"), Value(input.Keyword), Class("form-control"), Placeholder("Name, area, or cuisine")),
			),
			Div(Class("mr-3"),
				Label(Class("d-block text-small"), Text("Category")),
				Select(Name("category_id"), Class("form-select"), Group(categoryOptions)),
			),
			Div(Class("mr-3"),
				Label(Class("d-block text-small"), Text("Max price")),
				Input(Type("number"), Name("max_price"), Value(input.MaxPrice), Class("form-control")),
			),
			Div(Class("mr-3"),
				Label(Class("d-block text-small"), Text("Sort")),
				Select(Name("sort"), Class("form-select"), Group(sortNodes)),
			),
			Button(Type("submit"), Class("btn btn-primary"), Text("Search")),
		),
		P(Class("color-fg-muted"), Text(fmt.Sprintf("%d restaurants found", total))),
		Div(Class("d-flex flex-wrap"), Group(rows)),
		paginationNav("/restaurants", listQuery, query.Page.Number(), query.Page.TotalPages(total)),
	)
}

func restaurantShowPage(r *http.Request, principal domain.Principal, flash string, restaurant *domain.Restaurant, favorited bool) Node {
	categoryLabels := make([]Node, 0, len(restaurant.Categories))
	for _, category := range restaurant.Categories {
		categoryLabels = append(categoryLabels, Span(Class("Label mr-1"), Text(category.Name)))
	}
	holidayText := "None"
	if len(restaurant.RegularHolidays) > 0 {
		holidayText = ""
		for i, holiday := range restaurant.RegularHolidays {
			if i > 0 {
				holidayText += ", "
			}
			holidayText += holiday.Day
		}
	}

	detail := Div(Class("Box p-3 mb-3"),
		P(Text(restaurant.Description)),
		P(Class("mb-1"), Text(fmt.Sprintf("Rating %s (%d reviews)", formatRating(restaurant.Rating), restaurant.ReviewCount))),
		P(Class("mb-1"), Text(fmt.Sprintf("Price range: %s to %s", formatYen(restaurant.LowestPrice), formatYen(restaurant.HighestPrice)))),
		P(Class("mb-1"), Text(fmt.Sprintf("Hours: %s to %s", restaurant.OpeningTime, restaurant.ClosingTime))),
		P(Class("mb-1"), Text("Closed on: "+holidayText)),
		P(Class("mb-1"), Text(fmt.Sprintf("Seats: %d", restaurant.SeatingCapacity))),
		P(Class("mb-1"), Text("Address: "+restaurant.Address)),
		Div(Class("mt-2"), Group(categoryLabels)),
	)

	actions := []Node{
		A(Href(fmt.Sprintf("/restaurants/%d/reviews", restaurant.ID)), Class("btn mr-2"), Text("Reviews")),
	}
	if principal.IsMember() {
		favoriteAction := fmt.Sprintf("/favorites/%d", restaurant.ID)
		favoriteLabel := "Add to favorites"
		if favorited {
			favoriteAction = fmt.Sprintf("/favorites/%d/delete", restaurant.ID)
			favoriteLabel = "Remove from favorites"
		}
		actions = append(actions, Form(
			Method("post"),
			Action(favoriteAction),
			Class("d-inline"),
			csrfField(r),
			Button(Type("submit"), Class("btn mr-2"), Text(favoriteLabel)),
		))
	}

	var reservation Node
	if principal.IsMember() {
		reservation = Div(Class("Box p-3 mb-3"),
			H2(Class("h4 mb-2"), Text("Reserve a table")),
			Form(
				Method("post"),
				Action(fmt.Sprintf("/restaurants/%d/reservations", restaurant.ID)),
				csrfField(r),
				formGroupField("Date", Input(Type("date"), Name("date"), Class("form-control"), Required())),
				formGroupField("Time", Input(Type("time"), Name("time"), Class("form-control"), Required())),
				formGroupField("Party size", Input(Type("number"), Name("number_of_people"), Class("form-control"), Required())),
				Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Reserve")),
			),
		)
	} else if principal.IsGuest() {
		reservation = Div(Class("Box p-3 mb-3"),
			P(Class("mb-0"),
				A(Href("/login"), Text("Log in")),
				Text(" to make a reservation or save favorites."),
			),
		)
	}

	return sitePage(restaurant.Name, "restaurants", principal, flash,
		detail,
		Div(Class("mb-3"), Group(actions)),
		reservation,
	)
}
