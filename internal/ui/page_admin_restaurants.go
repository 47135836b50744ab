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

func adminRestaurantsPage(r *http.Request, flash string, restaurants []domain.Restaurant, keyword string, pageReq domain.PageRequest, total int64) Node {
	rows := make([]Node, 0, len(restaurants))
	for _, restaurant := range restaurants {
		rows = append(rows, Tr(
			Td(Class("p-2"), Text(strconv.FormatInt(restaurant.ID, 10))),
			Td(Class("p-2"),
				A(Href(fmt.Sprintf("/admin/restaurants/%d", restaurant.ID)), Text(restaurant.Name)),
			),
			Td(Class("p-2"), Text(restaurant.Address)),
			Td(Class("p-2"), Text(formatYen(restaurant.LowestPrice))),
			Td(Class("p-2"),
				A(Href(fmt.Sprintf("/admin/restaurants/%d/edit", restaurant.ID)), Class("btn btn-sm mr-2"), Text("Edit")),
				Form(
					Method("post"),
					Action(fmt.Sprintf("/admin/restaurants/%d/delete", restaurant.ID)),
					Class("d-inline"),
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
	return adminPage("Restaurants", "restaurants", flash,
		P(A(Href("/admin/restaurants/create"), Class("btn btn-primary"), Text("New restaurant"))),
		adminSearchForm("/admin/restaurants", keyword),
		P(Class("color-fg-muted"), Text(fmt.Sprintf("%d restaurants", total))),
		Div(Class("Box"),
			Table(Class("width-full"),
				THead(Tr(
					Th(Class("text-left p-2"), Text("ID")),
					Th(Class("text-left p-2"), Text("Name")),
					Th(Class("text-left p-2"), Text("Address")),
					Th(Class("text-left p-2"), Text("Lowest price")),
					Th(Class("p-2")),
				)),
				TBody(Group(rows)),
			),
		),
		paginationNav("/admin/restaurants", listQuery, pageReq.Number(), pageReq.TotalPages(total)),
	)
}

func adminRestaurantDetailPage(r *http.Request, flash string, restaurant *domain.Restaurant) Node {
	categoryNames := "-"
	if len(restaurant.Categories) > 0 {
		categoryNames = ""
		for i, category := range restaurant.Categories {
			if i > 0 {
				categoryNames += ", "
			}
			categoryNames += category.Name
		}
	}
	holidayNames := "None"
	if len(restaurant.RegularHolidays) > 0 {
		holidayNames = ""
		for i, holiday := range restaurant.RegularHolidays {
			if i > 0 {
				holidayNames += ", "
			}
			holidayNames += holiday.Day
		}
	}
	row := func(label, value string) Node {
		return Tr(
			Th(Attr("scope", "row"), Class("text-left p-2"), Text(label)),
			Td(Class("p-2"), Text(value)),
		)
	}
	return adminPage(restaurant.Name, "restaurants", flash,
		P(A(Href("/admin/restaurants"), Text("Back to restaurants"))),
		Div(Class("mb-3"),
			A(Href(fmt.Sprintf("/admin/restaurants/%d/edit", restaurant.ID)), Class("btn btn-primary mr-2"), Text("Edit")),
			Form(
				Method("post"),
				Action(fmt.Sprintf("/admin/restaurants/%d/delete", restaurant.ID)),
				Class("d-inline"),
				csrfField(r),
				Button(Type("submit"), Class("btn btn-danger"), Text("Delete")),
			),
		),
		Div(Class("Box p-3"),
			Table(Class("width-full"),
				TBody(
					row("Description", restaurant.Description),
					row("Price range", fmt.Sprintf("%s to %s", formatYen(restaurant.LowestPrice), formatYen(restaurant.HighestPrice))),
					row("Hours", restaurant.OpeningTime+" to "+restaurant.ClosingTime),
					row("Seats", strconv.Itoa(restaurant.SeatingCapacity)),
					row("Postal code", restaurant.PostalCode),
					row("Address", restaurant.Address),
					row("Categories", categoryNames),
					row("Closed on", holidayNames),
					row("Rating", fmt.Sprintf("%s (%d reviews)", formatRating(restaurant.Rating), restaurant.ReviewCount)),
					row("Reservations", strconv.FormatInt(restaurant.ReservationCount, 10)),
				),
			),
		),
	)
}

// adminRestaurantFormPage renders both the create and edit forms;
// restaurant is nil for create.
func adminRestaurantFormPage(
	r *http.Request,
	flash string,
	restaurant *domain.Restaurant,
	categories []domain.Category,
	holidays []domain.RegularHoliday,
) Node {
	title := "New restaurant"
	action := "/admin/restaurants"
	var current domain.Restaurant
	if restaurant != nil {
		title = "Edit " + restaurant.Name
		action = fmt.Sprintf("/admin/restaurants/%d/update", restaurant.ID)
		current = *restaurant
	}

	selectedCategories := map[int64]bool{}
	for _, category := range current.Categories {
		selectedCategories[category.ID] = true
	}
	selectedHolidays := map[int64]bool{}
	for _, holiday := range current.RegularHolidays {
		selectedHolidays[holiday.ID] = true
	}

	categoryBoxes := make([]Node, 0, len(categories))
	for _, category := range categories {
		attrs := []Node{Type("checkbox"), Name("category_ids"), Value(strconv.FormatInt(category.ID, 10))}
		if selectedCategories[category.ID] {
			attrs = append(attrs, Checked())
		}
		categoryBoxes = append(categoryBoxes, Label(Class("d-block"),
			Input(attrs...),
			Text(" "+category.Name),
		))
	}
	holidayBoxes := make([]Node, 0, len(holidays))
	for _, holiday := range holidays {
		attrs := []Node{Type("checkbox"), Name("holiday_ids"), Value(strconv.FormatInt(holiday.ID, 10))}
		if selectedHolidays[holiday.ID] {
			attrs = append(attrs, Checked())
		}
		holidayBoxes = append(holidayBoxes, Label(Class("d-block"),
			Input(attrs...),
			Text(" "+holiday.Day),
		))
	}

	textField := func(label, name, value string) Node {
		return formGroupField(label, Input(Name(name), Value(value), Class("form-control width-full"), Required()))
	}
	numberField := func(label, name string, value int) Node {
		return formGroupField(label, Input(Type("number"), Name(name), Value(strconv.Itoa(value)), Class("form-control"), Required()))
	}

	return adminPage(title, "restaurants", flash,
		P(A(Href("/admin/restaurants"), Text("Back to restaurants"))),
		Div(Class("Box p-3"),
			Form(
				Method("post"),
				Action(action),
				csrfField(r),
				textField("Name", "name", current.Name),
				formGroupField("Image URL", Input(Name("image"), Value(current.Image), Class("form-control width-full"))),
				formGroupField("Description", Textarea(Name("description"), Class("form-control width-full"), Rows("4"), Required(), Text(current.Description))),
				numberField("Lowest price", "lowest_price", current.LowestPrice),
				numberField("Highest price", "highest_price", current.HighestPrice),
				textField("Postal code", "postal_code", current.PostalCode),
				textField("Address", "address", current.Address),
				formGroupField("Opening time", Input(Type("time"), Name("opening_time"), Value(current.OpeningTime), Class("form-control"), Required())),
				formGroupField("Closing time", Input(Type("time"), Name("closing_time"), Value(current.ClosingTime), Class("form-control"), Required())),
				numberField("Seats", "seating_capacity", current.SeatingCapacity),
				formGroupField("Categories", Div(Group(categoryBoxes))),
				formGroupField("Closed on", Div(Group(holidayBoxes))),
				Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Save")),
			),
		),
	)
}
