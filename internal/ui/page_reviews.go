package ui

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tablenavi/internal/domain"
	"tablenavi/internal/service/access"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func scoreStars(score int) string {
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}

func reviewsIndexPage(
	r *http.Request,
	principal domain.Principal,
	flash string,
	restaurant *domain.Restaurant,
	page *domain.ReviewPage,
	pageReq domain.PageRequest,
) Node {
	items := make([]Node, 0, len(page.Reviews))
	for _, review := range page.Reviews {
		var actions Node
		if review.MemberID == principal.ID {
			actions = Div(Class("mt-2"),
				A(
					Href(fmt.Sprintf("/restaurants/%d/reviews/%d/edit", restaurant.ID, review.ID)),
					Class("btn btn-sm mr-2"),
					Text("Edit"),
				),
				Form(
					Method("post"),
					Action(fmt.Sprintf("/restaurants/%d/reviews/%d/delete", restaurant.ID, review.ID)),
					Class("d-inline"),
					csrfField(r),
					Button(Type("submit"), Class("btn btn-sm btn-danger"), Text("Delete")),
				),
			)
		}
		items = append(items, Div(Class("Box p-3 mb-2"),
			P(Class("mb-1"), Text(scoreStars(review.Score))),
			P(Class("mb-1"), Text(review.Content)),
			P(Class("color-fg-muted text-small mb-0"), Text(formatDate(review.CreatedAt))),
			actions,
		))
	}
	if len(items) == 0 {
		items = append(items, P(Class("color-fg-muted"), Text("No reviews yet.")))
	}

	body := []Node{
		P(A(Href(fmt.Sprintf("/restaurants/%d", restaurant.ID)), Text("Back to "+restaurant.Name))),
		Div(Class("mb-3"),
			A(
				Href(fmt.Sprintf("/restaurants/%d/reviews/create", restaurant.ID)),
				Class("btn btn-primary"),
				Text("Write a review"),
			),
		),
		Group(items),
	}

	if page.Truncated {
		body = append(body, Div(Class("Box p-3 mt-3"),
			P(Class("mb-1"), Text("Only the latest reviews are shown.")),
			P(Class("mb-0"),
				A(Href("/subscription/create"), Text("Subscribe")),
				Text(" to read every review."),
			),
		))
	} else {
		body = append(body, paginationNav(
			fmt.Sprintf("/restaurants/%d/reviews", restaurant.ID),
			url.Values{},
			pageReq.Number(),
			pageReq.TotalPages(page.Total),
		))
	}

	return sitePage("Reviews for "+restaurant.Name, "restaurants", principal, flash, body...)
}

// reviewFormPage renders both the create and edit forms; review is nil
// for create.
func reviewFormPage(r *http.Request, principal domain.Principal, flash string, restaurant *domain.Restaurant, review *domain.Review) Node {
	title := "Write a review"
	action := fmt.Sprintf("/restaurants/%d/reviews", restaurant.ID)
	score := 5
	content := ""
	if review != nil {
		title = "Edit your review"
		action = fmt.Sprintf("/restaurants/%d/reviews/%d/update", restaurant.ID, review.ID)
		score = review.Score
		content = review.Content
	}

	scoreOptions := make([]Node, 0, 5)
	for n := 5; n >= 1; n-- {
		if n == score {
			scoreOptions = append(scoreOptions, Option(Value(strconv.Itoa(n)), Selected(), Text(scoreStars(n))))
			continue
		}
		scoreOptions = append(scoreOptions, Option(Value(strconv.Itoa(n)), Text(scoreStars(n))))
	}

	return sitePage(title, "restaurants", principal, flash,
		P(A(Href(access.RestaurantReviewsPath(restaurant.ID)), Text("Back to reviews"))),
		Div(Class("Box p-3"),
			Form(
				Method("post"),
				Action(action),
				csrfField(r),
				formGroupField("Score", Select(Name("score"), Class("form-select"), Group(scoreOptions))),
				formGroupField("Review", Textarea(Name("content"), Class("form-control width-full"), Rows("5"), Required(), Text(content))),
				Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Save")),
			),
		),
	)
}
