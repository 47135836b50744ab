package ui

import (
	"net/http"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func authPage(title string, errMsg string, body ...Node) Node {
	content := []Node{}
	if errMsg != "" {
		content = append(content, Div(Class("flash flash-error mb-3"), Text(errMsg)))
	}
	content = append(content, body...)

	return HTML(
		Lang("en"),
		pageHead(title),
		Body(
			Main(
				Class("container-sm p-4"),
				H1(Class("h2 mb-3"), Text(title)),
				Div(Class("Box p-3"), Group(content)),
			),
		),
	)
}

func loginPage(r *http.Request, errMsg string, admin bool) Node {
	title := "Log in"
	action := "/login"
	if admin {
		title = "Administrator log in"
		action = "/admin/login"
	}
	fields := []Node{
		csrfField(r),
		formGroupField("Email", Input(Type("email"), Name("email"), Class("form-control width-full"), Required())),
		formGroupField("Password", Input(Type("password"), Name("password"), Class("form-control width-full"), Required())),
		Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Log in")),
	}
	body := []Node{
		Form(Method("post"), Action(action), Group(fields)),
	}
	if !admin {
		body = append(body, P(Class("mt-3"),
			Text("No account yet? "),
			A(Href("/register"), Text("Sign up")),
		))
	}
	return authPage(title, errMsg, body...)
}

func registerPage(r *http.Request, errMsg string) Node {
	return authPage("Sign up", errMsg,
		Form(
			Method("post"),
			Action("/register"),
			csrfField(r),
			formGroupField("Name", Input(Name("name"), Class("form-control width-full"), Required())),
			formGroupField("Name (kana)", Input(Name("kana"), Class("form-control width-full"), Required())),
			formGroupField("Email", Input(Type("email"), Name("email"), Class("form-control width-full"), Required())),
			formGroupField("Password", Input(Type("password"), Name("password"), Class("form-control width-full"), Required())),
			Button(Type("submit"), Class("btn btn-primary mt-2"), Text("Sign up")),
		),
		P(Class("mt-3"),
			Text("Already have an account? "),
			A(Href("/login"), Text("Log in")),
		),
	)
}

// formGroupField wraps a labelled input in a Primer form group.
func formGroupField(label string, field Node) Node {
	return Div(
		Class("form-group"),
		Div(Class("form-group-header"), Label(Text(label))),
		Div(Class("form-group-body"), field),
	)
}
