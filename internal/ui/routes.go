package ui

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes wires every page onto the router. Authentication only
// resolves the principal; each handler runs its own access decision, so
// the route table stays free of per-route gating.
func MountRoutes(r chi.Router, h *Handler) {
	r.Use(h.EnsureCSRFToken)
	r.Use(h.RequireCSRF)
	r.Use(h.Sessions.Authenticate)

	r.NotFound(h.NotFound)

	r.Get("/", h.Home)
	r.Get("/company", h.CompanyShow)
	r.Get("/terms", h.TermsShow)

	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.RegisterSubmit)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.LoginSubmit)
	r.Post("/logout", h.Logout)

	r.Route("/restaurants", func(r chi.Router) {
		r.Get("/", h.RestaurantsIndex)
		r.Route("/{restaurantID}", func(r chi.Router) {
			r.Get("/", h.RestaurantsShow)
			r.Post("/reservations", h.ReservationsCreate)
			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.ReviewsIndex)
				r.Get("/create", h.ReviewsNew)
				r.Post("/", h.ReviewsCreate)
				r.Get("/{reviewID}/edit", h.ReviewsEdit)
				r.Post("/{reviewID}/update", h.ReviewsUpdate)
				r.Post("/{reviewID}/delete", h.ReviewsDelete)
			})
		})
	})

	r.Get("/reservations", h.ReservationsIndex)
	r.Post("/reservations/{reservationID}/delete", h.ReservationsDelete)

	r.Get("/favorites", h.FavoritesIndex)
	r.Post("/favorites/{restaurantID}", h.FavoritesStore)
	r.Post("/favorites/{restaurantID}/delete", h.FavoritesDelete)

	r.Route("/subscription", func(r chi.Router) {
		r.Get("/create", h.SubscriptionNew)
		r.Post("/", h.SubscriptionCreate)
		r.Get("/edit", h.SubscriptionEdit)
		r.Post("/update", h.SubscriptionUpdate)
		r.Get("/cancel", h.SubscriptionCancelPage)
		r.Post("/delete", h.SubscriptionDelete)
	})

	r.Route("/user", func(r chi.Router) {
		r.Get("/", h.ProfileShow)
		r.Get("/edit", h.ProfileEdit)
		r.Post("/", h.ProfileUpdate)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", h.AdminHome)
		r.Get("/login", h.AdminLoginPage)
		r.Post("/login", h.AdminLoginSubmit)
		r.Post("/logout", h.AdminLogout)

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/", h.AdminRestaurantsIndex)
			r.Get("/create", h.AdminRestaurantsNew)
			r.Post("/", h.AdminRestaurantsCreate)
			r.Get("/{restaurantID}", h.AdminRestaurantsShow)
			r.Get("/{restaurantID}/edit", h.AdminRestaurantsEdit)
			r.Post("/{restaurantID}/update", h.AdminRestaurantsUpdate)
			r.Post("/{restaurantID}/delete", h.AdminRestaurantsDelete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.AdminCategoriesIndex)
			r.Post("/", h.AdminCategoriesCreate)
			r.Post("/{categoryID}/update", h.AdminCategoriesUpdate)
			r.Post("/{categoryID}/delete", h.AdminCategoriesDelete)
		})

		r.Get("/users", h.AdminMembersIndex)
		r.Get("/users/{memberID}", h.AdminMembersShow)

		r.Get("/company", h.AdminCompanyShow)
		r.Get("/company/edit", h.AdminCompanyEdit)
		r.Post("/company", h.AdminCompanyUpdate)

		r.Get("/terms", h.AdminTermsShow)
		r.Get("/terms/edit", h.AdminTermsEdit)
		r.Post("/terms", h.AdminTermsUpdate)
	})
}
