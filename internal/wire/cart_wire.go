package wire

import (
	"bistro-boss/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCart exposes the cart routes. They carry no token check.
func wireCart(r chi.Router, cartHandler *adaptor.CartHandler) {
	r.Route("/carts", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Post("/", cartHandler.AddToCart)
		r.Delete("/{id}", cartHandler.RemoveFromCart)
	})
}
