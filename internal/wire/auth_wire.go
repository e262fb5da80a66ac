package wire

import (
	"bistro-boss/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth exposes token issuance. The client proves nothing beyond the
// email it sends.
func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/jwt", authHandler.IssueToken)
}
