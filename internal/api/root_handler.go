package api

import (
	"net/http"

	"github.com/phrazzld/users-api/internal/api/shared"
)

// Greeting is the body returned by GET /.
const Greeting = "Hello from users-api"

// Root handles GET / with a fixed greeting.
func Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, Greeting)
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, "OK")
}
