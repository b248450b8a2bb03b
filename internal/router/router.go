package router

import (
	"net/http"

	"github.com/agentmarket/backend/internal/auth"
	"github.com/agentmarket/backend/internal/catalog"
	"github.com/agentmarket/backend/internal/execution"
	"github.com/agentmarket/backend/internal/reviews"
)

// New returns an http.Handler serving the /api surface. Handlers enforce
// their own methods.
func New(catalogH *catalog.Handler, reviewsH *reviews.Handler, execH *execution.Handler, authH *auth.Handler) http.Handler {
	mux := http.NewServeMux()
	base := "/api"

	mux.HandleFunc(base+"/agents", catalogH.ListAgents)
	mux.HandleFunc(base+"/categories", catalogH.ListCategories)
	mux.HandleFunc(base+"/review", reviewsH.SubmitReview)
	mux.HandleFunc(base+"/execute", execH.Execute)

	mux.HandleFunc(base+"/auth/register", authH.Register)
	mux.HandleFunc(base+"/auth/login", authH.Login)
	mux.HandleFunc(base+"/me", authH.Me)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	return mux
}
