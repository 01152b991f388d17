package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
)

const requestIdHeader = "X-Amzn-Requestid"

// echoRequestId returns chi's request id the way Lambda's invoke API does.
func echoRequestId(next http.Handler) http.Handler {
	f := func(w http.ResponseWriter, request *http.Request) {
		if id := middleware.GetReqID(request.Context()); id != "" {
			w.Header().Set(requestIdHeader, id)
		}

		next.ServeHTTP(w, request)
	}

	return http.HandlerFunc(f)
}

func NewChiMux(invoke InvokeHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Logger, echoRequestId)

	r.Get("/health", invoke.Health)

	r.Route("/2015-03-31/functions/{function}", func(r chi.Router) {
		r.Post("/invocations", invoke.Invoke)
	})

	return r
}
