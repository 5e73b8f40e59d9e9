package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Loans       LoanCalculator
	RateLimiter *RateLimiter // nil disables rate limiting
	Logger      zerolog.Logger
}

// NewRouter wires the public routes. Any origin, method and header is
// accepted for cross-origin requests.
func NewRouter(deps Dependencies) chi.Router {
	loanHandler := NewLoanHandler(deps.Loans)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(RequestLogger(&deps.Logger))
	router.Use(middleware.Recoverer)
	router.Use(AllowAllCORS())

	router.Get("/healthz", Health)

	router.Group(func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(RateLimitMiddleware(deps.RateLimiter))
		}
		r.Get("/calculate-loan", loanHandler.CalculateLoan)
	})

	return router
}
