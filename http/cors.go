package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/cors"
)

var standardMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
	http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace,
}

func allowAllOptions(methods ...string) cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: append(slices.Clone(standardMethods), methods...),
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}
}

// AllowAllCORS permits every origin, header and method. go-chi/cors only
// matches methods against a list, so a request for a method outside the
// standard set is served by a handler built for that method.
func AllowAllCORS() func(http.Handler) http.Handler {
	standard := cors.Handler(allowAllOptions())

	return func(next http.Handler) http.Handler {
		standardNext := standard(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method := r.Method
			if r.Method == http.MethodOptions {
				if requested := r.Header.Get("Access-Control-Request-Method"); requested != "" {
					method = strings.ToUpper(requested)
				}
			}

			if slices.Contains(standardMethods, method) {
				standardNext.ServeHTTP(w, r)
				return
			}
			cors.Handler(allowAllOptions(method))(next).ServeHTTP(w, r)
		})
	}
}
