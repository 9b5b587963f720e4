package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideField is the query or form key HTML forms use to tunnel PUT and
// DELETE through a POST.
const MethodOverrideField = "_method"

// MethodOverride rewrites POST requests that carry _method=PUT|PATCH|DELETE.
// It wraps the router instead of running inside it because gin picks the route
// by method before any middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.URL.Query().Get(MethodOverrideField)
			if method == "" {
				method = r.PostFormValue(MethodOverrideField)
			}

			switch m := strings.ToUpper(strings.TrimSpace(method)); m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = m
			}
		}
		next.ServeHTTP(w, r)
	})
}
