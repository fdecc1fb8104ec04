package util

import (
	"net/http"
	"strings"
)

// GatewayPrefix is stripped from request paths routed through the public gateway.
const GatewayPrefix = "/api/ahp-planner"

// This method rewrite remove /api/ahp-planner/ from path
// in case we get the request from gateway
func GatewayApiRewrite(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, GatewayPrefix) {
			r.URL.Path = strings.TrimPrefix(r.URL.Path, GatewayPrefix)
			if r.URL.Path == "" {
				r.URL.Path = "/"
			}
		}

		next.ServeHTTP(w, r)
	})
}
