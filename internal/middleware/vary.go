package middleware

import "net/http"

// Vary returns middleware that adds Accept to the Vary header on all
// responses. The API content-negotiates JSON or CBOR from the Accept
// header, so caches must key on it. The CORS middleware separately adds
// "Origin" to Vary, so this middleware only adds "Accept" to avoid
// duplication.
func Vary() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept")
			next.ServeHTTP(w, r)
		})
	}
}
