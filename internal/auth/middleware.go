package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const tokenContextKey contextKey = "bearer_token"

const tokenCookieName = "access_token"

// TokenMiddleware extracts the raw bearer token from the request, if any,
// and stashes it in the context. Validation is not done here; whether a
// missing or bad token matters is decided by the use case behind the route.
func TokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			r = r.WithContext(context.WithValue(r.Context(), tokenContextKey, token))
		}

		next.ServeHTTP(w, r)
	})
}

// TokenFromContext returns the bearer token stored by TokenMiddleware,
// or "" when the request carried none.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

// bearerToken accepts the credential from the Authorization header or,
// failing that, from the access_token cookie set at login. Both carriers
// hold the same "Bearer <token>" string.
func bearerToken(r *http.Request) string {
	credential := strings.TrimSpace(r.Header.Get("Authorization"))
	if credential == "" {
		cookie, err := r.Cookie(tokenCookieName)
		if err != nil {
			return ""
		}
		credential = strings.TrimSpace(cookie.Value)
	}

	parts := strings.SplitN(credential, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
