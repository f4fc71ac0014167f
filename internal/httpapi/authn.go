package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"hourlog.org/internal/auth"
)

// publicPaths can be reached without a bearer token.
var publicPaths = map[string]bool{
	"/":                 true,
	"/healthz":          true,
	"/readyz":           true,
	"/metrics":          true,
	"/v1/info":          true,
	"/v1/auth/register": true,
	"/v1/auth/login":    true,
}

// withAuth verifies the bearer token on protected paths and stashes the
// resulting principal in the request context. Handlers never see an
// unauthenticated request on a protected path.
func (a *API) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="hourlog"`)
			writeError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		principal, err := a.auth.Authenticate(token)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="hourlog", error="invalid_token"`)
			handleServiceError(w, r, err)
			return
		}

		ctx := auth.ContextWithPrincipal(r.Context(), principal)
		ctx = auth.ContextWithToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingToken
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errMalformedHeader
	}
	return strings.TrimSpace(token), nil
}

var (
	errMissingToken    = errors.New("missing bearer token")
	errMalformedHeader = errors.New("malformed authorization header")
)

// principalFrom pulls the principal withAuth stored. A miss means the
// route was wired without the middleware, which is a programming error.
func principalFrom(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "missing bearer token")
		return auth.Principal{}, false
	}
	return p, true
}
