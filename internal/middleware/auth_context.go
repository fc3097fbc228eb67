package middleware

import (
	"context"
	"net/http"
	"strings"

	"dogs-adoption/internal/platform/respond"
	"dogs-adoption/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey     ctxKey = "claims"
	authStatusKey ctxKey = "auth_status"
)

type authStatus int

const (
	authMissing authStatus = iota
	authInvalid
	authOK
)

// AuthContext:
// - Si viene Bearer token => intenta Verify() y setea claims.
// - Si no hay token o es inválido, el request sigue igual; RequireAuth decide el 401.
func AuthContext(verifier auth.AuthVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" || verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				ctx := context.WithValue(r.Context(), authStatusKey, authInvalid)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			ctx = context.WithValue(ctx, authStatusKey, authOK)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth corta con 401 si no hay identidad válida y con 400 si está deshabilitada.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.Username) == "" {
			if st, _ := r.Context().Value(authStatusKey).(authStatus); st == authInvalid {
				respond.Unauthorized(w, "Could not validate credentials")
				return
			}
			respond.Unauthorized(w, "Not authenticated")
			return
		}

		if claims.Disabled {
			respond.Detail(w, http.StatusBadRequest, "Inactive user")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
