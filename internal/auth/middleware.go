package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

// UsuarioIDKey es la clave de contexto con el ID del usuario autenticado.
const UsuarioIDKey ctxKey = "usuarioID"

// Middleware exige un Bearer token válido y deja el ID del usuario en el contexto.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), UsuarioIDKey, claims.UsuarioID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
