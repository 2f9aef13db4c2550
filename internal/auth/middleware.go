// internal/auth/middleware.go
package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUserID     ctxKey = "usuarioID"
	CtxParceiroID ctxKey = "parceiroID"
	CtxIsAdmin    ctxKey = "isAdmin"
)

// MiddlewareAutenticacao exige um bearer token válido e coloca as claims
// no contexto do pedido.
func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxParceiroID, claims.ParceiroID)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin bloqueia rotas administrativas a utilizadores sem o papel.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxIsAdmin)
		if ok, _ := v.(bool); !ok {
			http.Error(w, "Forbidden (admin only)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ParceiroDoContexto devolve o tenant autenticado do pedido.
func ParceiroDoContexto(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(CtxParceiroID).(uint)
	return id, ok
}

// UsuarioDoContexto devolve o utilizador autenticado do pedido.
func UsuarioDoContexto(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(CtxUserID).(uint)
	return id, ok
}

// AdminDoContexto indica se o pedido vem de um administrador.
func AdminDoContexto(r *http.Request) bool {
	ok, _ := r.Context().Value(CtxIsAdmin).(bool)
	return ok
}
