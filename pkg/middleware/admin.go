package middleware

import (
	"net/http"

	"github.com/vfg2006/settlement-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/settlement-report-api/pkg/apiErrors"
	"github.com/vfg2006/settlement-report-api/pkg/log"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminOnly restringe a rota a quem apresenta a chave de administração
func AdminOnly(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authService.ValidateAdminKey(r.Header.Get(AdminKeyHeader)); err != nil {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("auth: acesso administrativo negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserOnly garante que a AuthMiddleware identificou o usuário
func UserOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClaimsFromContext(r.Context()); !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
