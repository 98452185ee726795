package wbdomain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRetriesExhausted indica que o limite de tentativas por página foi atingido
var ErrRetriesExhausted = errors.New("wildberries: limite de tentativas excedido")

// StatusError representa uma resposta não recuperável da API do marketplace
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wildberries: %s respondeu com status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// IsUnauthorized verifica se o erro indica token inválido ou sem permissão
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	return statusErr.StatusCode == http.StatusUnauthorized || statusErr.StatusCode == http.StatusForbidden
}
