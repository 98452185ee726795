package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims é emitido pela camada do bot para identificar o usuário solicitante
type Claims struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name,omitempty"`
	jwt.RegisteredClaims
}
