package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/settlement-report-api/internal/config"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"github.com/vfg2006/settlement-report-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator valida os tokens emitidos pela camada do bot
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(userID int64, userName string, ttl time.Duration) (string, error)
	ValidateAdminKey(key string) error
}

type Service struct {
	cfg config.Auth
}

func NewService(cfg *config.Config) Authenticator {
	if cfg.Auth.AdminKeyHash == "" {
		logrus.Warn("ADMIN_KEY_HASH não configurado, rotas administrativas ficarão bloqueadas")
	}

	return &Service{
		cfg: cfg.Auth,
	}
}

// GenerateToken emite um token HS256 para o usuário do bot
func (s *Service) GenerateToken(userID int64, userName string, ttl time.Duration) (string, error) {
	if userID == 0 {
		return "", ErrMissingUser
	}

	claims := domain.Claims{
		UserID:   userID,
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if claims.UserID == 0 {
		return nil, NewAuthError(ErrMissingUser, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

// ValidateAdminKey compara a chave recebida com o hash bcrypt configurado
func (s *Service) ValidateAdminKey(key string) error {
	if s.cfg.AdminKeyHash == "" || key == "" {
		return ErrInsufficientPrivilege
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminKeyHash), []byte(key)); err != nil {
		return ErrInsufficientPrivilege
	}

	return nil
}
