package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/settlement-report-api/internal/config"
	"github.com/vfg2006/settlement-report-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-key"), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService(&config.Config{
		Auth: config.Auth{Secret: "test-secret", AdminKeyHash: string(hash)},
	}).(*Service)
}

func TestService_GenerateAndValidateToken(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateToken(42, "seller", time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "seller", claims.UserName)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	service := newTestService(t)

	expired, err := service.GenerateToken(42, "seller", -time.Minute)
	require.NoError(t, err)

	otherSecret := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{UserID: 42})
	forged, err := otherSecret.SignedString([]byte("another-secret"))
	require.NoError(t, err)

	noUser := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{})
	anonymous, err := noUser.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: ErrExpiredToken},
		{name: "wrong secret", token: forged, wantErr: ErrInvalidToken},
		{name: "garbage", token: "not.a.token", wantErr: ErrInvalidToken},
		{name: "without user", token: anonymous, wantErr: ErrMissingUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsAuthorizationError(err))
		})
	}
}

func TestService_GenerateToken_RequiresUser(t *testing.T) {
	service := newTestService(t)

	_, err := service.GenerateToken(0, "", time.Hour)
	assert.ErrorIs(t, err, ErrMissingUser)
}

func TestService_ValidateAdminKey(t *testing.T) {
	service := newTestService(t)

	assert.NoError(t, service.ValidateAdminKey("admin-key"))
	assert.ErrorIs(t, service.ValidateAdminKey("wrong"), ErrInsufficientPrivilege)
	assert.ErrorIs(t, service.ValidateAdminKey(""), ErrInsufficientPrivilege)

	unconfigured := NewService(&config.Config{Auth: config.Auth{Secret: "s"}})
	assert.ErrorIs(t, unconfigured.ValidateAdminKey("admin-key"), ErrInsufficientPrivilege)
}
