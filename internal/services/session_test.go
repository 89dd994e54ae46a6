package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/pkg/config"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"
)

func newSessionServiceForTest(t *testing.T, bootstrapToken string) SessionServiceInterface {
	t.Helper()

	authCfg := config.AuthConfig{BootstrapIdentity: "bootstrap"}
	if bootstrapToken != "" {
		hash, err := utils.HashBootstrapToken(bootstrapToken)
		require.NoError(t, err)
		authCfg.BootstrapTokenHash = hash
	}

	jwtSvc := service.NewJWTService("test-secret", time.Hour)
	return NewSessionService(authCfg, jwtSvc, zap.NewNop())
}

func TestCreateSession_BootstrapToken(t *testing.T) {
	svc := newSessionServiceForTest(t, "field-secret")

	session, err := svc.CreateSession(context.Background(), dto.SessionRequestDTO{BootstrapToken: "field-secret"})
	require.NoError(t, err)

	assert.Equal(t, "bootstrap", session.IdentityID)
	assert.False(t, session.Anonymous)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, int64(3600), session.ExpiresIn, "срок жизни токена отдается клиенту в секундах")

	claims, err := service.NewJWTService("test-secret", time.Hour).ValidateToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "bootstrap", claims.IdentityID)
}

func TestCreateSession_WrongBootstrapToken(t *testing.T) {
	svc := newSessionServiceForTest(t, "field-secret")

	_, err := svc.CreateSession(context.Background(), dto.SessionRequestDTO{BootstrapToken: "не тот токен"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidBootstrapToken)
}

func TestCreateSession_BootstrapDisabled(t *testing.T) {
	// Без настроенного хеша любой предъявленный токен отклоняется.
	svc := newSessionServiceForTest(t, "")

	_, err := svc.CreateSession(context.Background(), dto.SessionRequestDTO{BootstrapToken: "какой-то токен"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidBootstrapToken)
}

func TestCreateSession_Anonymous(t *testing.T) {
	svc := newSessionServiceForTest(t, "field-secret")

	first, err := svc.CreateSession(context.Background(), dto.SessionRequestDTO{})
	require.NoError(t, err)
	second, err := svc.CreateSession(context.Background(), dto.SessionRequestDTO{})
	require.NoError(t, err)

	assert.True(t, first.Anonymous)
	assert.NotEmpty(t, first.IdentityID)
	assert.NotEqual(t, first.IdentityID, second.IdentityID, "каждая анонимная сессия получает свою идентичность")
}
