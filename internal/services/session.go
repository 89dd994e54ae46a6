package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/pkg/config"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionServiceInterface interface {
	CreateSession(ctx context.Context, payload dto.SessionRequestDTO) (*dto.SessionDTO, error)
}

// SessionService - адаптер провайдера идентичности. Сначала пробуется обмен
// bootstrap-токена, при его отсутствии создается анонимная идентичность.
// Повторов нет: неудачный обмен - это отказ, клиент сам решает, падать или
// идти анонимным путем.
type SessionService struct {
	authCfg    config.AuthConfig
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewSessionService(authCfg config.AuthConfig, jwtService service.JWTService, logger *zap.Logger) SessionServiceInterface {
	return &SessionService{
		authCfg:    authCfg,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, payload dto.SessionRequestDTO) (*dto.SessionDTO, error) {
	identityID := ""
	anonymous := true

	if payload.BootstrapToken != "" {
		if s.authCfg.BootstrapTokenHash == "" ||
			!utils.CheckBootstrapToken(payload.BootstrapToken, s.authCfg.BootstrapTokenHash) {
			s.logger.Warn("Отклонен обмен bootstrap-токена")
			return nil, apperrors.ErrInvalidBootstrapToken
		}
		identityID = s.authCfg.BootstrapIdentity
		anonymous = false
	} else {
		identityID = uuid.New().String()
	}

	accessToken, err := s.jwtService.GenerateToken(identityID, anonymous)
	if err != nil {
		s.logger.Error("Не удалось выпустить токен сессии", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Сессия создана", zap.String("identity", identityID), zap.Bool("anonymous", anonymous))
	return &dto.SessionDTO{
		IdentityID:  identityID,
		AccessToken: accessToken,
		Anonymous:   anonymous,
		ExpiresIn:   int64(s.jwtService.GetAccessTokenTTL().Seconds()),
	}, nil
}
