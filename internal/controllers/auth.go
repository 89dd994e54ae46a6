package controllers

import (
	"errors"
	"net/http"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	sessionService services.SessionServiceInterface
	logger         *zap.Logger
}

func NewAuthController(sessionService services.SessionServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{
		sessionService: sessionService,
		logger:         logger,
	}
}

// CreateSession - единственная точка входа провайдера идентичности:
// обмен bootstrap-токена либо анонимная сессия.
func (c *AuthController) CreateSession(ctx echo.Context) error {
	var payload dto.SessionRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateSession: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Неверный формат данных в теле запроса",
				err,
				nil,
			),
			c.logger,
		)
	}

	res, err := c.sessionService.CreateSession(ctx.Request().Context(), payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidBootstrapToken) {
			return utils.ErrorResponse(
				ctx,
				apperrors.NewHttpError(http.StatusUnauthorized, err.Error(), nil, nil),
				c.logger,
			)
		}
		c.logger.Error("CreateSession: не удалось создать сессию", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Не удалось создать сессию",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "Сессия успешно создана", http.StatusCreated)
}
