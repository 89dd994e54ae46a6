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

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	snapshotService  services.SnapshotServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	snapshotService services.SnapshotServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		snapshotService:  snapshotService,
		logger:           logger,
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	snapshot, err := c.snapshotService.GetSnapshot(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEquipments: ошибка при получении снапшота", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Не удалось получить список оборудования",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, snapshot, "Список оборудования успешно получен", http.StatusOK)
}

func (c *EquipmentController) AddEquipment(ctx echo.Context) error {
	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("AddEquipment: ошибка привязки данных", zap.Error(err))
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

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("AddEquipment: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.AddEquipment(ctx.Request().Context(), payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyNumber) {
			return utils.ErrorResponse(
				ctx,
				apperrors.NewHttpError(http.StatusUnprocessableEntity, err.Error(), nil, nil),
				c.logger,
			)
		}
		c.logger.Error("AddEquipment: ошибка при создании оборудования", zap.Any("payload", payload), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Не удалось выполнить действие",
				err,
				nil,
			),
			c.logger,
		)
	}

	return utils.SuccessResponse(ctx, res, "Оборудование успешно создано", http.StatusCreated)
}

func (c *EquipmentController) CheckOut(ctx echo.Context) error {
	id := ctx.Param("id")

	var payload dto.CheckOutDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CheckOut: ошибка привязки данных", zap.Error(err))
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

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CheckOut: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.equipmentService.CheckOut(ctx.Request().Context(), id, payload); err != nil {
		return c.mutationError(ctx, "CheckOut", id, err)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Оборудование успешно выдано", http.StatusOK)
}

func (c *EquipmentController) CheckIn(ctx echo.Context) error {
	id := ctx.Param("id")

	if err := c.equipmentService.CheckIn(ctx.Request().Context(), id); err != nil {
		return c.mutationError(ctx, "CheckIn", id, err)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "Оборудование успешно возвращено", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id := ctx.Param("id")

	err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id)
	if err == nil {
		return utils.SuccessResponse(ctx, struct{}{}, "Оборудование успешно удалено", http.StatusOK)
	}

	if errors.Is(err, apperrors.ErrEquipmentInUse) {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusConflict, err.Error(), nil, nil),
			c.logger,
		)
	}
	if errors.Is(err, apperrors.ErrDeleteDisabled) {
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, err.Error(), nil, nil),
			c.logger,
		)
	}

	return c.mutationError(ctx, "DeleteEquipment", id, err)
}

func (c *EquipmentController) mutationError(ctx echo.Context, op, id string, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusNotFound, err.Error(), nil, map[string]interface{}{"id": id}),
			c.logger,
		)
	case errors.Is(err, apperrors.ErrEmptyLocation):
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusUnprocessableEntity, err.Error(), nil, nil),
			c.logger,
		)
	default:
		c.logger.Error(op+": ошибка при мутации оборудования", zap.String("id", id), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Не удалось выполнить действие",
				err,
				nil,
			),
			c.logger,
		)
	}
}
