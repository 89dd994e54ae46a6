package controllers

import (
	"net/http"
	"time"

	"inventory-system/internal/services"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// ExportInventory отдает текущий снапшот коллекции как xlsx-файл.
func (c *ReportController) ExportInventory(ctx echo.Context) error {
	file, err := c.reportService.BuildInventoryReport(ctx.Request().Context())
	if err != nil {
		c.logger.Error("ExportInventory: не удалось построить отчет", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(
				http.StatusInternalServerError,
				"Не удалось сформировать отчет",
				err,
				nil,
			),
			c.logger,
		)
	}

	filename := "inventory_" + time.Now().Format("2006-01-02") + ".xlsx"
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	return file.Write(ctx.Response().Writer)
}
