package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	BuildInventoryReport(ctx context.Context) (*excelize.File, error)
}

// ReportService выгружает текущий снапшот коллекции в xlsx-книгу,
// по строке на запись.
type ReportService struct {
	snapshotService SnapshotServiceInterface
	logger          *zap.Logger
}

func NewReportService(snapshotService SnapshotServiceInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{
		snapshotService: snapshotService,
		logger:          logger,
	}
}

func (s *ReportService) BuildInventoryReport(ctx context.Context) (*excelize.File, error) {
	snapshot, err := s.snapshotService.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Inventory"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Warn("Не удалось удалить лист по умолчанию", zap.Error(err))
	}

	headers := []string{"Номер", "Статус", "Локация", "Широта", "Долгота", "Выдано", "Кому"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for rowIdx, item := range snapshot.Items {
		checkedOutAt := ""
		if item.CheckedOutAt.Valid {
			checkedOutAt = item.CheckedOutAt.Time.Format("2006-01-02 15:04:05")
		}
		values := []interface{}{item.Number, item.Status, item.Location, item.Lat, item.Lng, checkedOutAt, item.CheckedOutBy}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("заполнение отчета: %w", err)
			}
		}
	}

	return f, nil
}
