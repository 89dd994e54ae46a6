package watcher

import (
	"go.uber.org/zap"

	"inventory-system/internal/view"
)

// ConsoleSurface - эталонная поверхность отрисовки: вместо тайлов и
// пинов пишет операции с маркерами в лог. Контракт тот же, что у любой
// картографической библиотеки.
type ConsoleSurface struct {
	logger *zap.Logger
}

func NewConsoleSurface(logger *zap.Logger) *ConsoleSurface {
	return &ConsoleSurface{logger: logger}
}

func (s *ConsoleSurface) AddMarker(id string, p view.Point, label string) {
	s.logger.Info("Маркер добавлен",
		zap.String("id", id),
		zap.Float64("lat", p.Lat),
		zap.Float64("lng", p.Lng),
		zap.String("label", label),
	)
}

func (s *ConsoleSurface) RemoveMarker(id string) {
	s.logger.Info("Маркер удален", zap.String("id", id))
}

func (s *ConsoleSurface) FitBounds(points []view.Point, padding int) {
	s.logger.Info("Вьюпорт подогнан под маркеры",
		zap.Int("markers", len(points)),
		zap.Int("padding", padding),
	)
}

func (s *ConsoleSurface) SetEmpty(empty bool) {
	if empty {
		s.logger.Info("На карте нечего показывать")
	}
}
