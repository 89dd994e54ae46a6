package services

import (
	"context"
	"strings"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/events"
	"inventory-system/internal/repositories"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/eventbus"
	"inventory-system/pkg/middleware"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	AddEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	CheckOut(ctx context.Context, id string, payload dto.CheckOutDTO) error
	CheckIn(ctx context.Context, id string) error
	DeleteEquipment(ctx context.Context, id string) error
}

// EquipmentService - фасад над коллекцией оборудования. Каждая успешная
// мутация сбрасывает кеш снапшота и публикует equipment.changed, после чего
// подписчики живой ленты получают свежий снапшот. Оптимистичных локальных
// обновлений нет - результат виден только через следующую эмиссию.
type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	snapshotService     SnapshotServiceInterface
	bus                 *eventbus.Bus
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	snapshotService SnapshotServiceInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		snapshotService:     snapshotService,
		bus:                 bus,
		logger:              logger,
	}
}

func (s *EquipmentService) AddEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	number := strings.TrimSpace(payload.Number)
	if number == "" {
		return nil, apperrors.ErrEmptyNumber
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, number)
	if err != nil {
		s.logger.Error("Ошибка при создании оборудования", zap.Error(err))
		return nil, err
	}

	s.notifyChanged(ctx, created.ID, "create")
	s.logger.Info("Оборудование создано", zap.String("id", created.ID), zap.String("number", number))

	result := dto.EquipmentFromEntity(created)
	return &result, nil
}

func (s *EquipmentService) CheckOut(ctx context.Context, id string, payload dto.CheckOutDTO) error {
	location := strings.TrimSpace(payload.Location)
	if location == "" {
		return apperrors.ErrEmptyLocation
	}

	identityID, err := middleware.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	// Координаты сохраняются как есть: пустые строки допустимы, разбор
	// выполняет реконсилер маркеров на стороне подписчика.
	if err := s.equipmentRepository.CheckOutEquipment(ctx, id, location, payload.Lat, payload.Lng, identityID); err != nil {
		s.logger.Error("Ошибка при выдаче оборудования", zap.String("id", id), zap.Error(err))
		return err
	}

	s.notifyChanged(ctx, id, "checkout")
	s.logger.Info("Оборудование выдано",
		zap.String("id", id),
		zap.String("location", location),
		zap.String("identity", identityID),
	)
	return nil
}

func (s *EquipmentService) CheckIn(ctx context.Context, id string) error {
	if err := s.equipmentRepository.CheckInEquipment(ctx, id); err != nil {
		s.logger.Error("Ошибка при возврате оборудования", zap.String("id", id), zap.Error(err))
		return err
	}

	s.notifyChanged(ctx, id, "checkin")
	s.logger.Info("Оборудование возвращено", zap.String("id", id))
	return nil
}

// DeleteEquipment - намеренная заглушка. Для выданного оборудования это
// конфликт, для свободного - отказ с уведомлением "удаление отключено".
// Мутация не выполняется ни в одном из случаев.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	equipment, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return err
	}

	if equipment.Status == entities.StatusInUse {
		return apperrors.ErrEquipmentInUse
	}

	return apperrors.ErrDeleteDisabled
}

func (s *EquipmentService) notifyChanged(ctx context.Context, id, action string) {
	// Кеш сбрасывается до публикации, чтобы слушатель собрал уже свежий
	// снапшот.
	if err := s.snapshotService.Invalidate(ctx); err != nil {
		s.logger.Warn("Не удалось сбросить кеш снапшота", zap.Error(err))
	}
	s.bus.Publish(ctx, events.EquipmentChangedEvent{EquipmentID: id, Action: action})
}
