package listeners

import (
	"context"

	"go.uber.org/zap"

	"inventory-system/internal/events"
	"inventory-system/internal/services"
	"inventory-system/pkg/eventbus"
)

// SnapshotListener замыкает цикл живой подписки: любая мутация коллекции ->
// свежий полный снапшот -> рассылка всем подписчикам. Дельты не
// отправляются, промежуточные снапшоты могут теряться - действует
// "последний снапшот побеждает".
type SnapshotListener struct {
	snapshotService       services.SnapshotServiceInterface
	wsNotificationService services.WebSocketNotificationServiceInterface
	logger                *zap.Logger
}

func NewSnapshotListener(
	snapshotService services.SnapshotServiceInterface,
	wsNotificationService services.WebSocketNotificationServiceInterface,
	logger *zap.Logger,
) *SnapshotListener {
	return &SnapshotListener{
		snapshotService:       snapshotService,
		wsNotificationService: wsNotificationService,
		logger:                logger,
	}
}

func (l *SnapshotListener) Register(bus *eventbus.Bus) {
	bus.Subscribe("equipment.changed", l.handleEquipmentChanged)
	l.logger.Info("SnapshotListener подписан на событие 'equipment.changed'")
}

func (l *SnapshotListener) handleEquipmentChanged(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EquipmentChangedEvent)
	if !ok {
		return nil
	}

	snapshot, err := l.snapshotService.GetSnapshot(ctx)
	if err != nil {
		l.logger.Error("Не удалось собрать снапшот после мутации",
			zap.String("equipmentId", e.EquipmentID),
			zap.Error(err),
		)
		return err
	}

	return l.wsNotificationService.BroadcastSnapshot(snapshot)
}
