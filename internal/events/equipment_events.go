package events

// EquipmentChangedEvent - событие, которое возникает после любой успешной
// мутации коллекции. Подписчикам не передается дельта: слушатель сам
// перечитывает полный снапшот и рассылает его.
type EquipmentChangedEvent struct {
	EquipmentID string
	Action      string // "create" | "checkout" | "checkin"
}

// Name - реализуем интерфейс eventbus.Event
func (e EquipmentChangedEvent) Name() string {
	return "equipment.changed"
}
