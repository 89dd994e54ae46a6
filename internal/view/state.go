package view

import (
	"math"
	"strconv"
	"strings"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

// Phase - фаза представления, завязанного на живую подписку.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

// ViewMode - чистый UI-переключатель, не зависящий от данных.
type ViewMode string

const (
	ViewModeCards ViewMode = "cards"
	ViewModeMap   ViewMode = "map"
)

// State - неизменяемое состояние представления. Каждая эмиссия подписки
// заменяет снапшот целиком; производное подмножество для карты
// пересчитывается при каждой смене снапшота.
type State struct {
	Phase        Phase
	ErrorMessage string
	Mode         ViewMode
	Snapshot     []dto.EquipmentDTO
	MapItems     []dto.EquipmentDTO
}

// NewState - начальное состояние: загрузка, режим карточек, пустой снапшот.
func NewState() State {
	return State{
		Phase: PhaseLoading,
		Mode:  ViewModeCards,
	}
}

// Event - событие, которое редьюсер сворачивает в новое состояние.
type Event interface {
	isViewEvent()
}

// SnapshotReceived - подписка доставила полный снапшот.
type SnapshotReceived struct {
	Items []dto.EquipmentDTO
}

// SubscriptionFailed - подписка оборвалась. Состояние ошибки терминально
// для данного экземпляра подписки.
type SubscriptionFailed struct {
	Message string
}

// ViewModeSet - пользователь переключил режим отображения.
type ViewModeSet struct {
	Mode ViewMode
}

func (SnapshotReceived) isViewEvent()   {}
func (SubscriptionFailed) isViewEvent() {}
func (ViewModeSet) isViewEvent()        {}

// Reduce - чистая функция: не мутирует вход и не делает внешних вызовов.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case SnapshotReceived:
		if state.Phase == PhaseError {
			// Ошибка терминальна: поздние эмиссии отбрасываются.
			return state
		}
		state.Phase = PhaseReady
		state.Snapshot = e.Items
		state.MapItems = MapSubset(e.Items)
		return state
	case SubscriptionFailed:
		state.Phase = PhaseError
		state.ErrorMessage = e.Message
		state.Snapshot = nil
		state.MapItems = nil
		return state
	case ViewModeSet:
		state.Mode = e.Mode
		return state
	default:
		return state
	}
}

// MapSubset возвращает записи для карты: выданное оборудование с обеими
// координатами, которые разбираются как конечные числа. Функция
// идемпотентна, повторный вызов на том же снапшоте безопасен.
func MapSubset(items []dto.EquipmentDTO) []dto.EquipmentDTO {
	var subset []dto.EquipmentDTO
	for _, item := range items {
		if item.Status != entities.StatusInUse {
			continue
		}
		if _, ok := ParseCoordinate(item.Lat); !ok {
			continue
		}
		if _, ok := ParseCoordinate(item.Lng); !ok {
			continue
		}
		subset = append(subset, item)
	}
	return subset
}

// ParseCoordinate разбирает координату-строку. Пустые и неразборчивые
// значения молча отбрасываются - это осознанное поведение, а не ошибка.
func ParseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
