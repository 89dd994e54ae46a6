package dto

import (
	"inventory-system/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Number string `json:"number" validate:"required,not_blank"`
}

type CheckOutDTO struct {
	Location string `json:"location" validate:"required,not_blank"`

	// Координаты не валидируются и сохраняются дословно: неразборчивые
	// значения молча пропускает реконсилер маркеров на стороне подписчика.
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

type EquipmentDTO struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	Lat          string    `json:"lat"`
	Lng          string    `json:"lng"`
	CheckedOutAt null.Time `json:"checked_out_at"`
	CheckedOutBy string    `json:"checked_out_by"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// SnapshotDTO - полный срез коллекции, отсортированный по номеру.
// Каждая эмиссия подписки заменяет предыдущую целиком.
type SnapshotDTO struct {
	Items []EquipmentDTO `json:"items"`
}

func EquipmentFromEntity(e *entities.Equipment) EquipmentDTO {
	return EquipmentDTO{
		ID:           e.ID,
		Number:       e.Number,
		Status:       e.Status,
		Location:     e.Location,
		Lat:          e.Lat,
		Lng:          e.Lng,
		CheckedOutAt: e.CheckedOutAt,
		CheckedOutBy: e.CheckedOutBy,
		CreatedAt:    e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
