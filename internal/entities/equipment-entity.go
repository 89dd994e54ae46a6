package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Статусы оборудования.
const (
	StatusAvailable = "available"
	StatusInUse     = "in_use"
)

type Equipment struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Status   string `json:"status"`
	Location string `json:"location"`

	// Координаты хранятся строками, как их прислал клиент. Пустая строка -
	// координата не указана.
	Lat string `json:"lat"`
	Lng string `json:"lng"`

	CheckedOutAt null.Time `json:"checked_out_at"`
	CheckedOutBy string    `json:"checked_out_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAvailable сообщает, свободна ли запись.
func (e *Equipment) IsAvailable() bool {
	return e.Status == StatusAvailable
}
