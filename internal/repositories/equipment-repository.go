package repositories

import (
	"context"
	"errors"
	"fmt"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentFields = "id, number, status, location, lat, lng, checked_out_at, checked_out_by, created_at, updated_at"

type EquipmentRepositoryInterface interface {
	GetSnapshot(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, number string) (*entities.Equipment, error)
	CheckOutEquipment(ctx context.Context, id, location, lat, lng, identityID string) error
	CheckInEquipment(ctx context.Context, id string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

// GetSnapshot возвращает все записи коллекции. Первичная сортировка по
// number делается в БД, окончательный natural-порядок наводит сервис
// снапшотов.
func (r *EquipmentRepository) GetSnapshot(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := sq.Select(equipmentFields).
		From("equipments").
		OrderBy("number ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("сборка запроса снапшота: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("запрос снапшота: %w", err)
	}
	defer rows.Close()

	var items []entities.Equipment
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(&e.ID, &e.Number, &e.Status, &e.Location, &e.Lat, &e.Lng,
			&e.CheckedOutAt, &e.CheckedOutBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("чтение записи оборудования: %w", err)
		}
		items = append(items, e)
	}

	return items, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	var e entities.Equipment
	err := r.storage.QueryRow(ctx,
		`SELECT `+equipmentFields+` FROM equipments WHERE id = $1`, id,
	).Scan(&e.ID, &e.Number, &e.Status, &e.Location, &e.Lat, &e.Lng,
		&e.CheckedOutAt, &e.CheckedOutBy, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("поиск оборудования: %w", err)
	}
	return &e, nil
}

// CreateEquipment создает новую запись в "свободном" виде: все поля выдачи
// очищены, идентификатор назначает хранилище.
func (r *EquipmentRepository) CreateEquipment(ctx context.Context, number string) (*entities.Equipment, error) {
	id := uuid.New().String()

	_, err := r.storage.Exec(ctx,
		`INSERT INTO equipments (id, number, status, location, lat, lng, checked_out_by)
		 VALUES ($1, $2, $3, '', '', '', '')`,
		id, number, entities.StatusAvailable,
	)
	if err != nil {
		return nil, fmt.Errorf("создание оборудования: %w", err)
	}

	return r.FindEquipment(ctx, id)
}

// CheckOutEquipment - пополевая мутация полей выдачи. Повторный checkout
// полностью перезаписывает предыдущий набор значений, checked_out_at
// назначается серверным временем БД.
func (r *EquipmentRepository) CheckOutEquipment(ctx context.Context, id, location, lat, lng, identityID string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE equipments
		 SET status = $2, location = $3, lat = $4, lng = $5,
		     checked_out_at = NOW(), checked_out_by = $6, updated_at = NOW()
		 WHERE id = $1`,
		id, entities.StatusInUse, location, lat, lng, identityID,
	)
	if err != nil {
		return fmt.Errorf("выдача оборудования: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CheckInEquipment безусловно возвращает запись в "свободный" вид.
func (r *EquipmentRepository) CheckInEquipment(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx,
		`UPDATE equipments
		 SET status = $2, location = '', lat = '', lng = '',
		     checked_out_at = NULL, checked_out_by = '', updated_at = NOW()
		 WHERE id = $1`,
		id, entities.StatusAvailable,
	)
	if err != nil {
		return fmt.Errorf("возврат оборудования: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
