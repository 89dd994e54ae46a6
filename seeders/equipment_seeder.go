package seeders

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type equipmentSeed struct {
	Number       string
	Status       string
	Location     string
	Lat          string
	Lng          string
	CheckedOutBy string
}

var equipmentsData = []equipmentSeed{
	{Number: "CAM-1", Status: "available"},
	{Number: "CAM-2", Status: "in_use", Location: "Мост через Варзоб", Lat: "38.637", Lng: "68.785", CheckedOutBy: "bootstrap"},
	{Number: "CAM-3", Status: "available"},
	{Number: "CAM-10", Status: "in_use", Location: "Северный въезд", Lat: "38.612", Lng: "68.801", CheckedOutBy: "bootstrap"},
	{Number: "DRONE-1", Status: "in_use", Location: "Полевой лагерь", Lat: "", Lng: "", CheckedOutBy: "bootstrap"},
	{Number: "TRIPOD-7", Status: "available"},
}

// SeedEquipments наполняет таблицу оборудования демонстрационными записями.
func SeedEquipments(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Запуск наполнения оборудования...")

	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения Оборудования (Equipments): %v", err)
	}

	log.Println("✅ Наполнение оборудования завершено!")
}

func seedEquipments(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("  - Наполнение таблицы 'equipments'...")

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE equipments"); err != nil {
		return err
	}

	query := `INSERT INTO equipments (id, number, status, location, lat, lng, checked_out_at, checked_out_by)
			  VALUES ($1, $2, $3, $4, $5, $6, CASE WHEN $3 = 'in_use' THEN NOW() END, $7)`

	for _, e := range equipmentsData {
		if _, err := tx.Exec(ctx, query, uuid.New().String(), e.Number, e.Status, e.Location, e.Lat, e.Lng, e.CheckedOutBy); err != nil {
			log.Printf("Ошибка при вставке оборудования '%s': %v", e.Number, err)
			return err
		}
	}

	return tx.Commit(ctx)
}
