package main

import (
	"flag"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runEquipment := flag.Bool("equipment", false, "Запустить наполнение оборудования демонстрационными записями")
	flag.Parse()

	if !*runEquipment {
		log.Println("❌ Не выбран ни один сидер для запуска.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Пример использования:")
		log.Println("  go run ./seeders/cmd/seed/main.go -equipment")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	if err := postgresql.RunMigrations(cfg.Postgres.DSN); err != nil {
		log.Fatalf("❌ Ошибка применения миграций: %v", err)
	}

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	log.Println("======================================================")
	seeders.SeedEquipments(dbPool)
	log.Println("======================================================")
	log.Println("🎉 Все выбранные сидеры успешно отработали!")
}
