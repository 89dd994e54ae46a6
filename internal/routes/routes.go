package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/listeners"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/eventbus"
	"inventory-system/pkg/middleware"
	"inventory-system/pkg/service"
	appwebsocket "inventory-system/pkg/websocket"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	hub *appwebsocket.Hub,
	bus *eventbus.Bus,
	logger *zap.Logger,
	cfg *config.Config,
) {
	logger.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// --- 1. РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	snapshotService := services.NewSnapshotService(equipmentRepo, cacheRepo, cfg.Cache.SnapshotTTL, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, snapshotService, bus, logger)
	sessionService := services.NewSessionService(cfg.Auth, jwtSvc, logger)
	wsNotificationService := services.NewWebSocketNotificationService(hub, logger)
	reportService := services.NewReportService(snapshotService, logger)

	// --- 3. СЛУШАТЕЛИ ---
	snapshotListener := listeners.NewSnapshotListener(snapshotService, wsNotificationService, logger)
	snapshotListener.Register(bus)

	// --- 4. РОУТЕРЫ ---
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, sessionService, logger)
	runEquipmentRouter(secureGroup, equipmentService, snapshotService, logger)
	runReportRouter(secureGroup, reportService, logger)
	runWebSocketRouter(e, hub, jwtSvc, snapshotService, logger)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
