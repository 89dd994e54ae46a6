package services

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/utils"

	"go.uber.org/zap"
)

const snapshotCacheKey = "equipment:snapshot"

type SnapshotServiceInterface interface {
	GetSnapshot(ctx context.Context) (*dto.SnapshotDTO, error)
	Invalidate(ctx context.Context) error
}

// SnapshotService собирает полный срез коллекции: записи сортируются
// natural-порядком по номеру, готовый JSON кешируется в Redis с коротким
// TTL (cache-aside).
type SnapshotService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	cacheRepository     repositories.CacheRepositoryInterface
	cacheTTL            time.Duration
	logger              *zap.Logger
}

func NewSnapshotService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	cacheRepository repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) SnapshotServiceInterface {
	return &SnapshotService{
		equipmentRepository: equipmentRepository,
		cacheRepository:     cacheRepository,
		cacheTTL:            cacheTTL,
		logger:              logger,
	}
}

func (s *SnapshotService) GetSnapshot(ctx context.Context) (*dto.SnapshotDTO, error) {
	if cached, err := s.cacheRepository.Get(ctx, snapshotCacheKey); err == nil && cached != "" {
		var snapshot dto.SnapshotDTO
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			return &snapshot, nil
		}
		// Битое значение в кеше не должно ломать чтение - идем в БД.
		s.logger.Warn("Снапшот в кеше не разбирается, перечитываем из БД")
	}

	items, err := s.equipmentRepository.GetSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &dto.SnapshotDTO{Items: make([]dto.EquipmentDTO, 0, len(items))}
	for i := range items {
		snapshot.Items = append(snapshot.Items, dto.EquipmentFromEntity(&items[i]))
	}

	sort.SliceStable(snapshot.Items, func(i, j int) bool {
		return utils.NaturalLess(snapshot.Items[i].Number, snapshot.Items[j].Number)
	})

	if encoded, err := json.Marshal(snapshot); err == nil {
		if err := s.cacheRepository.Set(ctx, snapshotCacheKey, string(encoded), s.cacheTTL); err != nil {
			s.logger.Warn("Не удалось записать снапшот в кеш", zap.Error(err))
		}
	}

	return snapshot, nil
}

func (s *SnapshotService) Invalidate(ctx context.Context) error {
	return s.cacheRepository.Del(ctx, snapshotCacheKey)
}
