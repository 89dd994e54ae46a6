package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "inventory-system/pkg/errors"
)

// fakeCacheRepository - кеш в памяти для тестов cache-aside логики.
type fakeCacheRepository struct {
	values  map[string]string
	ttls    map[string]time.Duration
	sets    int
	gets    int
	deletes int
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.sets++
	f.values[key] = value.(string)
	f.ttls[key] = expiration
	return nil
}

func (f *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	f.gets++
	value, ok := f.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return value, nil
}

func (f *fakeCacheRepository) Del(ctx context.Context, keys ...string) error {
	f.deletes++
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func TestGetSnapshot_NaturalOrder(t *testing.T) {
	repo := newFakeEquipmentRepository()
	cache := newFakeCacheRepository()
	svc := NewSnapshotService(repo, cache, time.Second*30, zap.NewNop())

	for _, number := range []string{"CAM-10", "CAM-2", "DRONE-1", "CAM-1"} {
		_, err := repo.CreateEquipment(context.Background(), number)
		require.NoError(t, err)
	}

	snapshot, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Items, 4)

	var numbers []string
	for _, item := range snapshot.Items {
		numbers = append(numbers, item.Number)
	}
	assert.Equal(t, []string{"CAM-1", "CAM-2", "CAM-10", "DRONE-1"}, numbers,
		"номера сортируются natural-порядком, а не лексикографически")
}

func TestGetSnapshot_EmptyCollection(t *testing.T) {
	repo := newFakeEquipmentRepository()
	cache := newFakeCacheRepository()
	svc := NewSnapshotService(repo, cache, time.Second*30, zap.NewNop())

	snapshot, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snapshot.Items, "пустая коллекция - это пустой список, а не null")
	assert.Empty(t, snapshot.Items)
}

func TestGetSnapshot_CacheAside(t *testing.T) {
	repo := newFakeEquipmentRepository()
	cache := newFakeCacheRepository()
	svc := NewSnapshotService(repo, cache, time.Second*30, zap.NewNop())

	_, err := repo.CreateEquipment(context.Background(), "CAM-1")
	require.NoError(t, err)

	// Первый запрос идет в БД и кладет результат в кеш.
	first, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, time.Second*30, cache.ttls[snapshotCacheKey])

	// Второй запрос обслуживается из кеша без повторной записи.
	_, err = repo.CreateEquipment(context.Background(), "CAM-2")
	require.NoError(t, err)

	second, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(first.Items), len(second.Items), "до сброса кеша отдается закешированный срез")
	assert.Equal(t, 1, cache.sets)

	// После сброса кеша виден свежий срез.
	require.NoError(t, svc.Invalidate(context.Background()))
	assert.Equal(t, 1, cache.deletes)

	third, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, third.Items, 2)
	assert.Equal(t, 2, cache.sets)
}

func TestGetSnapshot_CorruptCacheFallsBackToDB(t *testing.T) {
	repo := newFakeEquipmentRepository()
	cache := newFakeCacheRepository()
	svc := NewSnapshotService(repo, cache, time.Second*30, zap.NewNop())

	_, err := repo.CreateEquipment(context.Background(), "CAM-1")
	require.NoError(t, err)

	cache.values[snapshotCacheKey] = "{битый json"

	snapshot, err := svc.GetSnapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.Items, 1, "битый кеш не должен ломать чтение")
}
