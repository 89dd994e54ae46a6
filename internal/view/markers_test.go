package view

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
)

// recordingSurface запоминает все операции, чтобы тесты сверяли итоговое
// множество маркеров и порядок вызовов.
type recordingSurface struct {
	markers    map[string]Point
	adds       []string
	removes    []string
	fitCalls   int
	lastPoints []Point
	empty      *bool
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{markers: make(map[string]Point)}
}

func (s *recordingSurface) AddMarker(id string, p Point, label string) {
	s.markers[id] = p
	s.adds = append(s.adds, id)
}

func (s *recordingSurface) RemoveMarker(id string) {
	delete(s.markers, id)
	s.removes = append(s.removes, id)
}

func (s *recordingSurface) FitBounds(points []Point, padding int) {
	s.fitCalls++
	s.lastPoints = points
}

func (s *recordingSurface) SetEmpty(empty bool) {
	s.empty = &empty
}

func inUse(id, lat, lng string) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:       id,
		Number:   "CAM-" + id,
		Status:   entities.StatusInUse,
		Location: "Точка " + id,
		Lat:      lat,
		Lng:      lng,
	}
}

func TestReconcile_AddAndRemove(t *testing.T) {
	surface := newRecordingSurface()
	r := NewMarkerReconciler(surface)

	// Снапшот с A и B.
	r.Reconcile([]dto.EquipmentDTO{
		inUse("a", "38.5", "68.7"),
		inUse("b", "38.6", "68.8"),
	})
	require.Equal(t, 2, r.DrawnCount())

	// Следующий снапшот с B и C: A снят, C добавлен, B не перерисован.
	r.Reconcile([]dto.EquipmentDTO{
		inUse("b", "38.6", "68.8"),
		inUse("c", "38.7", "68.9"),
	})

	assert.Equal(t, 2, r.DrawnCount())
	assert.Contains(t, surface.markers, "b")
	assert.Contains(t, surface.markers, "c")
	assert.NotContains(t, surface.markers, "a")
	assert.Equal(t, []string{"a"}, surface.removes, "повторная сверка снимает только ушедшую запись")
}

func TestReconcile_NoDuplicatesOnRepeat(t *testing.T) {
	surface := newRecordingSurface()
	r := NewMarkerReconciler(surface)

	subset := []dto.EquipmentDTO{inUse("a", "38.5", "68.7")}
	r.Reconcile(subset)
	r.Reconcile(subset)
	r.Reconcile(subset)

	assert.Equal(t, 1, r.DrawnCount())
	assert.Len(t, surface.adds, 1, "неизменившийся маркер не перерисовывается")
	assert.Empty(t, surface.removes)
}

func TestReconcile_MovedMarkerRedrawn(t *testing.T) {
	surface := newRecordingSurface()
	r := NewMarkerReconciler(surface)

	r.Reconcile([]dto.EquipmentDTO{inUse("a", "38.5", "68.7")})
	r.Reconcile([]dto.EquipmentDTO{inUse("a", "38.9", "68.7")})

	assert.Equal(t, 1, r.DrawnCount())
	assert.Equal(t, []string{"a", "a"}, surface.adds)
	assert.Equal(t, []string{"a"}, surface.removes, "сдвиг перерисовывается через remove+add")
	assert.Equal(t, Point{Lat: 38.9, Lng: 68.7}, surface.markers["a"])
}

func TestReconcile_SkipsUnparsableCoordinates(t *testing.T) {
	surface := newRecordingSurface()
	r := NewMarkerReconciler(surface)

	r.Reconcile([]dto.EquipmentDTO{
		inUse("ok", "38.5", "68.7"),
		inUse("bad", "возле моста", "68.7"),
	})

	assert.Equal(t, 1, r.DrawnCount())
	assert.NotContains(t, surface.markers, "bad")
}

func TestReconcile_FitBoundsAndEmptyState(t *testing.T) {
	surface := newRecordingSurface()
	r := NewMarkerReconciler(surface)

	r.Reconcile([]dto.EquipmentDTO{
		inUse("a", "38.5", "68.7"),
		inUse("b", "38.6", "68.8"),
	})
	assert.Equal(t, 1, surface.fitCalls)
	assert.Len(t, surface.lastPoints, 2)
	require.NotNil(t, surface.empty)
	assert.False(t, *surface.empty)

	// Пустой итог: вьюпорт не трогаем, включаем пустое состояние.
	r.Reconcile(nil)
	assert.Equal(t, 1, surface.fitCalls, "пустая сверка не подгоняет вьюпорт")
	assert.True(t, *surface.empty)
	assert.Equal(t, 0, r.DrawnCount())
}

func TestReconcile_Label(t *testing.T) {
	surface := newRecordingSurface()
	var gotLabel string
	wrapped := &labelCapture{inner: surface, label: &gotLabel}
	r := NewMarkerReconciler(wrapped)

	r.Reconcile([]dto.EquipmentDTO{{
		ID:       "a",
		Number:   "CAM-2",
		Status:   entities.StatusInUse,
		Location: "Мост через Варзоб",
		Lat:      "38.6",
		Lng:      "68.7",
	}})

	assert.Equal(t, "CAM-2 - Мост через Варзоб", gotLabel)
}

type labelCapture struct {
	inner MarkerSurface
	label *string
}

func (c *labelCapture) AddMarker(id string, p Point, label string) {
	*c.label = label
	c.inner.AddMarker(id, p, label)
}
func (c *labelCapture) RemoveMarker(id string)                { c.inner.RemoveMarker(id) }
func (c *labelCapture) FitBounds(points []Point, padding int) { c.inner.FitBounds(points, padding) }
func (c *labelCapture) SetEmpty(empty bool)                   { c.inner.SetEmpty(empty) }

func TestEngineLoader_LoadsOnce(t *testing.T) {
	var loads int
	loader := NewEngineLoader(func() (MarkerSurface, error) {
		loads++
		return newRecordingSurface(), nil
	})

	assert.Equal(t, SurfaceUninitialized, loader.Phase())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			surface, err := loader.Acquire()
			assert.NoError(t, err)
			assert.NotNil(t, surface)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, loads, "движок грузится ровно один раз на процесс")
	assert.Equal(t, SurfaceReady, loader.Phase())
}

func TestEngineLoader_LoadError(t *testing.T) {
	loader := NewEngineLoader(func() (MarkerSurface, error) {
		return nil, errors.New("движок недоступен")
	})

	surface, err := loader.Acquire()
	assert.Error(t, err)
	assert.Nil(t, surface)
	assert.Equal(t, SurfaceUninitialized, loader.Phase())
}
