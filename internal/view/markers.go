package view

import (
	"sync"

	"inventory-system/internal/dto"
)

// FitPadding - фиксированный отступ вьюпорта при подгонке под маркеры.
const FitPadding = 40

// Point - координата маркера в порядке lat, lng.
type Point struct {
	Lat float64
	Lng float64
}

// MarkerSurface - порт поверхности отрисовки. Ядру нужны только маркеры
// с подписью, подгонка вьюпорта и сигнал пустого состояния; любая
// картографическая библиотека с таким контрактом взаимозаменяема.
type MarkerSurface interface {
	AddMarker(id string, p Point, label string)
	RemoveMarker(id string)
	FitBounds(points []Point, padding int)
	SetEmpty(empty bool)
}

// SurfacePhase - жизненный цикл движка отрисовки.
type SurfacePhase int

const (
	SurfaceUninitialized SurfacePhase = iota
	SurfaceLoading
	SurfaceReady
)

// EngineLoader грузит движок отрисовки один раз на процесс; последующие
// монтирования переиспользуют уже загруженный движок.
type EngineLoader struct {
	load func() (MarkerSurface, error)

	mu      sync.Mutex
	once    sync.Once
	phase   SurfacePhase
	surface MarkerSurface
	err     error
}

func NewEngineLoader(load func() (MarkerSurface, error)) *EngineLoader {
	return &EngineLoader{load: load, phase: SurfaceUninitialized}
}

// Acquire возвращает готовую поверхность, при первом вызове загружая движок.
func (l *EngineLoader) Acquire() (MarkerSurface, error) {
	l.once.Do(func() {
		l.mu.Lock()
		l.phase = SurfaceLoading
		l.mu.Unlock()

		surface, err := l.load()

		l.mu.Lock()
		if err != nil {
			l.phase = SurfaceUninitialized
			l.err = err
		} else {
			l.phase = SurfaceReady
			l.surface = surface
		}
		l.mu.Unlock()
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.surface, l.err
}

func (l *EngineLoader) Phase() SurfacePhase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// MarkerReconciler сводит множество нарисованных маркеров с производным
// подмножеством записей. Маркеры ключуются по id записи; после каждой
// сверки на поверхности нет ни одного маркера, чья запись покинула
// подмножество.
type MarkerReconciler struct {
	surface MarkerSurface
	drawn   map[string]Point
}

func NewMarkerReconciler(surface MarkerSurface) *MarkerReconciler {
	return &MarkerReconciler{
		surface: surface,
		drawn:   make(map[string]Point),
	}
}

// Reconcile применяет минимальный набор add/remove и подгоняет вьюпорт.
// Записи с неразборчивыми координатами молча пропускаются. Пустой итог
// оставляет вьюпорт нетронутым и включает пустое состояние поверхности.
func (r *MarkerReconciler) Reconcile(subset []dto.EquipmentDTO) {
	desired := make(map[string]Point, len(subset))
	labels := make(map[string]string, len(subset))
	for _, item := range subset {
		lat, ok := ParseCoordinate(item.Lat)
		if !ok {
			continue
		}
		lng, ok := ParseCoordinate(item.Lng)
		if !ok {
			continue
		}
		desired[item.ID] = Point{Lat: lat, Lng: lng}
		labels[item.ID] = item.Number + " - " + item.Location
	}

	// 1. Убираем маркеры, чьи записи покинули подмножество.
	for id := range r.drawn {
		if _, ok := desired[id]; !ok {
			r.surface.RemoveMarker(id)
			delete(r.drawn, id)
		}
	}

	// 2. Добавляем маркеры новых записей. Сдвинувшиеся координаты
	// перерисовываем через remove+add, чтобы не плодить дубликатов.
	for id, p := range desired {
		if prev, ok := r.drawn[id]; ok {
			if prev == p {
				continue
			}
			r.surface.RemoveMarker(id)
		}
		r.surface.AddMarker(id, p, labels[id])
		r.drawn[id] = p
	}

	// 3. Подгоняем вьюпорт либо включаем пустое состояние.
	if len(r.drawn) == 0 {
		r.surface.SetEmpty(true)
		return
	}
	r.surface.SetEmpty(false)

	points := make([]Point, 0, len(r.drawn))
	for _, p := range r.drawn {
		points = append(points, p)
	}
	r.surface.FitBounds(points, FitPadding)
}

// DrawnCount возвращает число маркеров на поверхности.
func (r *MarkerReconciler) DrawnCount() int {
	return len(r.drawn)
}
