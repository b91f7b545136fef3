package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/napmap/internal/loader"
	"github.com/shenikar/napmap/internal/mapstate"
	"github.com/shenikar/napmap/internal/metrics"
	"github.com/shenikar/napmap/internal/models"
	"github.com/shenikar/napmap/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ErrReloadUnavailable - загрузчик данных не подключен
var ErrReloadUnavailable = errors.New("dataset loader is not attached")

//go:generate mockgen -source=map.go -destination=mocks/map_mock.go -package=mocks

// MapService определяет контракт событий карты. Реализация обрабатывает
// события строго по одному, как однопоточный цикл событий.
type MapService interface {
	ApplyPoints(ctx context.Context, rows []models.RawRow) error
	ApplyBoundary(ctx context.Context, layer *models.BoundaryLayer) error
	Snapshot(ctx context.Context) models.DrawBatch
	ActivateGroup(ctx context.Context, id uuid.UUID) (models.DrawBatch, error)
	ChangeFilter(ctx context.Context, state models.FilterState) (models.DrawBatch, error)
	ChangeSubdivision(ctx context.Context, subdivision string) (models.DrawBatch, error)
	ChangeNAP(ctx context.Context, nap string) (models.DrawBatch, error)
	Filters(ctx context.Context) (models.FilterState, models.FilterOptions)
	Search(ctx context.Context, query string) (models.LocateResult, error)
	Boundaries(ctx context.Context) []models.BoundaryCommand
	Boundary(ctx context.Context, name string) (*models.BoundaryLayer, error)
	ToggleBoundary(ctx context.Context, name string, visible bool) (models.DrawBatch, error)
	Reload(ctx context.Context) error
}

// DatasetLoader перезагружает все наборы данных
type DatasetLoader interface {
	Run(ctx context.Context) (*loader.Report, error)
}

// LoaderFactory создает загрузчик, передающий результаты в сервис
type LoaderFactory func(sink loader.Sink) DatasetLoader

type mapService struct {
	mu        sync.Mutex
	state     *mapstate.MapState
	publisher webhook.DrawPublisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger

	reloadMu sync.Mutex
	loader   DatasetLoader
}

// NewMapService создает сервис поверх пустого состояния карты.
// newLoader может быть nil, тогда Reload недоступен.
func NewMapService(state *mapstate.MapState, publisher webhook.DrawPublisher, m *metrics.Metrics, logger *logrus.Logger, newLoader LoaderFactory) MapService {
	s := &mapService{
		state:     state,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
	if newLoader != nil {
		s.loader = newLoader(s)
	}
	return s
}

// ApplyPoints разбирает строки и перестраивает группы маркеров
func (s *mapService) ApplyPoints(ctx context.Context, rows []models.RawRow) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "ApplyPoints",
		"rows":    len(rows),
	})

	store, err := mapstate.LoadRecords(rows)
	if err != nil {
		log.WithError(err).Error("Failed to parse points dataset")
		return fmt.Errorf("service: could not load points: %w", err)
	}
	for _, idx := range store.Dropped() {
		log.WithField("row", idx).Debug("Row dropped: missing or invalid coordinates")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := s.state.OnPointsLoaded(store)
	groups := len(s.state.Groups())
	s.metrics.SetDataset(store.Len(), groups)
	s.metrics.IncEvent("points_loaded")
	s.publish(ctx, batch)

	log.WithFields(logrus.Fields{
		"records": store.Len(),
		"dropped": len(store.Dropped()),
		"groups":  groups,
	}).Info("Points dataset applied")
	return nil
}

// ApplyBoundary добавляет загруженный слой границ
func (s *mapService) ApplyBoundary(ctx context.Context, layer *models.BoundaryLayer) error {
	features := 0
	if layer.Features != nil {
		features = len(layer.Features.Features)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	batch := s.state.OnBoundaryLoaded(layer)
	s.metrics.IncEvent("boundary_loaded")
	s.publish(ctx, batch)

	s.logger.WithFields(logrus.Fields{
		"service":  "map",
		"method":   "ApplyBoundary",
		"layer":    layer.Name,
		"kind":     layer.Kind,
		"features": features,
	}).Info("Boundary layer applied")
	return nil
}

// Snapshot возвращает текущее состояние отображения
func (s *mapService) Snapshot(_ context.Context) models.DrawBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// ActivateGroup переключает раскрытие группы маркеров
func (s *mapService) ActivateGroup(ctx context.Context, id uuid.UUID) (models.DrawBatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "map",
		"method":   "ActivateGroup",
		"group_id": id,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.state.OnGroupActivate(id)
	if err != nil {
		log.WithError(err).Warn("Failed to activate marker group")
		return models.DrawBatch{}, fmt.Errorf("service: could not activate group: %w", err)
	}
	s.metrics.IncEvent("group_activate")
	if len(batch.Markers) > 0 {
		s.publish(ctx, batch)
	}

	log.WithField("markers", len(batch.Markers)).Debug("Marker group activated")
	return batch, nil
}

// ChangeFilter применяет полное состояние фильтров
func (s *mapService) ChangeFilter(ctx context.Context, state models.FilterState) (models.DrawBatch, error) {
	return s.filterEvent(ctx, "ChangeFilter", func() (models.DrawBatch, error) {
		return s.state.OnFilterChange(state)
	})
}

// ChangeSubdivision меняет фильтр subdivision и список NAP
func (s *mapService) ChangeSubdivision(ctx context.Context, subdivision string) (models.DrawBatch, error) {
	return s.filterEvent(ctx, "ChangeSubdivision", func() (models.DrawBatch, error) {
		return s.state.OnSubdivisionChange(subdivision)
	})
}

// ChangeNAP меняет фильтр NAP
func (s *mapService) ChangeNAP(ctx context.Context, nap string) (models.DrawBatch, error) {
	return s.filterEvent(ctx, "ChangeNAP", func() (models.DrawBatch, error) {
		return s.state.OnNAPChange(nap)
	})
}

func (s *mapService) filterEvent(ctx context.Context, method string, apply func() (models.DrawBatch, error)) (models.DrawBatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  method,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := apply()
	if err != nil {
		log.WithError(err).Warn("Failed to apply filter change")
		return models.DrawBatch{}, fmt.Errorf("service: could not change filter: %w", err)
	}
	s.metrics.IncEvent("filter_change")
	s.publish(ctx, batch)

	state := s.state.FilterState()
	log.WithFields(logrus.Fields{
		"subdivision": state.Subdivision,
		"nap":         state.NAP,
	}).Info("Filter applied")
	return batch, nil
}

// Filters возвращает выбор фильтров и списки значений
func (s *mapService) Filters(_ context.Context) (models.FilterState, models.FilterOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FilterState(), s.state.Options()
}

// Search ищет NAP. Отсутствие совпадения возвращается как Found == false.
func (s *mapService) Search(ctx context.Context, query string) (models.LocateResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "Search",
		"query":   query,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.state.OnSearch(query)
	if err != nil {
		s.metrics.IncSearch("invalid")
		log.WithError(err).Warn("Invalid search query")
		return models.LocateResult{}, fmt.Errorf("service: could not search: %w", err)
	}
	if !result.Found {
		s.metrics.IncSearch("not_found")
		log.Info("NAP not found")
		return result, nil
	}

	s.metrics.IncSearch("found")
	s.publish(ctx, *result.Batch)
	log.WithField("group_id", result.GroupID).Info("NAP located")
	return result, nil
}

// Boundaries возвращает состояние всех слоев границ
func (s *mapService) Boundaries(_ context.Context) []models.BoundaryCommand {
	s.mu.Lock()
	defer s.mu.Unlock()

	layers := s.state.Boundaries()
	out := make([]models.BoundaryCommand, 0, len(layers))
	for _, layer := range layers {
		out = append(out, models.BoundaryCommand{
			Name:    layer.Name,
			Kind:    layer.Kind,
			Style:   layer.Style,
			Visible: layer.Visible,
		})
	}
	return out
}

// Boundary возвращает слой границ по имени
func (s *mapService) Boundary(_ context.Context, name string) (*models.BoundaryLayer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	layer, ok := s.state.Boundary(name)
	if !ok {
		return nil, fmt.Errorf("service: %w: %s", mapstate.ErrBoundaryNotFound, name)
	}
	return layer, nil
}

// ToggleBoundary показывает или скрывает слой границ
func (s *mapService) ToggleBoundary(ctx context.Context, name string, visible bool) (models.DrawBatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "ToggleBoundary",
		"layer":   name,
		"visible": visible,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.state.OnBoundaryToggle(name, visible)
	if err != nil {
		log.WithError(err).Warn("Failed to toggle boundary layer")
		return models.DrawBatch{}, fmt.Errorf("service: could not toggle boundary: %w", err)
	}
	s.metrics.IncEvent("boundary_toggle")
	s.publish(ctx, batch)
	log.Info("Boundary layer toggled")
	return batch, nil
}

// Reload сбрасывает состояние и заново запускает все задачи загрузки
func (s *mapService) Reload(ctx context.Context) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "map",
		"method":  "Reload",
	})
	if s.loader == nil {
		return ErrReloadUnavailable
	}
	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("Reload cancelled before start, dataset kept")
		return fmt.Errorf("service: could not reload datasets: %w", err)
	}

	s.mu.Lock()
	s.state.Reset()
	s.metrics.SetDataset(0, 0)
	s.mu.Unlock()

	// После сброса загрузка доводится до конца даже при отмене запроса
	report, err := s.loader.Run(context.WithoutCancel(ctx))
	if err != nil {
		log.WithError(err).Error("Reload interrupted")
		return fmt.Errorf("service: could not reload datasets: %w", err)
	}
	log.WithFields(logrus.Fields{
		"loaded": len(report.Loaded),
		"failed": len(report.Failed),
	}).Info("Datasets reloaded")
	return nil
}

// publish отправляет пакет в MapView. Ошибка публикации не прерывает событие.
func (s *mapService) publish(ctx context.Context, batch models.DrawBatch) {
	if err := s.publisher.Publish(ctx, batch); err != nil {
		s.metrics.IncPublishFailure()
		s.logger.WithError(err).WithField("reason", batch.Reason).Error("Failed to publish draw batch")
	}
}
