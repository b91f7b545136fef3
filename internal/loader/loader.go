package loader

import (
	"context"
	"io/fs"
	"sync"
	"time"

	"github.com/shenikar/napmap/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Типы задач загрузки
const (
	TaskPoints   = "points"
	TaskManifest = "manifest"
	TaskBoundary = "boundary"
)

// PointSource - источник строк таблицы точек
type PointSource interface {
	Name() string
	LoadRows(ctx context.Context) ([]models.RawRow, error)
}

// Sink принимает результат каждой задачи сразу после ее завершения
type Sink interface {
	ApplyPoints(ctx context.Context, rows []models.RawRow) error
	ApplyBoundary(ctx context.Context, layer *models.BoundaryLayer) error
}

// Recorder учитывает результаты задач загрузки
type Recorder interface {
	ObserveLoad(kind, status string, duration time.Duration)
}

// Report - итог всех задач одной загрузки
type Report struct {
	Loaded []string
	Failed map[string]error
}

func (r *Report) add(name string, err error, mu *sync.Mutex) {
	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		r.Failed[name] = err
		return
	}
	r.Loaded = append(r.Loaded, name)
}

// Loader запускает независимые задачи загрузки. Задачи завершаются в любом
// порядке, ошибка одной задачи не влияет на остальные.
type Loader struct {
	fsys         fs.FS
	manifestFile string
	points       PointSource
	sink         Sink
	recorder     Recorder
	logger       *logrus.Logger
}

func New(fsys fs.FS, manifestFile string, points PointSource, sink Sink, recorder Recorder, logger *logrus.Logger) *Loader {
	return &Loader{
		fsys:         fsys,
		manifestFile: manifestFile,
		points:       points,
		sink:         sink,
		recorder:     recorder,
		logger:       logger,
	}
}

// Run загружает точки и все слои границ. Возвращает ошибку только при отмене контекста.
func (l *Loader) Run(ctx context.Context) (*Report, error) {
	report := &Report{Failed: make(map[string]error)}
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := l.runTask(gctx, TaskPoints, l.points.Name(), func(ctx context.Context) error {
			rows, err := l.points.LoadRows(ctx)
			if err != nil {
				return err
			}
			return l.sink.ApplyPoints(ctx, rows)
		})
		report.add(l.points.Name(), err, &mu)
		return nil
	})

	g.Go(func() error {
		var manifest *Manifest
		err := l.runTask(gctx, TaskManifest, l.manifestFile, func(context.Context) error {
			m, err := ReadManifest(l.fsys, l.manifestFile)
			manifest = m
			return err
		})
		report.add(l.manifestFile, err, &mu)
		if err != nil {
			return nil
		}

		for _, bf := range manifest.Files() {
			g.Go(func() error {
				err := l.runTask(gctx, TaskBoundary, bf.File, func(ctx context.Context) error {
					layer, err := ReadBoundary(l.fsys, bf)
					if err != nil {
						return err
					}
					return l.sink.ApplyBoundary(ctx, layer)
				})
				report.add(bf.File, err, &mu)
				return nil
			})
		}
		return nil
	})

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (l *Loader) runTask(ctx context.Context, kind, name string, fn func(context.Context) error) error {
	log := l.logger.WithFields(logrus.Fields{
		"component": "loader",
		"task":      kind,
		"source":    name,
	})
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return err
	}
	err := fn(ctx)
	status := "ok"
	if err != nil {
		status = "error"
		log.WithError(err).Error("Load task failed, continuing with partial dataset")
	} else {
		log.WithField("duration", time.Since(start)).Info("Load task completed")
	}
	if l.recorder != nil {
		l.recorder.ObserveLoad(kind, status, time.Since(start))
	}
	return err
}
