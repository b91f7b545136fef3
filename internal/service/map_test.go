package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/shenikar/napmap/internal/loader"
	"github.com/shenikar/napmap/internal/mapstate"
	"github.com/shenikar/napmap/internal/metrics"
	"github.com/shenikar/napmap/internal/models"
	"github.com/shenikar/napmap/internal/service/mocks"
	webhook_mocks "github.com/shenikar/napmap/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestMapService - вспомогательная функция для создания сервиса с моками
func newTestMapService(t *testing.T) (*mapService, *webhook_mocks.MockDrawPublisher, *mocks.MockDatasetLoader) {
	ctrl := gomock.NewController(t)
	publisherMock := webhook_mocks.NewMockDrawPublisher(ctrl)
	loaderMock := mocks.NewMockDatasetLoader(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewMapService(mapstate.New(mapstate.DefaultConfig()), publisherMock, metrics.New(), logger,
		func(loader.Sink) DatasetLoader { return loaderMock })
	return svc.(*mapService), publisherMock, loaderMock
}

func napRows() []models.RawRow {
	return []models.RawRow{
		{"LATITUDE": "14.62", "LONGITUDE": "121.11", "NAP": "NAP-1", "SUBDIVISION": "SubA"},
		{"LATITUDE": "14.62", "LONGITUDE": "121.11", "NAP": "NAP-2", "SUBDIVISION": "SubA"},
		{"LATITUDE": "14.70", "LONGITUDE": "121.20", "NAP": "NAP-3", "SUBDIVISION": "SubB"},
		{"LATITUDE": "", "LONGITUDE": "121.20", "NAP": "NAP-4", "SUBDIVISION": "SubB"},
	}
}

func TestApplyPoints_PublishesLoadBatch(t *testing.T) {
	// Подготовка
	svc, publisherMock, _ := newTestMapService(t)
	ctx := context.Background()

	// Ожидания
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, batch models.DrawBatch) error {
			assert.Equal(t, models.ReasonLoad, batch.Reason)
			assert.Len(t, batch.Markers, 2)
			return nil
		}).
		Times(1)

	// Действие
	err := svc.ApplyPoints(ctx, napRows())

	// Проверки
	require.NoError(t, err)
	snapshot := svc.Snapshot(ctx)
	assert.Len(t, snapshot.Markers, 2)
	assert.Equal(t, []string{"SubA", "SubB"}, snapshot.Options.Subdivisions)
}

func TestApplyPoints_ParseError(t *testing.T) {
	svc, publisherMock, _ := newTestMapService(t)

	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := svc.ApplyPoints(context.Background(), []models.RawRow{{"LATITUDE": "1"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, mapstate.ErrParse))
}

func TestApplyPoints_PublishFailureIsNotFatal(t *testing.T) {
	svc, publisherMock, _ := newTestMapService(t)

	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	err := svc.ApplyPoints(context.Background(), napRows())

	require.NoError(t, err)
}

func TestActivateGroup(t *testing.T) {
	svc, publisherMock, _ := newTestMapService(t)
	ctx := context.Background()
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	require.NoError(t, svc.ApplyPoints(ctx, napRows()))
	groups := svc.state.Groups()

	expanded, err := svc.ActivateGroup(ctx, groups[0].ID)
	require.NoError(t, err)
	assert.Len(t, expanded.Markers, 2)

	single, err := svc.ActivateGroup(ctx, groups[1].ID)
	require.NoError(t, err)
	assert.Empty(t, single.Markers)

	_, err = svc.ActivateGroup(ctx, uuid.New())
	assert.True(t, errors.Is(err, mapstate.ErrGroupNotFound))
}

func TestActivateGroup_SingleMemberDoesNotPublish(t *testing.T) {
	svc, publisherMock, _ := newTestMapService(t)
	ctx := context.Background()
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	require.NoError(t, svc.ApplyPoints(ctx, napRows()))

	_, err := svc.ActivateGroup(ctx, svc.state.Groups()[1].ID)

	require.NoError(t, err)
}

func TestChangeSubdivision_ResetsNAP(t *testing.T) {
	svc, publisherMock, _ := newTestMapService(t)
	ctx := context.Background()
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	require.NoError(t, svc.ApplyPoints(ctx, napRows()))
	_, err := svc.ChangeNAP(ctx, "NAP-1")
	require.NoError(t, err)

	batch, err := svc.ChangeSubdivision(ctx, "SubB")

	require.NoError(t, err)
	assert.Equal(t, []string{"NAP-3"}, batch.Options.NAPs)
	state, opts := svc.Filters(ctx)
	assert.Equal(t, models.FilterAll, state.NAP)
	assert.Equal(t, "SubB", state.Subdivision)
	assert.Equal(t, []string{"NAP-3"}, opts.NAPs)
}

func TestChangeFilter_BeforeLoad(t *testing.T) {
	svc, _, _ := newTestMapService(t)

	_, err := svc.ChangeFilter(context.Background(), models.DefaultFilterState())

	assert.True(t, errors.Is(err, mapstate.ErrPointsNotLoaded))
}

func TestSearch(t *testing.T) {
	svc, publisherMock, _ := newTestMapService(t)
	ctx := context.Background()
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	require.NoError(t, svc.ApplyPoints(ctx, napRows()))

	// Найденный NAP публикует пакет подсветки
	publisherMock.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch models.DrawBatch) error {
			assert.Equal(t, models.ReasonLocate, batch.Reason)
			return nil
		}).
		Times(1)
	found, err := svc.Search(ctx, " nap-3 ")
	require.NoError(t, err)
	assert.True(t, found.Found)

	missing, err := svc.Search(ctx, "NAP-9")
	require.NoError(t, err)
	assert.False(t, missing.Found)

	_, err = svc.Search(ctx, "")
	assert.True(t, errors.Is(err, mapstate.ErrEmptyQuery))
}

func TestBoundaries(t *testing.T) {
	svc, publisherMock, _ := newTestMapService(t)
	ctx := context.Background()
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	layer := &models.BoundaryLayer{
		Name:     "sub one",
		Kind:     models.BoundarySubdivision,
		Style:    models.StyleFor(models.BoundarySubdivision),
		Visible:  true,
		Features: geojson.NewFeatureCollection(),
	}

	require.NoError(t, svc.ApplyBoundary(ctx, layer))
	batch, err := svc.ToggleBoundary(ctx, "sub one", false)
	require.NoError(t, err)
	assert.False(t, batch.Boundaries[0].Visible)

	list := svc.Boundaries(ctx)
	require.Len(t, list, 1)
	assert.False(t, list[0].Visible)

	got, err := svc.Boundary(ctx, "sub one")
	require.NoError(t, err)
	assert.Same(t, layer, got)

	_, err = svc.Boundary(ctx, "nope")
	assert.True(t, errors.Is(err, mapstate.ErrBoundaryNotFound))
	_, err = svc.ToggleBoundary(ctx, "nope", true)
	assert.True(t, errors.Is(err, mapstate.ErrBoundaryNotFound))
}

func TestReload(t *testing.T) {
	svc, publisherMock, loaderMock := newTestMapService(t)
	ctx := context.Background()
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	require.NoError(t, svc.ApplyPoints(ctx, napRows()))

	loaderMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*loader.Report, error) {
			// Состояние уже сброшено к моменту запуска загрузки
			assert.False(t, svc.state.PointsLoaded())
			return &loader.Report{Loaded: []string{"points.csv"}}, svc.ApplyPoints(ctx, napRows())
		}).
		Times(1)

	require.NoError(t, svc.Reload(ctx))
	assert.True(t, svc.state.PointsLoaded())
}

func TestReload_Error(t *testing.T) {
	svc, _, loaderMock := newTestMapService(t)
	ctx := context.Background()

	loaderMock.EXPECT().Run(gomock.Any()).Return(&loader.Report{}, context.Canceled).Times(1)

	err := svc.Reload(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestReload_CancelledContextKeepsDataset(t *testing.T) {
	svc, publisherMock, loaderMock := newTestMapService(t)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	require.NoError(t, svc.ApplyPoints(context.Background(), napRows()))
	before := svc.Snapshot(context.Background())
	require.Len(t, before.Markers, 2)

	loaderMock.EXPECT().Run(gomock.Any()).Times(0) // Загрузка не должна запускаться

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := svc.Reload(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, svc.state.PointsLoaded())
	assert.Len(t, svc.Snapshot(context.Background()).Markers, 2)

	_, err = svc.ChangeNAP(context.Background(), "NAP-3")
	assert.NoError(t, err)
}

func TestReload_RequestCancelDoesNotInterruptLoad(t *testing.T) {
	svc, publisherMock, loaderMock := newTestMapService(t)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	require.NoError(t, svc.ApplyPoints(context.Background(), napRows()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loaderMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(loadCtx context.Context) (*loader.Report, error) {
			// Клиент отключился посреди загрузки
			cancel()
			assert.NoError(t, loadCtx.Err())
			return &loader.Report{Loaded: []string{"points.csv"}}, svc.ApplyPoints(loadCtx, napRows())
		}).
		Times(1)

	require.NoError(t, svc.Reload(ctx))
	assert.True(t, svc.state.PointsLoaded())
	assert.Len(t, svc.Snapshot(context.Background()).Markers, 2)
}

func TestReload_Unavailable(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := NewMapService(mapstate.New(mapstate.DefaultConfig()), nil, nil, logger, nil)

	err := svc.Reload(context.Background())

	assert.ErrorIs(t, err, ErrReloadUnavailable)
}
