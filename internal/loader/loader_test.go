package loader

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/shenikar/napmap/internal/mapstate"
	"github.com/shenikar/napmap/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const polygonFC = `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"x"},
"geometry":{"type":"Polygon","coordinates":[[[121.1,14.6],[121.2,14.6],[121.2,14.7],[121.1,14.6]]]}}]}`

const pointsCSV = "LATITUDE,LONGITUDE,NAP,SUBDIVISION,STREET,BARANGAY,CITY\n" +
	"14.62,121.11,NAP-1,SubA,Main St,Mayamot,Antipolo\n" +
	"14.62,121.11,NAP-2,SubA,Main St,Mayamot,Antipolo\n" +
	",121.11,NAP-3,SubB,,,\n"

type fakeSink struct {
	mu         sync.Mutex
	rows       []models.RawRow
	boundaries []string
	failPoints error
}

func (s *fakeSink) ApplyPoints(_ context.Context, rows []models.RawRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPoints != nil {
		return s.failPoints
	}
	s.rows = rows
	return nil
}

func (s *fakeSink) ApplyBoundary(_ context.Context, layer *models.BoundaryLayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boundaries = append(s.boundaries, layer.Name)
	return nil
}

type fakeRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *fakeRecorder) ObserveLoad(kind, status string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[kind+":"+status]++
}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestParsePoints(t *testing.T) {
	rows, err := ParsePoints(strings.NewReader("\ufeffLATITUDE,LONGITUDE,NAP,SUBDIVISION\n14.62,121.11,N1\n\n14.63,121.12,N2,SubB\n"))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "14.62", rows[0]["LATITUDE"])
	assert.Equal(t, "", rows[0]["SUBDIVISION"])
	assert.Equal(t, "SubB", rows[1]["SUBDIVISION"])
}

func TestParsePoints_Empty(t *testing.T) {
	rows, err := ParsePoints(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParsePoints_Malformed(t *testing.T) {
	_, err := ParsePoints(strings.NewReader("LATITUDE,LONGITUDE\n14\"62,121.11\n"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, mapstate.ErrParse))
}

func TestLayerName(t *testing.T) {
	assert.Equal(t, "barangay mayamot", LayerName("barangay_mayamot.geojson"))
	assert.Equal(t, "subdivision1", LayerName("subs/subdivision1.geojson"))
}

func TestReadBoundary_Variants(t *testing.T) {
	fsys := fstest.MapFS{
		"fc.geojson":      {Data: []byte(polygonFC)},
		"feature.geojson": {Data: []byte(`{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[121.1,14.6]}}`)},
		"geom.geojson":    {Data: []byte(`{"type":"MultiPolygon","coordinates":[[[[121.1,14.6],[121.2,14.6],[121.2,14.7],[121.1,14.6]]]]}`)},
		"bad.geojson":     {Data: []byte(`{"features":[]}`)},
	}

	for _, name := range []string{"fc.geojson", "feature.geojson", "geom.geojson"} {
		layer, err := ReadBoundary(fsys, BoundaryFile{File: name, Kind: models.BoundarySubdivision})
		require.NoError(t, err, name)
		assert.Len(t, layer.Features.Features, 1, name)
		assert.True(t, layer.Visible)
		assert.Equal(t, "green", layer.Style.Color)
	}

	_, err := ReadBoundary(fsys, BoundaryFile{File: "bad.geojson"})
	assert.Error(t, err)
	_, err = ReadBoundary(fsys, BoundaryFile{File: "missing.geojson"})
	assert.Error(t, err)
}

func TestLoader_Run_AllTasks(t *testing.T) {
	fsys := fstest.MapFS{
		"index.json":               {Data: []byte(`{"barangays":["barangay_mayamot.geojson"],"subdivisions":["sub_one.geojson","sub_two.geojson"]}`)},
		"barangay_mayamot.geojson": {Data: []byte(polygonFC)},
		"sub_one.geojson":          {Data: []byte(polygonFC)},
		"sub_two.geojson":          {Data: []byte(polygonFC)},
		"points.csv":               {Data: []byte(pointsCSV)},
	}
	sink := &fakeSink{}
	rec := &fakeRecorder{counts: map[string]int{}}
	l := New(fsys, "index.json", NewCSVPointSource(fsys, "points.csv"), sink, rec, silentLogger())

	report, err := l.Run(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Failed)
	assert.Len(t, report.Loaded, 5)
	assert.Len(t, sink.rows, 3)
	sort.Strings(sink.boundaries)
	assert.Equal(t, []string{"barangay mayamot", "sub one", "sub two"}, sink.boundaries)
	assert.Equal(t, 3, rec.counts["boundary:ok"])
	assert.Equal(t, 1, rec.counts["points:ok"])
}

func TestLoader_Run_PartialFailure(t *testing.T) {
	fsys := fstest.MapFS{
		"index.json":      {Data: []byte(`{"barangays":["missing.geojson"],"subdivisions":["sub_one.geojson"]}`)},
		"sub_one.geojson": {Data: []byte(polygonFC)},
	}
	sink := &fakeSink{}
	l := New(fsys, "index.json", NewCSVPointSource(fsys, "points.csv"), sink, nil, silentLogger())

	report, err := l.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, report.Failed, "missing.geojson")
	assert.Contains(t, report.Failed, "points.csv")
	assert.Equal(t, []string{"sub one"}, sink.boundaries)
}

func TestLoader_Run_ManifestMissing(t *testing.T) {
	fsys := fstest.MapFS{"points.csv": {Data: []byte(pointsCSV)}}
	sink := &fakeSink{}
	l := New(fsys, "index.json", NewCSVPointSource(fsys, "points.csv"), sink, nil, silentLogger())

	report, err := l.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, report.Failed, "index.json")
	assert.Len(t, sink.rows, 3)
	assert.Empty(t, sink.boundaries)
}

func TestLoader_Run_SinkError(t *testing.T) {
	fsys := fstest.MapFS{
		"index.json": {Data: []byte(`{}`)},
		"points.csv": {Data: []byte(pointsCSV)},
	}
	sink := &fakeSink{failPoints: errors.New("boom")}
	l := New(fsys, "index.json", NewCSVPointSource(fsys, "points.csv"), sink, nil, silentLogger())

	report, err := l.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, report.Failed, "points.csv")
	assert.Contains(t, report.Loaded, "index.json")
}

func TestLoader_Run_Cancelled(t *testing.T) {
	fsys := fstest.MapFS{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := New(fsys, "index.json", NewCSVPointSource(fsys, "points.csv"), &fakeSink{}, nil, silentLogger())

	_, err := l.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
