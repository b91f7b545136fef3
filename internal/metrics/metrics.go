package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics - метрики приложения для Prometheus
type Metrics struct {
	registry            *prometheus.Registry
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	loadTasks           *prometheus.CounterVec
	loadDuration        *prometheus.HistogramVec
	events              *prometheus.CounterVec
	searches            *prometheus.CounterVec
	records             prometheus.Gauge
	markerGroups        prometheus.Gauge
	publishFailures     prometheus.Counter
}

// New создает новый реестр и регистрирует все метрики
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "napmap",
			Name:      "http_requests_total",
			Help:      "Count of HTTP requests processed",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "napmap",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		loadTasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "napmap",
			Name:      "load_tasks_total",
			Help:      "Dataset load tasks by kind and status",
		}, []string{"kind", "status"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "napmap",
			Name:      "load_task_duration_seconds",
			Help:      "Duration of dataset load tasks",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}, []string{"kind"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "napmap",
			Name:      "map_events_total",
			Help:      "Map events handled by kind",
		}, []string{"event"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "napmap",
			Name:      "search_requests_total",
			Help:      "NAP searches by result",
		}, []string{"result"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "napmap",
			Name:      "point_records",
			Help:      "Number of point records in the loaded dataset",
		}),
		markerGroups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "napmap",
			Name:      "marker_groups",
			Help:      "Number of marker groups (unique coordinates)",
		}),
		publishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "napmap",
			Name:      "draw_publish_failures_total",
			Help:      "Draw batches that could not be published",
		}),
	}

	registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.loadTasks,
		m.loadDuration,
		m.events,
		m.searches,
		m.records,
		m.markerGroups,
		m.publishFailures,
	)
	return m
}

// ObserveHTTPRequest записывает один цикл запрос-ответ
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.httpRequests.With(labels).Inc()
	m.httpRequestDuration.With(labels).Observe(duration.Seconds())
}

// ObserveLoad записывает результат задачи загрузки
func (m *Metrics) ObserveLoad(kind, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.loadTasks.WithLabelValues(kind, status).Inc()
	m.loadDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (m *Metrics) IncEvent(event string) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(event).Inc()
}

func (m *Metrics) IncSearch(result string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(result).Inc()
}

// SetDataset обновляет размеры загруженного набора точек
func (m *Metrics) SetDataset(records, groups int) {
	if m == nil {
		return
	}
	m.records.Set(float64(records))
	m.markerGroups.Set(float64(groups))
}

func (m *Metrics) IncPublishFailure() {
	if m == nil {
		return
	}
	m.publishFailures.Inc()
}

// Middleware учитывает HTTP-запросы по шаблону маршрута
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "metrics unavailable", http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
