package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPServerMetrics is the API server's metric set on its own registry, so
// only metrics this process owns are exported.
type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	resumeUploadsTotal   *prometheus.CounterVec
	sessionsStartedTotal *prometheus.CounterVec
	questionsTotal       *prometheus.CounterVec
	answerScores         *prometheus.HistogramVec
	reportsTotal         *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vintervu",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vintervu",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "vintervu",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	resumeUploadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vintervu",
			Subsystem: "resume",
			Name:      "uploads_total",
			Help:      "Total resume uploads by outcome.",
		},
		[]string{"service", "status"},
	)
	sessionsStartedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vintervu",
			Subsystem: "interview",
			Name:      "sessions_started_total",
			Help:      "Total interview sessions started.",
		},
		[]string{"service"},
	)
	questionsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vintervu",
			Subsystem: "interview",
			Name:      "questions_total",
			Help:      "Total questions issued by origin.",
		},
		[]string{"service", "origin"},
	)
	answerScores := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vintervu",
			Subsystem: "interview",
			Name:      "answer_scores",
			Help:      "Distribution of per-answer scores.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		[]string{"service"},
	)
	reportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vintervu",
			Subsystem: "interview",
			Name:      "reports_total",
			Help:      "Total interviews ended with a report.",
		},
		[]string{"service"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		resumeUploadsTotal,
		sessionsStartedTotal,
		questionsTotal,
		answerScores,
		reportsTotal,
	)

	return &HTTPServerMetrics{
		registry:             registry,
		requestTotal:         requestTotal,
		requestDuration:      requestDuration,
		requestInFlight:      requestInFlight,
		resumeUploadsTotal:   resumeUploadsTotal,
		sessionsStartedTotal: sessionsStartedTotal,
		questionsTotal:       questionsTotal,
		answerScores:         answerScores,
		reportsTotal:         reportsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			r.URL.Path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

func (m *HTTPServerMetrics) RecordResumeUpload(service, status string) {
	m.resumeUploadsTotal.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordSessionStart(service string) {
	m.sessionsStartedTotal.WithLabelValues(service).Inc()
}

func (m *HTTPServerMetrics) RecordQuestion(service, origin string) {
	m.questionsTotal.WithLabelValues(service, origin).Inc()
}

func (m *HTTPServerMetrics) RecordAnswerScore(service string, score int) {
	m.answerScores.WithLabelValues(service).Observe(float64(score))
}

func (m *HTTPServerMetrics) RecordReport(service string) {
	m.reportsTotal.WithLabelValues(service).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("response writer does not support hijacking")
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	if pusher, ok := w.ResponseWriter.(http.Pusher); ok {
		return pusher.Push(target, opts)
	}
	return http.ErrNotSupported
}
