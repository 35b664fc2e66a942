package metrics

import (
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	requestDuration prom.Histogram
	requestResults  *prom.CounterVec
	cloneDuration   *prom.HistogramVec
	modelDuration   *prom.HistogramVec
	fallbacks       *prom.CounterVec
	degradedStages  *prom.CounterVec
	cacheResults    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.requestDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "readmegen",
			Name:      "request_duration_seconds",
			Help:      "Total duration of README generation requests",
			Buckets:   prom.DefBuckets,
		})
		pr.requestResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "readmegen",
			Name:      "request_results_total",
			Help:      "Generation request counts by outcome",
		}, []string{"result"})
		pr.cloneDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "readmegen",
			Name:      "clone_duration_seconds",
			Help:      "Duration of repository clone operations",
			Buckets:   prom.DefBuckets,
		}, []string{"result"})
		pr.modelDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "readmegen",
			Name:      "model_call_duration_seconds",
			Help:      "Duration of hosted model calls",
			Buckets:   prom.DefBuckets,
		}, []string{"model", "result"})
		pr.fallbacks = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "readmegen",
			Name:      "fallbacks_total",
			Help:      "Fallback README syntheses by trigger reason",
		}, []string{"reason"})
		pr.degradedStages = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "readmegen",
			Name:      "degraded_stages_total",
			Help:      "Analysis stages that degraded to a substitute value",
		}, []string{"stage"})
		pr.cacheResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "readmegen",
			Name:      "cache_results_total",
			Help:      "Cache lookups by hit/miss",
		}, []string{"result"})
		reg.MustRegister(pr.requestDuration, pr.requestResults, pr.cloneDuration, pr.modelDuration, pr.fallbacks, pr.degradedStages, pr.cacheResults)
	})
	return pr
}

// HTTPHandler returns an http.Handler serving Prometheus metrics for the registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	if reg == nil {
		reg = prom.DefaultRegisterer.(*prom.Registry)
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (p *PrometheusRecorder) ObserveRequestDuration(d time.Duration) {
	if p == nil || p.requestDuration == nil {
		return
	}
	p.requestDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRequestResult(result ResultLabel) {
	if p == nil || p.requestResults == nil {
		return
	}
	p.requestResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveCloneDuration(d time.Duration, success bool) {
	if p == nil || p.cloneDuration == nil {
		return
	}
	p.cloneDuration.WithLabelValues(resultString(success)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveModelCallDuration(model string, d time.Duration, success bool) {
	if p == nil || p.modelDuration == nil {
		return
	}
	p.modelDuration.WithLabelValues(model, resultString(success)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncFallback(reason string) {
	if p == nil || p.fallbacks == nil {
		return
	}
	p.fallbacks.WithLabelValues(reason).Inc()
}

func (p *PrometheusRecorder) IncDegradedStage(stage string) {
	if p == nil || p.degradedStages == nil {
		return
	}
	p.degradedStages.WithLabelValues(stage).Inc()
}

func (p *PrometheusRecorder) IncCacheResult(hit bool) {
	if p == nil || p.cacheResults == nil {
		return
	}
	res := "miss"
	if hit {
		res = "hit"
	}
	p.cacheResults.WithLabelValues(res).Inc()
}

func resultString(success bool) string {
	if success {
		return "success"
	}
	return "failed"
}
