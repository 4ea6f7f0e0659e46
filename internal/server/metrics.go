package server

import "github.com/prometheus/client_golang/prometheus"

// Metrics метрики HTTP-слоя
type Metrics struct {
	ResponseTime *prometheus.HistogramVec
	ErrorCount   *prometheus.CounterVec
}

// NewMetrics создает и регистрирует метрики в переданном реестре
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ResponseTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "calc_api_response_time_seconds",
			Help:    "Время обработки HTTP-запроса в секундах",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		ErrorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "calc_api_error_count",
			Help: "Количество ответов с ошибкой",
		}, []string{"method", "path", "status"}),
	}

	reg.MustRegister(m.ResponseTime, m.ErrorCount)
	return m
}
