package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ramilsalihar/hospitalqueue/simulator"
)

var (
	// Prometheus metrics (gauges)
	promMetrics = struct {
		queueSize      prometheus.Gauge
		completedCount prometheus.Gauge
		avgWaitMinutes prometheus.Gauge
		maxWaitMinutes prometheus.Gauge
		inService      prometheus.Gauge
		serviceRunning prometheus.Gauge
	}{
		queueSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clinic_queue_size",
			Help: "Number of patients currently waiting",
		}),
		completedCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clinic_completed_patients",
			Help: "Number of patients whose service has completed",
		}),
		avgWaitMinutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clinic_avg_wait_minutes",
			Help: "Average wait time of completed patients in simulated minutes",
		}),
		maxWaitMinutes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clinic_max_wait_minutes",
			Help: "Maximum wait time of completed patients in simulated minutes",
		}),
		inService: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clinic_in_service",
			Help: "Whether a patient is currently being served (0=idle, 1=serving)",
		}),
		serviceRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clinic_service_running",
			Help: "Whether the service loop is running (0=stopped, 1=running)",
		}),
	}
)

func initPrometheusMetrics() {
	prometheus.MustRegister(
		promMetrics.queueSize,
		promMetrics.completedCount,
		promMetrics.avgWaitMinutes,
		promMetrics.maxWaitMinutes,
		promMetrics.inService,
		promMetrics.serviceRunning,
	)
}

func updatePrometheusMetrics(stats simulator.LiveStatistics, running bool) {
	promMetrics.queueSize.Set(float64(stats.QueueSize))
	promMetrics.completedCount.Set(float64(stats.CompletedCount))
	promMetrics.avgWaitMinutes.Set(stats.AvgWaitMinutes)
	promMetrics.maxWaitMinutes.Set(stats.MaxWaitMinutes)

	if stats.CurrentPatientID != 0 {
		promMetrics.inService.Set(1)
	} else {
		promMetrics.inService.Set(0)
	}
	if running {
		promMetrics.serviceRunning.Set(1)
	} else {
		promMetrics.serviceRunning.Set(0)
	}
}
