/*
 * Metrics - OpenMetrics implementation.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics instance
var metrics *OpenMetrics

// OpenMetrics holds the flag server collectors and their registry.
type OpenMetrics struct {
	registry *prometheus.Registry

	flagUpdatesTotal *prometheus.CounterVec
	failedSavesTotal prometheus.Counter
	flags            prometheus.Gauge
}

// GetOpenMetricsInstance returns the current OpenMetrics instance or creates a
// new one if required.
func GetOpenMetricsInstance() *OpenMetrics {
	if metrics == nil {
		metrics = NewOpenMetrics()
	}
	return metrics
}

// NewOpenMetrics creates an instance with its own registry.
func NewOpenMetrics() *OpenMetrics {
	reg := prometheus.NewRegistry()
	m := &OpenMetrics{
		registry: reg,
		flagUpdatesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flag_updates_total",
				Help: "The number of flag updates, by action",
			},
			[]string{"action"},
		),
		failedSavesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "failed_saves_total",
			Help: "The number of times the flag state could not be saved",
		}),
		flags: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flags",
			Help: "The number of flags currently held",
		}),
	}
	reg.MustRegister(m.flagUpdatesTotal)
	reg.MustRegister(m.failedSavesTotal)
	reg.MustRegister(m.flags)
	return m
}

// getLabels builds the label map.
func getLabels(action string) prometheus.Labels {
	return prometheus.Labels{"action": action}
}

func (m *OpenMetrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler exposing this registry.
func (m *OpenMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// IncFlagUpdatesTotal increments the flag_updates_total counter.
func (m *OpenMetrics) IncFlagUpdatesTotal(action string) {
	m.flagUpdatesTotal.With(getLabels(action)).Inc()
}

// IncFailedSavesTotal increments the failed_saves_total counter.
func (m *OpenMetrics) IncFailedSavesTotal() {
	m.failedSavesTotal.Inc()
}

// SetFlags sets the value for the flags gauge.
func (m *OpenMetrics) SetFlags(num int) {
	m.flags.Set(float64(num))
}
