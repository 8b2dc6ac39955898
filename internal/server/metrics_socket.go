/*
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
package server

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

// MetricsSocket represents the socket that serves the Open Metrics, as well as
// the liveness and readiness probes.
type MetricsSocket struct {
	status  *Status
	metrics http.Handler
}

// NewMetricsSocket initializes a new MetricsSocket instance.
func NewMetricsSocket(status *Status, metrics http.Handler) *MetricsSocket {
	return &MetricsSocket{
		status:  status,
		metrics: metrics,
	}
}

// writeProbe writes 200/OK if ok is true and 503/Service Unavailable
// otherwise.
func writeProbe(w http.ResponseWriter, probe string, ok bool) {
	var err error
	if ok {
		_, err = w.Write([]byte(http.StatusText(http.StatusOK)))
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, err = w.Write([]byte(http.StatusText(http.StatusServiceUnavailable)))
	}
	if err != nil {
		log.Warnf("Could not answer to a %s probe: %s", probe, err.Error())
	}
}

// livenessHandler checks if the server is healthy.
func (s MetricsSocket) livenessHandler(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, "liveness", s.status.IsHealthy())
}

// readinessHandler checks if the server is ready.
func (s MetricsSocket) readinessHandler(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, "readiness", s.status.IsReady())
}

// healthzHandler checks if the server is live AND ready.
func (s MetricsSocket) healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeProbe(w, "healthz", s.status.IsHealthy() && s.status.IsReady())
}

// Router returns the routes served by the socket.
func (s *MetricsSocket) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/", s.readinessHandler)
	r.Get("/ready", s.readinessHandler)
	r.Get("/health", s.livenessHandler)
	r.Get("/healthz", s.healthzHandler)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

// Start starts the exposed endpoints server.
func (s *MetricsSocket) Start(startedChan chan struct{}, options ServerOptions) {
	address := options.GetHealthAddress()

	srv := &http.Server{
		Addr:         address,
		Handler:      s.Router(),
		ReadTimeout:  options.GetReadTimeout(),
		WriteTimeout: options.GetWriteTimeout(),
	}

	l, err := net.Listen("tcp", address)
	if err != nil {
		log.Fatal(err)
	}

	if startedChan != nil {
		startedChan <- struct{}{}
	}

	if err := srv.Serve(l); err != nil {
		log.Fatal(err)
	}
}
