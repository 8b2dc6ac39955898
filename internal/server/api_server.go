/*
 * APIServer - flags API server lifecycle.
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
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// shutdownTimeout bounds the graceful shutdown of the API server.
const shutdownTimeout = 30 * time.Second

// NewAPIServer creates the HTTP server for the flags API.
func NewAPIServer(options ServerOptions, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              options.GetServerAddress(),
		Handler:           handler,
		ReadTimeout:       options.GetReadTimeout(),
		WriteTimeout:      options.GetWriteTimeout(),
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// StartAPIServer listens on the server address and serves in a new
// goroutine. startedChan, if not nil, receives a value once the listener is
// open.
func StartAPIServer(srv *http.Server, startedChan chan struct{}) error {
	l, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	go func() {
		log.Infof("Starting flags API server on %s", srv.Addr)
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Cannot serve on %s: %v", srv.Addr, err)
		}
	}()
	if startedChan != nil {
		startedChan <- struct{}{}
	}
	return nil
}

// ShutdownAPIServer gracefully shuts the server down.
func ShutdownAPIServer(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Error shutting down the flags API server: %v", err)
	}
}
