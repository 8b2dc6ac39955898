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
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"boolbox/internal/flags"
	"boolbox/internal/metrics"
	"boolbox/internal/server"

	log "github.com/sirupsen/logrus"
)

var (
	// notify requires the SIGINT and SIGTERM signals to be sent to the caller.
	notify = func(sig chan os.Signal) {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	}
)

// healthStatus is the interface used by waitForSignal.
type healthStatus interface {
	SetHealthy(bool)
	SetReady(bool)
}

// waitForSignal waits for a SIGTERM or a SIGINT and then clears the status
// flags.
func waitForSignal(status healthStatus) {
	exitSignal := make(chan os.Signal, 1)
	notify(exitSignal)
	signal := <-exitSignal

	log.Infof("Signal %s received. Shutting down the flag server.", signal.String())
	status.SetReady(false)
	status.SetHealthy(false)
}

// main function
func main() {
	// Read server options
	serverOptions, err := server.NewServerOptions()
	if err != nil {
		log.Fatal(err)
	}
	if err := serverOptions.ConfigureLogging(); err != nil {
		log.Fatal(err)
	}

	// Load the flags
	m := metrics.GetOpenMetricsInstance()
	registry := flags.NewRegistry(flags.NewFileStore(serverOptions.StateFile), m)
	if err := registry.Load(context.Background()); err != nil {
		log.Fatal(err)
	}

	// Start health server
	log.Infof("Starting liveness and readiness server on %s", serverOptions.GetHealthAddress())
	status := &server.Status{}
	metricsSocket := server.NewMetricsSocket(status, m.Handler())
	go metricsSocket.Start(nil, *serverOptions)

	// Start the flags API
	srv := server.NewAPIServer(*serverOptions, server.NewFlagsAPI(registry).Router())
	startedChan := make(chan struct{}, 1)
	if err := server.StartAPIServer(srv, startedChan); err != nil {
		log.Fatal(err)
	}

	// Wait for the HTTP server to start and then set the healthy and ready flags
	<-startedChan
	status.SetHealthy(true)
	status.SetReady(true)

	// Loops until a signal tells us to exit
	waitForSignal(status)
	server.ShutdownAPIServer(srv)
	if err := registry.Save(context.Background()); err != nil {
		log.Error(err)
	}
}
