/*
 * Options - server options.
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
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
	log "github.com/sirupsen/logrus"
)

// ServerOptions contains the argument passed as environment variables that
// influence the server.
type ServerOptions struct {
	// Flags API host
	ServerHost string `env:"SERVER_HOST" envDefault:"localhost"`
	// Flags API port
	ServerPort uint16 `env:"SERVER_PORT" envDefault:"8888"`
	// Readiness, liveness and metrics host
	HealthHost string `env:"HEALTH_HOST" envDefault:"0.0.0.0"`
	// Readiness, liveness and metrics port
	HealthPort uint16 `env:"HEALTH_PORT" envDefault:"8080"`
	// Read timeout in milliseconds
	ReadTimeout int `env:"READ_TIMEOUT" envDefault:"60000"`
	// Write timeout in milliseconds
	WriteTimeout int `env:"WRITE_TIMEOUT" envDefault:"60000"`
	// File holding the persisted flags
	StateFile string `env:"STATE_FILE" envDefault:"flags.json"`
	// Log level (panic, fatal, error, warn, info, debug, trace)
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Log format (text or json)
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// NewServerOptions reads the options from the environment.
func NewServerOptions() (*ServerOptions, error) {
	opts := &ServerOptions{}
	if err := env.Parse(opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// GetServerAddress returns the flags API address as "host:port".
func (o ServerOptions) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", o.ServerHost, o.ServerPort)
}

// GetHealthAddress returns the address of the liveness and readiness probe as
// "host:port".
func (o ServerOptions) GetHealthAddress() string {
	return fmt.Sprintf("%s:%d", o.HealthHost, o.HealthPort)
}

// GetReadTimeout returns the read timeout.
func (o ServerOptions) GetReadTimeout() time.Duration {
	return time.Duration(o.ReadTimeout) * time.Millisecond
}

// GetWriteTimeout returns the write timeout.
func (o ServerOptions) GetWriteTimeout() time.Duration {
	return time.Duration(o.WriteTimeout) * time.Millisecond
}

// ConfigureLogging applies the log level and format.
func (o ServerOptions) ConfigureLogging() error {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	switch o.LogFormat {
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format \"%s\"", o.LogFormat)
	}
	return nil
}
