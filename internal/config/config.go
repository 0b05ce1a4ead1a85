// Package config provides configuration defaults for the final-assessment web server.
package config

import (
	"net"
	"strconv"
	"time"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// Web server defaults
	DefaultListenPort        = 3000
	DefaultDisplayHost       = "localhost"
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
)

// MainConfig holds the main configuration
type MainConfig struct {
	// Web interface settings
	Web WebConfig `json:"web"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenHost        string        `json:"listen_host"` // empty binds all interfaces
	ListenPort        int           `json:"listen_port"`
	DisplayHost       string        `json:"display_host"` // host shown in the startup line
	ReadHeaderTimeout time.Duration `json:"read_header_timeout"`
	ShutdownTimeout   time.Duration `json:"shutdown_timeout"`
}

// ListenAddr returns the host:port the listener binds to
func (wc *WebConfig) ListenAddr() string {
	return net.JoinHostPort(wc.ListenHost, strconv.Itoa(wc.ListenPort))
}

// NewDefaultConfig returns the fixed configuration the server runs with
func NewDefaultConfig() *MainConfig {
	return &MainConfig{
		AppVersion: AppVersion,
		Web: WebConfig{
			ListenPort:        DefaultListenPort,
			DisplayHost:       DefaultDisplayHost,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
			ShutdownTimeout:   DefaultShutdownTimeout,
		},
	}
}
