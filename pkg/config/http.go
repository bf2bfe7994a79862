// Package config holds reusable configuration sections shared by the
// application config. Each section validates itself and applies defaults
// for values that are safe to default.
package config

import (
	"fmt"
	"time"
)

const (
	defaultHTTPPort          = 8080
	defaultMaxHeaderBytes    = 1 << 20
	defaultReadTimeout       = 5 * time.Second
	defaultWriteTimeout      = 10 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

type HTTPConfig struct {
	Port           int `koanf:"port"`
	MaxHeaderBytes int `koanf:"maxHeaderBytes"`
	Timeout        struct {
		Read       time.Duration `koanf:"read"`
		Write      time.Duration `koanf:"write"`
		Idle       time.Duration `koanf:"idle"`
		ReadHeader time.Duration `koanf:"readHeader"`
	} `koanf:"timeout"`
}

func (c *HTTPConfig) Validate() error {
	if c.Port == 0 {
		c.Port = defaultHTTPPort
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.Port)
	}
	if c.MaxHeaderBytes == 0 {
		c.MaxHeaderBytes = defaultMaxHeaderBytes
	}
	if c.Timeout.Read == 0 {
		c.Timeout.Read = defaultReadTimeout
	}
	if c.Timeout.Write == 0 {
		c.Timeout.Write = defaultWriteTimeout
	}
	if c.Timeout.Idle == 0 {
		c.Timeout.Idle = defaultIdleTimeout
	}
	if c.Timeout.ReadHeader == 0 {
		c.Timeout.ReadHeader = defaultReadHeaderTimeout
	}
	if c.Timeout.Read < 0 || c.Timeout.Write < 0 || c.Timeout.Idle < 0 || c.Timeout.ReadHeader < 0 {
		return fmt.Errorf("HTTP server timeouts must be positive")
	}
	return nil
}
