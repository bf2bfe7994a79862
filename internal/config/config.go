package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pricebook/pkg/config"
	"pricebook/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	Log        config.LogConfig       `koanf:"log"`
	PProf      config.PProfConfig     `koanf:"pprof"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
	Telemetry  config.TelemetryConfig `koanf:"telemetry"`
	Catalog    CatalogConfig          `koanf:"catalog"`
}

// CatalogConfig holds the presentation text and the seed entries the
// catalog is populated with at startup.
type CatalogConfig struct {
	Currency     string      `koanf:"currency"`
	NotFoundText string      `koanf:"notfoundtext"`
	Seed         []SeedEntry `koanf:"seed"`
}

// SeedEntry is one initial catalog entry. Price is text and must parse as
// a non-negative decimal.
type SeedEntry struct {
	Name  string `koanf:"name"`
	Price string `koanf:"price"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server Configuration ---\n")
	b.WriteString(fmt.Sprintf("  server.port: %d\n", c.HTTPServer.Port))
	b.WriteString(fmt.Sprintf("  server.maxHeaderBytes: %d\n", c.HTTPServer.MaxHeaderBytes))
	b.WriteString(fmt.Sprintf("  server.timeout.read: %v\n", c.HTTPServer.Timeout.Read))
	b.WriteString(fmt.Sprintf("  server.timeout.write: %v\n", c.HTTPServer.Timeout.Write))
	b.WriteString(fmt.Sprintf("  server.timeout.idle: %v\n", c.HTTPServer.Timeout.Idle))
	b.WriteString(fmt.Sprintf("  server.timeout.readHeader: %v\n", c.HTTPServer.Timeout.ReadHeader))

	b.WriteString("\n--- Catalog ---\n")
	b.WriteString(fmt.Sprintf("  catalog.currency: %s\n", c.Catalog.Currency))
	b.WriteString(fmt.Sprintf("  catalog.notfoundtext: %s\n", c.Catalog.NotFoundText))
	b.WriteString(fmt.Sprintf("  catalog.seed: %d entries\n", len(c.Catalog.Seed)))

	b.WriteString("\n--- Observability & Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))
	b.WriteString(fmt.Sprintf("  pprof.enabled: %t\n", c.PProf.Enabled))
	b.WriteString(fmt.Sprintf("  pprof.address: %s\n", c.PProf.Addr))
	b.WriteString(fmt.Sprintf("  telemetry.enabled: %t\n", c.Telemetry.Enabled))

	b.WriteString("\n--- Application Behavior ---\n")
	b.WriteString(fmt.Sprintf("  shutdown.timeout: %s\n", c.Shutdown.Timeout))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	return c.Catalog.Validate()
}

func (c *CatalogConfig) Validate() error {
	if c.Currency == "" {
		c.Currency = "$"
	}
	if c.NotFoundText == "" {
		c.NotFoundText = "Product not found"
	}
	for i, seed := range c.Seed {
		if strings.TrimSpace(seed.Name) == "" {
			return fmt.Errorf("catalog.seed[%d]: name must not be empty", i)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(seed.Price))
		if err != nil {
			return fmt.Errorf("catalog.seed[%d]: invalid price %q: %w", i, seed.Price, err)
		}
		if price.IsNegative() {
			return fmt.Errorf("catalog.seed[%d]: price must not be negative", i)
		}
	}
	return nil
}
