// Package config loads the optional HCL configuration file. Values from the
// file fill in whatever the command line left unset; flags always win.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// File is the HCL configuration surface. Every attribute is optional; the
// zero value means "not set" and defers to flag or default.
//
// Example:
//
//	addr         = ":3002"
//	storage      = "redis"
//	redis_url    = "redis://localhost:6379/0"
//	cors_origins = ["http://localhost:3000", "http://localhost:5173"]
//	log_format   = "json"
//	log_level    = "info"
//	day_duration = "1s"
type File struct {
	Addr        string   `hcl:"addr,optional"`
	Storage     string   `hcl:"storage,optional"`
	RedisURL    string   `hcl:"redis_url,optional"`
	PostgresURL string   `hcl:"postgres_url,optional"`
	CORSOrigins []string `hcl:"cors_origins,optional"`
	LogFormat   string   `hcl:"log_format,optional"`
	LogLevel    string   `hcl:"log_level,optional"`
	DayDuration string   `hcl:"day_duration,optional"`
}

// Load parses the HCL file at path.
func Load(path string) (*File, error) {
	var f File
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
	}
	return &f, nil
}
