package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	errInvalidDuration = errors.New("invalid duration")
	errNoDBPath        = errors.New("db_path is required")
	errNoRoadsCSV      = errors.New("roads_csv is required")
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

// ServerConfig represents the configuration for the scheduling server.
type ServerConfig struct {
	ListenAddr      string   `json:"listen_addr"`      // e.g., :8090
	DBPath          string   `json:"db_path"`          // SQLite database location
	RoadsCSV        string   `json:"roads_csv"`        // Road registry export
	InspectionsCSV  string   `json:"inspections_csv"`  // Optional inspection history export
	MonsoonMode     bool     `json:"monsoon_mode"`     // Start with the seasonal model active
	ShutdownTimeout Duration `json:"shutdown_timeout"` // Grace period for in-flight requests
	RateLimitRPS    float64  `json:"rate_limit_rps"`   // Write-endpoint rate limit
	RateLimitBurst  int      `json:"rate_limit_burst"`
}

// Validate implements Validator.
func (c *ServerConfig) Validate() error {
	if c.DBPath == "" {
		return errNoDBPath
	}

	if c.RoadsCSV == "" {
		return errNoRoadsCSV
	}

	if c.ListenAddr == "" {
		c.ListenAddr = ":8090"
	}

	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = Duration(10 * time.Second)
	}

	if c.RateLimitRPS <= 0 {
		c.RateLimitRPS = 5
	}

	if c.RateLimitBurst <= 0 {
		c.RateLimitBurst = 10
	}

	return nil
}

// ApplyEnv overlays CRCMS_* environment variables onto the file values.
// Environment wins so deployments can override a shared config file.
func (c *ServerConfig) ApplyEnv() {
	if v := os.Getenv("CRCMS_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}

	if v := os.Getenv("CRCMS_DB_PATH"); v != "" {
		c.DBPath = v
	}

	if v := os.Getenv("CRCMS_ROADS_CSV"); v != "" {
		c.RoadsCSV = v
	}

	if v := os.Getenv("CRCMS_INSPECTIONS_CSV"); v != "" {
		c.InspectionsCSV = v
	}

	if v := os.Getenv("CRCMS_MONSOON_MODE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.MonsoonMode = b
		}
	}
}
