// internal/tools/searchplans/config.go
package searchplans

import "time"

type Config struct {
	// Timeout bounds a single store query. Zero means no deadline: the call
	// blocks for as long as the store does.
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
