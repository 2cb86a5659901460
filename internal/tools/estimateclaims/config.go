// internal/tools/estimateclaims/config.go
package estimateclaims

// Config is reserved for estimator settings once the prediction backend
// lands. The stub needs none.
type Config struct{}

func LoadConfig() *Config {
	return &Config{}
}
