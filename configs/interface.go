package configs

import "github.com/cockroachdb/errors"

// ErrConfigNotFound is returned when a source has no value for a key.
var ErrConfigNotFound = errors.New("config item not found")

// ConfigSource defines the interface for configuration sources.
type ConfigSource interface {
	Name() string
	Get(key string) (string, error)
	Set(key, value string) error
}
