package config

import (
	"os"
	"path/filepath"

	"github.com/birmacher/content-gen/logger"
	"gopkg.in/yaml.v3"
)

const DefaultThreadLength = 5

var defaultsFilenames = []string{"content-gen.yml", "content-gen.yaml"}

// Defaults are per-user values that CLI flags fall back to.
type Defaults struct {
	UserID       string `yaml:"user_id"`
	ThreadLength int    `yaml:"thread_length"`
}

func WithDefaultValues() Defaults {
	return Defaults{
		ThreadLength: DefaultThreadLength,
	}
}

// LoadDefaults reads the first defaults file found in dir. Missing or
// malformed files leave the built-in defaults in place.
func LoadDefaults(dir string) Defaults {
	defaults := WithDefaultValues()

	var filePath string
	for _, name := range defaultsFilenames {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			filePath = candidate
			break
		}
	}

	if filePath == "" {
		logger.Debugf("No defaults file found in %s, using built-in defaults", dir)
		return defaults
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warnf("Failed to read defaults file %s: %v", filePath, err)
		return defaults
	}

	parsed := defaults
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		logger.Warnf("Failed to parse YAML file %s: %v", filePath, err)
		return defaults
	}
	if parsed.ThreadLength == 0 {
		parsed.ThreadLength = DefaultThreadLength
	}

	logger.Debugf("Using defaults from YAML file: %s", filePath)
	return parsed
}
