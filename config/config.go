// Package config loads the client's static defaults from YAML (after
// loading a .env file from the same directory into the process
// environment), and can watch the YAML file for edits so a long-running
// process picks up changes without a restart.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ClientDefaults holds client settings loaded from YAML. Nothing in this
// module applies them to an httpcall.Client; environment variables from the
// .env file do not change the loaded values.
type ClientDefaults struct {
	TimeoutSeconds int               `yaml:"timeout_seconds"`
	ProxyURL       string            `yaml:"proxy_url"`
	DefaultHeaders map[string]string `yaml:"default_headers"`
	TLSServerName  string            `yaml:"tls_server_name"`
}

// Timeout returns TimeoutSeconds as a time.Duration.
func (d ClientDefaults) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// Load reads ClientDefaults from a YAML file at path. If a .env file sits
// alongside it (same directory), its variables are loaded into the process
// environment first, mirroring the teacher's server bootstrap ordering:
// dotenv before config.
func Load(path string) (*ClientDefaults, error) {
	_ = godotenv.Load(envPathFor(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d ClientDefaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func envPathFor(configPath string) string {
	dir := "."
	for i := len(configPath) - 1; i >= 0; i-- {
		if configPath[i] == '/' {
			dir = configPath[:i]
			break
		}
	}
	return dir + "/.env"
}
