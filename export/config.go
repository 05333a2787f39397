package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk export configuration the CLI consumes:
//
//	format: csv
//	columns: [e, n]
//	output: result.csv
type Config struct {
	Format  string   `yaml:"format"`
	Columns []string `yaml:"columns"`
	Output  string   `yaml:"output"`
}

// LoadConfig reads and validates a YAML export configuration
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if cfg.Format == "" {
		cfg.Format = FormatCSV
	}
	if _, err := backendFor(cfg.Format); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options converts the configuration to export options. The sink comes
// from the Output path; callers writing to an open sink build Options
// directly.
func (c *Config) Options() Options {
	return Options{
		Format:  c.Format,
		Columns: c.Columns,
		Path:    c.Output,
	}
}
