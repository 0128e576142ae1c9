package seeder

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds spreadsheet import settings.
type Config struct {
	CSVPath string `yaml:"csv_path" env:"SEEDER_CSV_PATH"`
	// SkipCategories leaves categories named by the sheet but missing from
	// the desk unadded; their enquiries are still imported.
	SkipCategories bool     `yaml:"skip_categories" env:"SEEDER_SKIP_CATEGORIES"`
	DryRun         bool     `yaml:"dry_run"         env:"SEEDER_DRY_RUN"`
	Phases         []string `yaml:"phases"          env:"SEEDER_PHASES" env-separator:","`
}

// LoadConfig reads the YAML file at path, or only the environment when
// path is empty. ENV overrides YAML either way.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	read := func() error { return cleanenv.ReadEnv(&cfg) }
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: %w", err)
		}
		read = func() error { return cleanenv.ReadConfig(path, &cfg) }
	}
	if err := read(); err != nil {
		return nil, fmt.Errorf("seeder config: read: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects phase names the pipeline does not know.
func (c *Config) Validate() error {
	for i, ph := range c.Phases {
		ph = strings.TrimSpace(ph)
		if !slices.Contains(allPhases, ph) {
			return fmt.Errorf("seeder config: unknown phase %q, expected one of: %s",
				ph, strings.Join(allPhases, ", "))
		}
		c.Phases[i] = ph
	}
	return nil
}
